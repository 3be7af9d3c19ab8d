package routes

import "regexp"

// Module is the record returned by loading a route file.
// The engine never inspects its contents; it only records the
// identity needed to load it later.
type Module map[string]any

// Context enumerates the route files of a project and lazily loads
// the module behind each key. Keys conventionally start with "./"
// and use forward slashes, e.g. "./profile/[user].tsx".
type Context interface {
	// Keys returns every available file-path key, in a stable order.
	Keys() []string

	// Load returns the loaded module for a key.
	Load(key string) (Module, error)
}

// LoadErrorPolicy decides what a node's LoadRoute does when the
// underlying Context.Load fails. The policy is captured once at
// resolution time.
type LoadErrorPolicy int

const (
	// PropagateLoadErrors returns load failures to the caller.
	PropagateLoadErrors LoadErrorPolicy = iota

	// SwallowLoadErrors turns load failures into an empty Module.
	SwallowLoadErrors
)

// Rank is the specificity of a route file. When several files map to
// the same logical route slot, the highest populated rank wins.
type Rank int

const (
	// RankGeneric is a file without a platform extension.
	RankGeneric Rank = iota

	// RankNative is a ".native" file on a non-web platform.
	RankNative

	// RankExact is a file matching the current platform exactly.
	RankExact

	numRanks
)

// RankSkip marks a platform variant that does not apply to the
// current platform. Files at this rank are dropped during the scan.
const RankSkip Rank = -1

// DynamicSegment describes one dynamic path segment of a route.
type DynamicSegment struct {
	// Name is the parameter name, without bracket syntax.
	Name string `json:"name"`

	// Deep marks a catch-all segment ([...name] or +not-found).
	Deep bool `json:"deep"`

	// NotFound marks the reserved +not-found segment.
	NotFound bool `json:"notFound,omitempty"`
}

// RouteNode is a node in the resolved route tree.
type RouteNode struct {
	// Route is the path relative to the nearest ancestor layout.
	// It starts as the full normalized path and is rewritten while
	// the tree is hoisted.
	Route string `json:"route"`

	// ContextKey is the original file path. It is stable and never
	// rewritten, so it identifies the node across re-resolutions.
	ContextKey string `json:"contextKey"`

	// Dynamic lists the dynamic segments of Route, in segment order.
	// It is nil for fully static routes and is recomputed whenever
	// Route changes.
	Dynamic []DynamicSegment `json:"dynamic,omitempty"`

	// Children are the routes nested under this layout.
	Children []*RouteNode `json:"children"`

	// EntryPoints are the file keys required to render this node,
	// accumulated from all ancestor layouts. Nil when entry-point
	// tracking is disabled.
	EntryPoints []string `json:"entryPoints,omitempty"`

	// LoadRoute loads the module behind ContextKey. It is invoked by
	// the consuming navigation runtime, never during resolution.
	LoadRoute func() (Module, error) `json:"-"`

	// Generated marks nodes not backed by an authored file.
	Generated bool `json:"generated,omitempty"`

	// Internal marks generated nodes that should be hidden from
	// user-facing route listings.
	Internal bool `json:"internal,omitempty"`
}

// Options configures a resolution run. The zero value is a strict,
// web-platform resolution with entry-point tracking enabled.
type Options struct {
	// Ignore holds additional exclusion patterns, matched against the
	// raw file key. The top-level +html file is always excluded.
	Ignore []*regexp.Regexp

	// PreserveAPIRoutes keeps +api files in the scan instead of
	// dropping them.
	PreserveAPIRoutes bool

	// LoadErrors selects what LoadRoute does on a load failure.
	LoadErrors LoadErrorPolicy

	// IgnoreEntryPoints disables entry-point tracking entirely.
	IgnoreEntryPoints bool

	// PlatformExtensions enables platform-specific file variants
	// (index.ios.tsx, _layout.android.tsx, ...).
	PlatformExtensions bool

	// Platform is the current platform identity, resolved once by the
	// caller. Defaults to "web".
	Platform string

	// StripLoadRoute drops the deferred loader from every node.
	// Intended for snapshotting trees in tests.
	StripLoadRoute bool

	// AlwaysIncludeSitemap injects the generated _sitemap view even
	// when no real routes exist.
	AlwaysIncludeSitemap bool

	// ImprovedErrorMessages selects the longer conflict-error wording
	// that names both files and suggests a fix.
	ImprovedErrorMessages bool

	// PermissiveDuplicates makes view conflicts non-fatal: the
	// later-enumerated file wins. Layout conflicts stay fatal.
	// Callers resolve this once (typically from their build mode)
	// instead of the engine reading ambient process state.
	PermissiveDuplicates bool
}

// platform returns the effective platform identity.
func (o Options) platform() string {
	if o.Platform == "" {
		return "web"
	}
	return o.Platform
}
