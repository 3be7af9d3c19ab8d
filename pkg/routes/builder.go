package routes

import "strings"

// rankSlots holds at most one candidate node per specificity rank.
type rankSlots [numRanks]*RouteNode

func (s *rankSlots) empty() bool {
	for _, n := range s {
		if n != nil {
			return false
		}
	}
	return true
}

// directoryNode is one directory level of the transient tree built
// during the scan. It is discarded after hoisting.
type directoryNode struct {
	// layout holds the layout candidates, indexed by rank.
	layout rankSlots

	// views maps a logical route name to its candidates by rank.
	// viewNames preserves first-placement order so the final tree is
	// deterministic for a stable enumeration.
	views     map[string]*rankSlots
	viewNames []string

	// subdirectories maps a path segment to its child directory.
	subdirectories map[string]*directoryNode
	subdirNames    []string
}

func newDirectoryNode() *directoryNode {
	return &directoryNode{
		views:          make(map[string]*rankSlots),
		subdirectories: make(map[string]*directoryNode),
	}
}

// child walks or creates the subdirectory for one path segment.
func (d *directoryNode) child(segment string) *directoryNode {
	if sub, ok := d.subdirectories[segment]; ok {
		return sub
	}
	sub := newDirectoryNode()
	d.subdirectories[segment] = sub
	d.subdirNames = append(d.subdirNames, segment)
	return sub
}

func (d *directoryNode) viewSlots(name string) *rankSlots {
	if slots, ok := d.views[name]; ok {
		return slots
	}
	slots := &rankSlots{}
	d.views[name] = slots
	d.viewNames = append(d.viewNames, name)
	return slots
}

// newLoader builds the deferred loader for a file, with the load-error
// policy captured up front.
func newLoader(ctx Context, key string, policy LoadErrorPolicy) func() (Module, error) {
	if policy == SwallowLoadErrors {
		return func() (Module, error) {
			m, err := ctx.Load(key)
			if err != nil {
				return Module{}, nil
			}
			return m, nil
		}
	}
	return func() (Module, error) {
		return ctx.Load(key)
	}
}

// ignored reports whether a raw key is excluded from the scan. The
// top-level +html file is always excluded.
func ignored(raw string, opts Options) bool {
	if htmlFileRe.MatchString(raw) {
		return true
	}
	for _, re := range opts.Ignore {
		if re.MatchString(raw) {
			return true
		}
	}
	return false
}

// buildDirectoryTree scans the full enumeration into a directory tree.
// The returned tree is nil when the enumeration holds no usable route
// files at all. hasRoutes reports whether any view was placed.
func buildDirectoryTree(ctx Context, opts Options) (root *directoryNode, hasRoutes bool, err error) {
	root = newDirectoryNode()
	isValid := false

	for _, raw := range ctx.Keys() {
		if ignored(raw, opts) {
			continue
		}

		meta, err := parseFileName(raw, opts)
		if err != nil {
			return nil, false, err
		}
		if meta.specificity == RankSkip {
			continue
		}
		if meta.isAPI {
			if !opts.PreserveAPIRoutes {
				continue
			}
			// Preserved API files are recognized but not placed into
			// the navigation tree yet.
			continue
		}

		expanded, err := expandGroups(meta.filepathWithoutExtensions)
		if err != nil {
			return nil, false, err
		}

		// One loader per file: every group placement shares the same
		// contextKey and load identity.
		load := newLoader(ctx, raw, opts.LoadErrors)

		for _, expKey := range expanded {
			parts := strings.Split(expKey, "/")
			dir := root
			for _, segment := range parts[:len(parts)-1] {
				dir = dir.child(segment)
			}
			dirname := strings.Join(parts[:len(parts)-1], "/")

			node := &RouteNode{
				Route:       expKey,
				ContextKey:  raw,
				Children:    []*RouteNode{},
				EntryPoints: []string{raw},
				LoadRoute:   load,
			}

			if meta.isLayout {
				node.Route = strings.TrimSuffix(strings.TrimSuffix(expKey, layoutMarker), "/")
				if existing := dir.layout[meta.specificity]; existing != nil {
					return nil, false, errConflictingLayouts(existing.ContextKey, raw, dirname, opts.ImprovedErrorMessages)
				}
				dir.layout[meta.specificity] = node
				isValid = true
				continue
			}

			slots := dir.viewSlots(parts[len(parts)-1])
			if existing := slots[meta.specificity]; existing != nil && !opts.PermissiveDuplicates {
				return nil, false, errDuplicateRoute(existing.ContextKey, raw, expKey, dirname, opts.ImprovedErrorMessages)
			}
			slots[meta.specificity] = node
			hasRoutes = true
			isValid = true
		}
	}

	if !isValid {
		return nil, false, nil
	}

	// The final tree is always rooted at a layout.
	if root.layout.empty() {
		root.layout[RankGeneric] = defaultRootLayout()
	}

	return root, hasRoutes, nil
}
