package routes

import (
	"regexp"
	"strings"
)

// Reserved filename conventions.
const (
	layoutMarker    = "_layout"
	notFoundSegment = "+not-found"
)

var (
	// routeExtensionRe matches the recognized script extensions.
	routeExtensionRe = regexp.MustCompile(`\.[jt]sx?$`)

	// apiFileRe matches API route files such as feed+api.ts.
	apiFileRe = regexp.MustCompile(`\+api\.[jt]sx?$`)

	// htmlFileRe matches the reserved top-level HTML wrapper file.
	htmlFileRe = regexp.MustCompile(`^(?:\./)?\+html\.[jt]sx?$`)

	// groupNameRe matches a base name that is nothing but a group.
	groupNameRe = regexp.MustCompile(`^\([^/]*\)$`)
)

// platforms is the fixed set of recognized platform identifiers.
var platforms = map[string]bool{
	"android": true,
	"ios":     true,
	"windows": true,
	"osx":     true,
	"native":  true,
	"web":     true,
}

// fileMeta is the parsed metadata of one route file.
type fileMeta struct {
	// key is the file path with the leading "./" stripped.
	key string

	// name is the extension- and platform-stripped base name.
	name string

	// specificity is the platform rank, or RankSkip for variants that
	// do not apply to the current platform.
	specificity Rank

	// parts are the slash-separated segments of key.
	parts []string

	// dirname is the directory portion of key ("" at the root).
	dirname string

	// filename is the last segment of key, extensions included.
	filename string

	// filepathWithoutExtensions is dirname joined with name.
	filepathWithoutExtensions string

	isLayout bool
	isAPI    bool
}

// parseFileName turns one raw file key into route metadata.
// A specificity of RankSkip means the file is a platform variant that
// does not apply and must be dropped.
func parseFileName(raw string, opts Options) (fileMeta, error) {
	key := strings.TrimPrefix(raw, "./")
	parts := strings.Split(key, "/")
	filename := parts[len(parts)-1]
	dirname := strings.Join(parts[:len(parts)-1], "/")

	meta := fileMeta{
		key:         key,
		parts:       parts,
		dirname:     dirname,
		filename:    filename,
		specificity: RankGeneric,
		isAPI:       apiFileRe.MatchString(filename),
	}

	name := routeExtensionRe.ReplaceAllString(filename, "")

	// A trailing dot-segment from the platform set selects a
	// platform-specific variant of the route.
	if idx := strings.LastIndex(name, "."); idx != -1 {
		if suffix := name[idx+1:]; platforms[suffix] {
			if !opts.PlatformExtensions {
				return meta, errUnexpectedPlatform(raw, suffix)
			}
			switch {
			case suffix == opts.platform():
				meta.specificity = RankExact
			case suffix == "native" && opts.platform() != "web":
				meta.specificity = RankNative
			default:
				meta.specificity = RankSkip
			}
			name = name[:idx]
		}
	}

	if groupNameRe.MatchString(name) {
		return meta, errGroupNamedRoute(raw)
	}

	meta.name = name
	meta.isLayout = name == layoutMarker
	if dirname == "" {
		meta.filepathWithoutExtensions = name
	} else {
		meta.filepathWithoutExtensions = dirname + "/" + name
	}
	return meta, nil
}
