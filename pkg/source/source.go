// Package source provides route-file enumerations for the resolver.
//
// Every source implements routes.Context: a stable key listing plus a
// deferred per-key loader. Keys are "./"-prefixed, slash-separated
// paths relative to the source root, matching the convention the
// resolver expects.
package source

import "regexp"

// routeFileRe matches the script extensions recognized as route files.
var routeFileRe = regexp.MustCompile(`\.[jt]sx?$`)

// IsRouteFile reports whether a path names a route file.
func IsRouteFile(path string) bool {
	return routeFileRe.MatchString(path)
}
