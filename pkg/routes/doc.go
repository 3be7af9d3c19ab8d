// Package routes resolves a flat enumeration of route files into a
// single-rooted navigation tree.
//
// The resolver provides:
//   - Filename parsing into route metadata (layouts, views, API files,
//     dynamic segments, platform variants, route groups)
//   - Specificity ranking between platform-specific file variants
//   - Array-group expansion into multiple route placements
//   - Hoisting of nested layouts and views into a tree rooted at the
//     nearest enclosing layout
//
// # File Structure Convention
//
// Routes are defined by files enumerated by a Context:
//
//	./index.tsx            → view "index" at the root
//	./_layout.tsx          → layout wrapping all routes
//	./profile/[user].tsx   → dynamic view "profile/[user]"
//	./docs/[...path].tsx   → catch-all view
//	./(tabs)/home.tsx      → view inside the organizational group "(tabs)"
//	./(a,b)/x.tsx          → one file placed at both "(a)/x" and "(b)/x"
//	./feed+api.ts          → API file (excluded unless preserved)
//	./+html.tsx            → top-level wrapper, always excluded
//	./+not-found.tsx       → unmatched-route view
//
// # Platform Variants
//
// With Options.PlatformExtensions enabled, a trailing dot-suffix from
// {android, ios, windows, osx, native, web} selects platform-specific
// files. An exact platform match beats ".native", which beats the
// generic file; variants for other platforms are dropped:
//
//	index.tsx        → generic fallback
//	index.native.tsx → used on every platform except web
//	index.ios.tsx    → used when the current platform is ios
//
// # Usage
//
//	src := source.NewDirSource("app/routes")
//	root, err := routes.Resolve(src, routes.Options{
//		Platform:           "ios",
//		PlatformExtensions: true,
//	})
//	if err != nil {
//		// a naming or conflict error, fatal by design
//	}
//	if root == nil {
//		// no routes found
//	}
//
// The returned root is always a layout node; a default one is
// generated when the project does not author a root _layout file.
// Resolution is synchronous and deterministic; modules are only
// loaded later, through each node's LoadRoute.
package routes
