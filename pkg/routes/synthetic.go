package routes

// Built-in module keys for generated nodes. The consuming runtime maps
// these to its default navigator, sitemap, and unmatched-route views.
const (
	NavigatorModuleKey = "wayfind/views/navigator"
	SitemapModuleKey   = "wayfind/views/sitemap"
	UnmatchedModuleKey = "wayfind/views/unmatched"
)

const sitemapRouteName = "_sitemap"

// builtinLoader resolves a generated node to its built-in module.
func builtinLoader(key string) func() (Module, error) {
	return func() (Module, error) {
		return Module{"default": key}, nil
	}
}

// defaultRootLayout is the generated root layout used when no authored
// root _layout file exists.
func defaultRootLayout() *RouteNode {
	return &RouteNode{
		Route:       "",
		ContextKey:  NavigatorModuleKey,
		Children:    []*RouteNode{},
		EntryPoints: []string{NavigatorModuleKey},
		LoadRoute:   builtinLoader(NavigatorModuleKey),
		Generated:   true,
	}
}

// injectSyntheticRoutes appends the generated fallback views to the
// root directory: a _sitemap view when real routes exist (or the
// caller forces it), and a +not-found view unconditionally. Authored
// files with the same names take precedence.
func injectSyntheticRoutes(root *directoryNode, hasRoutes bool, opts Options) {
	if hasRoutes || opts.AlwaysIncludeSitemap {
		if _, ok := root.views[sitemapRouteName]; !ok {
			root.viewSlots(sitemapRouteName)[RankGeneric] = &RouteNode{
				Route:       sitemapRouteName,
				ContextKey:  SitemapModuleKey,
				Children:    []*RouteNode{},
				EntryPoints: []string{SitemapModuleKey},
				LoadRoute:   builtinLoader(SitemapModuleKey),
				Generated:   true,
				Internal:    true,
			}
		}
	}

	if _, ok := root.views[notFoundSegment]; !ok {
		root.viewSlots(notFoundSegment)[RankGeneric] = &RouteNode{
			Route:       notFoundSegment,
			ContextKey:  UnmatchedModuleKey,
			Dynamic:     []DynamicSegment{{Name: notFoundSegment, Deep: true, NotFound: true}},
			Children:    []*RouteNode{},
			EntryPoints: []string{UnmatchedModuleKey},
			LoadRoute:   builtinLoader(UnmatchedModuleKey),
			Generated:   true,
			Internal:    true,
		}
	}
}
