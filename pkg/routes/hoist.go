package routes

import "strings"

// Resolve builds the route tree for the files enumerated by ctx.
//
// It returns nil (with no error) when the enumeration holds no view
// files, unless Options.AlwaysIncludeSitemap forces the generated
// fallback views into an authored layout. Any naming or conflict error
// aborts resolution; no partial tree is returned.
func Resolve(ctx Context, opts Options) (*RouteNode, error) {
	root, hasRoutes, err := buildDirectoryTree(ctx, opts)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, nil
	}
	if !hasRoutes && !opts.AlwaysIncludeSitemap {
		return nil, nil
	}

	injectSyntheticRoutes(root, hasRoutes, opts)

	return hoist(root, opts, nil, nil, "")
}

// hoist flattens the directory tree into a parent-child tree keyed by
// nearest enclosing layout. Each directory promotes its most-specific
// layout, attaches its views as children of the active layout, and
// recurses. prefix is the path of the nearest ancestor layout, with a
// trailing slash, and is stripped from every promoted route.
func hoist(dir *directoryNode, opts Options, parent *RouteNode, entryPoints []string, prefix string) (*RouteNode, error) {
	if !dir.layout.empty() {
		layout, err := mostSpecific(&dir.layout)
		if err != nil {
			return nil, err
		}
		if parent != nil {
			parent.Children = append(parent.Children, layout)
		}
		parent = layout

		full := layout.Route
		layout.Route = strings.TrimPrefix(full, prefix)
		if full != "" {
			prefix = full + "/"
		} else {
			prefix = ""
		}
		layout.Dynamic = parseDynamicSegments(layout.Route)

		if len(layout.EntryPoints) > 0 {
			entryPoints = mergeEntryPoints(entryPoints, layout.EntryPoints)
			layout.EntryPoints = nil
		}
		if opts.IgnoreEntryPoints {
			layout.EntryPoints = nil
		}
		if opts.StripLoadRoute {
			layout.LoadRoute = nil
		}
	}

	if parent == nil {
		// Unreachable in practice: the builder guarantees a root
		// layout before hoisting starts.
		return nil, nil
	}

	for _, name := range dir.viewNames {
		view, err := mostSpecific(dir.views[name])
		if err != nil {
			return nil, err
		}

		// Views are cloned so a file placed in several directories via
		// group expansion keeps one placement record per leaf.
		child := *view
		child.Route = strings.TrimPrefix(view.Route, prefix)
		child.Dynamic = parseDynamicSegments(child.Route)
		child.EntryPoints = mergeEntryPoints(entryPoints, view.EntryPoints)
		if opts.IgnoreEntryPoints {
			child.EntryPoints = nil
		}
		if opts.StripLoadRoute {
			child.LoadRoute = nil
		}
		parent.Children = append(parent.Children, &child)
	}

	for _, name := range dir.subdirNames {
		if _, err := hoist(dir.subdirectories[name], opts, parent, entryPoints, prefix); err != nil {
			return nil, err
		}
	}

	return parent, nil
}

// mostSpecific picks the candidate at the highest populated rank.
// Platform variants without a generic sibling at RankGeneric are a
// fatal configuration error; the two rules are enforced independently.
func mostSpecific(slots *rankSlots) (*RouteNode, error) {
	var best *RouteNode
	for _, candidate := range slots {
		if candidate != nil {
			best = candidate
		}
	}
	if best == nil {
		return nil, nil
	}
	if slots[RankGeneric] == nil {
		return nil, errMissingFallback(best.ContextKey)
	}
	return best, nil
}

// mergeEntryPoints deduplicates inherited and own entry points,
// inherited first, into a fresh slice.
func mergeEntryPoints(inherited, own []string) []string {
	out := make([]string, 0, len(inherited)+len(own))
	seen := make(map[string]bool, len(inherited)+len(own))
	for _, lists := range [2][]string{inherited, own} {
		for _, ep := range lists {
			if !seen[ep] {
				seen[ep] = true
				out = append(out, ep)
			}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
