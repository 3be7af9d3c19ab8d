package routes

import (
	"errors"
	"reflect"
	"testing"
)

// childByKey finds a direct child by context key.
func childByKey(node *RouteNode, contextKey string) *RouteNode {
	for _, child := range node.Children {
		if child.ContextKey == contextKey {
			return child
		}
	}
	return nil
}

// childByRoute finds a direct child by route string.
func childByRoute(node *RouteNode, route string) *RouteNode {
	for _, child := range node.Children {
		if child.Route == route {
			return child
		}
	}
	return nil
}

func TestHoistNestedLayouts(t *testing.T) {
	root, err := Resolve(ctxOf(
		"./_layout.tsx",
		"./a/_layout.tsx",
		"./a/b.tsx",
	), Options{})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if root == nil {
		t.Fatal("Resolve returned nil tree")
	}
	if root.ContextKey != "./_layout.tsx" {
		t.Fatalf("root = %q, want authored root layout", root.ContextKey)
	}
	if root.Route != "" {
		t.Errorf("root route = %q, want \"\"", root.Route)
	}

	a := childByKey(root, "./a/_layout.tsx")
	if a == nil {
		t.Fatal("layout a is not a child of the root layout")
	}
	if a.Route != "a" {
		t.Errorf("layout a route = %q, want %q", a.Route, "a")
	}

	b := childByKey(a, "./a/b.tsx")
	if b == nil {
		t.Fatal("view b is not a child of layout a")
	}
	if b.Route != "b" {
		t.Errorf("view b route = %q, want %q (not %q)", b.Route, "b", "a/b")
	}
}

func TestHoistSkipsLayoutlessDirectories(t *testing.T) {
	root, err := Resolve(ctxOf(
		"./_layout.tsx",
		"./a/b/c.tsx",
	), Options{})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	c := childByKey(root, "./a/b/c.tsx")
	if c == nil {
		t.Fatal("view c should hoist to the root layout")
	}
	if c.Route != "a/b/c" {
		t.Errorf("view c route = %q, want %q", c.Route, "a/b/c")
	}
}

func TestHoistRecomputesDynamic(t *testing.T) {
	root, err := Resolve(ctxOf(
		"./a/_layout.tsx",
		"./a/[id]/[...rest].tsx",
	), Options{})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	a := childByKey(root, "./a/_layout.tsx")
	if a == nil {
		t.Fatal("missing layout a")
	}
	view := childByKey(a, "./a/[id]/[...rest].tsx")
	if view == nil {
		t.Fatal("missing dynamic view")
	}
	if view.Route != "[id]/[...rest]" {
		t.Errorf("route = %q, want %q", view.Route, "[id]/[...rest]")
	}
	want := []DynamicSegment{
		{Name: "id"},
		{Name: "rest", Deep: true},
	}
	if !reflect.DeepEqual(view.Dynamic, want) {
		t.Errorf("dynamic = %+v, want %+v", view.Dynamic, want)
	}
}

func TestHoistEntryPoints(t *testing.T) {
	root, err := Resolve(ctxOf(
		"./_layout.tsx",
		"./a/_layout.tsx",
		"./a/b.tsx",
	), Options{})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	// Layouts merge their own entry points into the inherited set and
	// drop the per-node field.
	if root.EntryPoints != nil {
		t.Errorf("root layout entryPoints = %v, want nil", root.EntryPoints)
	}
	a := childByKey(root, "./a/_layout.tsx")
	if a.EntryPoints != nil {
		t.Errorf("layout a entryPoints = %v, want nil", a.EntryPoints)
	}

	b := childByKey(a, "./a/b.tsx")
	want := []string{"./_layout.tsx", "./a/_layout.tsx", "./a/b.tsx"}
	if !reflect.DeepEqual(b.EntryPoints, want) {
		t.Errorf("view b entryPoints = %v, want %v", b.EntryPoints, want)
	}
}

func TestHoistIgnoreEntryPoints(t *testing.T) {
	root, err := Resolve(ctxOf(
		"./_layout.tsx",
		"./index.tsx",
	), Options{IgnoreEntryPoints: true})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if root.EntryPoints != nil {
		t.Errorf("root entryPoints = %v, want nil", root.EntryPoints)
	}
	index := childByKey(root, "./index.tsx")
	if index.EntryPoints != nil {
		t.Errorf("index entryPoints = %v, want nil", index.EntryPoints)
	}
}

func TestHoistStripLoadRoute(t *testing.T) {
	root, err := Resolve(ctxOf(
		"./_layout.tsx",
		"./index.tsx",
	), Options{StripLoadRoute: true})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if root.LoadRoute != nil {
		t.Error("root LoadRoute should be stripped")
	}
	for _, child := range root.Children {
		if child.LoadRoute != nil {
			t.Errorf("child %q LoadRoute should be stripped", child.Route)
		}
	}
}

func TestMostSpecificPicksHighestRank(t *testing.T) {
	generic := &RouteNode{ContextKey: "./index.tsx"}
	exact := &RouteNode{ContextKey: "./index.ios.tsx"}

	slots := &rankSlots{}
	slots[RankGeneric] = generic
	slots[RankExact] = exact

	got, err := mostSpecific(slots)
	if err != nil {
		t.Fatalf("mostSpecific error: %v", err)
	}
	if got != exact {
		t.Errorf("mostSpecific = %q, want exact-platform candidate", got.ContextKey)
	}
}

func TestMostSpecificMissingFallback(t *testing.T) {
	slots := &rankSlots{}
	slots[RankExact] = &RouteNode{ContextKey: "./index.ios.tsx"}

	_, err := mostSpecific(slots)
	var rerr *ResolveError
	if !errors.As(err, &rerr) {
		t.Fatalf("error = %v, want *ResolveError", err)
	}
	if rerr.Kind != ErrorMissingFallback {
		t.Errorf("Kind = %q, want %q", rerr.Kind, ErrorMissingFallback)
	}
}
