package source

import (
	"reflect"
	"testing"

	"github.com/wayfind-dev/wayfind/pkg/routes"
)

func TestMapSource(t *testing.T) {
	src := NewMapSource(map[string]routes.Module{
		"./b.tsx": {"n": 2},
		"./a.tsx": {"n": 1},
	})

	if got, want := src.Keys(), []string{"./a.tsx", "./b.tsx"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want sorted %v", got, want)
	}

	m, err := src.Load("./a.tsx")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if m["n"] != 1 {
		t.Errorf("module = %v, want n=1", m)
	}

	if _, err := src.Load("./missing.tsx"); err == nil {
		t.Error("Load of an unknown key should fail")
	}
}

func TestMapSourceResolves(t *testing.T) {
	src := NewMapSource(map[string]routes.Module{
		"./index.tsx": {},
	})
	root, err := routes.Resolve(src, routes.Options{})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if root == nil {
		t.Fatal("Resolve = nil, want tree")
	}
}
