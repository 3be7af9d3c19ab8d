package source

import (
	"fmt"
	"sort"

	"github.com/wayfind-dev/wayfind/pkg/routes"
)

// MapSource is an in-memory route enumeration, keyed by file path.
// Useful for tests and for embedding generated route manifests.
type MapSource struct {
	keys    []string
	modules map[string]routes.Module
}

// NewMapSource builds a MapSource from a key-to-module map. Keys are
// listed in sorted order so resolution stays deterministic.
func NewMapSource(modules map[string]routes.Module) *MapSource {
	keys := make([]string, 0, len(modules))
	for key := range modules {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return &MapSource{keys: keys, modules: modules}
}

// Keys implements routes.Context.
func (s *MapSource) Keys() []string { return s.keys }

// Load implements routes.Context.
func (s *MapSource) Load(key string) (routes.Module, error) {
	m, ok := s.modules[key]
	if !ok {
		return nil, fmt.Errorf("source: no module for key %q", key)
	}
	return m, nil
}
