package source

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/wayfind-dev/wayfind/pkg/routes"
)

// DirSource enumerates route files beneath a directory on disk.
type DirSource struct {
	root string
}

// NewDirSource creates a source rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{root: dir}
}

// Keys walks the directory tree and returns "./"-prefixed keys for
// every route file, in walk order. An unreadable root yields no keys;
// resolution of an empty enumeration returns no tree, which is the
// behavior callers expect for a missing routes directory.
func (s *DirSource) Keys() []string {
	var keys []string

	filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !IsRouteFile(path) {
			return nil
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return nil
		}
		keys = append(keys, "./"+filepath.ToSlash(rel))
		return nil
	})

	return keys
}

// Load reads the file behind key. The returned module carries the
// absolute path and raw source; bundler integrations replace this
// with real module records.
func (s *DirSource) Load(key string) (routes.Module, error) {
	rel := strings.TrimPrefix(key, "./")
	path := filepath.Join(s.root, filepath.FromSlash(rel))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("source: loading %s: %w", key, err)
	}
	return routes.Module{
		"path":   path,
		"source": string(data),
	}, nil
}
