package dev

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Change represents a detected route file change.
type Change struct {
	// Path is the absolute path of the changed file.
	Path string

	// Op describes the filesystem operation.
	Op fsnotify.Op
}

// WatcherConfig configures the file watcher.
type WatcherConfig struct {
	// Root is the directory to watch recursively.
	Root string

	// Debounce is the delay before triggering on change. Rapid
	// bursts of events collapse into a single callback.
	Debounce time.Duration
}

// Watcher monitors a routes directory for changes to route files.
// Structural events (new files, deletions, renames) also fire so the
// route tree can be rebuilt when files appear or disappear.
type Watcher struct {
	config   WatcherConfig
	onChange func([]Change)
	fsw      *fsnotify.Watcher

	mu      sync.Mutex
	pending []Change
	timer   *time.Timer
	done    chan struct{}
}

// NewWatcher creates a new file watcher.
func NewWatcher(config WatcherConfig) *Watcher {
	if config.Debounce == 0 {
		config.Debounce = 100 * time.Millisecond
	}
	return &Watcher{
		config: config,
		done:   make(chan struct{}),
	}
}

// OnChange sets the callback invoked with each debounced batch of
// changes. Must be called before Start.
func (w *Watcher) OnChange(fn func([]Change)) {
	w.onChange = fn
}

// Start begins watching the directory tree.
func (w *Watcher) Start() error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	w.fsw = fsw

	err = filepath.WalkDir(w.config.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if ignoredDir(w.config.Root, path) {
				return filepath.SkipDir
			}
			return fsw.Add(path)
		}
		return nil
	})
	if err != nil {
		fsw.Close()
		return err
	}

	go w.loop()
	return nil
}

// Stop terminates the watcher and waits for the event loop to exit.
func (w *Watcher) Stop() {
	if w.fsw != nil {
		w.fsw.Close()
	}
	<-w.done

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
}

func (w *Watcher) loop() {
	defer close(w.done)

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(ev)

		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			// Watcher errors during dev are not actionable.
		}
	}
}

func (w *Watcher) handleEvent(ev fsnotify.Event) {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	// New directories need watches of their own before any files
	// inside them produce events.
	if ev.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			filepath.WalkDir(ev.Name, func(path string, d os.DirEntry, err error) error {
				if err != nil {
					return nil
				}
				if d.IsDir() {
					if ignoredDir(w.config.Root, path) {
						return filepath.SkipDir
					}
					w.fsw.Add(path)
				}
				return nil
			})
			w.queue(Change{Path: ev.Name, Op: ev.Op})
			return
		}
	}

	if !relevantFile(ev.Name) && ev.Op&(fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	w.queue(Change{Path: ev.Name, Op: ev.Op})
}

func (w *Watcher) queue(c Change) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending = append(w.pending, c)
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.config.Debounce, w.flush)
}

func (w *Watcher) flush() {
	w.mu.Lock()
	batch := w.pending
	w.pending = nil
	w.mu.Unlock()

	if len(batch) > 0 && w.onChange != nil {
		w.onChange(batch)
	}
}

// relevantFile reports whether a path looks like a route source file.
func relevantFile(path string) bool {
	switch filepath.Ext(path) {
	case ".js", ".jsx", ".ts", ".tsx":
		return !strings.HasSuffix(path, ".d.ts")
	}
	return false
}

// ignoredDir returns true for directories that should not be watched.
func ignoredDir(root, path string) bool {
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") && path != root {
		return true
	}
	return name == "node_modules"
}
