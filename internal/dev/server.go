package dev

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wayfind-dev/wayfind/internal/config"
	"github.com/wayfind-dev/wayfind/pkg/routes"
	"github.com/wayfind-dev/wayfind/pkg/source"
	"github.com/wayfind-dev/wayfind/pkg/telemetry"
)

// ServerOptions configures the development server.
type ServerOptions struct {
	// Config is the project configuration.
	Config *config.Config

	// Verbose enables request logging.
	Verbose bool

	// OnResolve is called after each resolution attempt.
	OnResolve func(tree *routes.RouteNode, err error)

	// OnReload is called when connected clients are notified.
	OnReload func(clients int)

	// Metrics overrides the default metrics instance. Nil uses the
	// default Prometheus registry.
	Metrics *telemetry.Metrics
}

// Server is the development server. It resolves the route tree on
// startup, watches the routes directory, re-resolves on change, and
// pushes updates to connected WebSocket clients.
type Server struct {
	config       *config.Config
	options      ServerOptions
	watcher      *Watcher
	reloadServer *ReloadServer
	metrics      *telemetry.Metrics
	httpServer   *http.Server

	mu      sync.RWMutex
	tree    *routes.RouteNode
	lastErr error
	running bool
}

// NewServer creates a new development server.
func NewServer(options ServerOptions) *Server {
	cfg := options.Config

	watcher := NewWatcher(WatcherConfig{
		Root:     cfg.RoutesPath(),
		Debounce: 100 * time.Millisecond,
	})

	metrics := options.Metrics
	if metrics == nil {
		metrics = telemetry.NewMetrics()
	}

	return &Server{
		config:       cfg,
		options:      options,
		watcher:      watcher,
		reloadServer: NewReloadServer(),
		metrics:      metrics,
	}
}

// Start resolves the initial route tree, starts the watcher, and
// serves HTTP until the context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return fmt.Errorf("dev server already running")
	}
	s.running = true
	s.mu.Unlock()

	s.resolve()

	s.watcher.OnChange(func(batch []Change) {
		s.resolve()
		s.notify()
	})
	if err := s.watcher.Start(); err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer s.watcher.Stop()

	s.httpServer = &http.Server{
		Addr:    s.config.DevAddress(),
		Handler: s.routerHandler(),
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.reloadServer.Close()
		return s.httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// Tree returns the most recently resolved route tree and error.
func (s *Server) Tree() (*routes.RouteNode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree, s.lastErr
}

func (s *Server) resolve() {
	opts, err := s.config.ResolveOptions(false)
	if err == nil {
		var tree *routes.RouteNode
		src := source.NewDirSource(s.config.RoutesPath())
		tree, err = s.metrics.Resolve(src, opts)
		s.mu.Lock()
		s.tree = tree
		s.lastErr = err
		s.mu.Unlock()
	} else {
		s.mu.Lock()
		s.tree = nil
		s.lastErr = err
		s.mu.Unlock()
	}

	if s.options.OnResolve != nil {
		tree, lastErr := s.Tree()
		s.options.OnResolve(tree, lastErr)
	}
}

func (s *Server) notify() {
	tree, err := s.Tree()
	if err != nil {
		s.reloadServer.NotifyError(err.Error())
	} else {
		s.reloadServer.ClearError()
		s.reloadServer.NotifyRoutes(tree)
	}
	if s.options.OnReload != nil {
		s.options.OnReload(s.reloadServer.ClientCount())
	}
}

func (s *Server) routerHandler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	if s.options.Verbose {
		r.Use(middleware.Logger)
	}

	r.Get("/routes", s.handleRoutes)
	r.Get("/healthz", s.handleHealth)
	r.Get("/ws", s.reloadServer.HandleWebSocket)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

func (s *Server) handleRoutes(w http.ResponseWriter, req *http.Request) {
	tree, err := s.Tree()

	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}

	json.NewEncoder(w).Encode(map[string]any{"tree": tree})
}

func (s *Server) handleHealth(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":  "ok",
		"clients": s.reloadServer.ClientCount(),
	})
}
