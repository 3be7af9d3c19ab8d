package dev

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/wayfind-dev/wayfind/internal/config"
	"github.com/wayfind-dev/wayfind/pkg/telemetry"
)

func testProject(t *testing.T, files map[string]string) *config.Config {
	t.Helper()

	root := t.TempDir()
	routesDir := filepath.Join(root, "app", "routes")
	for name, src := range files {
		path := filepath.Join(routesDir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	cfg := config.New()
	if err := cfg.SaveTo(filepath.Join(root, config.ConfigFileName)); err != nil {
		t.Fatal(err)
	}
	return cfg
}

func testServer(t *testing.T, files map[string]string) *Server {
	t.Helper()

	cfg := testProject(t, files)
	metrics := telemetry.NewMetrics(telemetry.WithRegistry(prometheus.NewRegistry()))
	return NewServer(ServerOptions{Config: cfg, Metrics: metrics})
}

func TestRoutesEndpoint(t *testing.T) {
	s := testServer(t, map[string]string{
		"_layout.tsx": "export default {}",
		"index.tsx":   "export default {}",
		"about.tsx":   "export default {}",
	})
	s.resolve()

	ts := httptest.NewServer(s.routerHandler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/routes")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Tree struct {
			Children []struct {
				Route string `json:"route"`
			} `json:"children"`
		} `json:"tree"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}

	got := make(map[string]bool)
	for _, c := range body.Tree.Children {
		got[c.Route] = true
	}
	for _, want := range []string{"index", "about", "_sitemap", "+not-found"} {
		if !got[want] {
			t.Errorf("missing route %q in %v", want, got)
		}
	}
}

func TestRoutesEndpointError(t *testing.T) {
	s := testServer(t, map[string]string{
		"a.tsx": "export default {}",
		"a.js":  "export default {}",
	})
	s.resolve()

	ts := httptest.NewServer(s.routerHandler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/routes")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["error"] == "" {
		t.Fatal("expected error message in response")
	}
}

func TestHealthEndpoint(t *testing.T) {
	s := testServer(t, map[string]string{"index.tsx": "x"})
	s.resolve()

	ts := httptest.NewServer(s.routerHandler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Fatalf("status = %v, want ok", body["status"])
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := testServer(t, map[string]string{"index.tsx": "x"})
	s.resolve()

	ts := httptest.NewServer(s.routerHandler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestWebSocketReceivesRouteUpdate(t *testing.T) {
	s := testServer(t, map[string]string{"index.tsx": "x"})
	s.resolve()

	ts := httptest.NewServer(s.routerHandler())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	// Wait for the connection to register before broadcasting.
	deadline := time.Now().Add(2 * time.Second)
	for s.reloadServer.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	s.notify()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	// notify sends a clear message first, then the tree.
	for i := 0; i < 2; i++ {
		_, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatal(err)
		}
		var msg ReloadMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatal(err)
		}
		if msg.Type == ReloadTypeRoutes {
			if msg.Tree == nil {
				t.Fatal("routes message without tree")
			}
			return
		}
	}
	t.Fatal("never received a routes message")
}

func TestNotifyErrorBroadcast(t *testing.T) {
	s := testServer(t, map[string]string{
		"a.tsx": "x",
		"a.js":  "x",
	})
	s.resolve()

	ts := httptest.NewServer(s.routerHandler())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for s.reloadServer.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	s.notify()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatal(err)
	}
	var msg ReloadMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatal(err)
	}
	if msg.Type != ReloadTypeError || msg.Error == "" {
		t.Fatalf("expected error message, got %+v", msg)
	}
}
