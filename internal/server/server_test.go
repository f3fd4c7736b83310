package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/HerbHall/flowsight/pkg/plugin"
	"go.uber.org/zap"
)

// mockPluginSource satisfies the PluginSource interface for testing.
type mockPluginSource struct {
	plugins []plugin.Plugin
	routes  map[string][]plugin.Route
}

func (m *mockPluginSource) AllRoutes() map[string][]plugin.Route {
	if m.routes != nil {
		return m.routes
	}
	return map[string][]plugin.Route{}
}

func (m *mockPluginSource) All() []plugin.Plugin {
	return m.plugins
}

// stubPlugin satisfies plugin.Plugin for testing.
type stubPlugin struct {
	info plugin.PluginInfo
}

func (s *stubPlugin) Info() plugin.PluginInfo                             { return s.info }
func (s *stubPlugin) Init(_ context.Context, _ plugin.Dependencies) error { return nil }
func (s *stubPlugin) Start(_ context.Context) error                       { return nil }
func (s *stubPlugin) Stop(_ context.Context) error                        { return nil }

func newTestServer(ready ReadinessChecker) *Server {
	logger := zap.NewNop()
	plugins := &mockPluginSource{
		plugins: []plugin.Plugin{
			&stubPlugin{info: plugin.PluginInfo{
				Name:        "test-plugin",
				Version:     "1.0.0",
				Description: "A test plugin",
			}},
		},
	}
	return New("127.0.0.1:0", plugins, logger, ready, Options{})
}

func TestHandleHealthz(t *testing.T) {
	srv := newTestServer(nil)

	req := httptest.NewRequest("GET", "/healthz", http.NoBody)
	w := httptest.NewRecorder()
	srv.mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var body map[string]string
	json.NewDecoder(w.Body).Decode(&body)
	if body["status"] != "alive" {
		t.Errorf("status = %q, want %q", body["status"], "alive")
	}
}

func TestHandleReadyz_Healthy(t *testing.T) {
	ready := ReadinessChecker(func(_ context.Context) error {
		return nil
	})
	srv := newTestServer(ready)

	req := httptest.NewRequest("GET", "/readyz", http.NoBody)
	w := httptest.NewRecorder()
	srv.mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestHandleReadyz_Unhealthy(t *testing.T) {
	ready := ReadinessChecker(func(_ context.Context) error {
		return errors.New("dependency unavailable")
	})
	srv := newTestServer(ready)

	req := httptest.NewRequest("GET", "/readyz", http.NoBody)
	w := httptest.NewRecorder()
	srv.mux.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusServiceUnavailable)
	}

	var body map[string]string
	json.NewDecoder(w.Body).Decode(&body)
	if body["status"] != "not ready" {
		t.Errorf("status = %q, want %q", body["status"], "not ready")
	}
}

func TestHandleReadyz_NilChecker(t *testing.T) {
	srv := newTestServer(nil)

	req := httptest.NewRequest("GET", "/readyz", http.NoBody)
	w := httptest.NewRecorder()
	srv.mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(nil)

	req := httptest.NewRequest("GET", "/api/v1/health", http.NoBody)
	w := httptest.NewRecorder()
	srv.mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var body HealthResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Service != "flowsight" {
		t.Errorf("service = %q, want %q", body.Service, "flowsight")
	}
	if body.Status != "ok" {
		t.Errorf("status = %q, want %q", body.Status, "ok")
	}
}

func TestHandlePlugins(t *testing.T) {
	srv := newTestServer(nil)

	req := httptest.NewRequest("GET", "/api/v1/plugins", http.NoBody)
	w := httptest.NewRecorder()
	srv.mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var body []PluginResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body) != 1 {
		t.Fatalf("plugin count = %d, want 1", len(body))
	}
	if body[0].Name != "test-plugin" {
		t.Errorf("name = %q, want %q", body[0].Name, "test-plugin")
	}
}

func TestHandleMetrics(t *testing.T) {
	srv := newTestServer(nil)

	req := httptest.NewRequest("GET", "/metrics", http.NoBody)
	w := httptest.NewRecorder()
	srv.mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestPluginRoutes_Mounted(t *testing.T) {
	logger := zap.NewNop()
	plugins := &mockPluginSource{
		routes: map[string][]plugin.Route{
			"simcast": {
				{Method: "POST", Path: "/simulate", Handler: func(w http.ResponseWriter, _ *http.Request) {
					w.WriteHeader(http.StatusOK)
				}},
			},
		},
	}
	srv := New("127.0.0.1:0", plugins, logger, nil, Options{})

	req := httptest.NewRequest("POST", "/api/v1/simcast/simulate", http.NoBody)
	w := httptest.NewRecorder()
	srv.mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestSwagger_OnlyInDevMode(t *testing.T) {
	logger := zap.NewNop()
	plugins := &mockPluginSource{}

	prod := New("127.0.0.1:0", plugins, logger, nil, Options{})
	req := httptest.NewRequest("GET", "/swagger/index.html", http.NoBody)
	w := httptest.NewRecorder()
	prod.mux.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("prod swagger status = %d, want 404", w.Code)
	}

	dev := New("127.0.0.1:0", plugins, logger, nil, Options{DevMode: true})
	w = httptest.NewRecorder()
	dev.mux.ServeHTTP(w, req)
	if w.Code == http.StatusNotFound {
		t.Error("dev swagger route not mounted")
	}
}
