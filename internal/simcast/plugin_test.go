package simcast

import (
	"context"
	"testing"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/HerbHall/flowsight/internal/config"
	"github.com/HerbHall/flowsight/pkg/plugin"
	"github.com/HerbHall/flowsight/pkg/plugin/plugintest"
)

func TestPluginContract(t *testing.T) {
	plugintest.TestPluginContract(t, func() plugin.Plugin { return New() })
}

func TestInit_WithConfig(t *testing.T) {
	v := viper.New()
	v.Set("smoothing_alpha", 0.5)
	v.Set("flow_rate", 0.25)
	v.Set("max_forecast_hours", 72)

	m := New()
	err := m.Init(context.Background(), plugin.Dependencies{
		Logger: zap.NewNop(),
		Config: config.New(v),
	})
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	if m.cfg.SmoothingAlpha != 0.5 {
		t.Errorf("cfg.SmoothingAlpha = %f, want 0.5", m.cfg.SmoothingAlpha)
	}
	if m.cfg.FlowRate != 0.25 {
		t.Errorf("cfg.FlowRate = %f, want 0.25", m.cfg.FlowRate)
	}
	if m.cfg.MaxForecastHours != 72 {
		t.Errorf("cfg.MaxForecastHours = %d, want 72", m.cfg.MaxForecastHours)
	}
	// Unset keys keep their defaults.
	if m.cfg.BaseEfficiency != 0.85 {
		t.Errorf("cfg.BaseEfficiency = %f, want default 0.85", m.cfg.BaseEfficiency)
	}
}

func TestInit_NilConfig(t *testing.T) {
	m := New()
	err := m.Init(context.Background(), plugin.Dependencies{Logger: zap.NewNop()})
	if err != nil {
		t.Fatalf("Init() with nil config error = %v", err)
	}
	if m.cfg != DefaultConfig() {
		t.Errorf("cfg = %+v, want defaults", m.cfg)
	}
}

func TestValidateConfig(t *testing.T) {
	m := New()
	if err := m.Init(context.Background(), plugin.Dependencies{Logger: zap.NewNop()}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := m.ValidateConfig(); err != nil {
		t.Errorf("ValidateConfig() with defaults error = %v", err)
	}

	m.cfg.FlowRate = 1.5
	if err := m.ValidateConfig(); err == nil {
		t.Error("ValidateConfig() with flow_rate 1.5 expected error")
	}
}

func TestHealth(t *testing.T) {
	m := New()
	if got := m.Health(context.Background()); got.Status != "unhealthy" {
		t.Errorf("Health() before Init = %q, want unhealthy", got.Status)
	}

	if err := m.Init(context.Background(), plugin.Dependencies{Logger: zap.NewNop()}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if got := m.Health(context.Background()); got.Status != "healthy" {
		t.Errorf("Health() after Init = %q, want healthy", got.Status)
	}
}

func TestRoutes(t *testing.T) {
	m := New()
	if err := m.Init(context.Background(), plugin.Dependencies{Logger: zap.NewNop()}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	routes := m.Routes()
	want := map[string]bool{
		"POST /simulate":  false,
		"POST /benchmark": false,
		"POST /optimize":  false,
		"POST /volume":    false,
	}
	for _, r := range routes {
		key := r.Method + " " + r.Path
		if _, ok := want[key]; !ok {
			t.Errorf("unexpected route %s", key)
			continue
		}
		want[key] = true
		if r.Handler == nil {
			t.Errorf("route %s has nil handler", key)
		}
	}
	for key, seen := range want {
		if !seen {
			t.Errorf("missing route %s", key)
		}
	}
}
