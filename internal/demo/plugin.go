// Package demo serves mock operational data: a current-state snapshot and
// synthetic history. A deployment against a real data source disables this
// plugin and supplies states from its own system of record.
package demo

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/HerbHall/flowsight/pkg/plugin"
)

// Compile-time interface guards.
var (
	_ plugin.Plugin        = (*Module)(nil)
	_ plugin.HTTPProvider  = (*Module)(nil)
	_ plugin.HealthChecker = (*Module)(nil)
	_ plugin.Validator     = (*Module)(nil)
)

// Module implements the demo data plugin.
type Module struct {
	logger *zap.Logger
	cfg    DemoConfig
}

// New creates a new demo plugin instance.
func New() *Module {
	return &Module{}
}

func (m *Module) Info() plugin.PluginInfo {
	return plugin.PluginInfo{
		Name:        "demo",
		Version:     "0.1.0",
		Description: "Mock operational state and synthetic history",
		Required:    false,
		APIVersion:  plugin.APIVersionCurrent,
	}
}

func (m *Module) Init(_ context.Context, deps plugin.Dependencies) error {
	m.logger = deps.Logger

	m.cfg = DefaultConfig()
	if deps.Config != nil {
		if err := deps.Config.Unmarshal(&m.cfg); err != nil {
			return fmt.Errorf("unmarshal demo config: %w", err)
		}
	}

	m.logger.Info("demo module initialized",
		zap.Int("default_history_hours", m.cfg.DefaultHistoryHours))
	return nil
}

func (m *Module) Start(_ context.Context) error {
	m.logger.Info("demo module started")
	return nil
}

func (m *Module) Stop(_ context.Context) error {
	m.logger.Info("demo module stopped")
	return nil
}

// ValidateConfig implements plugin.Validator.
func (m *Module) ValidateConfig() error {
	return m.cfg.Validate()
}

// Health implements plugin.HealthChecker.
func (m *Module) Health(_ context.Context) plugin.HealthStatus {
	return plugin.HealthStatus{Status: "healthy"}
}
