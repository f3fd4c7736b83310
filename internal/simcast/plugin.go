package simcast

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

// Module implements the Simcast prediction plugin: queue-network simulation,
// staffing suggestions, and baseline-vs-optimized benchmarking.
type Module struct {
	logger *zap.Logger
	cfg    SimcastConfig
	engine *Engine
	bus    plugin.EventBus
}

// New creates a new Simcast plugin instance.
func New() *Module {
	return &Module{}
}

func (m *Module) Info() plugin.PluginInfo {
	return plugin.PluginInfo{
		Name:        "simcast",
		Version:     "0.1.0",
		Description: "Predictive queue simulation and staffing recommendations",
		Required:    true,
		APIVersion:  plugin.APIVersionCurrent,
	}
}

func (m *Module) Init(_ context.Context, deps plugin.Dependencies) error {
	m.logger = deps.Logger

	m.cfg = DefaultConfig()
	if deps.Config != nil {
		if err := deps.Config.Unmarshal(&m.cfg); err != nil {
			return fmt.Errorf("unmarshal simcast config: %w", err)
		}
	}

	m.engine = NewEngine(m.cfg, m.logger)
	m.bus = deps.Bus

	m.logger.Info("simcast module initialized",
		zap.Float64("smoothing_alpha", m.cfg.SmoothingAlpha),
		zap.Float64("flow_rate", m.cfg.FlowRate),
		zap.Float64("noise_sigma", m.cfg.NoiseSigma),
		zap.Int("max_forecast_hours", m.cfg.MaxForecastHours),
	)
	return nil
}

func (m *Module) Start(_ context.Context) error {
	m.logger.Info("simcast module started")
	return nil
}

func (m *Module) Stop(_ context.Context) error {
	m.logger.Info("simcast module stopped")
	return nil
}

// ValidateConfig implements plugin.Validator.
func (m *Module) ValidateConfig() error {
	return m.cfg.Validate()
}

// Health implements plugin.HealthChecker. The engine is stateless, so the
// module is healthy whenever it is initialized.
func (m *Module) Health(_ context.Context) plugin.HealthStatus {
	if m.engine == nil {
		return plugin.HealthStatus{Status: "unhealthy", Message: "engine not initialized"}
	}
	return plugin.HealthStatus{
		Status: "healthy",
		Details: map[string]string{
			"max_forecast_hours": fmt.Sprintf("%d", m.cfg.MaxForecastHours),
		},
	}
}
