package simcast

import "fmt"

// SimcastConfig holds configuration for the simulation engine plugin.
type SimcastConfig struct {
	SmoothingAlpha       float64 `mapstructure:"smoothing_alpha"`        // Volume forecast level smoothing (0-1]
	FlowRate             float64 `mapstructure:"flow_rate"`              // Fraction of upstream backlog handed downstream per hour
	NoiseSigma           float64 `mapstructure:"noise_sigma"`            // Stddev of the hourly demand perturbation (0 disables)
	BaseEfficiency       float64 `mapstructure:"base_efficiency"`        // Throughput efficiency at complexity 1.0
	MaxForecastHours     int     `mapstructure:"max_forecast_hours"`     // Upper bound accepted by the API
	OptimizeHorizonHours int     `mapstructure:"optimize_horizon_hours"` // Quick-forecast horizon for /optimize
	MaxBenchmarkChanges  int     `mapstructure:"max_benchmark_changes"`  // Suggested changes applied in benchmark mode
}

// DefaultConfig returns sensible defaults for the simcast module.
func DefaultConfig() SimcastConfig {
	return SimcastConfig{
		SmoothingAlpha:       0.3,
		FlowRate:             0.3,
		NoiseSigma:           0.15,
		BaseEfficiency:       0.85,
		MaxForecastHours:     168,
		OptimizeHorizonHours: 4,
		MaxBenchmarkChanges:  3,
	}
}

// Validate checks configuration bounds.
func (c SimcastConfig) Validate() error {
	if c.SmoothingAlpha <= 0 || c.SmoothingAlpha > 1 {
		return fmt.Errorf("smoothing_alpha must be in (0, 1], got %v", c.SmoothingAlpha)
	}
	if c.FlowRate <= 0 || c.FlowRate > 1 {
		return fmt.Errorf("flow_rate must be in (0, 1], got %v", c.FlowRate)
	}
	if c.NoiseSigma < 0 {
		return fmt.Errorf("noise_sigma must be >= 0, got %v", c.NoiseSigma)
	}
	if c.BaseEfficiency <= 0 || c.BaseEfficiency > 1 {
		return fmt.Errorf("base_efficiency must be in (0, 1], got %v", c.BaseEfficiency)
	}
	if c.MaxForecastHours < 1 {
		return fmt.Errorf("max_forecast_hours must be >= 1, got %d", c.MaxForecastHours)
	}
	if c.OptimizeHorizonHours < 1 {
		return fmt.Errorf("optimize_horizon_hours must be >= 1, got %d", c.OptimizeHorizonHours)
	}
	if c.MaxBenchmarkChanges < 0 {
		return fmt.Errorf("max_benchmark_changes must be >= 0, got %d", c.MaxBenchmarkChanges)
	}
	return nil
}
