package demo

import "fmt"

// DemoConfig holds configuration for the demo data plugin.
type DemoConfig struct {
	DefaultHistoryHours int `mapstructure:"default_history_hours"` // Used when a request omits hours
	MaxHistoryHours     int `mapstructure:"max_history_hours"`     // Upper bound accepted by the API
}

// DefaultConfig returns sensible defaults for the demo module.
func DefaultConfig() DemoConfig {
	return DemoConfig{
		DefaultHistoryHours: 48,
		MaxHistoryHours:     720,
	}
}

// Validate checks configuration bounds.
func (c DemoConfig) Validate() error {
	if c.DefaultHistoryHours < 1 {
		return fmt.Errorf("default_history_hours must be >= 1, got %d", c.DefaultHistoryHours)
	}
	if c.MaxHistoryHours < c.DefaultHistoryHours {
		return fmt.Errorf("max_history_hours must be >= default_history_hours, got %d", c.MaxHistoryHours)
	}
	return nil
}
