package server

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the server configuration.
type Config struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Addr returns the listen address as host:port.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(configPath string) (*viper.Viper, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors_origin", "*")
	v.SetDefault("server.rate_limit_rps", 100)
	v.SetDefault("server.rate_limit_burst", 200)
	v.SetDefault("server.dev_mode", false)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	// Plugin defaults
	v.SetDefault("plugins.simcast.enabled", true)
	v.SetDefault("plugins.simcast.smoothing_alpha", 0.3)
	v.SetDefault("plugins.simcast.flow_rate", 0.3)
	v.SetDefault("plugins.simcast.noise_sigma", 0.15)
	v.SetDefault("plugins.simcast.base_efficiency", 0.85)
	v.SetDefault("plugins.simcast.max_forecast_hours", 168)
	v.SetDefault("plugins.simcast.optimize_horizon_hours", 4)
	v.SetDefault("plugins.simcast.max_benchmark_changes", 3)
	v.SetDefault("plugins.demo.enabled", true)
	v.SetDefault("plugins.demo.default_history_hours", 48)
	v.SetDefault("plugins.demo.max_history_hours", 720)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("flowsight")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/flowsight")
	}

	// Environment variable support: FS_SERVER_PORT=9090
	v.SetEnvPrefix("FS")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Config file not found is fine -- use defaults
	}

	return v, nil
}
