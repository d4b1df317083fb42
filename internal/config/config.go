package config

import (
	"os"
	"strconv"

	"gobayes/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Engine EngineConfig
	Server ServerConfig
}

// EngineConfig holds the numeric engine settings
type EngineConfig struct {
	GridSize  int // parameter grid cardinality
	MCSamples int // Monte Carlo sample count for simulated events
	Seed      int64
}

// ServerConfig holds web server settings
type ServerConfig struct {
	APIPort    string
	ReportPort string
	GinMode    string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Engine: EngineConfig{
			GridSize:  getEnvIntOrDefault("GRID_SIZE", 500),
			MCSamples: getEnvIntOrDefault("MC_SAMPLES", 100_000),
			Seed:      getEnvInt64OrDefault("SEED", 0),
		},
		Server: ServerConfig{
			APIPort:    getEnvOrDefault("PORT", "8080"),
			ReportPort: getEnvOrDefault("REPORT_PORT", "8081"),
			GinMode:    getEnvOrDefault("GIN_MODE", "release"),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Engine.GridSize < 2 {
		return errors.ConfigInvalid("GRID_SIZE must be at least 2")
	}
	if cfg.Engine.MCSamples < 1 {
		return errors.ConfigInvalid("MC_SAMPLES must be at least 1")
	}
	if cfg.Server.APIPort == "" {
		return errors.ConfigInvalid("PORT is required")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
