// Package config provides configuration loading for the evaluation service.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the service configuration, read from the environment.
// DATABASE_URL is the only required setting; everything else has a default.
type Config struct {
	Port         int    // HTTP listen port
	DatabaseURL  string // PostgreSQL connection URL
	CriteriaPath string // Path to the evaluation criteria workbook
	LogoPath     string // Optional logo embedded in exported reports
	DataDir      string // Directory holding legacy JSON evaluations
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	port := 8502
	if portStr := os.Getenv("PORT"); portStr != "" {
		p, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		port = p
	}

	cfg := &Config{
		Port:         port,
		DatabaseURL:  databaseURL,
		CriteriaPath: envOrDefault("CRITERIA_PATH", "Evaluator Training Eval form.xlsx"),
		LogoPath:     os.Getenv("LOGO_PATH"),
		DataDir:      envOrDefault("DATA_DIR", "evaluation_data"),
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize validates the configuration.
func (c *Config) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}
	if c.CriteriaPath == "" {
		return fmt.Errorf("criteria path cannot be empty")
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
