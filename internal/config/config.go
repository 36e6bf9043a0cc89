// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the process-level settings. The database path is left
// empty here when unset so the store can fall back to the XDG default.
type Config struct {
	DBPath   string `env:"ADAPTIQ_DB"`
	Grade    int    `env:"ADAPTIQ_GRADE" envDefault:"4"`
	LogMode  string `env:"ADAPTIQ_LOG_MODE" envDefault:"dev"`
	FamilyID string `env:"ADAPTIQ_FAMILY" envDefault:"default"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Grade < 0 || cfg.Grade > 12 {
		return Config{}, fmt.Errorf("ADAPTIQ_GRADE %d out of range", cfg.Grade)
	}
	return cfg, nil
}
