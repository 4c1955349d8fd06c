// Package config resolves process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// DefaultGyms seeds the setup picker when CRUXLOG_GYMS is unset.
var DefaultGyms = []string{
	"Summit Bouldering",
	"The Circuit",
	"Stone Gardens",
	"Cascade Crags",
}

// Config holds the environment-driven settings.
type Config struct {
	// DBPath overrides the XDG-resolved SQLite path.
	DBPath string `env:"CRUXLOG_DB"`

	// Gyms is the comma-separated facility list offered at session setup.
	// Free-text entry is always available regardless of this list.
	Gyms []string `env:"CRUXLOG_GYMS" envSeparator:","`
}

// Load parses the environment and applies defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if len(cfg.Gyms) == 0 {
		cfg.Gyms = DefaultGyms
	}
	return cfg, nil
}
