// Package config loads gobounds settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Output formats understood by the report commands.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config holds defaults that command-line flags may override.
type Config struct {
	Precision     int           `env:"GOBOUNDS_PRECISION" envDefault:"6"`
	Format        string        `env:"GOBOUNDS_FORMAT" envDefault:"text"`
	Padding       float64       `env:"GOBOUNDS_PADDING" envDefault:"0"`
	WatchDebounce time.Duration `env:"GOBOUNDS_WATCH_DEBOUNCE" envDefault:"250ms"`
}

// Load reads the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that env parsing cannot.
func (c Config) Validate() error {
	if c.Precision < 0 || c.Precision > 17 {
		return fmt.Errorf("precision %d out of range 0-17", c.Precision)
	}
	switch c.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if c.WatchDebounce < 0 {
		return fmt.Errorf("watch debounce must not be negative")
	}
	return nil
}
