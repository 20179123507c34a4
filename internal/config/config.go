// Package config loads the shop's runtime settings from environment
// variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the demo binary's configuration.
type Config struct {
	// DataDir holds the durable storage files (the identity blob).
	DataDir string `env:"BOOKSHOP_DATA_DIR" envDefault:"./data"`
	// LoginDelay is the simulated auth round-trip latency.
	LoginDelay time.Duration `env:"BOOKSHOP_LOGIN_DELAY" envDefault:"800ms"`
	// FeaturedCount is how many books the home screen highlights.
	FeaturedCount int `env:"BOOKSHOP_FEATURED_COUNT" envDefault:"4"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
