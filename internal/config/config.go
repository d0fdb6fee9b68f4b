// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the server configuration. JWTSecret has no default on
// purpose: token signing must never fall back to a compiled-in value.
type Config struct {
	Port          int           `env:"PORT" envDefault:"8080"`
	DBPath        string        `env:"DB_PATH" envDefault:"./data/tripmate.db"`
	JWTSecret     string        `env:"JWT_SECRET,required"`
	TokenDuration time.Duration `env:"TOKEN_DURATION" envDefault:"24h"`
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
