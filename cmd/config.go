package cmd

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the application configuration, read from the environment. A
// main package may seed the environment from a .env file first.
type Config struct {
	// File is the portfolio file the commands load and save.
	File string `env:"FOLIO_FILE" envDefault:"portfolio.json"`
	// Currency is assigned to assets auto-registered by transactions.
	Currency string `env:"FOLIO_CURRENCY" envDefault:""`
	// Color controls markdown rendering: auto, dark, light or off.
	Color string `env:"FOLIO_COLOR" envDefault:"auto"`
}

// LoadConfig reads the configuration from the environment. On error it
// still returns a usable configuration with the defaults filled in.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return &Config{File: "portfolio.json", Color: "auto"}, fmt.Errorf("cannot parse environment: %w", err)
	}
	return cfg, nil
}
