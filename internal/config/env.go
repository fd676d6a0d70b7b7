// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the process-level configuration, read from the environment once
// at startup and passed explicitly to every component.
type Config struct {
	APIKey   string        `env:"FBCTL_API_KEY"`
	BaseURL  string        `env:"FBCTL_API_URL" envDefault:"https://api.sportsdata.io/v3"`
	CacheDir string        `env:"FBCTL_CACHE_DIR"`
	CacheTTL time.Duration `env:"FBCTL_CACHE_TTL" envDefault:"12h"`
	Season   int           `env:"FBCTL_SEASON"`
}

// FromEnv loads configuration from environment variables and fills in the
// defaults that can't be expressed as tags. It does not require the API key;
// call Validate before anything that talks to the upstream API.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.CacheDir == "" {
		if dir, err := os.UserCacheDir(); err == nil && dir != "" {
			cfg.CacheDir = filepath.Join(dir, "fbctl")
		} else {
			cfg.CacheDir = filepath.Join(os.TempDir(), "fbctl")
		}
	}

	if cfg.Season == 0 {
		cfg.Season = time.Now().Year()
	}

	return cfg, nil
}

// Validate checks the parts of the configuration that fetching depends on.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("FBCTL_API_KEY is not set; an API key is required to fetch schedules")
	}
	return nil
}
