// Copyright 2026 The Food Wallet Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for local development machines.
	Development Environment = "development"
	// Staging is for pre-production testing.
	Staging Environment = "staging"
	// Production is for production deployments.
	Production Environment = "production"
)

// Config is the client configuration.
type Config struct {
	// Environment identifies the deployment type.
	Environment Environment `yaml:"environment"`

	// Backend configures the gateway connection.
	Backend BackendConfig `yaml:"backend"`

	// UI configures display behavior.
	UI UIConfig `yaml:"ui"`

	// LogLevel is the minimum slog level: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Per-environment overrides, applied after the base config loads.
	Development *Overrides `yaml:"development,omitempty"`
	Staging     *Overrides `yaml:"staging,omitempty"`
	Production  *Overrides `yaml:"production,omitempty"`
}

// Overrides contains fields that can be overridden per environment.
type Overrides struct {
	Backend *BackendConfig `yaml:"backend,omitempty"`
	UI      *UIConfig      `yaml:"ui,omitempty"`
}

// BackendConfig configures the gateway connection.
type BackendConfig struct {
	// BaseURL is the backend address, for example
	// "http://localhost:3000". All endpoints hang off this base.
	BaseURL string `yaml:"base_url"`

	// RequestTimeout bounds each individual backend call.
	// Default: 15s.
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// UIConfig configures display behavior.
type UIConfig struct {
	// Theme selects the starting palette: "auto" (detect from the
	// terminal background), "light", or "dark". Default: auto.
	Theme string `yaml:"theme"`
}

// Default returns the built-in configuration. Unlike server-side
// components the client runs fine with no config file at all, so these
// defaults are a complete working configuration.
func Default() *Config {
	return &Config{
		Environment: Development,
		Backend: BackendConfig{
			BaseURL:        "http://localhost:3000",
			RequestTimeout: 15 * time.Second,
		},
		UI: UIConfig{
			Theme: "auto",
		},
		LogLevel: "warn",
	}
}

// Load loads configuration from the FOODWALLET_CONFIG environment
// variable, falling back to defaults when it is unset.
func Load() (*Config, error) {
	configPath := os.Getenv("FOODWALLET_CONFIG")
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path. The config
// file is the single source of truth: environment variables do not
// override its values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.applyEnvironmentOverrides()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// applyEnvironmentOverrides applies the section matching Environment.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *Overrides
	switch c.Environment {
	case Development:
		overrides = c.Development
	case Staging:
		overrides = c.Staging
	case Production:
		overrides = c.Production
	}
	if overrides == nil {
		return
	}
	if overrides.Backend != nil {
		if overrides.Backend.BaseURL != "" {
			c.Backend.BaseURL = overrides.Backend.BaseURL
		}
		if overrides.Backend.RequestTimeout != 0 {
			c.Backend.RequestTimeout = overrides.Backend.RequestTimeout
		}
	}
	if overrides.UI != nil {
		if overrides.UI.Theme != "" {
			c.UI.Theme = overrides.UI.Theme
		}
	}
}

// validate rejects configurations that cannot work.
func (c *Config) validate() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("backend.base_url must not be empty")
	}
	switch c.UI.Theme {
	case "auto", "light", "dark":
	default:
		return fmt.Errorf("ui.theme must be auto, light, or dark, got %q", c.UI.Theme)
	}
	switch c.Environment {
	case Development, Staging, Production:
	default:
		return fmt.Errorf("environment must be development, staging, or production, got %q", c.Environment)
	}
	return nil
}
