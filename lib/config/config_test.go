// Copyright 2026 The Food Wallet Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// writeConfig writes a config file into a temp directory and returns
// its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "foodwallet.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultIsComplete(t *testing.T) {
	cfg := Default()
	if cfg.Backend.BaseURL == "" {
		t.Error("default base URL should be set")
	}
	if cfg.Backend.RequestTimeout != 15*time.Second {
		t.Errorf("default timeout = %v, want 15s", cfg.Backend.RequestTimeout)
	}
	if cfg.UI.Theme != "auto" {
		t.Errorf("default theme = %q, want auto", cfg.UI.Theme)
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
environment: development
backend:
  base_url: http://pantry.example:3000
  request_timeout: 5s
ui:
  theme: dark
log_level: debug
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Backend.BaseURL != "http://pantry.example:3000" {
		t.Errorf("BaseURL = %q", cfg.Backend.BaseURL)
	}
	if cfg.Backend.RequestTimeout != 5*time.Second {
		t.Errorf("RequestTimeout = %v, want 5s", cfg.Backend.RequestTimeout)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("Theme = %q, want dark", cfg.UI.Theme)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	path := writeConfig(t, `
environment: staging
backend:
  base_url: http://localhost:3000
staging:
  backend:
    base_url: http://staging.pantry.example:3000
  ui:
    theme: light
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Backend.BaseURL != "http://staging.pantry.example:3000" {
		t.Errorf("BaseURL = %q, want the staging override", cfg.Backend.BaseURL)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("Theme = %q, want light", cfg.UI.Theme)
	}
}

func TestOverridesForOtherEnvironmentIgnored(t *testing.T) {
	path := writeConfig(t, `
environment: development
backend:
  base_url: http://localhost:3000
production:
  backend:
    base_url: http://prod.pantry.example:3000
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Backend.BaseURL != "http://localhost:3000" {
		t.Errorf("BaseURL = %q, production section should not apply", cfg.Backend.BaseURL)
	}
}

func TestInvalidThemeRejected(t *testing.T) {
	path := writeConfig(t, `
ui:
  theme: sepia
`)
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for unknown theme")
	}
}

func TestMissingFileRejected(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadWithoutEnvUsesDefaults(t *testing.T) {
	t.Setenv("FOODWALLET_CONFIG", "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend.BaseURL != Default().Backend.BaseURL {
		t.Errorf("BaseURL = %q, want the default", cfg.Backend.BaseURL)
	}
}
