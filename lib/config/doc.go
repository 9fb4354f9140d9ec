// Copyright 2026 The Food Wallet Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the Food Wallet
// client.
//
// Configuration is loaded from a single file specified by:
//   - FOODWALLET_CONFIG environment variable, or
//   - --config flag passed to the command
//
// There are no fallbacks or automatic discovery; running with no file
// at all uses the built-in defaults. The config file may contain
// environment-specific sections (development, staging, production)
// that override base values when the environment matches.
package config
