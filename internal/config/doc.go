// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for pokedex.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - APIConfig: Remote API location, timeout and rate limit
//   - SessionConfig: Session slot backend selection
//   - UIConfig: Terminal UI settings
//   - LogConfig: Structured logging destination and level
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Command line flags (applied by the cli package)
//   - Environment variables (POKEDEX_*), optionally read from ./.env
//   - ~/.pokedex/config.toml (directory overridable with POKEDEX_HOME)
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Access settings:
//
//	base := cfg.API.BaseURL
//	timeout := cfg.Timeout()
package config
