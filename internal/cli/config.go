// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config.go - config command.
//
// Examples:
//
//	pokedex config           Print the effective configuration as TOML
//	pokedex config path      Print the config file location
package cli

import (
	"fmt"

	"github.com/jeranaias/pokedex-tui/internal/config"
)

// HandleConfig prints the effective configuration or its path.
func HandleConfig(rt *Runtime, args Args) error {
	switch args.Subcommand {
	case "", "show":
		data, err := rt.Config.Encode()
		if err != nil {
			return &ConfigError{Err: err}
		}
		_, err = rt.Out.Write(data)
		return err

	case "path":
		path, err := config.PathTOML()
		if err != nil {
			return &ConfigError{Err: err}
		}
		fmt.Fprintln(rt.Out, path)
		return nil

	default:
		return &UsageError{
			Reason:  fmt.Sprintf("unknown config subcommand %q", args.Subcommand),
			Example: "pokedex config show",
		}
	}
}
