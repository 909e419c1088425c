// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli parses the pokedex command line and runs the non-interactive
// subcommands.
//
// # Usage
//
//	cmd, args := cli.Parse()
//	switch cmd {
//	case cli.CmdTUI:
//	    // start Bubble Tea
//	case cli.CmdStatus:
//	    err = cli.HandleStatus(ctx, rt, args)
//	}
//
// # Commands
//
//   - tui: interactive client (default)
//   - login: sign in from the terminal and store the token
//   - logout: clear the stored token
//   - status: session state and server counts
//   - config: show the effective configuration or its path
//   - version, help
//
// status and version accept --json.
package cli
