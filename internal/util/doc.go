// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared across the pokedex client.
//
// # Key Functions
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync, used by the
//     session file slot, the config saver and the telemetry store
//
// String Utilities:
//   - Truncate: display-width aware truncation with ellipsis
//   - PadRight: pad to a display width for column layouts
//   - Fingerprint: short SHA-256 fingerprint for logging secrets
//
// # Usage
//
//	// Write the session slot atomically
//	err := util.AtomicWriteFile(path, []byte(token), 0600)
//
//	// Fit a Pokémon name into a 14 column cell
//	cell := util.PadRight(util.Truncate(name, 14), 14)
package util
