// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package telemetry counts session and fetch events for pokedex.
//
// Counters live in memory and are flushed to one JSON file per day under
// ~/.pokedex/telemetry/. Nothing leaves the machine.
//
// # Key Types
//
//   - Recorder: in-memory event counters, nil-safe
//   - Storage: per-day JSON persistence
//   - DailyCounts: the persisted record for one day
//
// # Usage
//
//	storage, _ := telemetry.NewStorage("")
//	rec := telemetry.NewRecorder(storage)
//	rec.Record(telemetry.EventExpired)
//	defer rec.Flush()
package telemetry
