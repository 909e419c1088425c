// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session owns the client's single credential.
//
// A Store answers "does the client currently hold a credential" and keeps
// the answer in sync with a persisted Slot. The store never validates the
// token; the API rejects stale tokens and the navigation layer clears the
// store in response.
//
// # Key Types
//
//   - Store: the process-wide session, created once and injected
//   - Slot: a single persisted string value
//   - FileSlot, SQLiteSlot, RedisSlot, MemorySlot: slot backends
//
// # Usage
//
//	slot, err := session.OpenSlot(cfg)
//	if err != nil {
//	    return err
//	}
//	store := session.NewStore(slot)
//	if err := store.Initialize(ctx); err != nil {
//	    log.Warn("session unreadable", "error", err)
//	}
//	if store.HasSession() {
//	    // token available via store.Token()
//	}
package session
