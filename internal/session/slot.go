// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jeranaias/pokedex-tui/internal/config"
)

// =============================================================================
// SLOT INTERFACE
// =============================================================================

// ErrSlotEmpty is returned by Get when nothing is stored.
var ErrSlotEmpty = errors.New("session slot is empty")

// Slot is a single persisted string value that survives restarts.
type Slot interface {
	// Get returns the stored value or ErrSlotEmpty.
	Get(ctx context.Context) (string, error)
	// Put replaces the stored value.
	Put(ctx context.Context, value string) error
	// Delete removes the value. Deleting an empty slot is not an error.
	Delete(ctx context.Context) error
	// Close releases backend resources.
	Close() error
}

// OpenSlot builds the slot backend selected by the configuration.
func OpenSlot(cfg *config.Config) (Slot, error) {
	switch cfg.Session.Backend {
	case config.BackendMemory:
		return NewMemorySlot(), nil
	case config.BackendRedis:
		return NewRedisSlot(RedisOptions{
			Addr:   cfg.Session.RedisAddr,
			DB:     cfg.Session.RedisDB,
			Prefix: cfg.Session.RedisPrefix,
		}), nil
	case config.BackendSQLite:
		path, err := cfg.SessionPath()
		if err != nil {
			return nil, err
		}
		return OpenSQLiteSlot(path)
	case config.BackendFile, "":
		path, err := cfg.SessionPath()
		if err != nil {
			return nil, err
		}
		return NewFileSlot(path), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
}

// =============================================================================
// MEMORY SLOT
// =============================================================================

// MemorySlot keeps the value in process memory. Used by tests and
// --ephemeral runs.
type MemorySlot struct {
	mu    sync.Mutex
	value string
	set   bool
}

// NewMemorySlot returns an empty in-memory slot.
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

// NewMemorySlotWith returns an in-memory slot pre-loaded with value.
func NewMemorySlotWith(value string) *MemorySlot {
	return &MemorySlot{value: value, set: true}
}

func (m *MemorySlot) Get(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return "", ErrSlotEmpty
	}
	return m.value, nil
}

func (m *MemorySlot) Put(_ context.Context, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value, m.set = value, true
	return nil
}

func (m *MemorySlot) Delete(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value, m.set = "", false
	return nil
}

func (m *MemorySlot) Close() error { return nil }
