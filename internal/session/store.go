// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/jeranaias/pokedex-tui/internal/logging"
	"github.com/jeranaias/pokedex-tui/internal/util"
)

// ErrInvalidCredential is returned by SetSession for an empty token.
var ErrInvalidCredential = errors.New("invalid credential: token must not be empty")

// slotTimeout bounds each slot operation made on behalf of a caller that
// has no context of its own.
const slotTimeout = 5 * time.Second

// =============================================================================
// SESSION STORE
// =============================================================================

// Store is the single source of truth for the client's credential.
// The zero value is not usable; create one with NewStore.
type Store struct {
	mu sync.Mutex

	slot  Slot
	token string

	initialized bool
	initErr     error

	log *slog.Logger
}

// NewStore creates an unauthenticated store backed by slot. Call
// Initialize to load a persisted credential.
func NewStore(slot Slot) *Store {
	return &Store{
		slot: slot,
		log:  logging.Get("session"),
	}
}

// Initialize reads the persisted slot once. Later calls return the result
// of the first call without touching the slot. A read error leaves the
// store unauthenticated.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return s.initErr
	}
	s.initialized = true

	value, err := s.slot.Get(ctx)
	switch {
	case errors.Is(err, ErrSlotEmpty):
		s.log.Debug("no persisted session")
	case err != nil:
		s.initErr = fmt.Errorf("read session slot: %w", err)
		s.log.Warn("session slot unreadable", "error", err)
	case strings.TrimSpace(value) == "":
		s.log.Debug("no persisted session")
	default:
		s.token = strings.TrimSpace(value)
		s.log.Info("session restored", "token", util.Fingerprint(s.token))
	}
	return s.initErr
}

// HasSession reports whether a credential is held.
func (s *Store) HasSession() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}

// Token returns the current credential, or "" when there is none.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// SetSession persists token and marks the store authenticated. If the
// slot write fails the store is left as it was.
func (s *Store) SetSession(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		s.log.Error("SetSession called with empty token")
		return ErrInvalidCredential
	}

	ctx, cancel := context.WithTimeout(context.Background(), slotTimeout)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.slot.Put(ctx, token); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	s.token = token
	s.initialized = true
	s.log.Info("session stored", "token", util.Fingerprint(token))
	return nil
}

// ClearSession removes the persisted credential and marks the store
// unauthenticated. It always succeeds; a slot failure is logged and the
// in-memory state is cleared regardless.
func (s *Store) ClearSession() {
	ctx, cancel := context.WithTimeout(context.Background(), slotTimeout)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.slot.Delete(ctx); err != nil {
		s.log.Warn("failed to delete persisted session", "error", err)
	}
	if s.token != "" {
		s.log.Info("session cleared", "token", util.Fingerprint(s.token))
	}
	s.token = ""
}

// Close releases the slot backend.
func (s *Store) Close() error {
	return s.slot.Close()
}
