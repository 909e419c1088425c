// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/pokedex-tui/internal/config"
	"github.com/jeranaias/pokedex-tui/internal/logging"
)

func TestStore_StartsUnauthenticated(t *testing.T) {
	s := NewStore(NewMemorySlot())
	require.NoError(t, s.Initialize(context.Background()))
	assert.False(t, s.HasSession())
	assert.Empty(t, s.Token())
}

func TestStore_InitializeRestoresPersistedToken(t *testing.T) {
	s := NewStore(NewMemorySlotWith("abc123"))
	require.NoError(t, s.Initialize(context.Background()))
	assert.True(t, s.HasSession())
	assert.Equal(t, "abc123", s.Token())
}

func TestStore_InitializeIgnoresBlankSlot(t *testing.T) {
	var buf bytes.Buffer
	_, err := logging.Configure(logging.Options{Writer: &buf, Level: "debug"})
	require.NoError(t, err)
	t.Cleanup(func() { logging.Configure(logging.Options{Output: "discard"}) })

	s := NewStore(NewMemorySlotWith("  \n"))
	require.NoError(t, s.Initialize(context.Background()))
	assert.False(t, s.HasSession())
	assert.Empty(t, s.Token())
	assert.Contains(t, buf.String(), "no persisted session")
	assert.NotContains(t, buf.String(), "session restored")
}

func TestStore_InitializeIsIdempotent(t *testing.T) {
	slot := NewMemorySlotWith("first")
	s := NewStore(slot)
	ctx := context.Background()

	require.NoError(t, s.Initialize(ctx))
	require.NoError(t, slot.Put(ctx, "changed-behind-our-back"))
	require.NoError(t, s.Initialize(ctx))

	assert.Equal(t, "first", s.Token(), "second Initialize must not re-read the slot")
}

func TestStore_SetSessionRejectsEmptyToken(t *testing.T) {
	s := NewStore(NewMemorySlot())
	for _, tok := range []string{"", "   ", "\n"} {
		err := s.SetSession(tok)
		assert.ErrorIs(t, err, ErrInvalidCredential)
	}
	assert.False(t, s.HasSession())
}

func TestStore_SetSessionPersists(t *testing.T) {
	slot := NewMemorySlot()
	s := NewStore(slot)

	require.NoError(t, s.SetSession("tok"))
	assert.True(t, s.HasSession())

	v, err := slot.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok", v)
}

func TestStore_ClearSessionIsIdempotent(t *testing.T) {
	slot := NewMemorySlot()
	s := NewStore(slot)
	require.NoError(t, s.SetSession("tok"))

	s.ClearSession()
	onceHas, onceTok := s.HasSession(), s.Token()
	_, onceErr := slot.Get(context.Background())

	s.ClearSession()
	assert.Equal(t, onceHas, s.HasSession())
	assert.Equal(t, onceTok, s.Token())
	_, twiceErr := slot.Get(context.Background())
	assert.Equal(t, onceErr, twiceErr)

	assert.False(t, s.HasSession())
	assert.ErrorIs(t, twiceErr, ErrSlotEmpty)
}

func TestStore_ClearWithoutSession(t *testing.T) {
	s := NewStore(NewMemorySlot())
	s.ClearSession()
	assert.False(t, s.HasSession())
}

// =============================================================================
// FILE SLOT
// =============================================================================

func TestFileSlot_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "session")
	slot := NewFileSlot(path)
	ctx := context.Background()

	_, err := slot.Get(ctx)
	assert.ErrorIs(t, err, ErrSlotEmpty)

	require.NoError(t, slot.Put(ctx, "secret"))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	v, err := slot.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "secret", v)

	require.NoError(t, slot.Delete(ctx))
	require.NoError(t, slot.Delete(ctx), "deleting twice is fine")
	_, err = slot.Get(ctx)
	assert.ErrorIs(t, err, ErrSlotEmpty)
}

func TestFileSlot_BlankFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0600))

	_, err := NewFileSlot(path).Get(context.Background())
	assert.ErrorIs(t, err, ErrSlotEmpty)
}

func TestStore_SurvivesRestartWithFileSlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session")

	first := NewStore(NewFileSlot(path))
	require.NoError(t, first.Initialize(context.Background()))
	require.NoError(t, first.SetSession("persisted"))

	second := NewStore(NewFileSlot(path))
	require.NoError(t, second.Initialize(context.Background()))
	assert.True(t, second.HasSession())
	assert.Equal(t, "persisted", second.Token())

	second.ClearSession()
	third := NewStore(NewFileSlot(path))
	require.NoError(t, third.Initialize(context.Background()))
	assert.False(t, third.HasSession())
}

// =============================================================================
// SQLITE SLOT
// =============================================================================

func TestSQLiteSlot_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	slot, err := OpenSQLiteSlot(path)
	require.NoError(t, err)
	defer slot.Close()
	ctx := context.Background()

	_, err = slot.Get(ctx)
	assert.ErrorIs(t, err, ErrSlotEmpty)

	require.NoError(t, slot.Put(ctx, "one"))
	require.NoError(t, slot.Put(ctx, "two"))
	v, err := slot.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "two", v)

	require.NoError(t, slot.Delete(ctx))
	require.NoError(t, slot.Delete(ctx))
	_, err = slot.Get(ctx)
	assert.ErrorIs(t, err, ErrSlotEmpty)
}

func TestSQLiteSlot_PersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	slot, err := OpenSQLiteSlot(path)
	require.NoError(t, err)
	require.NoError(t, slot.Put(context.Background(), "kept"))
	require.NoError(t, slot.Close())

	reopened, err := OpenSQLiteSlot(path)
	require.NoError(t, err)
	defer reopened.Close()

	s := NewStore(reopened)
	require.NoError(t, s.Initialize(context.Background()))
	assert.Equal(t, "kept", s.Token())
}

// =============================================================================
// BACKEND SELECTION
// =============================================================================

func TestOpenSlot_SelectsBackend(t *testing.T) {
	t.Setenv("POKEDEX_HOME", t.TempDir())

	tests := []struct {
		backend string
		check   func(t *testing.T, s Slot)
	}{
		{config.BackendMemory, func(t *testing.T, s Slot) { assert.IsType(t, &MemorySlot{}, s) }},
		{config.BackendFile, func(t *testing.T, s Slot) { assert.IsType(t, &FileSlot{}, s) }},
		{config.BackendSQLite, func(t *testing.T, s Slot) { assert.IsType(t, &SQLiteSlot{}, s) }},
		{config.BackendRedis, func(t *testing.T, s Slot) {
			require.IsType(t, &RedisSlot{}, s)
			assert.Equal(t, "pokedex:token", s.(*RedisSlot).Key())
		}},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			cfg := config.Default()
			cfg.Session.Backend = tt.backend
			slot, err := OpenSlot(cfg)
			require.NoError(t, err)
			defer slot.Close()
			tt.check(t, slot)
		})
	}
}

func TestOpenSlot_UnknownBackend(t *testing.T) {
	cfg := config.Default()
	cfg.Session.Backend = "etcd"
	_, err := OpenSlot(cfg)
	require.Error(t, err)
}

// failingSlot fails every operation.
type failingSlot struct{ err error }

func (f failingSlot) Get(context.Context) (string, error) {
	return "", f.err
}

func (f failingSlot) Put(context.Context, string) error {
	return f.err
}

func (f failingSlot) Delete(context.Context) error {
	return f.err
}

func (f failingSlot) Close() error {
	return nil
}

func TestStore_ReadErrorLeavesUnauthenticated(t *testing.T) {
	boom := errors.New("disk on fire")
	s := NewStore(failingSlot{err: boom})

	err := s.Initialize(context.Background())
	require.ErrorIs(t, err, boom)
	assert.False(t, s.HasSession())

	// Cached result on repeat.
	assert.ErrorIs(t, s.Initialize(context.Background()), boom)
}
