// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestGet_TagsComponent(t *testing.T) {
	var buf bytes.Buffer
	c, err := Configure(Options{Writer: &buf, Level: "debug", JSON: true})
	require.NoError(t, err)
	defer c.Close()

	Get("nav").Debug("view changed", "to", "detail")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "nav", rec["logger"])
	assert.Equal(t, "view changed", rec["msg"])
	assert.Equal(t, "detail", rec["to"])
}

func TestConfigure_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	c, err := Configure(Options{Writer: &buf, Level: "warn"})
	require.NoError(t, err)
	defer c.Close()

	log := Get("api")
	log.Info("hidden")
	assert.Zero(t, buf.Len())

	log.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "logger=api")
}

func TestConfigure_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "pokedex.log")
	c, err := Configure(Options{Output: path})
	require.NoError(t, err)

	Get("session").Info("initialized", "authenticated", false)
	require.NoError(t, c.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "initialized")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestClose_FallsBackToDiscard(t *testing.T) {
	var buf bytes.Buffer
	_, err := Configure(Options{Writer: &buf})
	require.NoError(t, err)
	require.NoError(t, Close())

	Get("x").Error("dropped")
	assert.Zero(t, buf.Len())
}
