// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging configures structured logging for pokedex.
//
// Loggers are named per component (logging.Get("nav")) and share one
// output configured once at startup. The TUI owns the terminal, so the
// output is normally a file; tests and unconfigured runs discard records.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Options controls the shared log output.
type Options struct {
	// Output is "discard", "stderr", "stdout" or a file path
	Output string
	// Level is debug, info, warn or error
	Level string
	// JSON selects slog's JSON handler instead of text
	JSON bool
	// Writer, when set, takes precedence over Output
	Writer io.Writer
}

var (
	mu      sync.RWMutex
	handler slog.Handler = slog.NewTextHandler(io.Discard, nil)
	closer  io.Closer
	level   = new(slog.LevelVar)
)

// Configure installs the shared handler. The returned closer releases a
// log file if one was opened; it is safe to call on other outputs.
func Configure(opts Options) (io.Closer, error) {
	w := opts.Writer
	var file *os.File
	if w == nil {
		switch strings.ToLower(opts.Output) {
		case "", "discard":
			w = io.Discard
		case "stderr":
			w = os.Stderr
		case "stdout":
			w = os.Stdout
		default:
			if err := os.MkdirAll(filepath.Dir(opts.Output), 0700); err != nil {
				return nil, fmt.Errorf("create log directory: %w", err)
			}
			f, err := os.OpenFile(opts.Output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
			if err != nil {
				return nil, fmt.Errorf("open log file: %w", err)
			}
			file = f
			w = f
		}
	}

	level.Set(ParseLevel(opts.Level))
	hopts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if opts.JSON {
		h = slog.NewJSONHandler(w, hopts)
	} else {
		h = slog.NewTextHandler(w, hopts)
	}

	mu.Lock()
	prev := closer
	handler = h
	closer = nil
	if file != nil {
		closer = file
	}
	mu.Unlock()

	if prev != nil {
		_ = prev.Close()
	}
	slog.SetDefault(slog.New(h).With("logger", "default"))
	return closerFunc(Close), nil
}

// Close releases the log file, if any, and falls back to discarding.
func Close() error {
	mu.Lock()
	c := closer
	closer = nil
	handler = slog.NewTextHandler(io.Discard, nil)
	mu.Unlock()
	if c != nil {
		return c.Close()
	}
	return nil
}

// Get returns a logger tagged with the component name.
func Get(name string) *slog.Logger {
	mu.RLock()
	h := handler
	mu.RUnlock()
	return slog.New(h).With("logger", name)
}

// SetLevel changes the minimum level of every configured logger.
func SetLevel(s string) {
	level.Set(ParseLevel(s))
}

// ParseLevel maps a level name to slog; unknown names give info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
