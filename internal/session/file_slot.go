// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/jeranaias/pokedex-tui/internal/util"
)

// FileSlot stores the value in a single file with owner-only permissions.
type FileSlot struct {
	path string
}

// NewFileSlot creates a file-backed slot. The file is not touched until
// the first Put.
func NewFileSlot(path string) *FileSlot {
	return &FileSlot{path: path}
}

// Path returns the backing file.
func (f *FileSlot) Path() string { return f.path }

// Get reads the file. A missing or blank file is an empty slot.
func (f *FileSlot) Get(context.Context) (string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrSlotEmpty
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session file: %w", err)
	}
	value := strings.TrimSpace(string(data))
	if value == "" {
		return "", ErrSlotEmpty
	}
	return value, nil
}

// Put writes the value atomically so a crash never leaves a torn token.
func (f *FileSlot) Put(_ context.Context, value string) error {
	if err := util.AtomicWriteFile(f.path, []byte(value), 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Delete removes the file.
func (f *FileSlot) Delete(context.Context) error {
	if err := util.RemoveIfExists(f.path); err != nil {
		return fmt.Errorf("failed to delete session file: %w", err)
	}
	return nil
}

func (f *FileSlot) Close() error { return nil }
