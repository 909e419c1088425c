// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package telemetry

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jeranaias/pokedex-tui/internal/util"
)

const dayLayout = "20060102"

// DailyCounts is the persisted record for one calendar day.
type DailyCounts struct {
	Date    string        `json:"date"`
	Counts  map[Event]int `json:"counts"`
	Updated time.Time     `json:"updated"`
}

// =============================================================================
// STORAGE
// =============================================================================

// Storage persists daily counters as <dir>/<yyyymmdd>.json.
type Storage struct {
	mu  sync.Mutex
	dir string
}

// NewStorage creates the storage directory. An empty dir means
// ~/.pokedex/telemetry.
func NewStorage(dir string) (*Storage, error) {
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(homeDir, ".pokedex", "telemetry")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create telemetry directory: %w", err)
	}
	return &Storage{dir: dir}, nil
}

// Dir returns the storage directory.
func (s *Storage) Dir() string { return s.dir }

func (s *Storage) path(date string) string {
	return filepath.Join(s.dir, date+".json")
}

// Load returns the record for day; a missing file gives an empty record.
func (s *Storage) Load(day time.Time) (*DailyCounts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(day.Format(dayLayout))
}

func (s *Storage) load(date string) (*DailyCounts, error) {
	rec := &DailyCounts{Date: date, Counts: make(map[Event]int)}

	data, err := os.ReadFile(s.path(date))
	if errors.Is(err, fs.ErrNotExist) {
		return rec, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("corrupt telemetry file %s: %w", date, err)
	}
	if rec.Counts == nil {
		rec.Counts = make(map[Event]int)
	}
	return rec, nil
}

// Add merges delta into the record for day.
func (s *Storage) Add(day time.Time, delta map[Event]int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	date := day.Format(dayLayout)
	rec, err := s.load(date)
	if err != nil {
		return err
	}
	for k, v := range delta {
		rec.Counts[k] += v
	}
	rec.Updated = day

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	return util.AtomicWriteFile(s.path(date), data, 0600)
}

// List returns the stored dates within [from, to], oldest first.
func (s *Storage) List(from, to time.Time) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	lo := from.Format(dayLayout)
	hi := to.Format(dayLayout)

	var dates []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		date := strings.TrimSuffix(name, ".json")
		if _, err := time.Parse(dayLayout, date); err != nil {
			continue // not ours
		}
		if date < lo || date > hi {
			continue
		}
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates, nil
}

// Totals sums every stored day within [from, to].
func (s *Storage) Totals(from, to time.Time) (map[Event]int, error) {
	dates, err := s.List(from, to)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[Event]int)
	for _, d := range dates {
		rec, err := s.load(d)
		if err != nil {
			continue
		}
		for k, v := range rec.Counts {
			out[k] += v
		}
	}
	return out, nil
}

// DeleteBefore removes records older than before.
func (s *Storage) DeleteBefore(before time.Time) error {
	dates, err := s.List(time.Time{}, before.AddDate(0, 0, -1))
	if err != nil {
		return err
	}
	for _, d := range dates {
		_ = util.RemoveIfExists(s.path(d))
	}
	return nil
}
