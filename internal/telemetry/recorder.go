// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package telemetry

import (
	"sync"
	"time"
)

// Event names a counted occurrence.
type Event string

const (
	// EventLogin is a successful login.
	EventLogin Event = "login"
	// EventLogout is a user-initiated logout.
	EventLogout Event = "logout"
	// EventExpired is a logout forced by a rejected credential.
	EventExpired Event = "expired"
	// EventRedirect is a guarded navigation rerouted to login.
	EventRedirect Event = "redirect"
	// EventFetchOK is a protected fetch that delivered data.
	EventFetchOK Event = "fetch_ok"
	// EventFetchError is a protected fetch surfaced as an inline error.
	EventFetchError Event = "fetch_error"
	// EventFetchStale is a completion dropped because its view was gone.
	EventFetchStale Event = "fetch_stale"
)

// =============================================================================
// RECORDER
// =============================================================================

// Recorder accumulates event counts. A nil *Recorder ignores everything,
// so callers never need to check.
type Recorder struct {
	mu      sync.Mutex
	pending map[Event]int
	total   map[Event]int
	storage *Storage
	now     func() time.Time
}

// NewRecorder creates a recorder. storage may be nil for memory-only use.
func NewRecorder(storage *Storage) *Recorder {
	return &Recorder{
		pending: make(map[Event]int),
		total:   make(map[Event]int),
		storage: storage,
		now:     time.Now,
	}
}

// Record counts one occurrence of e.
func (r *Recorder) Record(e Event) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending[e]++
	r.total[e]++
}

// Count returns how many times e was recorded by this process.
func (r *Recorder) Count(e Event) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.total[e]
}

// Counts returns a copy of every counter recorded by this process.
func (r *Recorder) Counts() map[Event]int {
	out := make(map[Event]int)
	if r == nil {
		return out
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, v := range r.total {
		out[k] = v
	}
	return out
}

// Flush adds unflushed counts to today's stored record.
func (r *Recorder) Flush() error {
	if r == nil || r.storage == nil {
		return nil
	}

	r.mu.Lock()
	if len(r.pending) == 0 {
		r.mu.Unlock()
		return nil
	}
	delta := r.pending
	r.pending = make(map[Event]int)
	day := r.now()
	r.mu.Unlock()

	if err := r.storage.Add(day, delta); err != nil {
		// Put the counts back so a later flush can retry.
		r.mu.Lock()
		for k, v := range delta {
			r.pending[k] += v
		}
		r.mu.Unlock()
		return err
	}
	return nil
}

// Events returns the known event names in display order.
func Events() []Event {
	return []Event{
		EventLogin, EventLogout, EventExpired, EventRedirect,
		EventFetchOK, EventFetchError, EventFetchStale,
	}
}
