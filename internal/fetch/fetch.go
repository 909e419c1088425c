// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package fetch is the shared protocol every protected view follows when
// it calls the API.
//
// A view starts a call with Run, which captures the controller generation.
// When the result comes back through the update loop the view passes it to
// Settle, which drops it if the view is gone, ends the session on a
// rejected credential, and turns other failures into a display message.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/pokedex-tui/internal/api"
	"github.com/jeranaias/pokedex-tui/internal/logging"
	"github.com/jeranaias/pokedex-tui/internal/telemetry"
)

// User-facing messages.
const (
	MsgConnectivity   = "Could not connect to the server"
	MsgInvalidFormat  = "Invalid data format"
	MsgLoadList       = "Error loading Pokémon"
	MsgLoadDetail     = "Error loading Pokémon details"
	MsgOperationError = "Something went wrong during the operation"
)

// Controller is the part of the navigation controller Settle needs.
type Controller interface {
	IsCurrent(gen uint64) bool
	ReportSessionExpired()
}

// Result is the message a Run command delivers.
type Result[T any] struct {
	// Key tells apart results of the same type, e.g. "catalog".
	Key   string
	Gen   uint64
	Value T
	Err   error
}

// Run wraps fn in a Bubble Tea command stamped with gen.
func Run[T any](ctx context.Context, gen uint64, key string, fn func(context.Context) (T, error)) tea.Cmd {
	return func() tea.Msg {
		v, err := fn(ctx)
		return Result[T]{Key: key, Gen: gen, Value: v, Err: err}
	}
}

// Outcome is what the view should do with a settled result.
type Outcome int

const (
	// Deliver means Value is good to show.
	Deliver Outcome = iota
	// Stale means the view that asked is gone; do nothing.
	Stale
	// Expired means the session was ended and the controller has moved
	// to home; show nothing.
	Expired
	// Failed means show the returned message inline.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Deliver:
		return "deliver"
	case Stale:
		return "stale"
	case Expired:
		return "expired"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Settler applies the protocol for one controller.
type Settler struct {
	ctrl      Controller
	telemetry *telemetry.Recorder
	log       *slog.Logger
}

// NewSettler creates a Settler. rec may be nil.
func NewSettler(ctrl Controller, rec *telemetry.Recorder) *Settler {
	return &Settler{ctrl: ctrl, telemetry: rec, log: logging.Get("fetch")}
}

// Settle classifies a result. fallback is the message for a failed load
// when nothing more specific applies.
func Settle[T any](s *Settler, res Result[T], fallback string) (Outcome, string) {
	if !s.ctrl.IsCurrent(res.Gen) {
		s.log.Debug("dropping stale result", "key", res.Key, "gen", res.Gen)
		s.telemetry.Record(telemetry.EventFetchStale)
		return Stale, ""
	}

	if res.Err == nil {
		s.telemetry.Record(telemetry.EventFetchOK)
		return Deliver, ""
	}

	if errors.Is(res.Err, api.ErrCredentialRejected) {
		s.log.Info("credential rejected during fetch", "key", res.Key)
		s.ctrl.ReportSessionExpired()
		return Expired, ""
	}

	s.telemetry.Record(telemetry.EventFetchError)
	s.log.Warn("fetch failed", "key", res.Key, "error", res.Err)
	return Failed, Message(res.Err, fallback)
}

// Message converts a recoverable error into display text.
func Message(err error, fallback string) string {
	var apiErr *api.APIError
	switch {
	case errors.Is(err, api.ErrConnectivity):
		return MsgConnectivity
	case errors.Is(err, api.ErrMalformedResponse):
		return MsgInvalidFormat
	case errors.As(err, &apiErr) && apiErr.Message != "":
		return fmt.Sprintf("%s: %s", fallback, apiErr.Message)
	default:
		return fallback
	}
}
