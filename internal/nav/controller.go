// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package nav

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jeranaias/pokedex-tui/internal/logging"
	"github.com/jeranaias/pokedex-tui/internal/telemetry"
)

var (
	// ErrMissingParameter is returned when detail is requested without an id.
	ErrMissingParameter = errors.New("missing parameter: detail view requires an entity id")
	// ErrUnknownView is returned for a view name outside the guard table.
	ErrUnknownView = errors.New("unknown view")
)

// SessionStore is the part of the session the controller needs.
type SessionStore interface {
	HasSession() bool
	ClearSession()
}

// ChangeFunc observes transitions. It runs after the controller's lock is
// released, so it may call back into the controller.
type ChangeFunc func(old, new ViewState)

// Option configures a Controller.
type Option func(*Controller)

// WithTelemetry counts redirects, logins, logouts and expiries.
func WithTelemetry(r *telemetry.Recorder) Option {
	return func(c *Controller) { c.telemetry = r }
}

// =============================================================================
// CONTROLLER
// =============================================================================

// Controller owns the ViewState. All transitions go through Navigate,
// ReportLoginSuccess, ReportLogout, ReportSessionExpired or Back.
type Controller struct {
	mu sync.Mutex

	session   SessionStore
	state     ViewState
	gen       uint64
	observers []ChangeFunc

	telemetry *telemetry.Recorder
	log       *slog.Logger
}

// NewController starts on home with no detail context.
func NewController(session SessionStore, opts ...Option) *Controller {
	c := &Controller{
		session: session,
		state:   ViewState{Active: Home},
		log:     logging.Get("nav"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnChange registers an observer for every transition.
func (c *Controller) OnChange(fn ChangeFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

// CurrentView returns a copy of the current state.
func (c *Controller) CurrentView() ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Generation identifies the current view instance. It changes on every
// transition, including re-entering the same view.
func (c *Controller) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// IsCurrent reports whether gen still identifies the mounted view.
func (c *Controller) IsCurrent(gen uint64) bool {
	return c.Generation() == gen
}

// Navigate switches to target. A guarded target without a session is
// silently rerouted to login; the guard runs before params are looked at.
func (c *Controller) Navigate(target View, params ...Params) error {
	if !target.Valid() {
		c.log.Error("navigate to unknown view", "target", string(target))
		return fmt.Errorf("%w: %q", ErrUnknownView, target)
	}

	if target.RequiresSession() && !c.session.HasSession() {
		c.log.Info("guarded view without session, redirecting", "target", string(target))
		c.telemetry.Record(telemetry.EventRedirect)
		c.transition(func(ViewState) ViewState {
			return ViewState{Active: Login}
		})
		return nil
	}

	if target != Detail {
		c.transition(func(ViewState) ViewState {
			return ViewState{Active: target}
		})
		return nil
	}

	var p Params
	if len(params) > 0 {
		p = params[0]
	}
	if p.EntityID <= 0 {
		c.log.Error("navigate to detail without entity id")
		return ErrMissingParameter
	}

	c.transition(func(cur ViewState) ViewState {
		ret := cur.Active
		if cur.Active == Detail && cur.Detail != nil {
			ret = cur.Detail.ReturnView
		}
		return ViewState{
			Active: Detail,
			Detail: &DetailContext{EntityID: p.EntityID, ReturnView: ret},
		}
	})
	return nil
}

// Back leaves the current view: detail returns to where it was opened
// from, catalog and wishlist return to the dashboard, anything else goes
// home.
func (c *Controller) Back() error {
	cur := c.CurrentView()
	switch cur.Active {
	case Detail:
		ret := Dashboard
		if cur.Detail != nil {
			ret = cur.Detail.ReturnView
		}
		return c.Navigate(ret)
	case Catalog, Wishlist:
		return c.Navigate(Dashboard)
	default:
		return c.Navigate(Home)
	}
}

// ReportLoginSuccess lands on the dashboard. The caller has already
// stored the token.
func (c *Controller) ReportLoginSuccess() {
	c.telemetry.Record(telemetry.EventLogin)
	c.log.Info("login succeeded")
	c.transition(func(ViewState) ViewState {
		return ViewState{Active: Dashboard}
	})
}

// ReportLogout clears the session and goes home.
func (c *Controller) ReportLogout() {
	c.telemetry.Record(telemetry.EventLogout)
	c.log.Info("user logged out")
	c.endSession()
}

// ReportSessionExpired is ReportLogout triggered by a rejected credential.
func (c *Controller) ReportSessionExpired() {
	c.telemetry.Record(telemetry.EventExpired)
	c.log.Warn("credential rejected, session expired")
	c.endSession()
}

func (c *Controller) endSession() {
	c.session.ClearSession()
	c.transition(func(ViewState) ViewState {
		return ViewState{Active: Home}
	})
}

// transition applies next under the lock, bumps the generation and then
// notifies observers.
func (c *Controller) transition(next func(ViewState) ViewState) {
	c.mu.Lock()
	old := c.state.clone()
	c.state = next(c.state)
	c.gen++
	now := c.state.clone()
	observers := append([]ChangeFunc(nil), c.observers...)
	c.mu.Unlock()

	c.log.Debug("view changed", "from", old.String(), "to", now.String())
	for _, fn := range observers {
		fn(old, now)
	}
}
