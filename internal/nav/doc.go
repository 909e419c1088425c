// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package nav decides which view is visible.
//
// The Controller is the single door for every view transition. It checks
// the guard table against the session store before switching, remembers
// where a detail view was opened from, and handles login, logout and
// session expiry reported by the views.
//
// # Key Types
//
//   - View: one of home, login, register, dashboard, catalog, wishlist, detail
//   - ViewState: the active view plus the detail context when on detail
//   - Controller: owner of the ViewState
//
// # Usage
//
//	ctrl := nav.NewController(store, nav.WithTelemetry(rec))
//	if err := ctrl.Navigate(nav.Detail, nav.Params{EntityID: 25}); err != nil {
//	    // programmer error: missing id or unknown view
//	}
//	state := ctrl.CurrentView()
//
// # Stale completions
//
// Every transition bumps Generation. Work started for a view captures the
// generation and its result is discarded if the number has moved on.
package nav
