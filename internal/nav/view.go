// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package nav

import (
	"fmt"
	"strings"
)

// View names a screen.
type View string

const (
	Home      View = "home"
	Login     View = "login"
	Register  View = "register"
	Dashboard View = "dashboard"
	Catalog   View = "catalog"
	Wishlist  View = "wishlist"
	Detail    View = "detail"
)

// guardTable lists which views require a session.
var guardTable = map[View]bool{
	Home:      false,
	Login:     false,
	Register:  false,
	Dashboard: true,
	Catalog:   true,
	Wishlist:  true,
	Detail:    true,
}

// Valid reports whether v is a known view.
func (v View) Valid() bool {
	_, ok := guardTable[v]
	return ok
}

// RequiresSession reports whether v is guarded. Unknown views are not.
func (v View) RequiresSession() bool {
	return guardTable[v]
}

func (v View) String() string { return string(v) }

// ParseView converts a name such as "Wishlist" to a View.
func ParseView(s string) (View, error) {
	v := View(strings.ToLower(strings.TrimSpace(s)))
	if !v.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownView, s)
	}
	return v, nil
}

// Params carries navigation arguments. EntityID is the national number
// of the Pokémon to show on detail; zero or negative means absent.
type Params struct {
	EntityID int
}

// DetailContext is present exactly when the detail view is active.
type DetailContext struct {
	EntityID int
	// ReturnView is where Back goes; never Detail.
	ReturnView View
}

// ViewState is what the rendering layer mounts.
type ViewState struct {
	Active View
	Detail *DetailContext
}

// Equal compares two states by value.
func (s ViewState) Equal(o ViewState) bool {
	if s.Active != o.Active {
		return false
	}
	if s.Detail == nil || o.Detail == nil {
		return s.Detail == nil && o.Detail == nil
	}
	return *s.Detail == *o.Detail
}

func (s ViewState) clone() ViewState {
	if s.Detail != nil {
		d := *s.Detail
		s.Detail = &d
	}
	return s
}

func (s ViewState) String() string {
	if s.Detail == nil {
		return string(s.Active)
	}
	return fmt.Sprintf("%s(#%d, return=%s)", s.Active, s.Detail.EntityID, s.Detail.ReturnView)
}
