// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/pokedex-tui/internal/api"
	"github.com/jeranaias/pokedex-tui/internal/fetch"
	"github.com/jeranaias/pokedex-tui/internal/logging"
	"github.com/jeranaias/pokedex-tui/internal/nav"
	"github.com/jeranaias/pokedex-tui/internal/ui/styles"
)

// API is the part of the API client the pages call.
type API interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, username, password, email string) (string, error)
	ListPokemon(ctx context.Context) ([]api.Pokemon, error)
	ListWishlist(ctx context.Context) ([]api.Pokemon, error)
	GetPokemon(ctx context.Context, id int) (*api.Pokemon, error)
	RemoveFromWishlist(ctx context.Context, id int, name string) (string, error)
}

// Session is the part of the session store the pages use.
type Session interface {
	HasSession() bool
	SetSession(token string) error
}

// Deps is what every page is built with.
type Deps struct {
	Ctx      context.Context
	Nav      *nav.Controller
	Session  Session
	API      API
	Settler  *fetch.Settler
	Theme    *styles.Theme
	Keys     KeyMap
	PageSize int
}

// Page is one mounted view. A page is created for every transition and
// captures the controller generation at that moment; results carrying an
// older generation are dropped by fetch.Settle.
type Page interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Page, tea.Cmd)
	View() string

	// Title is shown in the header.
	Title() string
	// Bindings are the key hints for the footer.
	Bindings() []key.Binding
	SetSize(width, height int)
	// Capturing reports that keys go to a text field or modal, so the
	// application must not treat them as global shortcuts.
	Capturing() bool
}

// New builds the page for a view state.
func New(state nav.ViewState, d *Deps) Page {
	switch state.Active {
	case nav.Login:
		return NewLogin(d)
	case nav.Register:
		return NewRegister(d)
	case nav.Dashboard:
		return NewDashboard(d)
	case nav.Catalog:
		return NewCatalog(d)
	case nav.Wishlist:
		return NewWishlist(d)
	case nav.Detail:
		if state.Detail != nil {
			return NewDetail(d, *state.Detail)
		}
	}
	return NewHome(d)
}

// navigate calls Navigate and logs a programmer error instead of hiding it.
func navigate(d *Deps, log *slog.Logger, target nav.View, params ...nav.Params) {
	if err := d.Nav.Navigate(target, params...); err != nil {
		log.Error("navigation failed", "target", target, "error", err)
	}
}

func pageLogger(name string) *slog.Logger {
	return logging.Get("views." + name)
}
