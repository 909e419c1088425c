// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/pokedex-tui/internal/nav"
)

const welcomeText = "Welcome, trainers, to our Pokédex! Here you will find all the " +
	"essential information about your favourite Pokémon. We are thrilled to " +
	"join you on this adventure through the world of Pokémon, where every " +
	"catch is a step towards mastery. Get ready to explore, learn and become " +
	"the very best trainers there are. Safe travels, and may your team always " +
	"be ready for the challenge!"

// Home is the landing page.
type Home struct {
	d     *Deps
	width int
	log   *slog.Logger
}

// NewHome creates the home page.
func NewHome(d *Deps) *Home {
	return &Home{d: d, log: pageLogger("home")}
}

func (h *Home) Init() tea.Cmd { return nil }

func (h *Home) Title() string { return "Homepage Pokemon" }

func (h *Home) Capturing() bool { return false }

func (h *Home) SetSize(width, _ int) { h.width = width }

func (h *Home) Bindings() []key.Binding {
	k := h.d.Keys
	return []key.Binding{k.Register, k.Dashboard, k.Catalog, k.Wishlist, k.Quit}
}

func (h *Home) Update(msg tea.Msg) (Page, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}
	k := h.d.Keys
	switch {
	case key.Matches(keyMsg, k.Register):
		navigate(h.d, h.log, nav.Register)
	case key.Matches(keyMsg, k.Dashboard):
		navigate(h.d, h.log, nav.Dashboard)
	case key.Matches(keyMsg, k.Catalog):
		navigate(h.d, h.log, nav.Catalog)
	case key.Matches(keyMsg, k.Wishlist):
		navigate(h.d, h.log, nav.Wishlist)
	}
	return h, nil
}

func (h *Home) View() string {
	t := h.d.Theme
	width := h.width - 4
	if width < 30 {
		width = 30
	}
	if width > 90 {
		width = 90
	}

	var b strings.Builder
	b.WriteString(t.Title.Render("WELCOME TO POKEDEX BASIC!"))
	b.WriteString("\n")
	b.WriteString(t.Body.Width(width).Render(welcomeText))
	b.WriteString("\n\n")
	if h.d.Session.HasSession() {
		b.WriteString(t.Muted.Render("You are signed in. Press d for the dashboard."))
	} else {
		b.WriteString(t.Muted.Render("Press l to log in or r to create an account."))
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
