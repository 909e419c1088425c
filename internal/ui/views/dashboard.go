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

// Dashboard is the landing page after login.
type Dashboard struct {
	d   *Deps
	log *slog.Logger
}

// NewDashboard creates the dashboard page.
func NewDashboard(d *Deps) *Dashboard {
	return &Dashboard{d: d, log: pageLogger("dashboard")}
}

func (p *Dashboard) Init() tea.Cmd { return nil }

func (p *Dashboard) Title() string { return "Dashboard Pokemon" }

func (p *Dashboard) Capturing() bool { return false }

func (p *Dashboard) SetSize(int, int) {}

func (p *Dashboard) Bindings() []key.Binding {
	k := p.d.Keys
	return []key.Binding{k.Catalog, k.Wishlist, k.Home, k.Logout, k.Quit}
}

func (p *Dashboard) Update(msg tea.Msg) (Page, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	switch {
	case key.Matches(keyMsg, p.d.Keys.Catalog):
		navigate(p.d, p.log, nav.Catalog)
	case key.Matches(keyMsg, p.d.Keys.Wishlist):
		navigate(p.d, p.log, nav.Wishlist)
	}
	return p, nil
}

func (p *Dashboard) View() string {
	t := p.d.Theme
	var b strings.Builder
	b.WriteString(t.Title.Render("You're in!"))
	b.WriteString("\n")
	b.WriteString(t.Label.Render("[c]") + " " + t.Body.Render("Browse the catalog"))
	b.WriteString("\n")
	b.WriteString(t.Label.Render("[w]") + " " + t.Body.Render("Your wishlist"))
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
