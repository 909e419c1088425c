// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/pokedex-tui/internal/ui/styles"
	"github.com/jeranaias/pokedex-tui/internal/util"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// NavLink is one entry of the header navigation, e.g. {"o", "Logout"}.
type NavLink struct {
	Key   string
	Label string
}

// Header is the title bar shown on every page.
type Header struct {
	Title string
	Links []NavLink
	Width int
	theme *styles.Theme
}

// NewHeader creates a Header with no links.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title: "Pokedex",
		Width: 80,
		theme: theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// Set replaces the title and links.
func (h *Header) Set(title string, links ...NavLink) {
	h.Title = title
	h.Links = links
}

// View renders the title on the left and the links on the right.
func (h *Header) View() string {
	width := h.Width
	if width < 40 {
		width = 40
	}
	// Header style pads two columns on each side.
	inner := width - 4

	nav := h.renderLinks()
	navWidth := lipgloss.Width(nav)

	titleWidth := inner - navWidth - 1
	if titleWidth < 8 {
		titleWidth = 8
	}
	title := h.theme.HeaderTitle.Render(util.Truncate(h.Title, titleWidth))

	gap := inner - lipgloss.Width(title) - navWidth
	if gap < 1 {
		gap = 1
	}

	line := title + strings.Repeat(" ", gap) + nav
	return h.theme.Header.Width(width).Render(line)
}

func (h *Header) renderLinks() string {
	parts := make([]string, 0, len(h.Links))
	for _, l := range h.Links {
		parts = append(parts, h.theme.NavItem.Render(h.theme.NavKey.Render("["+l.Key+"]")+" "+l.Label))
	}
	return strings.Join(parts, "")
}
