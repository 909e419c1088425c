// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/pokedex-tui/internal/ui/styles"
)

// Copyright is the footer line.
const Copyright = "© 2025 Pokedex Basic. All Rights Reserved."

// =============================================================================
// STATUS BAR / FOOTER
// =============================================================================

// StatusBar is the footer: key hints for the active page, the session
// indicator and the copyright line.
type StatusBar struct {
	Width    int
	SignedIn bool
	Server   string

	bindings []key.Binding
	help     help.Model
	theme    *styles.Theme
}

// NewStatusBar creates a footer.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	h := help.New()
	h.ShortSeparator = "  "
	return &StatusBar{
		Width: 80,
		help:  h,
		theme: theme,
	}
}

// SetWidth updates the footer width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
	s.help.Width = width
}

// SetBindings sets the key hints shown on the left.
func (s *StatusBar) SetBindings(bindings ...key.Binding) {
	s.bindings = bindings
}

// View renders the two footer lines.
func (s *StatusBar) View() string {
	width := s.Width
	if width < 40 {
		width = 40
	}

	session := s.theme.Muted.Render("signed out")
	if s.SignedIn {
		session = lipgloss.NewStyle().Foreground(styles.Emerald).Render("signed in")
	}
	if s.Server != "" {
		session += s.theme.Muted.Render(" @ " + s.Server)
	}

	hints := s.help.ShortHelpView(s.bindings)
	gap := width - lipgloss.Width(hints) - lipgloss.Width(session) - 2
	if gap < 1 {
		gap = 1
	}
	top := " " + hints + strings.Repeat(" ", gap) + session

	bottom := s.theme.Footer.Width(width).Render(Copyright)
	return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
}
