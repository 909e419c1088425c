// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/pokedex-tui/internal/ui/styles"
)

// =============================================================================
// CONFIRM MODAL
// =============================================================================

// ConfirmPhase is the stage of a Confirm dialog.
type ConfirmPhase int

const (
	// ConfirmHidden: nothing shown.
	ConfirmHidden ConfirmPhase = iota
	// ConfirmAsking: waiting for OK or Cancel.
	ConfirmAsking
	// ConfirmPending: the confirmed operation is running.
	ConfirmPending
	// ConfirmResult: showing the outcome with a Close button.
	ConfirmResult
)

// Buttons in the asking phase.
const (
	ButtonCancel = 0
	ButtonOK     = 1
	ButtonCount  = 2
)

// ConfirmResponseMsg is sent when the user answers the question.
type ConfirmResponseMsg struct {
	ID        string
	Confirmed bool
}

// ConfirmClosedMsg is sent when the user closes the result.
type ConfirmClosedMsg struct {
	ID      string
	Success bool
}

// Confirm is a modal that asks a question, waits for the operation and
// then shows its result.
type Confirm struct {
	id       string
	prompt   string
	phase    ConfirmPhase
	selected int
	success  bool
	result   string

	width  int
	height int
	theme  *styles.Theme
}

// NewConfirm creates a hidden dialog.
func NewConfirm(theme *styles.Theme) *Confirm {
	return &Confirm{theme: theme}
}

// Show opens the dialog with a question. id comes back in the messages.
func (c *Confirm) Show(id, prompt string) {
	c.id = id
	c.prompt = prompt
	c.phase = ConfirmAsking
	c.selected = ButtonOK
	c.success = false
	c.result = ""
}

// SetResult switches to the result phase.
func (c *Confirm) SetResult(success bool, message string) {
	c.phase = ConfirmResult
	c.success = success
	c.result = message
}

// Hide closes the dialog.
func (c *Confirm) Hide() {
	c.phase = ConfirmHidden
}

// IsVisible returns whether the dialog is open.
func (c *Confirm) IsVisible() bool {
	return c.phase != ConfirmHidden
}

// Phase returns the current phase.
func (c *Confirm) Phase() ConfirmPhase {
	return c.phase
}

// ID returns the id given to Show.
func (c *Confirm) ID() string {
	return c.id
}

// SetSize updates the area the dialog centers in.
func (c *Confirm) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// =============================================================================
// BUBBLE TEA METHODS
// =============================================================================

// Update handles keys while the dialog is open. The bool reports whether
// the key was consumed.
func (c *Confirm) Update(msg tea.Msg) (tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !c.IsVisible() {
		return nil, false
	}

	switch c.phase {
	case ConfirmAsking:
		switch keyMsg.String() {
		case "left", "right", "tab", "shift+tab", "h", "l":
			c.selected = (c.selected + 1) % ButtonCount
		case "enter", " ":
			return c.answer(c.selected == ButtonOK), true
		case "y":
			return c.answer(true), true
		case "n", "esc":
			return c.answer(false), true
		}
		return nil, true

	case ConfirmPending:
		return nil, true

	case ConfirmResult:
		switch keyMsg.String() {
		case "enter", " ", "esc", "c":
			id, success := c.id, c.success
			c.Hide()
			return func() tea.Msg {
				return ConfirmClosedMsg{ID: id, Success: success}
			}, true
		}
		return nil, true
	}
	return nil, false
}

func (c *Confirm) answer(confirmed bool) tea.Cmd {
	id := c.id
	if confirmed {
		c.phase = ConfirmPending
	} else {
		c.Hide()
	}
	return func() tea.Msg {
		return ConfirmResponseMsg{ID: id, Confirmed: confirmed}
	}
}

// =============================================================================
// VIEW RENDERING
// =============================================================================

// View renders the dialog, centered when a size is known.
func (c *Confirm) View() string {
	if !c.IsVisible() {
		return ""
	}

	boxWidth := 56
	if c.width > 0 && c.width < 66 {
		boxWidth = c.width - 10
	}
	if boxWidth < 30 {
		boxWidth = 30
	}

	var content strings.Builder
	switch c.phase {
	case ConfirmAsking:
		content.WriteString(c.theme.Label.Render(c.prompt))
		content.WriteString("\n\n")
		content.WriteString(c.renderButtons())
		content.WriteString("\n\n")
		content.WriteString(c.theme.Muted.Render("y=OK  n=Cancel  Tab=Switch"))
	case ConfirmPending:
		content.WriteString(c.theme.Muted.Render("Please wait..."))
	case ConfirmResult:
		if c.success {
			content.WriteString(c.theme.SuccessText.Render(c.result))
		} else {
			content.WriteString(c.theme.ErrorText.Render(c.result))
		}
		content.WriteString("\n\n")
		content.WriteString(c.theme.ButtonActive.Background(styles.TextMuted).Render("Close"))
	}

	box := c.theme.Modal.Width(boxWidth).Render(content.String())
	if c.width > 0 && c.height > 0 {
		return lipgloss.Place(c.width, c.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

func (c *Confirm) renderButtons() string {
	cancel := c.theme.Button.Render("Cancel")
	ok := c.theme.Button.Render("OK")
	if c.selected == ButtonOK {
		ok = c.theme.ButtonActive.Render("OK")
	} else {
		cancel = c.theme.ButtonDanger.Render("Cancel")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cancel, ok)
}
