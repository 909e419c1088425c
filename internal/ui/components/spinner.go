// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/pokedex-tui/internal/ui/styles"
)

// =============================================================================
// SPINNER MODEL
// =============================================================================

// Spinner is the loading indicator a view shows while its fetch runs.
type Spinner struct {
	spinner spinner.Model
	message string
	active  bool
}

// NewSpinner creates an inactive spinner with the given caption.
func NewSpinner(theme *styles.Theme, message string) Spinner {
	cfg := styles.PokeballSpinner
	s := spinner.New(
		spinner.WithSpinner(spinner.Spinner{Frames: cfg.Frames, FPS: cfg.Duration()}),
		spinner.WithStyle(theme.Spinner),
	)
	return Spinner{spinner: s, message: message}
}

// Start activates the spinner and returns its first tick.
func (s *Spinner) Start() tea.Cmd {
	s.active = true
	return s.spinner.Tick
}

// Stop deactivates the spinner. Further ticks are dropped.
func (s *Spinner) Stop() {
	s.active = false
}

// Active reports whether the spinner is running.
func (s Spinner) Active() bool {
	return s.active
}

// Update advances the animation on its own tick messages.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	if !s.active {
		return s, nil
	}
	if _, ok := msg.(spinner.TickMsg); !ok {
		return s, nil
	}
	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return s, cmd
}

// View renders the frame and caption, or nothing when inactive.
func (s Spinner) View() string {
	if !s.active {
		return ""
	}
	if s.message == "" {
		return s.spinner.View()
	}
	return s.spinner.View() + " " + s.message
}
