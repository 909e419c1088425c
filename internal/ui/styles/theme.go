// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme modes accepted by NewTheme.
const (
	ModeDark  = "dark"
	ModeLight = "light"
	ModeAuto  = "auto"
)

// Theme holds the styled components for the application.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// CHROME
	// ==========================================================================

	App         lipgloss.Style
	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	NavItem     lipgloss.Style
	NavKey      lipgloss.Style
	Footer      lipgloss.Style

	// ==========================================================================
	// PAGE CONTENT
	// ==========================================================================

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Muted    lipgloss.Style
	Section  lipgloss.Style

	// ==========================================================================
	// LISTS AND CARDS
	// ==========================================================================

	Card         lipgloss.Style
	CardSelected lipgloss.Style
	Row          lipgloss.Style
	RowSelected  lipgloss.Style
	Number       lipgloss.Style
	Badge        lipgloss.Style
	Special      lipgloss.Style
	Legendary    lipgloss.Style

	// ==========================================================================
	// FORMS AND MODALS
	// ==========================================================================

	Form          lipgloss.Style
	InputLabel    lipgloss.Style
	InputFocused  lipgloss.Style
	Modal         lipgloss.Style
	Button        lipgloss.Style
	ButtonActive  lipgloss.Style
	ButtonDanger  lipgloss.Style
	ErrorText     lipgloss.Style
	SuccessText   lipgloss.Style
	Spinner       lipgloss.Style
	StatBarFilled lipgloss.Style
	StatBarEmpty  lipgloss.Style
}

// NewTheme creates a theme for the given mode. "auto" (or anything
// unrecognised) follows the terminal background.
func NewTheme(mode string) *Theme {
	colorProfile := termenv.ColorProfile()

	var isDark bool
	switch strings.ToLower(mode) {
	case ModeDark:
		isDark = true
	case ModeLight:
		isDark = false
	default:
		isDark = termenv.HasDarkBackground()
	}
	lipgloss.SetHasDarkBackground(isDark)

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}
	t.initStyles()
	return t
}

func (t *Theme) initStyles() {
	t.App = lipgloss.NewStyle()

	// Header and footer
	t.Header = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(PokeRedDeep).
		Padding(0, 2)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"})

	t.NavItem = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#FEE2E2", Dark: "#FECACA"}).
		MarginLeft(2)

	t.NavKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Amber)

	t.Footer = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(SurfaceDim).
		Padding(0, 2).
		Align(lipgloss.Center)

	// Content
	t.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Orange).
		MarginBottom(1)

	t.Subtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	t.Body = lipgloss.NewStyle().Foreground(TextPrimary)
	t.Label = lipgloss.NewStyle().Bold(true).Foreground(TextPrimary)
	t.Value = lipgloss.NewStyle().Foreground(TextSecondary)
	t.Muted = lipgloss.NewStyle().Foreground(TextMuted)

	t.Section = lipgloss.NewStyle().
		Bold(true).
		Foreground(Orange).
		MarginTop(1)

	// Lists and cards
	t.Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.CardSelected = t.Card.
		BorderForeground(PokeRed)

	t.Row = lipgloss.NewStyle().
		Foreground(TextPrimary).
		PaddingLeft(2)

	t.RowSelected = lipgloss.NewStyle().
		Bold(true).
		Foreground(PokeRed).
		PaddingLeft(0)

	t.Number = lipgloss.NewStyle().Foreground(TextMuted)

	t.Badge = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
		Padding(0, 1).
		MarginRight(1)

	t.Special = lipgloss.NewStyle().Foreground(Purple)

	t.Legendary = lipgloss.NewStyle().
		Bold(true).
		Foreground(Amber)

	// Forms and modals
	t.Form = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Orange).
		Padding(1, 3)

	t.InputLabel = lipgloss.NewStyle().Foreground(TextSecondary)
	t.InputFocused = lipgloss.NewStyle().Foreground(Orange)

	t.Modal = lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(Overlay).
		Background(Surface).
		Padding(1, 4).
		Align(lipgloss.Center)

	t.Button = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(Overlay).
		Padding(0, 2).
		MarginRight(2)

	t.ButtonActive = t.Button.
		Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
		Background(Emerald)

	t.ButtonDanger = t.Button.
		Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
		Background(Rose)

	t.ErrorText = lipgloss.NewStyle().Bold(true).Foreground(Rose)
	t.SuccessText = lipgloss.NewStyle().Bold(true).Foreground(Emerald)
	t.Spinner = lipgloss.NewStyle().Foreground(Orange)

	t.StatBarFilled = lipgloss.NewStyle().Foreground(Emerald)
	t.StatBarEmpty = lipgloss.NewStyle().Foreground(Overlay)
}

// TypeBadge renders a type name as a colored badge.
func (t *Theme) TypeBadge(typeName string) string {
	return t.Badge.Background(TypeColor(typeName)).Render(typeName)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // >= 100 columns
)
