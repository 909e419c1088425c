// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// BRAND COLORS
// =============================================================================

// PokeRed is the brand color used for the header and the selection marker.
var PokeRed = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}

// PokeRedDeep is the header background.
var PokeRedDeep = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#7F1D1D"}

// Orange is the page accent.
var Orange = lipgloss.AdaptiveColor{Light: "#EA580C", Dark: "#FB923C"}

// =============================================================================
// SEMANTIC COLORS
// =============================================================================

var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}
var Sky = lipgloss.AdaptiveColor{Light: "#0284C7", Dark: "#38BDF8"}
var Purple = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}

// =============================================================================
// SURFACE AND TEXT COLORS
// =============================================================================

var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#181825"}
var Overlay = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#313244"}

var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#CDD6F4"}
var TextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A6ADC8"}
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6C7086"}
var TextInverse = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}

// =============================================================================
// TYPE BADGE COLORS
// =============================================================================

// Badge tones, one per type family.
var (
	BadgeNeutral   = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#6B7280"}
	BadgeError     = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}
	BadgeInfo      = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#3B82F6"}
	BadgeWarning   = lipgloss.AdaptiveColor{Light: "#CA8A04", Dark: "#EAB308"}
	BadgeSuccess   = lipgloss.AdaptiveColor{Light: "#16A34A", Dark: "#22C55E"}
	BadgeSecondary = lipgloss.AdaptiveColor{Light: "#9333EA", Dark: "#A855F7"}
)

// typeColors maps lowercased type names, Italian and English, to a tone.
var typeColors = map[string]lipgloss.AdaptiveColor{
	"normale":    BadgeNeutral,
	"normal":     BadgeNeutral,
	"fuoco":      BadgeError,
	"fire":       BadgeError,
	"acqua":      BadgeInfo,
	"water":      BadgeInfo,
	"elettro":    BadgeWarning,
	"electric":   BadgeWarning,
	"erba":       BadgeSuccess,
	"grass":      BadgeSuccess,
	"ghiaccio":   BadgeInfo,
	"ice":        BadgeInfo,
	"lotta":      BadgeError,
	"fighting":   BadgeError,
	"veleno":     BadgeSecondary,
	"poison":     BadgeSecondary,
	"terra":      BadgeWarning,
	"ground":     BadgeWarning,
	"volante":    BadgeInfo,
	"flying":     BadgeInfo,
	"psico":      BadgeSecondary,
	"psychic":    BadgeSecondary,
	"coleottero": BadgeSuccess,
	"bug":        BadgeSuccess,
	"roccia":     BadgeNeutral,
	"rock":       BadgeNeutral,
	"spettro":    BadgeSecondary,
	"ghost":      BadgeSecondary,
	"drago":      BadgeError,
	"dragon":     BadgeError,
	"buio":       BadgeNeutral,
	"dark":       BadgeNeutral,
	"acciaio":    BadgeNeutral,
	"steel":      BadgeNeutral,
	"folletto":   BadgeSecondary,
	"fairy":      BadgeSecondary,
}

// TypeColor returns the badge tone for a type name. Unknown types are
// neutral.
func TypeColor(typeName string) lipgloss.AdaptiveColor {
	if c, ok := typeColors[strings.ToLower(strings.TrimSpace(typeName))]; ok {
		return c
	}
	return BadgeNeutral
}

// =============================================================================
// STATUS INDICATORS
// =============================================================================

// StatusIndicators are ASCII shape cues shown next to colored messages.
var StatusIndicators = struct {
	Success string
	Error   string
	Info    string
}{
	Success: "[OK]",
	Error:   "[X]",
	Info:    "[i]",
}

// RenderSuccess renders a success message with its indicator.
func RenderSuccess(message string) string {
	return lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true).
		Render(StatusIndicators.Success + " " + message)
}

// RenderError renders an error message with its indicator.
func RenderError(message string) string {
	return lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true).
		Render(StatusIndicators.Error + " " + message)
}

// RenderInfo renders an informational message with its indicator.
func RenderInfo(message string) string {
	return lipgloss.NewStyle().
		Foreground(Sky).
		Bold(true).
		Render(StatusIndicators.Info + " " + message)
}

// RenderStatus picks RenderSuccess or RenderError.
func RenderStatus(success bool, message string) string {
	if success {
		return RenderSuccess(message)
	}
	return RenderError(message)
}
