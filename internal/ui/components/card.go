// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/pokedex-tui/internal/api"
	"github.com/jeranaias/pokedex-tui/internal/ui/styles"
	"github.com/jeranaias/pokedex-tui/internal/util"
)

// UnknownType is shown when an entry has no type at all.
const UnknownType = "Unknown type"

// TypeBadges renders one badge per type.
func TypeBadges(theme *styles.Theme, types []string) string {
	if len(types) == 0 {
		return theme.Badge.Background(styles.BadgeNeutral).Render(UnknownType)
	}
	badges := make([]string, 0, len(types))
	for _, t := range types {
		badges = append(badges, theme.TypeBadge(t))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, badges...)
}

// Sprite returns the image location for p, preferring the server's URL.
func Sprite(p api.Pokemon) string {
	if p.ImageURL != "" {
		return p.ImageURL
	}
	return ImagePath(p.EnglishName)
}

// Card renders a list entry as a bordered card: number, name, generation,
// type badges and sprite path.
func Card(theme *styles.Theme, p api.Pokemon, width int, selected bool) string {
	if width < 24 {
		width = 24
	}
	inner := width - 4

	var b strings.Builder
	b.WriteString(theme.Number.Render(p.Number()))
	b.WriteString("\n")
	b.WriteString(theme.Label.Render(util.Truncate(p.EnglishName, inner)))
	b.WriteString("\n")
	b.WriteString(theme.Muted.Render("Gen " + p.Gen))
	b.WriteString("\n")
	b.WriteString(TypeBadges(theme, p.Types()))
	b.WriteString("\n")
	b.WriteString(theme.Muted.Render(util.Truncate(Sprite(p), inner)))

	style := theme.Card
	if selected {
		style = theme.CardSelected
	}
	return style.Width(width).Render(b.String())
}

// Column widths of a list row.
const (
	rowNumberWidth = 5
	rowNameWidth   = 16
	rowGenWidth    = 7
)

// Row renders a list entry on one line: "#025  Pikachu          Gen 1  [Elettro]".
func Row(theme *styles.Theme, p api.Pokemon, width int, selected bool) string {
	marker := "  "
	style := theme.Row
	if selected {
		marker = "> "
		style = theme.RowSelected
	}

	cols := util.PadRight(p.Number(), rowNumberWidth) + " " +
		util.PadRight(util.Truncate(p.EnglishName, rowNameWidth), rowNameWidth) + " " +
		util.PadRight("Gen "+p.Gen, rowGenWidth) + " "

	line := style.Render(marker+cols) + TypeBadges(theme, p.Types())
	if width > 0 && lipgloss.Width(line) > width {
		return style.Render(marker + cols)
	}
	return line
}
