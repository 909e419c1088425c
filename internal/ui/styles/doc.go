// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the pokedex TUI.

All colors use Lip Gloss AdaptiveColor so they follow the light or dark
terminal background.

# Color System (colors.go)

  - PokeRed, PokeRedDeep - header and selection
  - Orange - page accent, titles and section headings
  - Emerald, Rose, Amber, Sky, Purple - semantic tones

Type badges use one of six tones (neutral, error, info, warning, success,
secondary). TypeColor accepts Italian and English type names in any case:

	styles.TypeColor("Fuoco") // BadgeError
	styles.TypeColor("water") // BadgeInfo

# Theme (theme.go)

NewTheme builds every lipgloss.Style the views use. The mode is the ui.theme
config value: "dark", "light" or "auto", where auto asks termenv for the
terminal background.

	theme := styles.NewTheme(cfg.UI.Theme)
	theme.SetSize(msg.Width, msg.Height)
	fmt.Println(theme.TypeBadge("Elettro"))

# Animations (animations.go)

PokeballSpinner drives the loading spinner. RenderStatBar and StatBarCells
draw base stat bars on the detail page, scaled to MaxBaseStat.
*/
package styles
