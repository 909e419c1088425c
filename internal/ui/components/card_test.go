// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/jeranaias/pokedex-tui/internal/api"
	"github.com/jeranaias/pokedex-tui/internal/ui/styles"
)

func pikachu() api.Pokemon {
	return api.Pokemon{
		NationalNumber: 25,
		Gen:            "1",
		EnglishName:    "Pikachu",
		PrimaryType:    "Elettro",
	}
}

func TestCard(t *testing.T) {
	theme := styles.NewTheme(styles.ModeDark)
	view := Card(theme, pikachu(), 30, false)

	for _, want := range []string{"#025", "Pikachu", "Gen 1", "Elettro", "/images/pikachu.avif"} {
		if !strings.Contains(view, want) {
			t.Errorf("card missing %q:\n%s", want, view)
		}
	}
}

func TestCard_PrefersServerImage(t *testing.T) {
	p := pikachu()
	p.ImageURL = "https://img.example/25.png"
	if got := Sprite(p); got != p.ImageURL {
		t.Errorf("Sprite() = %q", got)
	}
}

func TestTypeBadges_Unknown(t *testing.T) {
	theme := styles.NewTheme(styles.ModeDark)
	if got := TypeBadges(theme, nil); !strings.Contains(got, UnknownType) {
		t.Errorf("TypeBadges(nil) = %q", got)
	}

	got := TypeBadges(theme, []string{"Fuoco", "Volante"})
	if !strings.Contains(got, "Fuoco") || !strings.Contains(got, "Volante") {
		t.Errorf("TypeBadges() = %q", got)
	}
}

func TestRow(t *testing.T) {
	theme := styles.NewTheme(styles.ModeDark)

	plain := Row(theme, pikachu(), 0, false)
	if !strings.Contains(plain, "#025") || !strings.Contains(plain, "Pikachu") {
		t.Errorf("row = %q", plain)
	}

	selected := Row(theme, pikachu(), 0, true)
	if !strings.Contains(selected, ">") {
		t.Errorf("selected row should carry a marker: %q", selected)
	}
}

func TestFormatHelpers(t *testing.T) {
	if got := FormatPercent(87.5); got != "87.5%" {
		t.Errorf("FormatPercent(87.5) = %q", got)
	}
	if got := FormatPercent(50); got != "50%" {
		t.Errorf("FormatPercent(50) = %q", got)
	}
	if got := FormatMeasure(0.4, "m"); got != "0.4m" {
		t.Errorf("FormatMeasure() = %q", got)
	}
}
