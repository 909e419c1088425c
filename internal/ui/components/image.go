// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// imageSpecialCases are names whose sprite file does not follow the
// generic rule.
var imageSpecialCases = map[string]string{
	"Nidoran♀":   "nidoranfemale",
	"Nidoran♂":   "nidoranmale",
	"Mr. Mime":   "mrmime",
	"Farfetch'd": "farfetchd",
	"Ho-Oh":      "hooh",
}

// ImagePath returns the sprite path for a Pokémon name, e.g.
// "Pikachu" -> "/images/pikachu.avif".
func ImagePath(name string) string {
	if slug, ok := imageSpecialCases[name]; ok {
		return "/images/" + slug + ".avif"
	}
	return "/images/" + imageSlug(name) + ".avif"
}

func imageSlug(name string) string {
	slug := cases.Lower(language.Und).String(name)

	// Fold accents: "Flabébé" -> "flabebe".
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(fold, slug); err == nil {
		slug = folded
	}

	slug = strings.Map(func(r rune) rune {
		switch {
		case r == '\'', r == '.', r == ':', r == '-', unicode.IsSpace(r):
			return -1
		}
		return r
	}, slug)

	slug = strings.ReplaceAll(slug, "♀", "female")
	return strings.ReplaceAll(slug, "♂", "male")
}
