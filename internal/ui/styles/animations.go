// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"time"
)

// =============================================================================
// SPINNER ANIMATIONS
// =============================================================================

// SpinnerConfig holds the configuration for a spinner animation.
type SpinnerConfig struct {
	Frames []string
	FPS    int
}

// Duration returns the duration for each frame.
func (s SpinnerConfig) Duration() time.Duration {
	if s.FPS <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(s.FPS)
}

// PokeballSpinner is the loading spinner shown while a view fetches.
var PokeballSpinner = SpinnerConfig{
	Frames: []string{"( )", "(-)", "(o)", "(O)", "(o)", "(-)"},
	FPS:    8,
}

// LineSpinner is a plain fallback.
var LineSpinner = SpinnerConfig{
	Frames: []string{"|", "/", "-", "\\"},
	FPS:    10,
}

// =============================================================================
// STAT BARS
// =============================================================================

// MaxBaseStat is the upper bound of a base stat.
const MaxBaseStat = 255

var (
	ProgressFull  = "#"
	ProgressEmpty = "-"
)

// StatBarCells splits a bar of width cells into filled and empty counts for
// value out of max. Values are clamped into [0, max].
func StatBarCells(width, value, max int) (filled, empty int) {
	if width <= 0 || max <= 0 {
		return 0, 0
	}
	if value < 0 {
		value = 0
	}
	if value > max {
		value = max
	}
	filled = width * value / max
	if value > 0 && filled == 0 {
		filled = 1
	}
	return filled, width - filled
}

// RenderStatBar renders a plain stat bar, e.g. "###-------".
func RenderStatBar(width, value, max int) string {
	filled, empty := StatBarCells(width, value, max)
	var sb strings.Builder
	sb.Grow(filled + empty)
	sb.WriteString(strings.Repeat(ProgressFull, filled))
	sb.WriteString(strings.Repeat(ProgressEmpty, empty))
	return sb.String()
}
