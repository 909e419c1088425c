// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"testing"
	"time"
)

func TestSpinnerConfigDuration(t *testing.T) {
	if got := PokeballSpinner.Duration(); got != time.Second/8 {
		t.Errorf("PokeballSpinner.Duration() = %v", got)
	}
	if got := (SpinnerConfig{}).Duration(); got != time.Second {
		t.Errorf("zero FPS Duration() = %v, want 1s", got)
	}
	if len(PokeballSpinner.Frames) == 0 {
		t.Error("PokeballSpinner has no frames")
	}
}

func TestStatBarCells(t *testing.T) {
	tests := []struct {
		name        string
		width       int
		value       int
		max         int
		wantFilled  int
		wantEmpty   int
	}{
		{"zero", 10, 0, 255, 0, 10},
		{"full", 10, 255, 255, 10, 0},
		{"half", 10, 128, 256, 5, 5},
		{"small value shows one cell", 20, 1, 255, 1, 19},
		{"over max clamps", 10, 300, 255, 10, 0},
		{"negative clamps", 10, -5, 255, 0, 10},
		{"zero width", 0, 100, 255, 0, 0},
		{"zero max", 10, 100, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filled, empty := StatBarCells(tt.width, tt.value, tt.max)
			if filled != tt.wantFilled || empty != tt.wantEmpty {
				t.Errorf("StatBarCells(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.width, tt.value, tt.max, filled, empty, tt.wantFilled, tt.wantEmpty)
			}
		})
	}
}

func TestRenderStatBar(t *testing.T) {
	if got := RenderStatBar(4, 255, 255); got != "####" {
		t.Errorf("RenderStatBar full = %q", got)
	}
	if got := RenderStatBar(4, 0, 255); got != "----" {
		t.Errorf("RenderStatBar empty = %q", got)
	}
	if got := RenderStatBar(0, 10, 255); got != "" {
		t.Errorf("RenderStatBar zero width = %q", got)
	}
}
