// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import "testing"

func TestImagePath(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Pikachu", "/images/pikachu.avif"},
		{"Nidoran♀", "/images/nidoranfemale.avif"},
		{"Nidoran♂", "/images/nidoranmale.avif"},
		{"Mr. Mime", "/images/mrmime.avif"},
		{"Farfetch'd", "/images/farfetchd.avif"},
		{"Ho-Oh", "/images/hooh.avif"},
		{"Mime Jr.", "/images/mimejr.avif"},
		{"Type: Null", "/images/typenull.avif"},
		{"Porygon-Z", "/images/porygonz.avif"},
		{"Flabébé", "/images/flabebe.avif"},
		{"Nidoran ♀", "/images/nidoranfemale.avif"},
	}

	for _, tt := range tests {
		if got := ImagePath(tt.name); got != tt.want {
			t.Errorf("ImagePath(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
