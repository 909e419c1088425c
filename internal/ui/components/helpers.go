// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import "strconv"

// =============================================================================
// SHARED HELPER FUNCTIONS
// =============================================================================

// FormatPercent formats a percentage in its shortest form: 87.5%, 50%.
func FormatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64) + "%"
}

// FormatMeasure formats a height or weight with its unit: 0.4m, 6kg.
func FormatMeasure(v float64, unit string) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + unit
}
