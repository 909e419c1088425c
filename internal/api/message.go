// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"regexp"
	"strings"
)

var (
	reErrorColon    = regexp.MustCompile(`(?i)error:\s*`)
	reErrorWord     = regexp.MustCompile(`(?i)error\s*`)
	reMessageKey    = regexp.MustCompile(`(?i)message['":\s]+`)
	reNationalNum   = regexp.MustCompile(`(?i)national[_\s]*number[_\s]*[0-9]+`)
	reJSONPunct     = regexp.MustCompile(`[{}"]`)
	reColon         = regexp.MustCompile(`:\s*`)
	reTrailingField = regexp.MustCompile(`,\s*national_number[^,}]*`)
)

// CleanMessage turns a raw server acknowledgement such as
// {"message":"removed","national_number":25} into display text. When
// name is set, "national_number 25" style references become the name.
func CleanMessage(raw, name string) string {
	msg := reErrorColon.ReplaceAllString(raw, "")
	msg = reErrorWord.ReplaceAllString(msg, "")
	msg = reMessageKey.ReplaceAllString(msg, "")
	if name != "" {
		msg = reNationalNum.ReplaceAllLiteralString(msg, name)
	}
	msg = reJSONPunct.ReplaceAllString(msg, "")
	msg = reColon.ReplaceAllString(msg, " ")
	msg = reTrailingField.ReplaceAllString(msg, "")
	return strings.TrimSpace(msg)
}
