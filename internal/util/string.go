// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// UNICODE: all helpers measure terminal columns, not bytes or runes, so
// CJK text and emoji never get cut mid-character or overflow a line.

// TruncateWidth truncates s to at most maxWidth columns. If s is cut and
// there is room, "..." is appended inside the limit.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// WrapWidth soft-wraps each line of s to width columns. Existing line
// breaks are kept. A width below 1 returns s unchanged.
func WrapWidth(s string, width int) string {
	if width < 1 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if runewidth.StringWidth(line) > width {
			lines[i] = runewidth.Wrap(line, width)
		}
	}
	return strings.Join(lines, "\n")
}
