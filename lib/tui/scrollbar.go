// Copyright 2026 The Scratchpad Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderScrollbar produces a single-column scrollbar of the given
// height. The thumb indicates the visible line range within the total
// line count.
//
// The scrollbar is always fully rendered: track + thumb. When the
// content fits within the visible area the thumb spans the entire
// height. The thumb uses the focused color when the pane has focus,
// and the border color otherwise.
func RenderScrollbar(theme Theme, height, totalLines, visibleLines, scrollTop int, focused bool) string {
	if height <= 0 {
		return ""
	}

	thumbColor := theme.BorderColor
	if focused {
		thumbColor = theme.BorderFocused
	}

	trackStyle := lipgloss.NewStyle().Foreground(theme.BorderColor)
	thumbStyle := lipgloss.NewStyle().Foreground(thumbColor)

	rows := make([]string, height)

	// Content fits — thumb spans the full height.
	if totalLines <= visibleLines || totalLines <= 0 {
		for index := range rows {
			rows[index] = thumbStyle.Render("┃")
		}
		return strings.Join(rows, "\n")
	}

	// Thumb size: proportional to visible/total, minimum 1 row.
	thumbSize := height * visibleLines / totalLines
	if thumbSize < 1 {
		thumbSize = 1
	}

	// Thumb position: proportional to scrollTop within the scrollable
	// range.
	scrollableRange := totalLines - visibleLines
	trackRange := height - thumbSize
	thumbOffset := 0
	if scrollableRange > 0 && trackRange > 0 {
		thumbOffset = scrollTop * trackRange / scrollableRange
	}
	if thumbOffset+thumbSize > height {
		thumbOffset = height - thumbSize
	}

	for index := range rows {
		if index >= thumbOffset && index < thumbOffset+thumbSize {
			rows[index] = thumbStyle.Render("┃")
		} else {
			rows[index] = trackStyle.Render("│")
		}
	}

	return strings.Join(rows, "\n")
}
