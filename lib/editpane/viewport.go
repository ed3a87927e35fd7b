// Copyright 2026 The Scratchpad Authors
// SPDX-License-Identifier: Apache-2.0

package editpane

// Viewport is the vertical window of lines currently rendered.
// ScrollTop is the buffer row shown at the top edge; Height is the
// number of visible rows.
type Viewport struct {
	ScrollTop int
	Height    int
}

// MaxScroll returns the largest valid ScrollTop for the given line
// count: the offset at which the last line sits on the bottom edge.
func (viewport Viewport) MaxScroll(lineCount int) int {
	maxScroll := lineCount - viewport.Height
	if maxScroll < 0 {
		return 0
	}
	return maxScroll
}

// ClampScroll forces ScrollTop into the valid range for the given
// line count.
func (viewport Viewport) ClampScroll(lineCount int) Viewport {
	if viewport.ScrollTop < 0 {
		viewport.ScrollTop = 0
	}
	if maxScroll := viewport.MaxScroll(lineCount); viewport.ScrollTop > maxScroll {
		viewport.ScrollTop = maxScroll
	}
	return viewport
}

// Contains reports whether the buffer row is inside the visible
// window.
func (viewport Viewport) Contains(row int) bool {
	return row >= viewport.ScrollTop && row < viewport.ScrollTop+viewport.Height
}

// EnsureVisible scrolls the minimum distance needed to bring the row
// into view: up to put it on the top edge, or down to put it on the
// bottom edge. Rows already visible leave the viewport unchanged.
func (viewport Viewport) EnsureVisible(row, lineCount int) Viewport {
	if row < viewport.ScrollTop {
		viewport.ScrollTop = row
	} else if row >= viewport.ScrollTop+viewport.Height {
		viewport.ScrollTop = row - viewport.Height + 1
	}
	return viewport.ClampScroll(lineCount)
}

// CenterOn scrolls so the row sits in the middle of the window,
// clamped to the valid range. Used when jumping to a search match
// that was off-screen.
func (viewport Viewport) CenterOn(row, lineCount int) Viewport {
	viewport.ScrollTop = row - viewport.Height/2
	return viewport.ClampScroll(lineCount)
}

// ScrollBy moves ScrollTop by delta lines (negative is up), clamped.
func (viewport Viewport) ScrollBy(delta, lineCount int) Viewport {
	viewport.ScrollTop += delta
	return viewport.ClampScroll(lineCount)
}
