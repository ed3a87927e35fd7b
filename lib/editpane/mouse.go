// Copyright 2026 The Scratchpad Authors
// SPDX-License-Identifier: Apache-2.0

package editpane

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/scratchpad-tui/scratchpad/lib/mousewire"
)

// Geometry is the pane's absolute position and visible content
// dimensions within the terminal frame, supplied by the host layout
// once per layout pass. The pane never infers its own position; the
// geometry exists purely so mouse hit-testing can translate screen
// coordinates into buffer positions.
type Geometry struct {
	ScreenTop     int // Absolute row of the pane's top-left corner.
	ScreenLeft    int // Absolute column of the pane's top-left corner.
	ContentHeight int // Visible text rows, excluding chrome.
	ContentWidth  int // Visible text columns, excluding chrome.
}

// Pane chrome between the outer corner and the text area: one border
// row above, one border column plus one padding column to the left.
// Hit-testing offsets by these; View draws them.
const (
	chromeTopRows     = 1
	chromeLeftColumns = 2
)

// wheelStepDefault is how many lines one wheel notch scrolls.
const wheelStepDefault = 2

// hitTest translates absolute screen coordinates into a buffer
// position. Clicks land only inside the rendered text area (border
// and padding excluded); the column clamps to the clicked line's
// length, and clicks on rows past the end of the buffer are rejected.
func (model *Model) hitTest(screenX, screenY int) (Cursor, bool) {
	contentTop := model.geometry.ScreenTop + chromeTopRows
	contentLeft := model.geometry.ScreenLeft + chromeLeftColumns

	if screenY < contentTop || screenY >= contentTop+model.geometry.ContentHeight {
		return Cursor{}, false
	}
	if screenX < contentLeft || screenX >= contentLeft+model.geometry.ContentWidth {
		return Cursor{}, false
	}

	row := model.viewport.ScrollTop + (screenY - contentTop)
	if row >= len(model.lines) {
		return Cursor{}, false
	}

	col := screenX - contentLeft
	if length := lineLength(model.lines, row); col > length {
		col = length
	}
	return Cursor{Row: row, Col: col}, true
}

// handleClick places the cursor at the clicked buffer position.
// Rejected clicks (outside the text area, below the last line) do
// nothing.
func (model *Model) handleClick(screenX, screenY int) {
	position, ok := model.hitTest(screenX, screenY)
	if !ok {
		return
	}
	model.cursor = position
}

// handleWheel scrolls the viewport by delta lines (negative is up),
// clamped to the valid range, and arms the manual-scroll grace
// window — even when the scroll was already at its limit — so the
// next cursor-driven auto-scroll does not fight the user.
func (model *Model) handleWheel(delta int) {
	model.viewport = model.viewport.ScrollBy(delta, len(model.lines))
	model.suppressUntil = model.timeSource.Now().Add(model.graceWindow)
}

// HandleMouse processes a bubbletea mouse message. Hosts whose input
// loop already decodes SGR reports (any bubbletea program) route
// mouse messages here; hosts that own the raw byte stream use
// FeedInput instead. Only presses act: wheel presses scroll, primary
// presses place the cursor. Releases and other buttons are reserved.
func (model *Model) HandleMouse(message tea.MouseMsg) {
	if message.Action != tea.MouseActionPress {
		return
	}
	switch message.Button {
	case tea.MouseButtonWheelUp:
		model.handleWheel(-model.wheelStep)
	case tea.MouseButtonWheelDown:
		model.handleWheel(model.wheelStep)
	case tea.MouseButtonLeft:
		model.handleClick(message.X, message.Y)
	}
}

// FeedInput pushes raw terminal bytes through the pane's own SGR
// parser and applies the decoded events. Wire coordinates are
// 1-based; screen coordinates are 0-based.
func (model *Model) FeedInput(data []byte) {
	for _, event := range model.wireParser.Feed(data) {
		if event.Release {
			continue
		}
		switch event.Button {
		case mousewire.ButtonWheelUp:
			model.handleWheel(-model.wheelStep)
		case mousewire.ButtonWheelDown:
			model.handleWheel(model.wheelStep)
		case mousewire.ButtonPrimary:
			model.handleClick(event.Col-1, event.Row-1)
		}
	}
}
