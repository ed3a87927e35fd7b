// Copyright 2026 The Scratchpad Authors
// SPDX-License-Identifier: Apache-2.0

package editpane

// lineLength returns the rune count of the given row, or 0 for rows
// outside the buffer.
func lineLength(lines []string, row int) int {
	if row < 0 || row >= len(lines) {
		return 0
	}
	return len([]rune(lines[row]))
}

// ClampCursor forces the cursor back inside the buffer after the
// content shrank underneath it (the host replaced the text, a line
// got shorter). This is silent recovery, not an error: an out-of-range
// cursor simply reflects normal content churn.
func ClampCursor(lines []string, cursor Cursor) Cursor {
	if len(lines) == 0 {
		return Cursor{}
	}
	if cursor.Row < 0 {
		cursor.Row = 0
	}
	if cursor.Row >= len(lines) {
		cursor.Row = len(lines) - 1
	}
	if cursor.Col < 0 {
		cursor.Col = 0
	}
	if length := lineLength(lines, cursor.Row); cursor.Col > length {
		cursor.Col = length
	}
	return cursor
}

// MoveLeft moves the cursor one column left. At the start of a line it
// wraps to the end of the previous line; at the start of the buffer it
// stays put.
func MoveLeft(lines []string, cursor Cursor) Cursor {
	if cursor.Col > 0 {
		return Cursor{Row: cursor.Row, Col: cursor.Col - 1}
	}
	if cursor.Row > 0 {
		return Cursor{Row: cursor.Row - 1, Col: lineLength(lines, cursor.Row-1)}
	}
	return cursor
}

// MoveRight moves the cursor one column right. Past the end of a line
// it wraps to the start of the next line; at the end of the buffer it
// stays put.
func MoveRight(lines []string, cursor Cursor) Cursor {
	if cursor.Col < lineLength(lines, cursor.Row) {
		return Cursor{Row: cursor.Row, Col: cursor.Col + 1}
	}
	if cursor.Row < len(lines)-1 {
		return Cursor{Row: cursor.Row + 1, Col: 0}
	}
	return cursor
}

// MoveUp moves the cursor one row up, clamping the column to the
// target line's length. There is no remembered column: moving through
// a short line loses the original column.
func MoveUp(lines []string, cursor Cursor) Cursor {
	if cursor.Row == 0 {
		return cursor
	}
	row := cursor.Row - 1
	col := cursor.Col
	if length := lineLength(lines, row); col > length {
		col = length
	}
	return Cursor{Row: row, Col: col}
}

// MoveDown moves the cursor one row down, clamping the column to the
// target line's length.
func MoveDown(lines []string, cursor Cursor) Cursor {
	if cursor.Row >= len(lines)-1 {
		return cursor
	}
	row := cursor.Row + 1
	col := cursor.Col
	if length := lineLength(lines, row); col > length {
		col = length
	}
	return Cursor{Row: row, Col: col}
}
