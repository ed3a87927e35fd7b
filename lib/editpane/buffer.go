// Copyright 2026 The Scratchpad Authors
// SPDX-License-Identifier: Apache-2.0

package editpane

import (
	"slices"
	"strings"
)

// Cursor is a position in the line buffer. Row indexes the line
// sequence; Col is a rune offset within that line, ranging from 0 to
// the line's rune count inclusive (the position past the last rune is
// valid — that is where typing appends).
type Cursor struct {
	Row int
	Col int
}

// SplitContent derives the line buffer from the host's content string.
// Splitting on newline boundaries is lossless: JoinLines restores the
// original content byte for byte, trailing newline included.
func SplitContent(content string) []string {
	return strings.Split(content, "\n")
}

// JoinLines is the inverse of SplitContent.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// InsertRune splices a character into the line at the cursor and
// advances the cursor column past it. Like all buffer mutations it is
// pure: the input slice is not modified, the caller persists the
// returned buffer and cursor.
func InsertRune(lines []string, cursor Cursor, character rune) ([]string, Cursor) {
	line := []rune(lines[cursor.Row])
	line = slices.Insert(line, cursor.Col, character)

	result := slices.Clone(lines)
	result[cursor.Row] = string(line)
	return result, Cursor{Row: cursor.Row, Col: cursor.Col + 1}
}

// SplitLine breaks the cursor's line in two at the cursor column (the
// Enter key): the text right of the cursor becomes a new line below,
// and the cursor moves to its start.
func SplitLine(lines []string, cursor Cursor) ([]string, Cursor) {
	line := []rune(lines[cursor.Row])
	before := string(line[:cursor.Col])
	after := string(line[cursor.Col:])

	result := slices.Clone(lines)
	result[cursor.Row] = before
	result = slices.Insert(result, cursor.Row+1, after)
	return result, Cursor{Row: cursor.Row + 1, Col: 0}
}

// DeleteBackward removes the character left of the cursor. At column
// zero it instead joins the current line onto the end of the previous
// one, placing the cursor at the join point (the previous line's
// original length). At the very start of the buffer it is a no-op.
func DeleteBackward(lines []string, cursor Cursor) ([]string, Cursor) {
	if cursor.Col > 0 {
		line := []rune(lines[cursor.Row])
		line = slices.Delete(line, cursor.Col-1, cursor.Col)

		result := slices.Clone(lines)
		result[cursor.Row] = string(line)
		return result, Cursor{Row: cursor.Row, Col: cursor.Col - 1}
	}

	if cursor.Row == 0 {
		return lines, cursor
	}

	previousLength := len([]rune(lines[cursor.Row-1]))
	result := slices.Clone(lines)
	result[cursor.Row-1] = lines[cursor.Row-1] + lines[cursor.Row]
	result = slices.Delete(result, cursor.Row, cursor.Row+1)
	return result, Cursor{Row: cursor.Row - 1, Col: previousLength}
}

// DeleteForward removes the character under the cursor. At the end of
// a line it joins the next line onto the current one; the cursor does
// not move. At the very end of the buffer it is a no-op.
func DeleteForward(lines []string, cursor Cursor) ([]string, Cursor) {
	line := []rune(lines[cursor.Row])
	if cursor.Col < len(line) {
		line = slices.Delete(line, cursor.Col, cursor.Col+1)

		result := slices.Clone(lines)
		result[cursor.Row] = string(line)
		return result, cursor
	}

	if cursor.Row == len(lines)-1 {
		return lines, cursor
	}

	result := slices.Clone(lines)
	result[cursor.Row] = lines[cursor.Row] + lines[cursor.Row+1]
	result = slices.Delete(result, cursor.Row+1, cursor.Row+2)
	return result, cursor
}
