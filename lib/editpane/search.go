// Copyright 2026 The Scratchpad Authors
// SPDX-License-Identifier: Apache-2.0

package editpane

import (
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"github.com/scratchpad-tui/scratchpad/lib/tui"
)

// Match identifies a single occurrence of the search query in the
// buffer. Col and Length are rune offsets within the line.
type Match struct {
	Row    int
	Col    int
	Length int
}

// nearnessRowWeight makes row distance dominate column distance when
// picking the match nearest the cursor: any match on a closer row
// beats every match on a farther row.
const nearnessRowWeight = 10000

// SearchModel manages the pane's in-buffer text search state. The
// model routes keystrokes to HandleRune/HandleBackspace while search
// mode is active and reads the results via accessor methods; match
// recomputation stays in the caller because it owns the buffer.
type SearchModel struct {
	// Input is the current search query text.
	Input string

	// Active is true when the search bar has keyboard focus.
	Active bool

	matches []Match
	current int // Index of the currently highlighted match.
}

// HandleRune appends a character to the search input.
func (search *SearchModel) HandleRune(character rune) {
	search.Input += string(character)
}

// HandleBackspace removes the last character from the search input.
// Returns true if the input changed.
func (search *SearchModel) HandleBackspace() bool {
	if len(search.Input) == 0 {
		return false
	}
	runes := []rune(search.Input)
	search.Input = string(runes[:len(runes)-1])
	return true
}

// Clear resets the search state: clears the query, deactivates the
// input, and removes all match data.
func (search *SearchModel) Clear() {
	search.Input = ""
	search.Active = false
	search.matches = nil
	search.current = 0
}

// SetMatches replaces the match list (called after the query or the
// buffer changed). Clamps the current match index to the new bounds.
func (search *SearchModel) SetMatches(matches []Match) {
	search.matches = matches
	if search.current >= len(matches) {
		if len(matches) > 0 {
			search.current = len(matches) - 1
		} else {
			search.current = 0
		}
	}
}

// MatchCount returns the total number of matches.
func (search *SearchModel) MatchCount() int {
	return len(search.matches)
}

// CurrentIndex returns the 0-based index of the current match.
func (search *SearchModel) CurrentIndex() int {
	return search.current
}

// CurrentMatch returns the current match, or nil if no matches exist.
func (search *SearchModel) CurrentMatch() *Match {
	if len(search.matches) == 0 {
		return nil
	}
	return &search.matches[search.current]
}

// NextMatch advances to the next match, wrapping around at the end.
func (search *SearchModel) NextMatch() {
	if len(search.matches) == 0 {
		return
	}
	search.current = (search.current + 1) % len(search.matches)
}

// PreviousMatch moves to the previous match, wrapping to the end.
func (search *SearchModel) PreviousMatch() {
	if len(search.matches) == 0 {
		return
	}
	search.current = (search.current - 1 + len(search.matches)) % len(search.matches)
}

// JumpToNearest selects the match closest to the cursor, weighting
// row distance far above column distance, and returns its index.
// Returns -1 when there are no matches.
func (search *SearchModel) JumpToNearest(cursor Cursor) int {
	if len(search.matches) == 0 {
		return -1
	}

	best := 0
	bestDistance := -1
	for index, match := range search.matches {
		distance := abs(match.Row-cursor.Row)*nearnessRowWeight + abs(match.Col-cursor.Col)
		if bestDistance < 0 || distance < bestDistance {
			best = index
			bestDistance = distance
		}
	}
	search.current = best
	return best
}

// MatchesOnRow returns the matches on the given buffer row, in column
// order, along with the global index of each (for current-match
// styling).
func (search *SearchModel) MatchesOnRow(row int) []indexedMatch {
	var result []indexedMatch
	for index, match := range search.matches {
		if match.Row == row {
			result = append(result, indexedMatch{Match: match, Index: index})
		}
	}
	return result
}

// indexedMatch pairs a match with its position in the global ordered
// match set.
type indexedMatch struct {
	Match Match
	Index int
}

// FindMatches scans every line for case-insensitive occurrences of
// query and returns them in document order (row, then column). The
// scan position advances one rune past each found start, so the next
// occurrence search begins just after the previous match's start.
// An empty query produces no matches.
//
// The full set is recomputed on every query keystroke and every
// buffer change with no cap on document size. That is O(document)
// per keystroke; fine for ticket descriptions and wiki pages, and
// kept deliberately simple rather than debounced.
func FindMatches(lines []string, query string) []Match {
	if query == "" {
		return nil
	}

	queryRunes := lowerRunes(query)
	queryLength := len(queryRunes)

	var matches []Match
	for row, line := range lines {
		lineRunes := lowerRunes(line)
		searchFrom := 0
		for {
			index := runeSliceIndex(lineRunes[searchFrom:], queryRunes)
			if index < 0 {
				break
			}
			start := searchFrom + index
			matches = append(matches, Match{Row: row, Col: start, Length: queryLength})
			searchFrom = start + 1
		}
	}
	return matches
}

// lowerRunes lowercases a string rune by rune. Per-rune mapping keeps
// the rune count identical to the input, so match columns computed on
// the lowered text index correctly into the original.
func lowerRunes(value string) []rune {
	runes := []rune(value)
	for index, character := range runes {
		runes[index] = unicode.ToLower(character)
	}
	return runes
}

// runeSliceIndex returns the index of the first occurrence of needle
// in haystack, or -1 if not found. The rune-level equivalent of
// strings.Index.
func runeSliceIndex(haystack, needle []rune) int {
	needleLength := len(needle)
	if needleLength == 0 {
		return 0
	}
	limit := len(haystack) - needleLength
	for index := 0; index <= limit; index++ {
		match := true
		for offset := 0; offset < needleLength; offset++ {
			if haystack[index+offset] != needle[offset] {
				match = false
				break
			}
		}
		if match {
			return index
		}
	}
	return -1
}

func abs(value int) int {
	if value < 0 {
		return -value
	}
	return value
}

// View renders the search bar for the pane footer. When active, shows
// " / query▎". When inactive with a query, shows the query and match
// count. When inactive with no query, returns empty string.
func (search *SearchModel) View(theme tui.Theme, width int) string {
	if !search.Active && search.Input == "" {
		return ""
	}

	if search.Active {
		style := lipgloss.NewStyle().
			Foreground(theme.NormalText).
			Width(width)
		cursor := lipgloss.NewStyle().
			Foreground(theme.HeaderForeground).
			Bold(true).
			Render("▎")
		return style.Render(" / " + search.Input + cursor)
	}

	// Inactive with text — show match count.
	style := lipgloss.NewStyle().
		Foreground(theme.FaintText).
		Width(width)

	matchInfo := " (no matches)"
	if len(search.matches) > 0 {
		matchInfo = " (" + itoa(search.current+1) + "/" + itoa(len(search.matches)) + ")"
	}
	return style.Render(" search: " + search.Input + matchInfo)
}
