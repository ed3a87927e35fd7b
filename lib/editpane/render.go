// Copyright 2026 The Scratchpad Authors
// SPDX-License-Identifier: Apache-2.0

package editpane

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/scratchpad-tui/scratchpad/lib/tui"
)

// paneStyles is the style set derived from the theme once per model.
// All styles come from the model's renderer so the color profile is
// forced to ANSI256 regardless of environment — output is identical
// in tests, pipes, and live terminals.
type paneStyles struct {
	text         lipgloss.Style
	match        lipgloss.Style
	currentMatch lipgloss.Style
	cursor       lipgloss.Style
	footer       lipgloss.Style
	readOnly     lipgloss.Style
}

func buildStyles(renderer *lipgloss.Renderer, theme tui.Theme) paneStyles {
	return paneStyles{
		text:         renderer.NewStyle().Foreground(theme.NormalText),
		match:        renderer.NewStyle().Foreground(theme.NormalText).Background(theme.SearchHighlightBackground),
		currentMatch: renderer.NewStyle().Foreground(theme.NormalText).Background(theme.SearchCurrentBackground),
		cursor:       renderer.NewStyle().Reverse(true),
		footer:       renderer.NewStyle().Foreground(theme.HelpText),
		readOnly:     renderer.NewStyle().Foreground(theme.ReadOnlyForeground).Bold(true),
	}
}

// matchSpan is one highlighted column range on a single line, clipped
// to the rendered width. Columns are rune offsets.
type matchSpan struct {
	start   int // Inclusive.
	end     int // Exclusive.
	current bool
}

// matchSpansForRow collects the highlight spans for a buffer row,
// clipping them to the rendered width. Matches entirely beyond the
// truncation point disappear with the text they would have styled.
func (model *Model) matchSpansForRow(row, width int) []matchSpan {
	var spans []matchSpan
	for _, indexed := range model.search.MatchesOnRow(row) {
		start := indexed.Match.Col
		end := indexed.Match.Col + indexed.Match.Length
		if start >= width {
			continue
		}
		if end > width {
			end = width
		}
		spans = append(spans, matchSpan{
			start:   start,
			end:     end,
			current: indexed.Index == model.search.CurrentIndex(),
		})
	}
	return spans
}

// renderSpans renders the rune range [offset, offset+len(runes)) of a
// line, splitting it into plain and match-highlighted segments at the
// span boundaries. The spans are in absolute line columns; offset
// maps them onto this sub-range (the cursor splits a line into two
// sub-ranges that each pass through here, so search highlighting and
// the cursor compose on the same line).
func (model *Model) renderSpans(runes []rune, offset int, spans []matchSpan) string {
	if len(runes) == 0 {
		return ""
	}

	var result strings.Builder
	position := 0
	for position < len(runes) {
		column := offset + position
		span, ok := spanAt(spans, column)
		if !ok {
			// Plain run: up to the next span start or end of range.
			next := len(runes)
			for _, candidate := range spans {
				if candidate.start > column && candidate.start-offset < next {
					next = candidate.start - offset
				}
			}
			result.WriteString(model.styles.text.Render(string(runes[position:next])))
			position = next
			continue
		}

		// Highlighted run: up to the span end or end of range.
		next := span.end - offset
		if next > len(runes) {
			next = len(runes)
		}
		style := model.styles.match
		if span.current {
			style = model.styles.currentMatch
		}
		result.WriteString(style.Render(string(runes[position:next])))
		position = next
	}
	return result.String()
}

// spanAt returns the span covering the given absolute column, if any.
func spanAt(spans []matchSpan, column int) (matchSpan, bool) {
	for _, span := range spans {
		if column >= span.start && column < span.end {
			return span, true
		}
	}
	return matchSpan{}, false
}

// renderLine produces the styled text for one buffer row. Lines longer
// than the content width are truncated before any styling so highlight
// offsets stay within the rendered substring; there is no soft-wrap.
func (model *Model) renderLine(row int) string {
	width := model.geometry.ContentWidth
	runes := []rune(model.lines[row])
	if len(runes) > width {
		runes = runes[:width]
	}

	isCursorRow := row == model.cursor.Row
	spans := model.matchSpansForRow(row, width)

	if !isCursorRow {
		if len(spans) == 0 && model.highlightEnabled() && row < len(model.fences) && model.fences[row].InFence {
			return model.highlighter.HighlightLine(string(runes), model.fences[row].Language)
		}
		return model.renderSpans(runes, 0, spans)
	}

	// Cursor line: the cell under the cursor renders inverted, and the
	// text on either side goes back through the match segmenter so a
	// match containing the cursor still shows its highlight around it.
	col := model.cursor.Col
	if col >= width {
		// Cursor is past the truncation point — nothing to invert.
		return model.renderSpans(runes, 0, spans)
	}

	before := model.renderSpans(runes[:col], 0, spans)
	underCursor := " "
	after := ""
	if col < len(runes) {
		underCursor = string(runes[col])
		after = model.renderSpans(runes[col+1:], col+1, spans)
	}
	return before + model.styles.cursor.Render(underCursor) + after
}

// highlightEnabled reports whether syntax highlighting is on: a
// highlighter is set and the host has not disabled it.
func (model *Model) highlightEnabled() bool {
	return model.highlighter != nil
}

// padToWidth pads a styled line with spaces to the content width.
// Widths are measured on the visible text, not the ANSI bytes.
func padToWidth(line string, width int) string {
	visible := ansi.StringWidth(line)
	if visible < width {
		line += strings.Repeat(" ", width-visible)
	}
	return line
}

// footerView renders the single footer line inside the border: the
// search bar when a search is active or a query is set, otherwise the
// cursor position and key hints. Read-only mode is always flagged.
func (model *Model) footerView(width int) string {
	if bar := model.search.View(model.theme, width); bar != "" {
		return ansi.Truncate(bar, width, "")
	}

	position := model.styles.footer.Render(
		" " + itoa(model.cursor.Row+1) + ":" + itoa(model.cursor.Col+1))
	hints := model.styles.footer.Render("  C-s save  C-f find  C-o editor")
	line := position + hints
	if model.readOnly {
		line = position + model.styles.readOnly.Render("  read-only") + hints
	}
	return ansi.Truncate(padToWidth(line, width), width, "")
}

// View renders the pane: bordered text area with a left padding
// column, a right-edge scrollbar, and a footer line.
func (model *Model) View() string {
	width := model.geometry.ContentWidth
	height := model.geometry.ContentHeight
	if width <= 0 || height <= 0 {
		return ""
	}

	scrollbar := strings.Split(
		tui.RenderScrollbar(model.theme, height, len(model.lines), height, model.viewport.ScrollTop, model.active),
		"\n")

	rows := make([]string, 0, height+1)
	for screenRow := 0; screenRow < height; screenRow++ {
		row := model.viewport.ScrollTop + screenRow
		rendered := ""
		if row < len(model.lines) {
			rendered = model.renderLine(row)
		}
		line := " " + padToWidth(rendered, width)
		if screenRow < len(scrollbar) {
			line += scrollbar[screenRow]
		}
		rows = append(rows, line)
	}
	rows = append(rows, padToWidth(model.footerView(width+2), width+2))

	borderColor := model.theme.BorderColor
	if model.active {
		borderColor = model.theme.BorderFocused
	}
	borderStyle := model.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor)

	return borderStyle.Render(strings.Join(rows, "\n"))
}

// itoa converts a non-negative int to its decimal representation.
func itoa(value int) string {
	if value == 0 {
		return "0"
	}
	var digits [20]byte
	position := len(digits)
	for value > 0 {
		position--
		digits[position] = byte('0' + value%10)
		value /= 10
	}
	return string(digits[position:])
}
