// Copyright 2026 The Scratchpad Authors
// SPDX-License-Identifier: Apache-2.0

package editpane

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/scratchpad-tui/scratchpad/lib/clock"
	"github.com/scratchpad-tui/scratchpad/lib/tui"
)

func TestRenderLineTruncates(t *testing.T) {
	model := newTestModel(clock.Fake(time.Unix(0, 0)))
	long := strings.Repeat("abcde ", 20)
	model.SetContent(long + "\nsecond")

	rendered := ansi.Strip(model.renderLine(1))
	if rendered != "second" {
		t.Errorf("short line rendered as %q", rendered)
	}

	// Cursor sits on row 0, so move it off to render the plain path.
	model.cursor = Cursor{Row: 1, Col: 0}
	rendered = ansi.Strip(model.renderLine(0))
	if want := string([]rune(long)[:40]); rendered != want {
		t.Errorf("long line rendered as %q, want %q", rendered, want)
	}
}

func TestRenderLineCursorCell(t *testing.T) {
	model := newTestModel(clock.Fake(time.Unix(0, 0)))
	model.SetContent("hello")
	model.cursor = Cursor{Row: 0, Col: 1}

	rendered := model.renderLine(0)
	if !strings.Contains(rendered, "\x1b[7m") {
		t.Errorf("cursor line %q has no reverse-video cell", rendered)
	}
	if got := ansi.Strip(rendered); got != "hello" {
		t.Errorf("visible text = %q, want %q", got, "hello")
	}

	// At end of line the cursor renders over a synthetic space.
	model.cursor = Cursor{Row: 0, Col: 5}
	rendered = model.renderLine(0)
	if got := ansi.Strip(rendered); got != "hello " {
		t.Errorf("visible text = %q, want %q", got, "hello ")
	}
}

func TestRenderLineCursorBeyondTruncation(t *testing.T) {
	model := newTestModel(clock.Fake(time.Unix(0, 0)))
	model.SetContent(strings.Repeat("x", 60))
	model.cursor = Cursor{Row: 0, Col: 50}

	// The cursor cell fell off with the truncated text; no inversion.
	rendered := model.renderLine(0)
	if strings.Contains(rendered, "\x1b[7m") {
		t.Errorf("truncated line %q shows a cursor cell", rendered)
	}
	if got := ansi.Strip(rendered); got != strings.Repeat("x", 40) {
		t.Errorf("visible text length = %d, want 40", len(got))
	}
}

func TestRenderLineMatchHighlight(t *testing.T) {
	model := newTestModel(clock.Fake(time.Unix(0, 0)))
	model.SetContent("say needle twice needle\nother")
	model.cursor = Cursor{Row: 1, Col: 0}
	model.search.Input = "needle"
	model.search.SetMatches(FindMatches(model.lines, "needle"))

	rendered := model.renderLine(0)
	if got := ansi.Strip(rendered); got != "say needle twice needle" {
		t.Errorf("visible text = %q", got)
	}
	// Current match and other matches use distinct backgrounds.
	if !strings.Contains(rendered, "48;5;100") {
		t.Errorf("no current-match background in %q", rendered)
	}
	if !strings.Contains(rendered, "48;5;58") {
		t.Errorf("no match background in %q", rendered)
	}
}

func TestRenderLineMatchAndCursorCompose(t *testing.T) {
	model := newTestModel(clock.Fake(time.Unix(0, 0)))
	model.SetContent("abcdef")
	model.search.Input = "cde"
	model.search.SetMatches(FindMatches(model.lines, "cde"))
	model.cursor = Cursor{Row: 0, Col: 3}

	rendered := model.renderLine(0)
	if got := ansi.Strip(rendered); got != "abcdef" {
		t.Errorf("visible text = %q", got)
	}
	if !strings.Contains(rendered, "\x1b[7m") {
		t.Errorf("no cursor cell in %q", rendered)
	}
	if !strings.Contains(rendered, "48;5;100") {
		t.Errorf("match highlight lost around cursor in %q", rendered)
	}
}

func TestMatchSpansClipToWidth(t *testing.T) {
	model := newTestModel(clock.Fake(time.Unix(0, 0)))
	model.SetContent(strings.Repeat("x", 38) + "needle and more needle")
	model.search.Input = "needle"
	model.search.SetMatches(FindMatches(model.lines, "needle"))

	spans := model.matchSpansForRow(0, 40)
	// First match starts at col 38 and clips at the width; the second
	// starts past the width and disappears.
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1: %v", len(spans), spans)
	}
	if spans[0].start != 38 || spans[0].end != 40 {
		t.Errorf("span = [%d,%d), want [38,40)", spans[0].start, spans[0].end)
	}
}

type fakeLiner struct {
	calls []string
}

func (liner *fakeLiner) HighlightLine(line, language string) string {
	liner.calls = append(liner.calls, language+":"+line)
	return "H<" + line + ">"
}

func TestFenceLinesDelegateToHighlighter(t *testing.T) {
	model := newTestModel(clock.Fake(time.Unix(0, 0)))
	liner := &fakeLiner{}
	model.SetHighlighter(liner)
	model.SetContent("prose\n```go\nfmt.Println()\n```\nmore prose")
	model.cursor = Cursor{Row: 0, Col: 0}

	if got := model.renderLine(2); got != "H<fmt.Println()>" {
		t.Errorf("fence line rendered %q", got)
	}
	if len(liner.calls) != 1 || liner.calls[0] != "go:fmt.Println()" {
		t.Errorf("highlighter calls = %v", liner.calls)
	}

	// Prose and delimiter lines never reach the highlighter.
	model.renderLine(0)
	model.renderLine(1)
	model.renderLine(3)
	model.renderLine(4)
	if len(liner.calls) != 1 {
		t.Errorf("non-fence lines reached the highlighter: %v", liner.calls)
	}
}

func TestFenceHighlightSkippedOnCursorAndMatchRows(t *testing.T) {
	model := newTestModel(clock.Fake(time.Unix(0, 0)))
	liner := &fakeLiner{}
	model.SetHighlighter(liner)
	model.SetContent("```\ncode here\n```")

	// Cursor row renders through the segmenter so the cursor cell shows.
	model.cursor = Cursor{Row: 1, Col: 0}
	if got := model.renderLine(1); strings.HasPrefix(got, "H<") {
		t.Errorf("cursor row delegated to highlighter: %q", got)
	}

	// Rows with search matches keep the match styling.
	model.cursor = Cursor{Row: 0, Col: 0}
	model.search.Input = "code"
	model.search.SetMatches(FindMatches(model.lines, "code"))
	if got := model.renderLine(1); strings.HasPrefix(got, "H<") {
		t.Errorf("match row delegated to highlighter: %q", got)
	}
}

func TestFooterShowsPositionAndFlags(t *testing.T) {
	model := newTestModel(clock.Fake(time.Unix(0, 0)))
	model.SetContent("hello\nworld")
	model.cursor = Cursor{Row: 1, Col: 3}

	footer := ansi.Strip(model.footerView(60))
	if !strings.Contains(footer, "2:4") {
		t.Errorf("footer %q missing 1-based cursor position", footer)
	}
	if strings.Contains(footer, "read-only") {
		t.Errorf("footer %q flags read-only on a writable pane", footer)
	}

	model.SetReadOnly(true)
	footer = ansi.Strip(model.footerView(60))
	if !strings.Contains(footer, "read-only") {
		t.Errorf("footer %q missing read-only flag", footer)
	}
}

func TestFooterShowsSearchBar(t *testing.T) {
	model := newTestModel(clock.Fake(time.Unix(0, 0)))
	model.SetContent("abc")
	model.Update(tea.KeyMsg{Type: tea.KeyCtrlF})
	model.Update(keyRunes("ab"))

	footer := ansi.Strip(model.footerView(60))
	if !strings.Contains(footer, "/ ab") {
		t.Errorf("footer %q missing active search query", footer)
	}
}

func TestViewDimensions(t *testing.T) {
	model := newTestModel(clock.Fake(time.Unix(0, 0)))
	model.SetContent("one\ntwo")

	lines := strings.Split(model.View(), "\n")
	// Content rows plus footer, inside a top and bottom border.
	wantLines := model.geometry.ContentHeight + 1 + 2
	if len(lines) != wantLines {
		t.Fatalf("view has %d lines, want %d", len(lines), wantLines)
	}

	// Left padding, content, scrollbar, and border make every row the
	// same visible width.
	wantWidth := model.geometry.ContentWidth + 4
	for index, line := range lines {
		if got := ansi.StringWidth(line); got != wantWidth {
			t.Errorf("line %d width = %d, want %d", index, got, wantWidth)
		}
	}
}

func TestViewEmptyGeometry(t *testing.T) {
	model := New(tui.DefaultTheme, DefaultKeyMap, clock.Fake(time.Unix(0, 0)))
	if view := model.View(); view != "" {
		t.Errorf("zero-geometry view = %q, want empty", view)
	}
}

func TestItoa(t *testing.T) {
	values := map[int]string{0: "0", 7: "7", 10: "10", 4096: "4096"}
	for value, want := range values {
		if got := itoa(value); got != want {
			t.Errorf("itoa(%d) = %q, want %q", value, got, want)
		}
	}
}
