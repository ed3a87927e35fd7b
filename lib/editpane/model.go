// Copyright 2026 The Scratchpad Authors
// SPDX-License-Identifier: Apache-2.0

package editpane

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/scratchpad-tui/scratchpad/lib/clock"
	"github.com/scratchpad-tui/scratchpad/lib/highlight"
	"github.com/scratchpad-tui/scratchpad/lib/mousewire"
	"github.com/scratchpad-tui/scratchpad/lib/tui"
)

// Mode identifies the pane's interaction mode.
type Mode int

const (
	// ModeNormal routes character input to buffer edits.
	ModeNormal Mode = iota
	// ModeSearch routes character input to the search query.
	ModeSearch
)

// graceWindowDefault is how long auto-scroll-to-cursor stays
// suppressed after a manual wheel scroll, so programmatic cursor
// motion does not immediately fight the user's deliberate scroll.
const graceWindowDefault = 500 * time.Millisecond

// Model is the multi-line text editing pane. It owns a line buffer, a
// 2D cursor, a scrolling viewport, and an incremental search; the
// host owns everything else (persistence, layout, surrounding
// widgets). The pane is purely reactive — no goroutines, no I/O
// beyond the mouse-reporting escape writes — and every state
// transition completes synchronously inside the event that caused it.
//
// Content flows both ways as whole strings: the host calls SetContent
// when its source of truth changes, and OnChange delivers the new
// joined content after every internal mutation.
type Model struct {
	theme      tui.Theme
	keys       KeyMap
	styles     paneStyles
	renderer   *lipgloss.Renderer
	timeSource clock.Clock

	lines    []string
	cursor   Cursor
	viewport Viewport
	search   SearchModel
	mode     Mode
	geometry Geometry

	// Syntax highlighting collaborator and per-line fence membership,
	// recomputed once per content change.
	highlighter highlight.Liner
	fences      []highlight.Fence

	// Mouse plumbing.
	reporter   *mousewire.Reporter
	wireParser mousewire.Parser
	wheelStep  int

	// Manual-scroll grace window: auto-scroll is suppressed until this
	// instant. Checked at decision time rather than cleared by a
	// timer, so the behavior is deterministic under a fake clock.
	suppressUntil time.Time
	graceWindow   time.Duration

	readOnly bool
	active   bool

	// Host callbacks. All optional; the pane performs no I/O itself.
	OnChange             func(content string)
	OnSave               func(content string)
	OnOpenExternalEditor func()
	OnRequestWritable    func()
}

// New creates an editing pane with an empty buffer. The time source
// drives the manual-scroll grace window; tests inject a fake.
func New(theme tui.Theme, keys KeyMap, timeSource clock.Clock) *Model {
	renderer := lipgloss.NewRenderer(os.Stderr, termenv.WithProfile(termenv.ANSI256))
	renderer.SetColorProfile(termenv.ANSI256)

	return &Model{
		theme:       theme,
		keys:        keys,
		styles:      buildStyles(renderer, theme),
		renderer:    renderer,
		timeSource:  timeSource,
		lines:       []string{""},
		wheelStep:   wheelStepDefault,
		graceWindow: graceWindowDefault,
	}
}

// SetHighlighter installs the syntax-highlighting collaborator. Pass
// nil to disable highlighting. Fence membership is recomputed from
// the current content.
func (model *Model) SetHighlighter(liner highlight.Liner) {
	model.highlighter = liner
	model.rescanFences()
}

// SetMouseOutput wires the writer (normally the controlling terminal)
// that receives the mouse-reporting enable/disable sequences. Without
// one, Activate manages no mouse capture.
func (model *Model) SetMouseOutput(writer io.Writer) {
	model.reporter = mousewire.NewReporter(writer)
}

// SetGeometry installs the pane's on-screen position and content
// dimensions, as computed by the host layout. Called once per layout
// pass. The viewport height follows the content height; the cursor is
// kept visible under the new size.
func (model *Model) SetGeometry(geometry Geometry) {
	model.geometry = geometry
	model.viewport.Height = geometry.ContentHeight
	model.viewport = model.viewport.ClampScroll(len(model.lines))
	model.ensureCursorVisible()
}

// SetReadOnly toggles read-only mode. A read-only pane renders and
// navigates identically but routes edit keystrokes to
// OnRequestWritable instead of mutating the buffer.
func (model *Model) SetReadOnly(readOnly bool) {
	model.readOnly = readOnly
}

// SetWheelStep overrides how many lines one wheel notch scrolls.
func (model *Model) SetWheelStep(step int) {
	if step > 0 {
		model.wheelStep = step
	}
}

// SetGraceWindow overrides the manual-scroll grace duration.
func (model *Model) SetGraceWindow(duration time.Duration) {
	if duration >= 0 {
		model.graceWindow = duration
	}
}

// SetContent replaces the buffer from the host's content string. The
// cursor and scroll position clamp to the new content, and matches
// and fence membership recompute. The host calls this on external
// changes; it is not echoed back through OnChange.
func (model *Model) SetContent(content string) {
	model.lines = SplitContent(content)
	model.cursor = ClampCursor(model.lines, model.cursor)
	model.viewport = model.viewport.ClampScroll(len(model.lines))
	model.refreshMatches()
	model.rescanFences()
}

// Content returns the buffer joined back into a single string.
func (model *Model) Content() string {
	return JoinLines(model.lines)
}

// Cursor returns the current cursor position.
func (model *Model) Cursor() Cursor {
	return model.cursor
}

// Viewport returns the current viewport.
func (model *Model) Viewport() Viewport {
	return model.viewport
}

// Mode returns the current interaction mode.
func (model *Model) Mode() Mode {
	return model.mode
}

// Search exposes the search state for host status displays.
func (model *Model) Search() *SearchModel {
	return &model.search
}

// Activate gives the pane focus: mouse reporting turns on (exactly
// once; re-activating is a no-op). The host calls this when the pane
// becomes the focused surface.
func (model *Model) Activate() error {
	if model.active {
		return nil
	}
	model.active = true
	if model.reporter != nil {
		return model.reporter.Enable()
	}
	return nil
}

// Deactivate removes focus: mouse reporting turns off synchronously
// and pending search state clears, so no terminal capture or mode
// leaks to sibling UI. Must be called on teardown.
func (model *Model) Deactivate() error {
	if !model.active {
		return nil
	}
	model.active = false
	model.search.Clear()
	model.mode = ModeNormal
	if model.reporter != nil {
		return model.reporter.Disable()
	}
	return nil
}

// Active reports whether the pane currently has focus.
func (model *Model) Active() bool {
	return model.active
}

// Update processes one bubbletea message. The pane mutates in place
// and returns no command: it schedules nothing and performs no
// asynchronous work.
func (model *Model) Update(message tea.Msg) {
	switch message := message.(type) {
	case tea.KeyMsg:
		model.handleKey(message)
	case tea.MouseMsg:
		model.HandleMouse(message)
	}
}

// handleKey routes a keystroke according to the interaction mode.
// Command chords work in both modes; raw characters edit the buffer
// in normal mode and the query in search mode.
func (model *Model) handleKey(message tea.KeyMsg) {
	if model.mode == ModeSearch {
		model.handleSearchKey(message)
		return
	}

	switch {
	case key.Matches(message, model.keys.Up):
		model.cursor = MoveUp(model.lines, model.cursor)
		model.ensureCursorVisible()
	case key.Matches(message, model.keys.Down):
		model.cursor = MoveDown(model.lines, model.cursor)
		model.ensureCursorVisible()
	case key.Matches(message, model.keys.Left):
		model.cursor = MoveLeft(model.lines, model.cursor)
		model.ensureCursorVisible()
	case key.Matches(message, model.keys.Right):
		model.cursor = MoveRight(model.lines, model.cursor)
		model.ensureCursorVisible()
	case key.Matches(message, model.keys.PageUp):
		model.pageBy(-model.viewport.Height)
	case key.Matches(message, model.keys.PageDown):
		model.pageBy(model.viewport.Height)
	case key.Matches(message, model.keys.LineStart):
		model.cursor.Col = 0
	case key.Matches(message, model.keys.LineEnd):
		model.cursor.Col = lineLength(model.lines, model.cursor.Row)
	case key.Matches(message, model.keys.Save):
		if model.OnSave != nil {
			model.OnSave(model.Content())
		}
	case key.Matches(message, model.keys.OpenExternal):
		if model.OnOpenExternalEditor != nil {
			model.OnOpenExternalEditor()
		}
	case key.Matches(message, model.keys.SearchStart):
		model.mode = ModeSearch
		model.search.Active = true
		model.refreshMatches()
	case key.Matches(message, model.keys.SearchNext):
		model.cycleMatch(+1)
	case key.Matches(message, model.keys.SearchPrevious):
		model.cycleMatch(-1)
	default:
		model.handleEditKey(message)
	}
}

// handleEditKey applies a buffer-mutating keystroke. In read-only
// mode nothing mutates; the attempt routes to OnRequestWritable so
// the host can offer to unlock.
func (model *Model) handleEditKey(message tea.KeyMsg) {
	var apply func() ([]string, Cursor)

	switch message.Type {
	case tea.KeyRunes, tea.KeySpace:
		runes := message.Runes
		if message.Type == tea.KeySpace {
			runes = []rune{' '}
		}
		apply = func() ([]string, Cursor) {
			lines, cursor := model.lines, model.cursor
			for _, character := range runes {
				lines, cursor = InsertRune(lines, cursor, character)
			}
			return lines, cursor
		}
	case tea.KeyEnter:
		apply = func() ([]string, Cursor) { return SplitLine(model.lines, model.cursor) }
	case tea.KeyBackspace:
		apply = func() ([]string, Cursor) { return DeleteBackward(model.lines, model.cursor) }
	case tea.KeyDelete:
		apply = func() ([]string, Cursor) { return DeleteForward(model.lines, model.cursor) }
	case tea.KeyTab:
		apply = func() ([]string, Cursor) {
			lines, cursor := InsertRune(model.lines, model.cursor, '\t')
			return lines, cursor
		}
	default:
		return
	}

	if model.readOnly {
		if model.OnRequestWritable != nil {
			model.OnRequestWritable()
		}
		return
	}

	model.lines, model.cursor = apply()
	model.contentMutated()
}

// handleSearchKey processes keystrokes while the search bar has
// focus. Every query change recomputes the match set and snaps the
// cursor to the nearest match.
func (model *Model) handleSearchKey(message tea.KeyMsg) {
	switch {
	case key.Matches(message, model.keys.Confirm):
		// Jump is already at the current match; leave search mode
		// with the query (and its highlights) intact.
		model.mode = ModeNormal
		model.search.Active = false
		model.jumpToCurrentMatch()
		return
	case key.Matches(message, model.keys.Cancel):
		model.mode = ModeNormal
		model.search.Clear()
		return
	case key.Matches(message, model.keys.SearchNext):
		model.cycleMatch(+1)
		return
	case key.Matches(message, model.keys.SearchPrevious):
		model.cycleMatch(-1)
		return
	}

	switch message.Type {
	case tea.KeyRunes, tea.KeySpace:
		runes := message.Runes
		if message.Type == tea.KeySpace {
			runes = []rune{' '}
		}
		for _, character := range runes {
			model.search.HandleRune(character)
		}
	case tea.KeyBackspace:
		if !model.search.HandleBackspace() {
			return
		}
	default:
		return
	}

	model.search.SetMatches(FindMatches(model.lines, model.search.Input))
	if model.search.JumpToNearest(model.cursor) >= 0 {
		model.jumpToCurrentMatch()
	}
}

// cycleMatch moves the current match forward or backward, wrapping
// circularly, and jumps the cursor to it.
func (model *Model) cycleMatch(direction int) {
	if direction > 0 {
		model.search.NextMatch()
	} else {
		model.search.PreviousMatch()
	}
	model.jumpToCurrentMatch()
}

// jumpToCurrentMatch moves the cursor to the current match and, when
// the match is off-screen, centers the viewport on it.
func (model *Model) jumpToCurrentMatch() {
	match := model.search.CurrentMatch()
	if match == nil {
		return
	}
	model.cursor = Cursor{Row: match.Row, Col: match.Col}
	if !model.viewport.Contains(match.Row) {
		model.viewport = model.viewport.CenterOn(match.Row, len(model.lines))
	}
}

// pageBy moves the cursor row and the scroll offset together by the
// given number of lines, resetting the column.
func (model *Model) pageBy(delta int) {
	model.cursor.Row += delta
	model.cursor.Col = 0
	model.cursor = ClampCursor(model.lines, model.cursor)
	model.viewport = model.viewport.ScrollBy(delta, len(model.lines))
	model.ensureCursorVisible()
}

// ensureCursorVisible auto-scrolls to keep the cursor on screen,
// unless a manual scroll armed the grace window and it has not yet
// expired.
func (model *Model) ensureCursorVisible() {
	if model.timeSource.Now().Before(model.suppressUntil) {
		return
	}
	model.viewport = model.viewport.EnsureVisible(model.cursor.Row, len(model.lines))
}

// contentMutated runs after every internal buffer edit: notify the
// host, recompute matches and fences, and keep the cursor visible.
func (model *Model) contentMutated() {
	if model.OnChange != nil {
		model.OnChange(model.Content())
	}
	model.refreshMatches()
	model.rescanFences()
	model.ensureCursorVisible()
}

// refreshMatches recomputes the match set for the active query.
func (model *Model) refreshMatches() {
	if model.search.Input == "" && !model.search.Active {
		return
	}
	model.search.SetMatches(FindMatches(model.lines, model.search.Input))
}

// rescanFences recomputes per-line code-block membership. Skipped
// entirely when no highlighter is installed — nothing would read it.
func (model *Model) rescanFences() {
	if model.highlighter == nil {
		model.fences = nil
		return
	}
	model.fences = highlight.ScanFences(model.Content())
}
