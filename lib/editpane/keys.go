// Copyright 2026 The Scratchpad Authors
// SPDX-License-Identifier: Apache-2.0

package editpane

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the pane's command key bindings. Plain character
// keys are never bound to commands: in normal mode they insert into
// the buffer, in search mode they extend the query. Commands use
// control chords and navigation keys only.
type KeyMap struct {
	// Navigation.
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	LineStart key.Binding
	LineEnd   key.Binding

	// Host callbacks.
	Save         key.Binding
	OpenExternal key.Binding

	// Search.
	SearchStart    key.Binding
	SearchNext     key.Binding
	SearchPrevious key.Binding

	// Mode control.
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap is the built-in binding set. Arrow keys and the
// conventional editor chords (ctrl+s save, ctrl+f find).
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "right"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("PgUp", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("PgDn", "page down"),
	),
	LineStart: key.NewBinding(
		key.WithKeys("home", "ctrl+a"),
		key.WithHelp("Home", "line start"),
	),
	LineEnd: key.NewBinding(
		key.WithKeys("end", "ctrl+e"),
		key.WithHelp("End", "line end"),
	),
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("C-s", "save"),
	),
	OpenExternal: key.NewBinding(
		key.WithKeys("ctrl+o"),
		key.WithHelp("C-o", "external editor"),
	),
	SearchStart: key.NewBinding(
		key.WithKeys("ctrl+f"),
		key.WithHelp("C-f", "search"),
	),
	SearchNext: key.NewBinding(
		key.WithKeys("ctrl+n"),
		key.WithHelp("C-n", "next match"),
	),
	SearchPrevious: key.NewBinding(
		key.WithKeys("ctrl+p"),
		key.WithHelp("C-p", "prev match"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "cancel"),
	),
}
