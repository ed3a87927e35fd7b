// Copyright 2026 The Scratchpad Authors
// SPDX-License-Identifier: Apache-2.0

// Package editpane implements a multi-line text viewport/editor pane
// for terminal UIs: a 2D cursor over a line buffer, a scrolling
// viewport that keeps the cursor visible, incremental substring
// search with wraparound navigation, and mouse click-to-position
// translation against host-supplied geometry.
//
// The pane knows nothing about what it is editing — ticket
// descriptions, wiki page bodies, commit messages are all the same
// mutable string to it. The host owns persistence, undo, layout, and
// every surrounding widget; the pane reports each mutation through
// OnChange and exposes save/external-editor/unlock intents as
// callbacks.
//
// Buffer mutations ([InsertRune], [SplitLine], [DeleteBackward],
// [DeleteForward]) are pure functions, as are cursor motion and
// viewport arithmetic, so the interactive core is testable without a
// terminal. The [Model] ties them to bubbletea messages and owns the
// one piece of process-wide state: terminal mouse capture, enabled on
// Activate and always released on Deactivate.
//
// Data flow:
//
//	keyboard / mouse input
//	        |
//	    [Model] -- buffer ops --> lines, cursor
//	        |                        |
//	        |                  OnChange(content)
//	        |                        |
//	  [SearchModel] <-- match recompute on change
//	        |
//	   render composer -> styled frame (lipgloss)
package editpane
