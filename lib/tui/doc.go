// Copyright 2026 The Scratchpad Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides terminal UI primitives shared by scratchpad
// widgets: the color [Theme] and the vertical scrollbar strip rendered
// at a pane's right edge.
//
// Widget-specific logic (the editing pane itself, mouse protocol
// handling, syntax highlighting) lives in its own package; this one
// holds only presentation pieces with no state of their own.
package tui
