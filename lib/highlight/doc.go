// Copyright 2026 The Scratchpad Authors
// SPDX-License-Identifier: Apache-2.0

// Package highlight provides the syntax-highlighting collaborator for
// the editing pane.
//
// The pane treats highlighting as a pure per-line function: given a
// line of text and the language of the fenced code block it sits in
// (empty outside fences), return the line with ANSI styling applied.
// [Chroma] implements that contract with the chroma lexer/formatter
// pipeline.
//
// [ScanFences] computes per-line code-block membership for a markdown
// document by parsing it with goldmark and walking the fenced code
// block nodes. The pane recomputes this once per content change and
// feeds the result back into the highlighter line by line.
package highlight
