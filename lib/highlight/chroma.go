// Copyright 2026 The Scratchpad Authors
// SPDX-License-Identifier: Apache-2.0

package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

// Liner highlights a single line of text. Implementations must be
// pure: same inputs, same output, no retained state between lines.
// The language is the fenced-code-block info string for lines inside
// a fence, and empty for prose lines.
type Liner interface {
	HighlightLine(line, language string) string
}

// Chroma is a Liner backed by the chroma lexer registry, emitting
// 256-color terminal escapes. Output is deterministic regardless of
// the environment: the terminal256 formatter does not consult $TERM,
// so tests and piped output see the same bytes as a live terminal.
type Chroma struct {
	formatter string
	style     string
}

// NewChroma returns a Chroma highlighter with the default formatter
// and style used across scratchpad UIs.
func NewChroma() *Chroma {
	return &Chroma{formatter: "terminal256", style: "monokai"}
}

// HighlightLine highlights one line as the given language. Unknown or
// empty languages fall back to chroma's plaintext lexer. Any
// highlighting failure returns the line unstyled — a rendering
// collaborator must never break the frame.
func (chroma *Chroma) HighlightLine(line, language string) string {
	if line == "" {
		return ""
	}
	var buffer strings.Builder
	if err := quick.Highlight(&buffer, line, language, chroma.formatter, chroma.style); err != nil {
		return line
	}
	return strings.TrimSuffix(buffer.String(), "\n")
}
