// Copyright 2026 The Scratchpad Authors
// SPDX-License-Identifier: Apache-2.0

package highlight

import (
	"sort"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Fence records one line's code-block membership.
type Fence struct {
	// InFence is true for lines inside a fenced code block. The fence
	// delimiter lines themselves are prose, not code.
	InFence bool

	// Language is the fence info string ("go", "python", ...). Empty
	// for unlabeled fences and for prose lines.
	Language string
}

// fenceParserInstance is initialized once and reused. The parser
// configuration never changes and the goldmark Parser is safe to
// share — parsing creates per-call state via Parse(reader).
var (
	fenceParserInstance goldmark.Markdown
	fenceParserOnce     sync.Once
)

func getFenceParser() goldmark.Markdown {
	fenceParserOnce.Do(func() {
		fenceParserInstance = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		)
	})
	return fenceParserInstance
}

// ScanFences computes per-line fence membership for a markdown
// document. The returned slice has exactly one entry per line of
// content (split on newlines). Parsing is structural — goldmark
// decides what is and is not a fence — so membership agrees with how
// the document renders, including fences nested in list items and
// blockquotes.
func ScanFences(content string) []Fence {
	lines := strings.Split(content, "\n")
	fences := make([]Fence, len(lines))
	if content == "" {
		return fences
	}

	source := []byte(content)
	lineStarts := lineStartOffsets(source)
	document := getFenceParser().Parser().Parse(text.NewReader(source))

	ast.Walk(document, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fence, ok := node.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		language := ""
		if fence.Info != nil {
			language = string(fence.Language(source))
		}

		segments := fence.Lines()
		for index := 0; index < segments.Len(); index++ {
			segment := segments.At(index)
			lineIndex := lineIndexAt(lineStarts, segment.Start)
			if lineIndex >= 0 && lineIndex < len(fences) {
				fences[lineIndex] = Fence{InFence: true, Language: language}
			}
		}
		return ast.WalkContinue, nil
	})

	return fences
}

// lineStartOffsets returns the byte offset of the first byte of each
// line in source.
func lineStartOffsets(source []byte) []int {
	starts := []int{0}
	for offset, b := range source {
		if b == '\n' {
			starts = append(starts, offset+1)
		}
	}
	return starts
}

// lineIndexAt returns the 0-based line index containing the byte
// offset, given sorted line start offsets.
func lineIndexAt(lineStarts []int, offset int) int {
	return sort.Search(len(lineStarts), func(index int) bool {
		return lineStarts[index] > offset
	}) - 1
}
