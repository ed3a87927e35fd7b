// Copyright 2026 The Scratchpad Authors
// SPDX-License-Identifier: Apache-2.0

// Package mousewire implements the terminal side of SGR extended mouse
// reporting: turning reporting on and off, and decoding the incoming
// escape-sequence stream into discrete events.
//
// The wire grammar is fixed:
//
//	ESC [ < button ; column ; row (M|m)
//
// with 1-based coordinates. A trailing 'M' is a press, 'm' a release.
// Button codes of interest to the editing pane are 0 (primary button),
// 64 (wheel up), and 65 (wheel down); everything else is decoded and
// left to the caller to ignore.
//
// [Reporter] owns the process-wide enable/disable side effect and
// guarantees pairing: one enable precedes one disable per activation,
// re-enabling is a no-op, and Close always restores the terminal.
// [Parser] is a pure incremental decoder — bytes in, events out — so
// protocol handling is testable without a terminal. Raw input may be
// split across reads at any byte boundary; the parser buffers a
// residual fragment between calls and never errors on malformed
// input (untrusted terminal bytes are skipped, not surfaced).
package mousewire
