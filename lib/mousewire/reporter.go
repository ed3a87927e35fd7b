// Copyright 2026 The Scratchpad Authors
// SPDX-License-Identifier: Apache-2.0

package mousewire

import "io"

// Escape sequences controlling mouse reporting. Basic tracking
// (DECSET 1000) turns button events on; the SGR extension (DECSET
// 1006) switches the coordinate encoding from the legacy fixed-width
// form to the unambiguous "ESC [ <" form, which supports terminals
// wider than 223 columns. Disabling reverses the order so the
// terminal never reports in the legacy encoding in between.
const (
	enableSequence  = "\x1b[?1000h\x1b[?1006h"
	disableSequence = "\x1b[?1006l\x1b[?1000l"
)

// Reporter manages the terminal mouse-reporting mode on an output
// stream (normally the controlling terminal). Enable and Disable are
// paired and idempotent: enabling twice writes the escape sequences
// once, disabling when not enabled writes nothing. This matters
// because mouse capture is process-wide terminal state — leaking it
// past the widget's lifetime would leave the rest of the application
// (or the user's shell) with a dead mouse.
//
// Reporter is not safe for concurrent use; the editing pane drives it
// from a single event loop.
type Reporter struct {
	writer  io.Writer
	enabled bool
}

// NewReporter creates a Reporter writing to the given stream.
func NewReporter(writer io.Writer) *Reporter {
	return &Reporter{writer: writer}
}

// Enable turns on SGR mouse reporting. A no-op if already enabled.
func (reporter *Reporter) Enable() error {
	if reporter.enabled {
		return nil
	}
	if _, err := io.WriteString(reporter.writer, enableSequence); err != nil {
		return err
	}
	reporter.enabled = true
	return nil
}

// Disable turns off SGR mouse reporting. A no-op if not enabled.
func (reporter *Reporter) Disable() error {
	if !reporter.enabled {
		return nil
	}
	if _, err := io.WriteString(reporter.writer, disableSequence); err != nil {
		return err
	}
	reporter.enabled = false
	return nil
}

// Enabled reports whether mouse reporting is currently on.
func (reporter *Reporter) Enabled() bool {
	return reporter.enabled
}

// Close disables reporting. Safe to call multiple times; intended for
// defer so teardown paths cannot leak mouse capture.
func (reporter *Reporter) Close() error {
	return reporter.Disable()
}
