// Copyright 2026 The Scratchpad Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Clock abstracts the current time for testability. Production code
// injects Real(); tests inject a Fake with deterministic control.
//
// The editing pane is fully synchronous: it never schedules timers,
// it only compares deadlines against the current time at decision
// points (the manual-scroll grace window). Clock therefore exposes
// just Now.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// Real returns a Clock backed by the standard time package.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }
