// Copyright 2026 The Scratchpad Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Fake returns a FakeClock initialized to the given time. Time stands
// still until Advance or Set is called.
func Fake(initial time.Time) *FakeClock {
	return &FakeClock{current: initial}
}

// FakeClock is a deterministic Clock for testing. Time moves only
// when the test says so.
type FakeClock struct {
	current time.Time
}

// Now returns the current fake time.
func (clock *FakeClock) Now() time.Time { return clock.current }

// Advance moves the fake time forward by d.
func (clock *FakeClock) Advance(d time.Duration) {
	clock.current = clock.current.Add(d)
}

// Set jumps the fake time to an absolute instant.
func (clock *FakeClock) Set(instant time.Time) {
	clock.current = instant
}
