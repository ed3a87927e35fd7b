// Copyright 2026 The Scratchpad Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides a minimal injectable time source.
//
// Production code takes a [Clock] parameter (or holds one in a struct
// field) instead of calling time.Now directly, so behavior that depends
// on elapsed time — the editing pane's manual-scroll grace window — can
// be tested without sleeping.
package clock
