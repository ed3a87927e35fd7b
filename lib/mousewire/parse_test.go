// Copyright 2026 The Scratchpad Authors
// SPDX-License-Identifier: Apache-2.0

package mousewire

import "testing"

func TestParserSingleEvents(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Event
	}{
		{
			name:  "primary press",
			input: "\x1b[<0;1;1M",
			want:  Event{Button: ButtonPrimary, Col: 1, Row: 1},
		},
		{
			name:  "primary release",
			input: "\x1b[<0;10;20m",
			want:  Event{Button: ButtonPrimary, Col: 10, Row: 20, Release: true},
		},
		{
			name:  "wheel up",
			input: "\x1b[<64;40;12M",
			want:  Event{Button: ButtonWheelUp, Col: 40, Row: 12},
		},
		{
			name:  "wheel down",
			input: "\x1b[<65;40;12M",
			want:  Event{Button: ButtonWheelDown, Col: 40, Row: 12},
		},
		{
			name:  "large coordinates",
			input: "\x1b[<0;500;300M",
			want:  Event{Button: ButtonPrimary, Col: 500, Row: 300},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var parser Parser
			events := parser.Feed([]byte(test.input))
			if len(events) != 1 {
				t.Fatalf("expected 1 event, got %d", len(events))
			}
			if events[0] != test.want {
				t.Errorf("got %+v, want %+v", events[0], test.want)
			}
		})
	}
}

func TestParserMultipleEventsInOneChunk(t *testing.T) {
	var parser Parser
	events := parser.Feed([]byte("\x1b[<0;1;1M\x1b[<64;2;3M\x1b[<0;4;5m"))
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	if events[1].Button != ButtonWheelUp {
		t.Errorf("event 1: expected wheel up, got button %d", events[1].Button)
	}
	if !events[2].Release {
		t.Error("event 2: expected release")
	}
}

func TestParserSequenceSplitAcrossChunks(t *testing.T) {
	// Split at every possible byte boundary: the parser must produce
	// exactly one identical event regardless of where the read
	// boundary falls.
	sequence := []byte("\x1b[<65;123;45M")
	want := Event{Button: ButtonWheelDown, Col: 123, Row: 45}

	for split := 1; split < len(sequence); split++ {
		var parser Parser
		events := parser.Feed(sequence[:split])
		events = append(events, parser.Feed(sequence[split:])...)
		if len(events) != 1 {
			t.Fatalf("split %d: expected 1 event, got %d", split, len(events))
		}
		if events[0] != want {
			t.Errorf("split %d: got %+v, want %+v", split, events[0], want)
		}
	}
}

func TestParserInterleavedGarbage(t *testing.T) {
	var parser Parser
	events := parser.Feed([]byte("hello\x1b[<0;2;2Mworld\x1b[A\x1b[<64;3;3M"))
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Col != 2 || events[1].Button != ButtonWheelUp {
		t.Errorf("unexpected events: %+v", events)
	}
}

func TestParserMalformedSequences(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "missing params", input: "\x1b[<M"},
		{name: "empty param", input: "\x1b[<0;;5M"},
		{name: "too many params", input: "\x1b[<0;1;2;3M"},
		{name: "letter in params", input: "\x1b[<0;1x;2M"},
		{name: "oversized param", input: "\x1b[<0;1234567;2M"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var parser Parser
			if events := parser.Feed([]byte(test.input)); len(events) != 0 {
				t.Errorf("expected no events from malformed input, got %+v", events)
			}
			// The parser must recover: a valid sequence after the
			// malformed one still decodes.
			events := parser.Feed([]byte("\x1b[<0;7;8M"))
			if len(events) != 1 || events[0].Col != 7 || events[0].Row != 8 {
				t.Errorf("expected recovery event at (7,8), got %+v", events)
			}
		})
	}
}

func TestParserResidualBounded(t *testing.T) {
	var parser Parser
	// An introducer followed by digits that never terminate. The
	// residual must be truncated rather than growing without bound.
	parser.Feed([]byte("\x1b[<0;1"))
	for range 80 {
		parser.Feed([]byte(";"))
	}
	if len(parser.residual) > residualLimit {
		t.Errorf("residual grew to %d bytes, limit is %d", len(parser.residual), residualLimit)
	}

	// And the parser still works afterwards.
	events := parser.Feed([]byte("\x1b[<0;3;4M"))
	if len(events) != 1 || events[0].Col != 3 {
		t.Errorf("expected recovery after truncation, got %+v", events)
	}
}

func TestParserKeepsPartialIntroducer(t *testing.T) {
	var parser Parser
	// A lone ESC at the end of a chunk may be the start of a report.
	parser.Feed([]byte("abc\x1b"))
	events := parser.Feed([]byte("[<0;9;9M"))
	if len(events) != 1 || events[0].Col != 9 {
		t.Errorf("expected event after reassembled introducer, got %+v", events)
	}
}

func TestParserModifierButtonCodes(t *testing.T) {
	// Codes outside the interesting set still decode; filtering is
	// the widget's job, not the parser's.
	var parser Parser
	events := parser.Feed([]byte("\x1b[<35;4;4M"))
	if len(events) != 1 || events[0].Button != 35 {
		t.Errorf("expected raw button code 35, got %+v", events)
	}
}
