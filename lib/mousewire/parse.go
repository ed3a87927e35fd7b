// Copyright 2026 The Scratchpad Authors
// SPDX-License-Identifier: Apache-2.0

package mousewire

import "bytes"

// Button codes reported on the wire.
const (
	// ButtonPrimary is the left mouse button.
	ButtonPrimary = 0
	// ButtonWheelUp and ButtonWheelDown are the wheel codes. The
	// terminal reports wheel motion as presses; the matching releases
	// never arrive.
	ButtonWheelUp   = 64
	ButtonWheelDown = 65
)

// Event is one decoded mouse report. Coordinates are 1-based, exactly
// as they appear on the wire; translating to screen or buffer
// positions is the caller's concern.
type Event struct {
	Button  int
	Col     int
	Row     int
	Release bool // true for 'm' (release), false for 'M' (press).
}

// Residual buffer bounds. A well-formed SGR sequence is at most
// ~20 bytes (ESC [ < three params of a few digits each, terminator),
// so a residual past residualLimit means we are holding garbage that
// will never complete. Truncating to the last few bytes recovers:
// any genuine sequence straddling the truncation point is lost, but
// the stream resynchronizes on the next introducer.
const (
	residualLimit = 64
	residualKeep  = 8
)

// introducer starts every SGR mouse report.
var introducer = []byte("\x1b[<")

// Parser incrementally decodes SGR mouse reports from a byte stream.
// Input may be split across Feed calls at any boundary; partial
// sequences are retained until completed. Bytes that cannot be part
// of a report are discarded silently — terminal input is untrusted
// and decoding must never fail.
//
// The zero value is ready to use.
type Parser struct {
	residual []byte
}

// Feed appends data to the parser's buffer and returns every complete
// event decoded from it, in stream order.
func (parser *Parser) Feed(data []byte) []Event {
	parser.residual = append(parser.residual, data...)

	var events []Event
	for {
		start := bytes.Index(parser.residual, introducer)
		if start < 0 {
			// No introducer. Keep a trailing fragment that could be
			// the start of one split across reads; everything before
			// it is not mouse traffic.
			parser.residual = trailingIntroducerFragment(parser.residual)
			return events
		}
		// Discard non-mouse bytes before the introducer.
		parser.residual = parser.residual[start:]

		event, consumed, status := decodeReport(parser.residual)
		switch status {
		case reportComplete:
			events = append(events, event)
			parser.residual = parser.residual[consumed:]
		case reportInvalid:
			// Resync: drop the ESC and rescan from the next byte.
			parser.residual = parser.residual[1:]
		case reportIncomplete:
			if len(parser.residual) > residualLimit {
				parser.residual = parser.residual[len(parser.residual)-residualKeep:]
			}
			return events
		}
	}
}

// decodeReport status codes.
const (
	reportComplete = iota
	reportIncomplete
	reportInvalid
)

// maxParam bounds each decoded parameter value. No real terminal
// reports coordinates or button codes anywhere near this; larger
// values mark the sequence invalid at the terminator.
const maxParam = 99999

// decodeReport decodes one report from the front of buffer, which must
// begin with the introducer. Returns the event and the number of bytes
// consumed when complete; reportIncomplete when the buffer ends before
// a terminator; reportInvalid when a byte or the assembled parameters
// violate the grammar.
//
// Validation happens at the terminator, not byte-by-byte: a stream of
// digits and semicolons stays "incomplete" however long it grows, and
// the residual bound in Feed is what cuts it off.
func decodeReport(buffer []byte) (Event, int, int) {
	values := []int{0}
	digits := []int{0}
	overflow := false

	for position := len(introducer); position < len(buffer); position++ {
		switch b := buffer[position]; {
		case b >= '0' && b <= '9':
			last := len(values) - 1
			values[last] = values[last]*10 + int(b-'0')
			digits[last]++
			if values[last] > maxParam {
				overflow = true
			}

		case b == ';':
			values = append(values, 0)
			digits = append(digits, 0)

		case b == 'M' || b == 'm':
			if overflow || len(values) != 3 ||
				digits[0] == 0 || digits[1] == 0 || digits[2] == 0 {
				return Event{}, 0, reportInvalid
			}
			return Event{
				Button:  values[0],
				Col:     values[1],
				Row:     values[2],
				Release: b == 'm',
			}, position + 1, reportComplete

		default:
			return Event{}, 0, reportInvalid
		}
	}
	return Event{}, 0, reportIncomplete
}

// trailingIntroducerFragment returns the longest suffix of buffer that
// is a proper prefix of the introducer ("\x1b" or "\x1b["), or nil.
// Such a fragment may be the start of a report whose remainder arrives
// in the next read.
func trailingIntroducerFragment(buffer []byte) []byte {
	for fragmentLength := len(introducer) - 1; fragmentLength > 0; fragmentLength-- {
		if len(buffer) < fragmentLength {
			continue
		}
		if bytes.Equal(buffer[len(buffer)-fragmentLength:], introducer[:fragmentLength]) {
			return buffer[len(buffer)-fragmentLength:]
		}
	}
	return nil
}
