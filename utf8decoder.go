package uniscan

// DecoderState is a resumable, byte-at-a-time UTF-8 decoder's persistent
// state (spec §3, Utf8DecoderState). The zero value is a fresh decoder
// positioned at a codepoint boundary.
type DecoderState struct {
	accumulator    uint32
	expectedLength uint8 // 0 means "at a codepoint boundary"
	currentLength  uint8
}

// AtBoundary reports whether the decoder currently sits at a codepoint
// boundary (no partial sequence buffered).
func (s *DecoderState) AtBoundary() bool {
	return s.expectedLength == 0
}

// Pending reports the number of bytes already consumed of a not-yet-
// complete multi-byte sequence. It is 0 at a codepoint boundary.
func (s *DecoderState) Pending() int {
	return int(s.currentLength)
}

// DecodeStatus tags the outcome of one [Feed] call.
type DecodeStatus uint8

const (
	// Incomplete means b extended a multi-byte sequence but did not
	// complete it; state was updated and more bytes are needed.
	Incomplete DecodeStatus = iota
	// Success means b completed (or, for ASCII, was) a codepoint; Rune
	// holds the decoded value and state has been reset to a boundary.
	Success
	// Invalid means the sequence in progress (zero or more previously-fed
	// bytes) is invalid; state has been reset to a boundary.
	Invalid
)

// DecodeOutcome is the tagged result of feeding one byte to the decoder.
type DecodeOutcome struct {
	Status DecodeStatus
	Rune   rune // valid only when Status == Success

	// Consumed reports whether b was absorbed by this call. It is always
	// true for Success and Incomplete. For Invalid it is true when b
	// itself was the offending byte (a stray continuation byte, or
	// 0xF8-0xFF at a boundary); it is false when b interrupted a
	// multi-byte sequence already in progress by starting a new, valid
	// leader byte of its own (ASCII or a 2/3/4-byte leader) — in that
	// case only the earlier, already-fed bytes of the aborted sequence
	// are invalid, and the caller must feed b again (to the now-reset
	// decoder) so it is decoded as the fresh leader it is. This is the Go
	// expression of spec §4.2's "emit Invalid, reset, then recursively
	// process this same byte as a fresh leader": the recursion is the
	// caller's re-feed, driven by Consumed==false, rather than a second
	// outcome bundled into one call.
	Consumed bool
}

func (s *DecoderState) reset() {
	s.accumulator = 0
	s.expectedLength = 0
	s.currentLength = 0
}

// Feed advances the decoder by one byte, per spec §4.2.
//
// At a codepoint boundary, b's high bits select ASCII, a 2/3/4-byte leader,
// or Invalid. Mid-sequence, a continuation byte (10xxxxxx) is folded into
// the accumulator; any other byte aborts the sequence in progress with
// Invalid — and if that byte is itself a valid leader, the abort is
// reported for the old sequence only, leaving the new leader byte for the
// caller to re-feed, which correctly restarts decoding for it. This split
// guarantees an interrupted sequence consumes exactly its own bad bytes,
// never overruns into the next codepoint's.
func Feed(s *DecoderState, b byte) DecodeOutcome {
	if s.expectedLength == 0 {
		switch {
		case b < 0x80:
			return DecodeOutcome{Status: Success, Rune: rune(b), Consumed: true}
		case b&0xE0 == 0xC0:
			s.accumulator = uint32(b & 0x1F)
			s.expectedLength = 2
			s.currentLength = 1
			return DecodeOutcome{Status: Incomplete, Consumed: true}
		case b&0xF0 == 0xE0:
			s.accumulator = uint32(b & 0x0F)
			s.expectedLength = 3
			s.currentLength = 1
			return DecodeOutcome{Status: Incomplete, Consumed: true}
		case b&0xF8 == 0xF0:
			s.accumulator = uint32(b & 0x07)
			s.expectedLength = 4
			s.currentLength = 1
			return DecodeOutcome{Status: Incomplete, Consumed: true}
		default:
			// Invalid leader (stray continuation byte, or 0xF8-0xFF).
			return DecodeOutcome{Status: Invalid, Consumed: true}
		}
	}

	if b&0xC0 == 0x80 {
		s.accumulator = s.accumulator<<6 | uint32(b&0x3F)
		s.currentLength++
		if s.currentLength == s.expectedLength {
			r := rune(s.accumulator)
			s.reset()
			return DecodeOutcome{Status: Success, Rune: r, Consumed: true}
		}
		return DecodeOutcome{Status: Incomplete, Consumed: true}
	}

	// b begins a new leader mid-sequence: only the earlier bytes of the
	// pending sequence are invalid. b itself is not consumed; the caller
	// must feed it again so it is decoded fresh as its own leader.
	s.reset()
	return DecodeOutcome{Status: Invalid, Consumed: false}
}
