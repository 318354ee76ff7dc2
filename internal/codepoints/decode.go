// Package codepoints provides the small decode-loop helper shared by the
// script and emoji segmenters and the root package's truncation helpers:
// each operates on an already-decoded codepoint sequence (spec §4.6), so
// each needs to turn a byte buffer into (rune, start, end) triples before
// its own state machine runs.
package codepoints

import "github.com/clipperhouse/uniscan"

// Codepoint is one decoded rune plus its byte span in the source buffer.
type Codepoint struct {
	Rune  rune
	Start int
	End   int
}

// Decode decodes every codepoint in b using [uniscan.Feed], the same
// decoder the rest of the module uses. Invalid bytes are reported as
// U+FFFD spans: a byte that cannot start a sequence as a span of length 1,
// and an interrupted or unterminated multi-byte sequence as one span
// covering the bytes already fed to the decoder; callers
// that need uniscan's full resumable-decode behavior (partial input,
// streaming) should use [uniscan.Feed] directly, as the line package does
// — this helper is for the segmenters in this module that always see a
// complete, static buffer.
func Decode(b []byte) []Codepoint {
	const runeError = 0xFFFD

	var out []Codepoint
	var s uniscan.DecoderState
	seqStart := 0
	i := 0
	for i < len(b) {
		if s.AtBoundary() {
			seqStart = i
		}
		outcome := uniscan.Feed(&s, b[i])
		switch outcome.Status {
		case uniscan.Incomplete:
			i++
		case uniscan.Success:
			i++
			out = append(out, Codepoint{outcome.Rune, seqStart, i})
		case uniscan.Invalid:
			if !outcome.Consumed {
				out = append(out, Codepoint{runeError, seqStart, i})
				continue // re-examine b[i] fresh; don't advance i
			}
			i++
			out = append(out, Codepoint{runeError, seqStart, i})
		}
	}
	if !s.AtBoundary() {
		out = append(out, Codepoint{runeError, seqStart, len(b)})
	}
	return out
}
