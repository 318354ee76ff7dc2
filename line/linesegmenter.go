// Package line implements the width-bounded, resumable text scanner most
// consumers of uniscan use directly: [LineSegmenter] combines property
// lookup, UTF-8 decoding, and grapheme-cluster segmentation with an ASCII
// fast path, stopping whenever a caller-supplied column budget, the end of
// input, or an unexpected byte is reached.
package line

import "github.com/clipperhouse/uniscan"

const (
	vs15 = 0xFE0E
	vs16 = 0xFE0F
)

// noHint is the sentinel for GraphemeLineState.lastCodepointHint when no
// cluster is pending; codepoints never take negative values.
const noHint = -1

// GraphemeLineState is the persistent state a [LineSegmenter] carries
// across Process/Flush calls, per spec §4.5/§3.
type GraphemeLineState struct {
	utf8           uniscan.DecoderState
	sequenceStart  int // byte offset where the pending UTF-8 sequence began
	nextByte       int
	clusterStart   int
	codepointStart int
	clusterWidth   int
	lastCodepointHint rune
	ri             uniscan.RegionalIndicatorCounter
}

// Listener receives callbacks as a [LineSegmenter] classifies spans of its
// input. All three methods are optional; embed [NoopListener] to satisfy
// the interface without implementing methods you don't need.
type Listener interface {
	OnASCII(slice []byte)
	OnGraphemeCluster(slice []byte, width int)
	OnInvalid(slice []byte)
}

// NoopListener is the default [Listener]: all three callbacks do nothing.
type NoopListener struct{}

func (NoopListener) OnASCII(slice []byte)                   {}
func (NoopListener) OnGraphemeCluster(slice []byte, w int)  {}
func (NoopListener) OnInvalid(slice []byte)                 {}

// SegmentationResult is the return value of [LineSegmenter.Process] and
// [LineSegmenter.Flush]: the slice of the input buffer consumed by the
// call, the display width it accounts for, and why the call stopped.
type SegmentationResult struct {
	Text  []byte
	Width int
	Stop  uniscan.StopCondition
}

// LineSegmenter is a stateful, resumable scanner over a borrowed byte
// buffer (spec §4.5, "the hardest component"). The zero value is not
// usable; call [New] or [LineSegmenter.Reset].
type LineSegmenter struct {
	GraphemeLineState
	buf      []byte
	Options  uniscan.Options
	Listener Listener
}

// New constructs a [LineSegmenter] over buf, using [uniscan.DefaultOptions]
// and a no-op listener. buf is borrowed, not copied: the segmenter's
// emitted slices reference it directly.
func New(buf []byte) *LineSegmenter {
	l := &LineSegmenter{Options: uniscan.DefaultOptions, Listener: NoopListener{}}
	l.Reset(buf)
	return l
}

// Reset installs buf as a new input buffer and clears all decoder and
// cluster state, per spec §4.5.
func (l *LineSegmenter) Reset(buf []byte) {
	l.buf = buf
	l.GraphemeLineState = GraphemeLineState{lastCodepointHint: noHint}
	if l.Listener == nil {
		l.Listener = NoopListener{}
	}
}

// ExpandBufferBy extends the segmenter's logical view of its buffer by n
// bytes, for streaming input: the caller has already written n additional
// bytes into buf's backing array at [len(buf), len(buf)+n) — typically via
// append, or by handing New a slice with spare capacity up front — and
// calls ExpandBufferBy instead of Reset so in-flight decoder and cluster
// state survives the extension.
func (l *LineSegmenter) ExpandBufferBy(n int) {
	l.buf = l.buf[:len(l.buf)+n]
}

// MoveForwardTo tells the segmenter the caller has skipped ahead to offset
// in its buffer (e.g. past a control sequence handled externally). Decoder
// and cluster-tracking state reset so the next Process call starts a fresh
// cluster at offset, per spec §4.5.
func (l *LineSegmenter) MoveForwardTo(offset int) {
	l.utf8 = uniscan.DecoderState{}
	l.sequenceStart = offset
	l.nextByte = offset
	l.clusterStart = offset
	l.codepointStart = offset
	l.clusterWidth = 0
	l.lastCodepointHint = noHint
	l.ri.Reset()
}

func (l *LineSegmenter) width(r rune) int {
	return l.Options.Width(r)
}

// Process consumes bytes starting from the current position until one of
// three stop conditions (spec §4.5): the input ends (EndOfInput), maxWidth
// columns have been accounted for (EndOfWidth), or a C0 control byte is
// reached (UnexpectedInput, left for the caller to handle).
func (l *LineSegmenter) Process(maxWidth int) SegmentationResult {
	start := l.nextByte
	accumulated := 0

	for {
		if l.nextByte >= len(l.buf) {
			return SegmentationResult{l.buf[start:l.nextByte], accumulated, uniscan.EndOfInput}
		}
		if accumulated == maxWidth {
			return SegmentationResult{l.buf[start:l.nextByte], accumulated, uniscan.EndOfWidth}
		}

		b := l.buf[l.nextByte]
		switch {
		case b < 0x20:
			return SegmentationResult{l.buf[start:l.nextByte], accumulated, uniscan.UnexpectedInput}

		case b < 0x80:
			if !l.closePendingCluster(&accumulated, maxWidth) {
				return SegmentationResult{l.buf[start:l.nextByte], accumulated, uniscan.EndOfWidth}
			}
			stop, n := uniscan.ScanASCII(l.buf[l.nextByte:], maxWidth-accumulated)
			if n > 0 {
				l.Listener.OnASCII(l.buf[l.nextByte : l.nextByte+n])
				l.nextByte += n
				accumulated += n
			}
			switch stop {
			case uniscan.EndOfWidth, uniscan.EndOfInput:
				return SegmentationResult{l.buf[start:l.nextByte], accumulated, stop}
			default: // UnexpectedInput: the byte that stopped the scan is re-examined below
				continue
			}

		default:
			atBoundary := l.utf8.AtBoundary()
			if atBoundary {
				l.sequenceStart = l.nextByte
			}
			outcome := uniscan.Feed(&l.utf8, b)

			switch outcome.Status {
			case uniscan.Incomplete:
				l.nextByte++
				continue

			case uniscan.Invalid:
				if !outcome.Consumed {
					// Sequence before b is invalid; b itself was not
					// consumed and will be re-examined as a fresh leader
					// next iteration (the decoder is already reset).
					if !l.emitInvalid(&accumulated, maxWidth, l.sequenceStart, l.nextByte) {
						return SegmentationResult{l.buf[start:l.nextByte], accumulated, uniscan.EndOfWidth}
					}
					continue
				}
				l.nextByte++
				if !l.emitInvalid(&accumulated, maxWidth, l.sequenceStart, l.nextByte) {
					return SegmentationResult{l.buf[start:l.nextByte], accumulated, uniscan.EndOfWidth}
				}
				continue

			case uniscan.Success:
				l.nextByte++
				cp := outcome.Rune
				cpStart, cpEnd := l.sequenceStart, l.nextByte

				if l.lastCodepointHint == noHint {
					l.ri.Reset()
					l.clusterStart = cpStart
					l.codepointStart = cpEnd
					l.clusterWidth = l.width(cp)
					l.lastCodepointHint = cp
				} else if !uniscan.Breakable(&l.ri, l.lastCodepointHint, cp) {
					switch cp {
					case vs16:
						l.clusterWidth = 2
					case vs15:
						// leave width unchanged, never narrow
					}
					l.codepointStart = cpEnd
					l.lastCodepointHint = cp
				} else {
					prevStart, prevEnd, prevWidth := l.clusterStart, l.codepointStart, l.clusterWidth
					if accumulated+prevWidth > maxWidth {
						l.nextByte = prevStart
						l.codepointStart = prevStart
						l.clusterStart = prevStart
						l.utf8 = uniscan.DecoderState{}
						l.lastCodepointHint = noHint
						return SegmentationResult{l.buf[start:prevStart], accumulated, uniscan.EndOfWidth}
					}
					l.Listener.OnGraphemeCluster(l.buf[prevStart:prevEnd], prevWidth)
					accumulated += prevWidth

					l.clusterStart = prevEnd
					l.codepointStart = cpEnd
					l.clusterWidth = l.width(cp)
					l.lastCodepointHint = cp
					l.ri.Observe(uniscan.Lookup(cp).GraphemeClusterBreak)

					if accumulated == maxWidth {
						return SegmentationResult{l.buf[start:l.clusterStart], accumulated, uniscan.EndOfWidth}
					}
					continue
				}
				l.ri.Observe(uniscan.Lookup(cp).GraphemeClusterBreak)
				continue
			}
		}
	}
}

// closePendingCluster force-closes any in-flight complex-path cluster
// before the ASCII fast path takes over: an ASCII byte is never Extend,
// ZWJ, SpacingMark, or Prepend, so it always starts a fresh cluster (spec
// §4.5's "clear last_codepoint_hint and cluster-tracking fields"). Reports
// false if the pending cluster didn't fit in the remaining budget, in
// which case the caller must stop with EndOfWidth; the rewind has already
// been applied.
func (l *LineSegmenter) closePendingCluster(accumulated *int, maxWidth int) bool {
	if l.lastCodepointHint == noHint {
		return true
	}
	if *accumulated+l.clusterWidth > maxWidth {
		l.nextByte = l.clusterStart
		l.codepointStart = l.clusterStart
		l.utf8 = uniscan.DecoderState{}
		l.lastCodepointHint = noHint
		return false
	}
	l.Listener.OnGraphemeCluster(l.buf[l.clusterStart:l.codepointStart], l.clusterWidth)
	*accumulated += l.clusterWidth
	l.clusterStart = l.codepointStart
	l.lastCodepointHint = noHint
	return true
}

// emitInvalid reports an invalid byte span as a width-1 cluster, per spec
// §4.5's "treat as one grapheme cluster of width 1". Reports false (and
// rewinds to from) if the budget doesn't allow it.
func (l *LineSegmenter) emitInvalid(accumulated *int, maxWidth, from, to int) bool {
	if len(l.buf[from:to]) == 0 {
		return true
	}
	if *accumulated+1 > maxWidth {
		l.nextByte = from
		l.utf8 = uniscan.DecoderState{}
		return false
	}
	l.Listener.OnInvalid(l.buf[from:to])
	*accumulated++
	return true
}

// Flush declares end-of-input: it emits any complete pending cluster and
// any buffered invalid bytes, then resets state so a subsequent Flush call
// is a no-op, per spec §4.5.
func (l *LineSegmenter) Flush(maxWidth int) SegmentationResult {
	start := l.nextByte
	accumulated := 0

	if !l.utf8.AtBoundary() {
		from, to := l.sequenceStart, l.nextByte
		if len(l.buf[from:to]) > 0 && maxWidth >= 1 {
			l.Listener.OnInvalid(l.buf[from:to])
			accumulated = 1
		}
		l.utf8 = uniscan.DecoderState{}
		l.lastCodepointHint = noHint
		l.clusterStart = l.nextByte
		l.codepointStart = l.nextByte
		return SegmentationResult{l.buf[start:l.nextByte], accumulated, uniscan.EndOfInput}
	}

	if l.lastCodepointHint != noHint && l.clusterStart < l.nextByte {
		if l.clusterWidth <= maxWidth {
			l.Listener.OnGraphemeCluster(l.buf[l.clusterStart:l.codepointStart], l.clusterWidth)
			accumulated = l.clusterWidth
		}
		l.clusterStart = l.nextByte
		l.codepointStart = l.nextByte
		l.lastCodepointHint = noHint
	}

	return SegmentationResult{l.buf[start:l.nextByte], accumulated, uniscan.EndOfInput}
}
