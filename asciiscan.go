package uniscan

// StopCondition tags why a [ScanASCII] or [line.LineSegmenter] scan
// stopped (spec §4.4/§6). It is data, not a Go error — every value leaves
// the scanner resumable.
type StopCondition uint8

const (
	// UnexpectedInput means the scan stopped at a byte the scanner does not
	// consume itself: a C0 control byte, or a byte >= 0x80 for AsciiScanner.
	UnexpectedInput StopCondition = iota
	// EndOfInput means the scan reached the end of the buffer.
	EndOfInput
	// EndOfWidth means the scan reached its caller-supplied budget.
	EndOfWidth
)

// String returns the variant name, for logging and test failure messages.
func (s StopCondition) String() string {
	switch s {
	case UnexpectedInput:
		return "UnexpectedInput"
	case EndOfInput:
		return "EndOfInput"
	case EndOfWidth:
		return "EndOfWidth"
	default:
		return "StopCondition(?)"
	}
}

// scanASCIIFunc is the dispatched scan implementation, selected once at
// package init between the vectorized-word fast path and the scalar
// fallback (see asciiscan_simd.go). Both must return identical results for
// identical input; this variable only changes which one runs.
var scanASCIIFunc = scanASCIIScalar

// ScanASCII advances over bytes in [0x20, 0x80) — printable ASCII — up to
// max bytes or the end of b, whichever comes first. It returns the stop
// condition and the number of bytes consumed, per spec §4.4.
//
// A max of 0 is a valid, cheap no-op: it returns (EndOfWidth, 0) without
// reading any byte of b, even if b is non-empty and begins with ASCII.
func ScanASCII(b []byte, max int) (StopCondition, int) {
	if max == 0 {
		return EndOfWidth, 0
	}
	if len(b) == 0 {
		return EndOfInput, 0
	}
	budgetLimits := max < len(b)
	if budgetLimits {
		b = b[:max]
	}
	stop, n := scanASCIIFunc(b)
	if stop == UnexpectedInput {
		return stop, n
	}
	// scanASCIIFunc consumed the whole (possibly truncated) slice: the stop
	// reason depends on which limit — caller's budget or actual input end —
	// was the one actually reached.
	if budgetLimits {
		return EndOfWidth, n
	}
	return EndOfInput, n
}

// scanASCIIScalar is the semantic reference implementation: the byte-at-a-
// time loop spec §4.4 describes before the SIMD optimization. b has
// already been truncated to at most the caller's budget by [ScanASCII]. It
// never itself distinguishes EndOfWidth from EndOfInput: that refinement
// belongs to the caller, which knows whether truncation happened.
func scanASCIIScalar(b []byte) (StopCondition, int) {
	for i, c := range b {
		if c < 0x20 || c >= 0x80 {
			return UnexpectedInput, i
		}
	}
	return EndOfInput, len(b)
}
