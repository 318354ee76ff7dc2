package uniscan

// RegionalIndicatorCounter tracks the run length of consecutive Regional
// Indicator codepoints immediately preceding the current boundary
// candidate, which is all GB12/GB13 need beyond the two adjacent
// codepoints' properties (spec §4.3).
//
// The zero value starts a stream at "no preceding Regional Indicators".
type RegionalIndicatorCounter struct {
	count int
}

// Reset clears the counter, e.g. when a segmenter jumps to a new position
// in its input ([line.LineSegmenter.MoveForwardTo]).
func (c *RegionalIndicatorCounter) Reset() {
	c.count = 0
}

// Breakable reports whether a grapheme cluster boundary exists between
// prev and next, per UAX #29 GB1-GB999 (spec §4.3). c's count must reflect
// the run of Regional Indicators ending at prev (not including next); call
// [RegionalIndicatorCounter.Observe] after each Breakable call to keep it
// current — see Observe's doc comment for the calling order.
func Breakable(c *RegionalIndicatorCounter, prev, next rune) bool {
	prevP := Lookup(prev)
	nextP := Lookup(next)
	return breakableProps(c, prevP, nextP, prev < 0x80 && next < 0x80)
}

func breakableProps(c *RegionalIndicatorCounter, prev, next CodepointProperties, bothASCII bool) bool {
	prevGCB := prev.GraphemeClusterBreak
	nextGCB := next.GraphemeClusterBreak

	// GB3: CR x LF — never break.
	if prevGCB == GCBCR && nextGCB == GCBLF {
		return false
	}

	// ASCII shortcut: both codepoints are in 0x00-0x7F with no special GCB
	// category (every ASCII control, CR and LF already handled above or
	// below). Keyed on the raw codepoint value rather than Script, since
	// plenty of ASCII (digits, most punctuation) isn't tagged Latin in the
	// script ranges. This is purely a fast path; GB999 would reach the same
	// answer without it.
	if bothASCII && prevGCB == GCBOther && nextGCB == GCBOther {
		return true
	}

	// GB4 / GB5: break before/after Control, CR, LF (GB3 already excluded).
	if isControlish(prevGCB) || isControlish(nextGCB) {
		return true
	}

	// GB6-GB8: Hangul syllable composition.
	switch prevGCB {
	case GCBL:
		if nextGCB == GCBL || nextGCB == GCBV || nextGCB == GCBLV || nextGCB == GCBLVT {
			return false
		}
	case GCBV, GCBLV:
		if nextGCB == GCBV || nextGCB == GCBT {
			return false
		}
	case GCBLVT, GCBT:
		if nextGCB == GCBT {
			return false
		}
	}

	// GB9: don't break before Extend or ZWJ.
	if nextGCB == GCBExtend || nextGCB == GCBZWJ {
		return false
	}

	// GB9a: don't break before SpacingMark.
	if nextGCB == GCBSpacingMark {
		return false
	}

	// GB9b: don't break after Prepend.
	if prevGCB == GCBPrepend {
		return false
	}

	// GB11: don't break ZWJ x ExtendedPictographic.
	if prevGCB == GCBZWJ && next.Flags.Has(FlagExtendedPictographic) {
		return false
	}

	// GB12/GB13: don't break between Regional Indicators if the count of
	// consecutive RIs ending at prev (not including next) is odd — i.e. we
	// are looking at the second flag half of a pair.
	if prevGCB == GCBRegionalIndicator && nextGCB == GCBRegionalIndicator {
		if c.count%2 == 1 {
			return false
		}
	}

	// GB999: otherwise, break.
	return true
}

func isControlish(gcb GraphemeClusterBreak) bool {
	return gcb == GCBControl || gcb == GCBCR || gcb == GCBLF
}

// Observe updates c after a boundary decision has been made for a
// codepoint with grapheme-cluster-break property gcb: the run of Regional
// Indicators is extended if gcb is RegionalIndicator, and reset to zero
// otherwise. Callers feed codepoints through Observe in stream order,
// calling Breakable first (which reads c's count as of the previous
// codepoint) and Observe second (which updates c for the codepoint just
// examined).
func (c *RegionalIndicatorCounter) Observe(gcb GraphemeClusterBreak) {
	if gcb == GCBRegionalIndicator {
		c.count++
	} else {
		c.count = 0
	}
}
