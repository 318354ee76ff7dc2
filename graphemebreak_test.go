package uniscan

import "testing"

func TestBreakableCRLF(t *testing.T) {
	var c RegionalIndicatorCounter
	if Breakable(&c, '\r', '\n') {
		t.Error("CR x LF should never break (GB3)")
	}
}

func TestBreakableASCIILetters(t *testing.T) {
	var c RegionalIndicatorCounter
	if !Breakable(&c, 'a', 'b') {
		t.Error("two plain ASCII letters should break (GB999 fast path)")
	}
}

func TestBreakableASCIIDigitsAndPunctuation(t *testing.T) {
	// Regression: the ASCII shortcut must key on raw rune value, not
	// Script, since digits and most punctuation aren't tagged Latin.
	var c RegionalIndicatorCounter
	if !Breakable(&c, '1', '2') {
		t.Error("two ASCII digits should break")
	}
	if !Breakable(&c, ',', '.') {
		t.Error("two ASCII punctuation marks should break")
	}
}

func TestBreakableControlAlwaysBreaks(t *testing.T) {
	var c RegionalIndicatorCounter
	if !Breakable(&c, 'a', 0x0001) { // SOH, a Control codepoint
		t.Error("a Control codepoint should always break (GB4/GB5)")
	}
}

func TestBreakableExtendDoesNotBreak(t *testing.T) {
	var c RegionalIndicatorCounter
	// 'e' followed by U+0300 COMBINING GRAVE ACCENT (Extend).
	if Breakable(&c, 'e', 0x0300) {
		t.Error("base x Extend should not break (GB9)")
	}
}

func TestBreakableZWJExtendedPictographic(t *testing.T) {
	var c RegionalIndicatorCounter
	// ZWJ x an Extended_Pictographic codepoint should not break (GB11).
	if Breakable(&c, 0x200D, 0x2615) {
		t.Error("ZWJ x Extended_Pictographic should not break (GB11)")
	}
}

func TestBreakableRegionalIndicatorPairing(t *testing.T) {
	var c RegionalIndicatorCounter
	const ri1, ri2 = 0x1F1FA, 0x1F1F8 // 🇺🇸 US flag: two Regional Indicators

	// After observing ri1 the count is 1 (odd): ri1 opens a pair and binds
	// to ri2, no break.
	c.Observe(GCBRegionalIndicator)
	if Breakable(&c, ri1, ri2) {
		t.Error("first RI pair should not break (GB12)")
	}
	// After observing ri2 the count is 2 (even): the pair is complete, so
	// a following RI starts a new flag.
	c.Observe(GCBRegionalIndicator)
	if !Breakable(&c, ri2, ri1) {
		t.Error("an RI after a complete pair should break (GB12/GB13 parity)")
	}
}

func TestRegionalIndicatorCounterReset(t *testing.T) {
	var c RegionalIndicatorCounter
	c.Observe(GCBRegionalIndicator)
	c.Observe(GCBRegionalIndicator)
	c.Reset()
	if c.count != 0 {
		t.Errorf("count after Reset = %d, want 0", c.count)
	}
}
