package uniscan

// Grapheme_Cluster_Break ranges (auxiliary/GraphemeBreakProperty.txt), the
// data [Breakable] and [line.LineSegmenter] consume.

type gcbRange struct {
	runeRange
	gcb GraphemeClusterBreak
}

var gcbRanges = []gcbRange{
	{runeRange{0x000D, 0x000D}, GCBCR},
	{runeRange{0x000A, 0x000A}, GCBLF},

	{runeRange{0x0000, 0x0009}, GCBControl},
	{runeRange{0x000B, 0x000C}, GCBControl},
	{runeRange{0x000E, 0x001F}, GCBControl},
	{runeRange{0x007F, 0x009F}, GCBControl},
	{runeRange{0x200B, 0x200B}, GCBControl}, // ZWSP
	{runeRange{0x200E, 0x200F}, GCBControl},
	{runeRange{0x2028, 0x2029}, GCBControl},
	{runeRange{0xFEFF, 0xFEFF}, GCBControl},

	{runeRange{0x0300, 0x036F}, GCBExtend},
	{runeRange{0x0483, 0x0489}, GCBExtend},
	{runeRange{0x0591, 0x05BD}, GCBExtend},
	{runeRange{0x0610, 0x061A}, GCBExtend},
	{runeRange{0x064B, 0x065F}, GCBExtend},
	{runeRange{0x0670, 0x0670}, GCBExtend},
	{runeRange{0x06D6, 0x06DC}, GCBExtend},
	{runeRange{0x0951, 0x0954}, GCBExtend},
	{runeRange{0x1AB0, 0x1AFF}, GCBExtend},
	{runeRange{0x1DC0, 0x1DFF}, GCBExtend},
	{runeRange{0x20D0, 0x20FF}, GCBExtend}, // includes U+20E3 keycap enclosure
	{runeRange{0xFE00, 0xFE0F}, GCBExtend}, // variation selectors (VS1-VS16)
	{runeRange{0xFE20, 0xFE2F}, GCBExtend},
	{runeRange{0x0E31, 0x0E31}, GCBExtend},
	{runeRange{0x0E34, 0x0E3A}, GCBExtend},
	{runeRange{0x0E47, 0x0E4E}, GCBExtend},
	{runeRange{0xE0020, 0xE007F}, GCBExtend}, // tag characters
	{runeRange{0x1F3FB, 0x1F3FF}, GCBExtend}, // emoji modifiers

	{runeRange{0x200D, 0x200D}, GCBZWJ},

	{runeRange{0x1F1E6, 0x1F1FF}, GCBRegionalIndicator},

	{runeRange{0x0600, 0x0605}, GCBPrepend},
	{runeRange{0x06DD, 0x06DD}, GCBPrepend},
	{runeRange{0x0D4E, 0x0D4E}, GCBPrepend},
	{runeRange{0x110BD, 0x110BD}, GCBPrepend},

	{runeRange{0x0903, 0x0903}, GCBSpacingMark},
	{runeRange{0x093B, 0x093B}, GCBSpacingMark},
	{runeRange{0x093E, 0x0940}, GCBSpacingMark},
	{runeRange{0x0949, 0x094C}, GCBSpacingMark},
	{runeRange{0x0982, 0x0983}, GCBSpacingMark},

	// Hangul Jamo (modern).
	{runeRange{0x1100, 0x115F}, GCBL},
	{runeRange{0xA960, 0xA97C}, GCBL},
	{runeRange{0x1160, 0x11A7}, GCBV},
	{runeRange{0xD7B0, 0xD7C6}, GCBV},
	{runeRange{0x11A8, 0x11FF}, GCBT},
	{runeRange{0xD7CB, 0xD7FB}, GCBT},
	// LV and LVT are derived algorithmically for the precomposed Hangul
	// Syllables block (U+AC00..U+D7A3); see tables.go applyHangulSyllables.
}
