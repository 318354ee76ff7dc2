package uniscan

// GeneralCategory is the Unicode General_Category property (UAX #44 §5.7.1).
type GeneralCategory uint8

// General_Category values. Cn (Unassigned) is the zero value, matching the
// default record returned for codepoints not covered by the curated range
// data or >= 0x110000.
const (
	Cn GeneralCategory = iota // Unassigned
	Lu                        // Uppercase_Letter
	Ll                        // Lowercase_Letter
	Lt                        // Titlecase_Letter
	Lm                        // Modifier_Letter
	Lo                        // Other_Letter
	Mn                        // Nonspacing_Mark
	Mc                        // Spacing_Mark
	Me                        // Enclosing_Mark
	Nd                        // Decimal_Number
	Nl                        // Letter_Number
	No                        // Other_Number
	Pc                        // Connector_Punctuation
	Pd                        // Dash_Punctuation
	Ps                        // Open_Punctuation
	Pe                        // Close_Punctuation
	Pi                        // Initial_Punctuation
	Pf                        // Final_Punctuation
	Po                        // Other_Punctuation
	Sm                        // Math_Symbol
	Sc                        // Currency_Symbol
	Sk                        // Modifier_Symbol
	So                        // Other_Symbol
	Zs                        // Space_Separator
	Zl                        // Line_Separator
	Zp                        // Paragraph_Separator
	Cc                        // Control
	Cf                        // Format
	Cs                        // Surrogate
	Co                        // Private_Use
)

// EastAsianWidth is the Unicode East_Asian_Width property (UAX #11).
type EastAsianWidth uint8

const (
	EAWNeutral EastAsianWidth = iota
	EAWAmbiguous
	EAWFullwidth
	EAWHalfwidth
	EAWNarrow
	EAWWide
)

// GraphemeClusterBreak is the Unicode Grapheme_Cluster_Break property
// (UAX #29 §3.1).
type GraphemeClusterBreak uint8

const (
	GCBOther GraphemeClusterBreak = iota
	GCBCR
	GCBLF
	GCBControl
	GCBExtend
	GCBZWJ
	GCBRegionalIndicator
	GCBPrepend
	GCBSpacingMark
	GCBL
	GCBV
	GCBT
	GCBLV
	GCBLVT
)

// EmojiSegCategory is the codepoint category used by the emoji presentation
// state machine (UTS #51), derived at package initialization from the
// curated emoji ranges plus a small set of hard-coded codepoints (ZWJ,
// VS15/VS16, keycap and tag codepoints); see tables.go.
type EmojiSegCategory uint8

const (
	ESOther EmojiSegCategory = iota
	ESEmojiPresentation
	ESTextPresentation
	ESEmojiModifierBase
	ESEmojiModifier
	ESEmojiComponent
	ESExtendedPictographic
	ESRegionalIndicator
	ESKeycapBase
	ESCombiningEnclosingKeycap
	ESZWJ
	ESVS15
	ESVS16
	ESTagBase
	ESTagSequence
	ESTagTerm
)

// Script is the Unicode Script property (UAX #24). This is a curated subset
// of the ~160 scripts defined by Scripts.txt, covering every script that
// the module's tests and range data exercise; an unlisted script maps to
// [Unknown]. See DESIGN.md for the full rationale.
type Script uint8

const (
	Unknown Script = iota
	Common
	Inherited
	Latin
	Greek
	Cyrillic
	Armenian
	Hebrew
	Arabic
	Syriac
	Thaana
	Devanagari
	Bengali
	Gurmukhi
	Gujarati
	Oriya
	Tamil
	Telugu
	Kannada
	Malayalam
	Sinhala
	Thai
	Lao
	Tibetan
	Myanmar
	Georgian
	Hangul
	Ethiopic
	Cherokee
	CanadianAboriginal
	Ogham
	Runic
	Khmer
	Mongolian
	Hiragana
	Katakana
	Bopomofo
	Han
	Yi
	OldItalic
	Gothic
	Deseret
	Tagalog
	Limbu
	TaiLe
	LinearB
	Ugaritic
	Shavian
	Osmanya
	Cypriot
	Braille
	Buginese
	Coptic
	Glagolitic
	Tifinagh
	SylotiNagri
	OldPersian
	Kharoshthi
	Balinese
	Cuneiform
	Phoenician
	PhagsPa
	Nko
	Sundanese
	Lepcha
	OlChiki
	Vai
	Saurashtra
	KayahLi
	Rejang
	Javanese
	Cham
	TaiViet
	MeeteiMayek
	Batak
	Bamum
)

// PropFlags is a bitfield of boolean codepoint properties that don't fit
// naturally into an enum.
type PropFlags uint8

const (
	FlagEmoji PropFlags = 1 << iota
	FlagEmojiPresentation
	FlagEmojiComponent
	FlagEmojiModifier
	FlagEmojiModifierBase
	FlagExtendedPictographic
	FlagCoreGraphemeExtend // Extend, per DerivedCoreProperties Grapheme_Extend
)

// Has reports whether all bits of want are set in p.
func (p PropFlags) Has(want PropFlags) bool {
	return p&want == want
}

// CodepointProperties is the packed per-codepoint record produced by the
// three-stage [PropertyTables] lookup. It mirrors libunicode's
// codepoint_properties record: every field is a single byte, so the whole
// record is 7 bytes, comfortably within the spec's 8-byte budget.
type CodepointProperties struct {
	Script               Script
	GraphemeClusterBreak GraphemeClusterBreak
	EastAsianWidth       EastAsianWidth
	GeneralCategory      GeneralCategory
	EmojiSegCategory     EmojiSegCategory
	CharWidth            uint8 // 0, 1, or 2
	Flags                PropFlags
}

// unassigned is the record returned for codepoints with no curated data and
// for all codepoints >= 0x110000.
var unassigned = CodepointProperties{
	Script:               Unknown,
	GraphemeClusterBreak: GCBOther,
	EastAsianWidth:       EAWNeutral,
	GeneralCategory:      Cn,
	EmojiSegCategory:     ESOther,
	CharWidth:            1,
}
