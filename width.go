package uniscan

// Options configures how [Options.Width] resolves width for
// codepoints whose column count is a matter of convention rather than a
// fixed UCD property. The zero value is the package's recommended default:
// East Asian Ambiguous characters are narrow, and emoji use their emoji-
// presentation width.
type Options struct {
	// EastAsianWidth, when true, treats East Asian Width Ambiguous
	// characters as wide (2 columns) instead of narrow (1 column). Set
	// this for CJK locales, where legacy terminal conventions render
	// ambiguous-width characters (box-drawing, Greek/Cyrillic letters,
	// some symbols) at double width to match surrounding wide text.
	EastAsianWidth bool

	// StrictEmojiNeutral, when true, defers to the codepoint's East Asian
	// Width for emoji whose width is otherwise Ambiguous, instead of
	// forcing emoji-presentation codepoints to width 2. Some terminal
	// fonts render a handful of older symbol-turned-emoji codepoints
	// (e.g. some dingbats) at their narrow legacy width even when a
	// variation selector or default presentation would suggest emoji
	// rendering.
	StrictEmojiNeutral bool
}

// DefaultOptions is the zero-value [Options]: narrow Ambiguous, non-strict
// emoji width.
var DefaultOptions = Options{}

// Width returns the default column width of r: 0, 1, or 2. It is equivalent
// to DefaultOptions.Width(r).
//
// Width considers only r in isolation. A variation selector (VS15/VS16)
// immediately following r can change the effective width of the pair; that
// cluster-level adjustment is the responsibility of the [uniscan/line]
// package, which tracks state across codepoints within a grapheme cluster.
func Width(r rune) int {
	return DefaultOptions.Width(r)
}

// Width returns the column width of r under the given options.
func (o Options) Width(r rune) int {
	return o.width(Lookup(r))
}

func (o Options) width(p CodepointProperties) int {
	if isZeroWidthCategory(p.GeneralCategory) {
		return 0
	}

	if p.Flags.Has(FlagEmojiPresentation) {
		if o.StrictEmojiNeutral && p.EastAsianWidth == EAWAmbiguous {
			// Fall through to the EAW-driven result below instead of the
			// emoji override.
		} else {
			return 2
		}
	}

	switch p.EastAsianWidth {
	case EAWWide, EAWFullwidth:
		return 2
	case EAWAmbiguous:
		if o.EastAsianWidth {
			return 2
		}
		return 1
	}

	return int(p.CharWidth) // already the narrow/default-width resolution
}

// String returns the display width of s: the sum of the width of each of
// its grapheme clusters. It is equivalent to DefaultOptions.String(s).
func String(s string) int {
	return DefaultOptions.String(s)
}

// String returns the display width of s under the given options, grapheme
// cluster by grapheme cluster (so a base rune and a following VS15/VS16
// are counted once, per the pairing rule in [Width]'s doc comment).
func (o Options) String(s string) int {
	return o.bytesWidth([]byte(s))
}

// Bytes returns the display width of b. It is equivalent to
// DefaultOptions.Bytes(b).
func Bytes(b []byte) int {
	return DefaultOptions.Bytes(b)
}

// Bytes returns the display width of b under the given options, grapheme
// cluster by grapheme cluster.
func (o Options) Bytes(b []byte) int {
	return o.bytesWidth(b)
}

func isZeroWidthCategory(gc GeneralCategory) bool {
	switch gc {
	case Mn, Me, Cf, Cc:
		return true
	}
	return false
}
