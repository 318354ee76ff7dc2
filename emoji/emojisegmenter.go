// Package emoji implements UTS #51 emoji-presentation segmentation:
// splitting a codepoint sequence into runs that are either emoji-
// presentation or text-presentation.
package emoji

import (
	"github.com/clipperhouse/uniscan"
	"github.com/clipperhouse/uniscan/internal/codepoints"
)

// Span is one presentation run: codepoints in [Start, End) of the
// original buffer render with the same presentation, per spec §4.6.
type Span struct {
	Start, End int
	IsEmoji    bool
}

// Segments splits b into emoji/text presentation runs. It recognizes the
// UTS #51 sequence forms the spec calls out by name: emoji presentation
// sequences (base + VS16/VS15), keycap sequences, modifier sequences,
// regional-indicator flag pairs, tag sequences, and ZWJ sequences — a
// hand-coded equivalent of the Ragel-generated grammar's accept
// conditions, table-driven via EmojiSegCategory rather than a full state
// table, per the design note in spec §9.
func Segments(b []byte) []Span {
	cps := codepoints.Decode(b)
	if len(cps) == 0 {
		return nil
	}

	isEmoji := make([]bool, len(cps))
	i := 0
	for i < len(cps) {
		emoji, next := classifyElement(cps, i)
		for k := i; k < next; k++ {
			isEmoji[k] = emoji
		}
		i = next

		// A ZWJ immediately following renders the whole joined sequence
		// as emoji, regardless of the next element's own default
		// presentation (spec §4.6, emoji_zwj_sequence).
		for i < len(cps) && category(cps[i].Rune) == uniscan.ESZWJ {
			isEmoji[i] = true
			i++
			if i >= len(cps) {
				break
			}
			_, next2 := classifyElement(cps, i)
			for k := i; k < next2; k++ {
				isEmoji[k] = true
			}
			i = next2
		}
	}

	var spans []Span
	start := cps[0].Start
	runEmoji := isEmoji[0]
	end := cps[0].End
	for idx := 1; idx < len(cps); idx++ {
		if isEmoji[idx] == runEmoji {
			end = cps[idx].End
			continue
		}
		spans = append(spans, Span{start, end, runEmoji})
		start, end = cps[idx].Start, cps[idx].End
		runEmoji = isEmoji[idx]
	}
	spans = append(spans, Span{start, end, runEmoji})
	return spans
}

func category(r rune) uniscan.EmojiSegCategory {
	return uniscan.Lookup(r).EmojiSegCategory
}

// classifyElement classifies the single emoji "element" (a base codepoint
// plus whatever modifier/selector/terminator the grammar allows it to
// absorb) starting at cps[i], returning its presentation and the index
// just past it. The caller is responsible for the surrounding ZWJ-sequence
// loop; classifyElement never looks at cps[i-1].
func classifyElement(cps []codepoints.Codepoint, i int) (isEmoji bool, next int) {
	cat := category(cps[i].Rune)
	n := len(cps)

	switch cat {
	case uniscan.ESRegionalIndicator:
		// emoji_flag_sequence: a pair of Regional Indicators.
		if i+1 < n && category(cps[i+1].Rune) == uniscan.ESRegionalIndicator {
			return true, i + 2
		}
		return true, i + 1

	case uniscan.ESKeycapBase:
		// emoji_keycap_sequence: [0-9#*] VS16? COMBINING_ENCLOSING_KEYCAP.
		j := i + 1
		if j < n && category(cps[j].Rune) == uniscan.ESVS16 {
			j++
		}
		if j < n && category(cps[j].Rune) == uniscan.ESCombiningEnclosingKeycap {
			return true, j + 1
		}
		return false, i + 1

	case uniscan.ESEmojiModifierBase:
		// emoji_modifier_sequence: base + skin-tone modifier.
		if i+1 < n && category(cps[i+1].Rune) == uniscan.ESEmojiModifier {
			return true, i + 2
		}
		return true, i + 1

	case uniscan.ESTagBase:
		// emoji_tag_sequence: tag_base tag_spec* tag_term.
		j := i + 1
		for j < n && category(cps[j].Rune) == uniscan.ESTagSequence {
			j++
		}
		if j < n && category(cps[j].Rune) == uniscan.ESTagTerm {
			return true, j + 1
		}
		return true, j

	case uniscan.ESEmojiPresentation, uniscan.ESExtendedPictographic, uniscan.ESTextPresentation:
		defaultEmoji := cat == uniscan.ESEmojiPresentation
		if i+1 < n {
			switch category(cps[i+1].Rune) {
			case uniscan.ESVS16:
				return true, i + 2
			case uniscan.ESVS15:
				return false, i + 2
			}
		}
		return defaultEmoji, i + 1

	default:
		return false, i + 1
	}
}
