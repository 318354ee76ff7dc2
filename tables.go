package uniscan

const blockSize = 0x100 // BLOCK, per spec §4.1: 256 codepoints per block.

const maxCodepoint = 0x110000

// PropertyTables is the three-stage compressed codepoint -> properties
// lookup described in spec §3/§4.1/§6:
//
//	stage3[stage2[stage1[c/256]*256 + c%256]] == properties of c
//
// stage1 and stage2 hold block/row indices (not raw property values), and
// stage3 holds the deduplicated property records themselves. Identical
// 256-codepoint blocks share a single stage2 row, and identical property
// records share a single stage3 slot, which is where the space savings
// versus a flat 0x110000-entry array comes from.
type PropertyTables struct {
	stage1 []uint16
	stage2 []uint16
	stage3 []CodepointProperties
}

// Lookup returns the properties of r. Codepoints outside 0..0x10FFFF are
// clamped to the unassigned record rather than panicking, per spec §4.1.
func (t *PropertyTables) Lookup(r rune) CodepointProperties {
	if r < 0 || r >= maxCodepoint {
		return unassigned
	}
	block := t.stage1[int(r)/blockSize]
	idx := t.stage2[int(block)*blockSize+int(r)%blockSize]
	return t.stage3[idx]
}

// BuildPropertyTables compresses a dense, one-record-per-codepoint array
// into the three-stage form: identical property records are interned into
// stage3, then identical 256-codepoint blocks of stage3 indices share one
// stage2 row. internal/gen does not compress; it only emits range lists.
func BuildPropertyTables(dense []CodepointProperties) *PropertyTables {
	if len(dense) != maxCodepoint {
		panic("uniscan: BuildPropertyTables requires exactly 0x110000 records")
	}

	stage3Index := make(map[CodepointProperties]uint16, 256)
	var stage3 []CodepointProperties
	internStage3 := func(p CodepointProperties) uint16 {
		if idx, ok := stage3Index[p]; ok {
			return idx
		}
		idx := uint16(len(stage3))
		stage3Index[p] = idx
		stage3 = append(stage3, p)
		return idx
	}

	propIndices := make([]uint16, maxCodepoint)
	for i, p := range dense {
		propIndices[i] = internStage3(p)
	}

	nBlocks := maxCodepoint / blockSize
	stage1 := make([]uint16, nBlocks)
	var stage2 []uint16
	blockIndex := make(map[string]uint16, nBlocks)

	buf := make([]byte, blockSize*2)
	for b := 0; b < nBlocks; b++ {
		row := propIndices[b*blockSize : (b+1)*blockSize]
		for i, v := range row {
			buf[2*i] = byte(v)
			buf[2*i+1] = byte(v >> 8)
		}
		key := string(buf)
		if idx, ok := blockIndex[key]; ok {
			stage1[b] = idx
			continue
		}
		idx := uint16(len(stage2) / blockSize)
		blockIndex[key] = idx
		stage2 = append(stage2, row...)
		stage1[b] = idx
	}

	return &PropertyTables{stage1: stage1, stage2: stage2, stage3: stage3}
}

// BuildDenseTable materializes one [CodepointProperties] per codepoint from
// the curated range tables in rangetables.go and gcbranges.go, applying the
// derivations spec §4.1 describes (char_width from general category, East
// Asian Width, and the emoji-presentation flag; Hangul LV/LVT derived
// algorithmically from the Hangul Syllables block rather than tabulated).
func BuildDenseTable() []CodepointProperties {
	dense := make([]CodepointProperties, maxCodepoint)
	for i := range dense {
		dense[i] = unassigned
	}

	for _, sr := range scriptRanges {
		for c := sr.lo; c <= sr.hi; c++ {
			dense[c].Script = sr.script
		}
	}
	for _, er := range eawRanges {
		for c := er.lo; c <= er.hi; c++ {
			dense[c].EastAsianWidth = er.eaw
		}
	}
	for _, gr := range generalCategoryRanges {
		for c := gr.lo; c <= gr.hi; c++ {
			dense[c].GeneralCategory = gr.gc
		}
	}
	for _, gr := range generalCategoryUpperOverrides {
		for c := gr.lo; c <= gr.hi; c++ {
			dense[c].GeneralCategory = gr.gc
		}
	}
	for _, gr := range gcbRanges {
		for c := gr.lo; c <= gr.hi; c++ {
			dense[c].GraphemeClusterBreak = gr.gcb
		}
	}
	applyHangulSyllables(dense)

	for _, rr := range emojiRanges {
		for c := rr.lo; c <= rr.hi; c++ {
			dense[c].Flags |= FlagEmoji
		}
	}
	for _, rr := range emojiPresentationRanges {
		for c := rr.lo; c <= rr.hi; c++ {
			dense[c].Flags |= FlagEmojiPresentation
		}
	}
	for _, rr := range emojiComponentRanges {
		for c := rr.lo; c <= rr.hi; c++ {
			dense[c].Flags |= FlagEmojiComponent
		}
	}
	for _, rr := range emojiModifierRanges {
		for c := rr.lo; c <= rr.hi; c++ {
			dense[c].Flags |= FlagEmojiModifier
		}
	}
	for _, rr := range emojiModifierBaseRanges {
		for c := rr.lo; c <= rr.hi; c++ {
			dense[c].Flags |= FlagEmojiModifierBase
		}
	}
	for _, rr := range extendedPictographicRanges {
		for c := rr.lo; c <= rr.hi; c++ {
			dense[c].Flags |= FlagExtendedPictographic
		}
	}

	// CoreGraphemeExtend mirrors GCBExtend/GCBZWJ plus ZWNJ, which
	// DerivedCoreProperties.txt marks Grapheme_Extend even though the
	// curated gcbRanges leave its Grapheme_Cluster_Break value as Other.
	for i := range dense {
		switch dense[i].GraphemeClusterBreak {
		case GCBExtend, GCBZWJ:
			dense[i].Flags |= FlagCoreGraphemeExtend
		}
	}
	dense[0x200C].Flags |= FlagCoreGraphemeExtend // ZWNJ

	applyEmojiSegmentationCategory(dense)

	for i := range dense {
		dense[i].CharWidth = uint8(defaultCharWidth(dense[i]))
	}

	return dense
}

// applyHangulSyllables derives Grapheme_Cluster_Break LV/LVT for the
// Hangul Syllables block algorithmically, per the standard Hangul
// decomposition (Unicode §3.12): a syllable with a zero trailing-consonant
// index is LV, otherwise LVT.
func applyHangulSyllables(dense []CodepointProperties) {
	const (
		sBase  = 0xAC00
		lCount = 19
		vCount = 21
		tCount = 28
		nCount = vCount * tCount
		sCount = lCount * nCount
	)
	for i := 0; i < sCount; i++ {
		c := rune(sBase + i)
		dense[c].Script = Hangul
		if i%tCount == 0 {
			dense[c].GraphemeClusterBreak = GCBLV
		} else {
			dense[c].GraphemeClusterBreak = GCBLVT
		}
	}
}

// applyEmojiSegmentationCategory derives the emoji state-machine input
// category (spec §4.1 item 4) from the flags already applied above, plus
// the small set of hard-coded codepoints the spec calls out by name.
func applyEmojiSegmentationCategory(dense []CodepointProperties) {
	for i := range dense {
		p := &dense[i]
		switch {
		case p.Flags.Has(FlagEmojiModifierBase):
			p.EmojiSegCategory = ESEmojiModifierBase
		case p.Flags.Has(FlagEmojiModifier):
			p.EmojiSegCategory = ESEmojiModifier
		case p.Flags.Has(FlagEmojiPresentation):
			p.EmojiSegCategory = ESEmojiPresentation
		case p.Flags.Has(FlagExtendedPictographic):
			p.EmojiSegCategory = ESExtendedPictographic
		case p.Flags.Has(FlagEmoji):
			p.EmojiSegCategory = ESTextPresentation
		}
		if p.GraphemeClusterBreak == GCBRegionalIndicator {
			p.EmojiSegCategory = ESRegionalIndicator
		}
	}

	hardCoded := map[rune]EmojiSegCategory{
		0x200D:  ESZWJ,
		0xFE0E:  ESVS15,
		0xFE0F:  ESVS16,
		0x20E3:  ESCombiningEnclosingKeycap,
		0x1F3F4: ESTagBase,
		0xE007F: ESTagTerm,
	}
	for c, cat := range hardCoded {
		dense[c].EmojiSegCategory = cat
	}
	dense[0x0023].EmojiSegCategory = ESKeycapBase
	dense[0x002A].EmojiSegCategory = ESKeycapBase
	for c := rune('0'); c <= '9'; c++ {
		dense[c].EmojiSegCategory = ESKeycapBase
	}
	for c := rune(0xE0030); c <= 0xE0039; c++ {
		dense[c].EmojiSegCategory = ESTagSequence
	}
	for c := rune(0xE0061); c <= 0xE007A; c++ {
		dense[c].EmojiSegCategory = ESTagSequence
	}
}

// defaultCharWidth implements spec §6's East Asian Width policy: Narrow,
// Halfwidth, Neutral, Ambiguous -> 1; Wide, Fullwidth -> 2; any codepoint
// with the emoji-presentation flag -> 2 regardless of EAW; zero-width
// general categories (combining marks, controls, default-ignorables) -> 0.
func defaultCharWidth(p CodepointProperties) int {
	switch p.GeneralCategory {
	case Mn, Me, Cf, Cc:
		return 0
	}
	if p.Flags.Has(FlagEmojiPresentation) {
		return 2
	}
	switch p.EastAsianWidth {
	case EAWWide, EAWFullwidth:
		return 2
	}
	return 1
}

// ScriptExtensions returns the Script_Extensions set for r: usually a
// single-element set equal to its primary [Script], but a curated handful
// of codepoints (see scriptExtensionOverrides) carry more than one script.
func ScriptExtensions(r rune) []Script {
	if exts, ok := scriptExtensionOverrides[r]; ok {
		return exts
	}
	return []Script{Lookup(r).Script}
}

var tables = BuildPropertyTables(BuildDenseTable())

// Lookup returns the properties of r via the package's precompiled tables.
func Lookup(r rune) CodepointProperties {
	return tables.Lookup(r)
}
