// Package run multiplexes script and emoji-presentation segmentation into
// a single sequence of runs, each sharing both a resolved script and a
// presentation style — the granularity a shaping engine selects a font
// for.
package run

import (
	"github.com/clipperhouse/uniscan"
	"github.com/clipperhouse/uniscan/emoji"
	"github.com/clipperhouse/uniscan/script"
)

// PresentationStyle is how a run should render: with its text glyph or
// its emoji glyph.
type PresentationStyle uint8

const (
	Text PresentationStyle = iota
	Emoji
)

func (p PresentationStyle) String() string {
	if p == Emoji {
		return "Emoji"
	}
	return "Text"
}

// Run is one span sharing both a resolved script and a presentation
// style, per spec §4.6.
//
// PresentationStyle is the seam for a future vertical-orientation axis
// (the way libunicode's run_segmenter.h threads an extra axis alongside
// presentation): adding one is a matter of widening this struct and the
// boundary-merge step below, not restructuring the segmenter. Vertical
// orientation itself is out of scope (spec's font-shaping Non-goal).
type Run struct {
	Start, End        int
	Script            uniscan.Script
	PresentationStyle PresentationStyle
}

// Segments multiplexes [script.Segments] and [emoji.Segments]: it walks
// both boundary lists in lockstep, always advancing whichever has the
// smaller pending end offset, and emits a Run for each resulting
// sub-interval. The boundary set is the union of script boundaries and
// presentation-style transitions, per spec §4.6.
func Segments(b []byte) []Run {
	scriptSegs := script.Segments(b)
	emojiSegs := emoji.Segments(b)
	if len(scriptSegs) == 0 || len(emojiSegs) == 0 {
		return nil
	}

	var runs []Run
	start := 0
	si, ei := 0, 0
	for si < len(scriptSegs) && ei < len(emojiSegs) {
		scriptEnd := scriptSegs[si].End
		emojiEnd := emojiSegs[ei].End

		end := scriptEnd
		if emojiEnd < end {
			end = emojiEnd
		}

		presentation := Text
		if emojiSegs[ei].IsEmoji {
			presentation = Emoji
		}

		runs = append(runs, Run{
			Start:             start,
			End:               end,
			Script:            scriptSegs[si].Script,
			PresentationStyle: presentation,
		})

		start = end
		if scriptEnd == end {
			si++
		}
		if emojiEnd == end {
			ei++
		}
	}
	return mergeAdjacent(runs)
}

// mergeAdjacent coalesces consecutive runs that ended up with the same
// script and presentation style, which happens whenever a script boundary
// and a presentation boundary fall at different offsets but both sides of
// one of them agree on both axes.
func mergeAdjacent(runs []Run) []Run {
	if len(runs) == 0 {
		return runs
	}
	out := runs[:1]
	for _, r := range runs[1:] {
		last := &out[len(out)-1]
		if last.End == r.Start && last.PresentationStyle == r.PresentationStyle && last.Script == r.Script {
			last.End = r.End
			continue
		}
		out = append(out, r)
	}
	return out
}
