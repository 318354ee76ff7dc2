package script

import (
	"github.com/clipperhouse/uniscan"
	"github.com/clipperhouse/uniscan/internal/codepoints"
)

// Segment is one script run: codepoints in [Start, End) of the original
// buffer resolve to Script, per spec §4.6.
type Segment struct {
	Start, End int
	Script     uniscan.Script
}

// Segments splits b into script runs per UAX #24. Each codepoint's
// Script_Extensions set is intersected against the running set; when the
// intersection empties out, the current run closes and a new one starts.
//
// A run that never resolves beyond [uniscan.Common] or [uniscan.Inherited]
// but is immediately followed, within the same run, by a definite script
// adopts that script retroactively — the commonPreferredScript hint
// described in spec §4.6 and confirmed against the original
// script_segmenter.cpp behavior (see DESIGN.md).
func Segments(b []byte) []Segment {
	cps := codepoints.Decode(b)
	if len(cps) == 0 {
		return nil
	}

	var segs []Segment
	start := cps[0].Start
	end := cps[0].End
	current := newScriptSet(cps[0].Rune)
	var commonPreferred uniscan.Script
	hasCommonPreferred := false

	for i := 1; i < len(cps); i++ {
		cp := cps[i]
		next := newScriptSet(cp.Rune)
		nextHead := next.Head()
		currentHead := current.Head()

		switch {
		case isAmbiguousScript(nextHead):
			// Common/Inherited codepoints (punctuation, combining marks,
			// digits) are compatible with any script; the run continues
			// unchanged.
			end = cp.End

		case isAmbiguousScript(currentHead):
			// The run hasn't locked onto a real script yet; adopt this
			// codepoint's set and remember it as the preferred
			// resolution if the run turns out to stay Common-only after
			// this point (it won't here, since we're adopting a real
			// script, but a later Common stretch within the same run
			// would fall back to this hint at emit time).
			if !hasCommonPreferred {
				commonPreferred = nextHead
				hasCommonPreferred = true
			}
			current = next
			end = cp.End

		default:
			if merged, ok := current.intersect(next, currentHead); ok {
				current = merged
				end = cp.End
			} else {
				segs = append(segs, Segment{start, end, resolvedScript(current, commonPreferred, hasCommonPreferred)})
				start, end = cp.Start, cp.End
				current = next
				hasCommonPreferred = false
			}
		}
	}

	segs = append(segs, Segment{start, end, resolvedScript(current, commonPreferred, hasCommonPreferred)})
	return segs
}

func isAmbiguousScript(s uniscan.Script) bool {
	return s == uniscan.Common || s == uniscan.Inherited
}

func resolvedScript(set ScriptSet, commonPreferred uniscan.Script, hasCommonPreferred bool) uniscan.Script {
	head := set.Head()
	if head == uniscan.Common && hasCommonPreferred {
		return commonPreferred
	}
	return head
}
