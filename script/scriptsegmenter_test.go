package script

import (
	"testing"

	"github.com/clipperhouse/uniscan"
)

func TestSegmentsEmpty(t *testing.T) {
	if got := Segments(nil); got != nil {
		t.Fatalf("Segments(nil) = %v, want nil", got)
	}
}

func TestSegmentsSingleScript(t *testing.T) {
	segs := Segments([]byte("hello"))
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1: %+v", len(segs), segs)
	}
	if segs[0].Start != 0 || segs[0].End != 5 || segs[0].Script != uniscan.Latin {
		t.Fatalf("got %+v, want {0 5 Latin}", segs[0])
	}
}

func TestSegmentsScriptChange(t *testing.T) {
	s := "ab 中文"
	segs := Segments([]byte(s))
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2: %+v", len(segs), segs)
	}
	if segs[0].Script != uniscan.Latin || segs[0].Start != 0 || segs[0].End != 3 {
		t.Errorf("segment 0 = %+v, want {0 3 Latin} (\"ab \", the space stays with Latin)", segs[0])
	}
	if segs[1].Script != uniscan.Han || segs[1].Start != 3 || segs[1].End != len(s) {
		t.Errorf("segment 1 = %+v, want {3 %d Han}", segs[1], len(s))
	}
}

func TestSegmentsAllCommon(t *testing.T) {
	// "!!!" is pure Common punctuation (0x21, no letters): no real script
	// ever appears, so the run resolves to Common itself.
	segs := Segments([]byte("!!!"))
	if len(segs) != 1 || segs[0].Script != uniscan.Common {
		t.Fatalf("got %+v, want a single Common segment", segs)
	}
}

func TestSegmentsCommonPreferredScriptHint(t *testing.T) {
	// A Common-only prefix ("!!!") immediately followed, within the same
	// run, by a real script (中) adopts that script retroactively: the
	// whole span resolves as one Han segment rather than splitting at the
	// Common/Han boundary.
	segs := Segments([]byte("!!!中!!!"))
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1: %+v", len(segs), segs)
	}
	if segs[0].Script != uniscan.Han {
		t.Errorf("got Script=%v, want Han (commonPreferred resolution)", segs[0].Script)
	}
}
