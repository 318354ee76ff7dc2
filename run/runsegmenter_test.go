package run

import (
	"testing"

	"github.com/clipperhouse/uniscan"
)

func TestSegmentsPlainText(t *testing.T) {
	runs := Segments([]byte("hello"))
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1: %+v", len(runs), runs)
	}
	r := runs[0]
	if r.Start != 0 || r.End != 5 || r.Script != uniscan.Latin || r.PresentationStyle != Text {
		t.Fatalf("got %+v, want {0 5 Latin Text}", r)
	}
}

func TestSegmentsScriptAndPresentationBoundaries(t *testing.T) {
	// Latin text, then an emoji-presentation codepoint (Unknown script in
	// the curated script data, so not merged into the Latin run), forming a
	// script boundary and a presentation boundary at the same offset.
	s := "ab☕"
	runs := Segments([]byte(s))
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2: %+v", len(runs), runs)
	}
	if runs[0].PresentationStyle != Text || runs[0].Script != uniscan.Latin {
		t.Errorf("run 0 = %+v, want Text/Latin", runs[0])
	}
	if runs[1].PresentationStyle != Emoji {
		t.Errorf("run 1 = %+v, want Emoji presentation", runs[1])
	}
	if runs[0].End != runs[1].Start {
		t.Errorf("runs are not adjacent: %+v / %+v", runs[0], runs[1])
	}
}

func TestPresentationStyleString(t *testing.T) {
	if Text.String() != "Text" {
		t.Errorf("Text.String() = %q, want Text", Text.String())
	}
	if Emoji.String() != "Emoji" {
		t.Errorf("Emoji.String() = %q, want Emoji", Emoji.String())
	}
}

func TestSegmentsNoSplitAcrossCommonPunctuation(t *testing.T) {
	// Plain Latin text across a punctuation mark stays one run (Common is
	// compatible with Latin, so there's no script boundary here at all —
	// this exercises that no spurious split happens).
	runs := Segments([]byte("ab.cd"))
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1 (no script/presentation boundary): %+v", len(runs), runs)
	}
}
