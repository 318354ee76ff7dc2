package emoji

import "testing"

func TestSegmentsEmpty(t *testing.T) {
	if got := Segments(nil); got != nil {
		t.Fatalf("Segments(nil) = %v, want nil", got)
	}
}

func TestSegmentsPlainText(t *testing.T) {
	spans := Segments([]byte("hello"))
	if len(spans) != 1 || spans[0].IsEmoji {
		t.Fatalf("got %+v, want a single non-emoji span", spans)
	}
}

func TestSegmentsEmojiPresentationDefault(t *testing.T) {
	// U+2615 HOT BEVERAGE: default emoji presentation.
	s := "a☕b"
	spans := Segments([]byte(s))
	if len(spans) != 3 {
		t.Fatalf("got %d spans, want 3: %+v", len(spans), spans)
	}
	if spans[0].IsEmoji || spans[2].IsEmoji {
		t.Errorf("got %+v, want only the middle span to be emoji", spans)
	}
	if !spans[1].IsEmoji {
		t.Errorf("got %+v, want the hot-beverage span to be emoji", spans)
	}
}

func TestSegmentsVS16ForcesEmoji(t *testing.T) {
	// U+263A is text-default; VS16 forces emoji presentation.
	s := "☺️"
	spans := Segments([]byte(s))
	if len(spans) != 1 || !spans[0].IsEmoji {
		t.Fatalf("got %+v, want a single emoji span", spans)
	}
}

func TestSegmentsVS15ForcesText(t *testing.T) {
	// U+231B HOURGLASS is emoji-default; VS15 forces text presentation.
	s := "⌛︎"
	spans := Segments([]byte(s))
	if len(spans) != 1 || spans[0].IsEmoji {
		t.Fatalf("got %+v, want a single text span", spans)
	}
}

func TestSegmentsRegionalIndicatorFlag(t *testing.T) {
	// U+1F1FA U+1F1F8: a flag sequence (two Regional Indicators), emoji.
	s := "\U0001F1FA\U0001F1F8"
	spans := Segments([]byte(s))
	if len(spans) != 1 || !spans[0].IsEmoji {
		t.Fatalf("got %+v, want a single emoji span covering the flag pair", spans)
	}
	if spans[0].Start != 0 || spans[0].End != len(s) {
		t.Errorf("got %+v, want the span to cover the whole 8-byte sequence", spans[0])
	}
}

func TestSegmentsKeycapSequence(t *testing.T) {
	// '1' + VS16 + COMBINING ENCLOSING KEYCAP: an emoji keycap sequence.
	s := "1️⃣"
	spans := Segments([]byte(s))
	if len(spans) != 1 || !spans[0].IsEmoji {
		t.Fatalf("got %+v, want a single emoji span for the keycap sequence", spans)
	}
}

func TestSegmentsZWJFamilySequence(t *testing.T) {
	// U+1F468 MAN, ZWJ, U+1F469 WOMAN, ZWJ, U+1F467 GIRL: a ZWJ-joined
	// family sequence. Each base codepoint defaults to emoji presentation,
	// and each ZWJ binds the next element into the same emoji run, so the
	// whole five-codepoint sequence is a single emoji span.
	s := "\U0001F468‍\U0001F469‍\U0001F467"
	spans := Segments([]byte(s))
	if len(spans) != 1 || !spans[0].IsEmoji {
		t.Fatalf("got %+v, want a single emoji span for the ZWJ family sequence", spans)
	}
	if spans[0].Start != 0 || spans[0].End != len(s) {
		t.Errorf("got %+v, want the span to cover the whole sequence (%d bytes)", spans[0], len(s))
	}
}

func TestSegmentsModifierSequence(t *testing.T) {
	// U+270A RAISED FIST (modifier base) + U+1F3FB (light skin tone).
	s := "✊\U0001F3FB"
	spans := Segments([]byte(s))
	if len(spans) != 1 || !spans[0].IsEmoji {
		t.Fatalf("got %+v, want a single emoji span for the modifier sequence", spans)
	}
}
