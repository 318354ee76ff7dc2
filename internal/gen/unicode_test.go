package main

import "testing"

func TestCoalesce(t *testing.T) {
	cases := []struct {
		name  string
		runes map[rune]bool
		want  []codeRange
	}{
		{"empty", map[rune]bool{}, nil},
		{"single", map[rune]bool{5: true}, []codeRange{{5, 5}}},
		{"contiguous", map[rune]bool{1: true, 2: true, 3: true}, []codeRange{{1, 3}}},
		{
			"two gaps",
			map[rune]bool{1: true, 2: true, 10: true, 20: true, 21: true},
			[]codeRange{{1, 2}, {10, 10}, {20, 21}},
		},
		{
			"unsorted input",
			map[rune]bool{0x4E03: true, 0x4E01: true, 0x4E02: true},
			[]codeRange{{0x4E01, 0x4E03}},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := coalesce(c.runes)
			if len(got) != len(c.want) {
				t.Fatalf("coalesce(%v) = %v, want %v", c.runes, got, c.want)
			}
			for i := range got {
				if got[i] != c.want[i] {
					t.Errorf("coalesce(%v)[%d] = %v, want %v", c.runes, i, got[i], c.want[i])
				}
			}
		})
	}
}

func TestEmojiPresentationRangesFromRequiresBothProperties(t *testing.T) {
	data := &UnicodeData{
		ExtendedPictographic: map[rune]bool{0x231A: true, 0x2603: true},
		EmojiPresentation:    map[rune]bool{0x231A: true},
	}
	got := emojiPresentationRangesFrom(data)
	want := []codeRange{{0x231A, 0x231A}}
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("emojiPresentationRangesFrom = %v, want %v (0x2603 lacks Emoji_Presentation)", got, want)
	}
}
