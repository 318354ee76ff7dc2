package line

import (
	"testing"

	"github.com/clipperhouse/uniscan"
)

func TestProcessPlainASCII(t *testing.T) {
	seg := New([]byte("hello"))
	r := seg.Process(100)
	if string(r.Text) != "hello" || r.Width != 5 || r.Stop != uniscan.EndOfInput {
		t.Fatalf("got %+v, want Text=hello Width=5 Stop=EndOfInput", r)
	}
}

func TestProcessStopsAtControlByte(t *testing.T) {
	seg := New([]byte("ab\tcd"))
	r := seg.Process(100)
	if string(r.Text) != "ab" || r.Width != 2 || r.Stop != uniscan.UnexpectedInput {
		t.Fatalf("got %+v, want Text=ab Width=2 Stop=UnexpectedInput", r)
	}
}

func TestProcessBudgetSplitsMidInput(t *testing.T) {
	seg := New([]byte("hello world"))
	r1 := seg.Process(5)
	if string(r1.Text) != "hello" || r1.Width != 5 || r1.Stop != uniscan.EndOfWidth {
		t.Fatalf("first Process = %+v, want Text=hello Width=5 Stop=EndOfWidth", r1)
	}
	r2 := seg.Process(100)
	if string(r2.Text) != " world" || r2.Width != 6 || r2.Stop != uniscan.EndOfInput {
		t.Fatalf("second Process = %+v, want Text=' world' Width=6 Stop=EndOfInput", r2)
	}
}

func TestProcessWideCluster(t *testing.T) {
	// U+4E2D (中), width 2, single 3-byte codepoint forming its own cluster.
	s := "a中b"
	seg := New([]byte(s))
	r := seg.Process(100)
	if string(r.Text) != s || r.Width != 4 || r.Stop != uniscan.EndOfInput {
		t.Fatalf("got %+v, want Text=%q Width=4 Stop=EndOfInput", r, s)
	}
}

func TestProcessWideClusterRewindsOnOverflow(t *testing.T) {
	// Budget 2: "a" (width 1) fits, but 中 (width 2) would push the total
	// to 3; the trailing ASCII "b" is what actually triggers the check
	// (closePendingCluster runs when the ASCII fast path takes over), so
	// the segmenter rewinds to just before 中 rather than splitting it.
	s := "a中b"
	seg := New([]byte(s))
	r := seg.Process(2)
	if string(r.Text) != "a" || r.Width != 1 || r.Stop != uniscan.EndOfWidth {
		t.Fatalf("got %+v, want Text=a Width=1 Stop=EndOfWidth (中 rewound)", r)
	}
	r2 := seg.Process(100)
	if string(r2.Text) != "中b" || r2.Width != 3 || r2.Stop != uniscan.EndOfInput {
		t.Fatalf("resumed Process = %+v, want Text=中b Width=3", r2)
	}
}

func TestProcessInvalidByte(t *testing.T) {
	// 0x80 is a stray continuation byte at a boundary: invalid, width 1.
	seg := New([]byte{'a', 0x80, 'b'})
	r := seg.Process(100)
	if r.Width != 3 || r.Stop != uniscan.EndOfInput {
		t.Fatalf("got %+v, want Width=3 Stop=EndOfInput", r)
	}
}

func TestProcessVS16ForcesWidth2(t *testing.T) {
	// U+263A (text-default smiley) + VS16, followed by ASCII to force the
	// pending cluster closed: width is forced to 2 instead of the bare
	// rune's default of 1.
	s := "☺️x"
	seg := New([]byte(s))
	r := seg.Process(100)
	if r.Width != 3 || r.Stop != uniscan.EndOfInput { // 2 (forced cluster) + 1 ('x')
		t.Fatalf("got %+v, want Width=3 Stop=EndOfInput", r)
	}
}

func TestFlushEmitsPendingCluster(t *testing.T) {
	// "a中" ends on a complex-path cluster with nothing after it to force
	// a close: Process's width excludes it, and Flush settles it.
	s := "a中"
	seg := New([]byte(s))
	r := seg.Process(100)
	if r.Width != 1 || r.Stop != uniscan.EndOfInput {
		t.Fatalf("Process = %+v, want Width=1 Stop=EndOfInput (中 still pending)", r)
	}
	flushed := seg.Flush(100)
	if flushed.Width != 2 {
		t.Fatalf("Flush = %+v, want Width=2 for the pending 中 cluster", flushed)
	}

	// A second Flush call is a no-op.
	again := seg.Flush(100)
	if again.Width != 0 {
		t.Fatalf("second Flush = %+v, want a no-op", again)
	}
}

func TestFlushEmitsIncompleteSequence(t *testing.T) {
	// A lone leader byte of a 2-byte sequence, with no continuation: a
	// real stream would feed the continuation next, but if input ends
	// here, Flush reports it as one invalid width-1 cluster.
	seg := New([]byte{'a', 0xC3})
	r := seg.Process(100)
	if r.Stop != uniscan.EndOfInput {
		t.Fatalf("Process = %+v, want EndOfInput (leader byte incomplete, loop exits at buffer end)", r)
	}
	flushed := seg.Flush(100)
	if flushed.Width != 1 {
		t.Fatalf("Flush = %+v, want Width=1 for the dangling leader byte", flushed)
	}
}

func TestExpandBufferByResumesSplitCodepoint(t *testing.T) {
	// Simulates streaming input arriving split mid-codepoint: the first
	// chunk ends right after the leader byte of 中 (U+4E2D, encoded
	// E4 B8 AD), with the rest arriving later into the same backing array.
	buf := make([]byte, 2, 16)
	buf[0] = 'a'
	buf[1] = 0xE4 // leader byte of a 3-byte sequence, no continuation yet

	seg := New(buf)
	r1 := seg.Process(100)
	if string(r1.Text) != "a\xE4" || r1.Width != 1 || r1.Stop != uniscan.EndOfInput {
		t.Fatalf("first Process = %+v, want Text=\"a\\xE4\" Width=1 Stop=EndOfInput (leader byte pending)", r1)
	}

	// The stream writes the rest of the sequence, plus a trailing ASCII
	// byte, directly into buf's backing array beyond its current logical
	// length, then tells the segmenter to extend its view rather than
	// resetting — in-flight decoder state (the pending leader byte) must
	// survive this.
	rest := []byte{0xB8, 0xAD, 'b'}
	ext := buf[:len(buf)+len(rest)]
	copy(ext[2:], rest)
	seg.ExpandBufferBy(len(rest))

	r2 := seg.Process(100)
	if string(r2.Text) != "\xB8\xADb" || r2.Width != 3 || r2.Stop != uniscan.EndOfInput {
		t.Fatalf("second Process = %+v, want Text=\"\\xB8\\xADb\" Width=3 Stop=EndOfInput (中 completes, then b)", r2)
	}
}

func TestExpandBufferByResumesSplitClusterBudgetCheck(t *testing.T) {
	// Same split-codepoint arrival, but the caller also exercises the
	// budget path immediately after the sequence completes: 中 is width 2,
	// so a budget of 2 should admit it but not the trailing 'b'.
	buf := make([]byte, 2, 16)
	buf[0] = 'a'
	buf[1] = 0xE4

	seg := New(buf)
	seg.Process(100)

	rest := []byte{0xB8, 0xAD, 'b'}
	ext := buf[:len(buf)+len(rest)]
	copy(ext[2:], rest)
	seg.ExpandBufferBy(len(rest))

	r := seg.Process(2)
	if string(r.Text) != "\xB8\xAD" || r.Width != 2 || r.Stop != uniscan.EndOfWidth {
		t.Fatalf("budgeted Process = %+v, want Text=\"\\xB8\\xAD\" Width=2 Stop=EndOfWidth (b held back)", r)
	}
}

func TestProcessZWJFamilyEmojiSequence(t *testing.T) {
	// U+1F468 MAN, ZWJ, U+1F469 WOMAN, ZWJ, U+1F467 GIRL: three Extended
	// Pictographic codepoints joined by ZWJ (GB11) bind into a single
	// grapheme cluster, the literal family-emoji end-to-end scenario.
	s := "\U0001F468‍\U0001F469‍\U0001F467"
	var recorded [][]byte
	seg := New([]byte(s))
	seg.Listener = recordingListener{clusters: &recorded}

	r := seg.Process(100)
	if r.Stop != uniscan.EndOfInput {
		t.Fatalf("Process stop = %v, want EndOfInput", r.Stop)
	}
	flushed := seg.Flush(100)
	total := r.Width + flushed.Width
	if total != 2 {
		t.Fatalf("total width = %d, want 2 (one emoji-presentation cluster)", total)
	}
	if len(recorded) != 1 || string(recorded[0]) != s {
		t.Fatalf("recorded clusters = %q, want a single cluster spanning the whole sequence", recorded)
	}
}

type recordingListener struct {
	NoopListener
	clusters *[][]byte
}

func (l recordingListener) OnGraphemeCluster(slice []byte, width int) {
	*l.clusters = append(*l.clusters, slice)
}

func TestMoveForwardToResetsState(t *testing.T) {
	seg := New([]byte("hello"))
	seg.Process(2)
	seg.MoveForwardTo(4)
	r := seg.Process(100)
	if string(r.Text) != "o" || r.Width != 1 {
		t.Fatalf("got %+v, want Text=o Width=1 after MoveForwardTo(4)", r)
	}
}
