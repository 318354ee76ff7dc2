package uniscan

import "testing"

func feedAll(t *testing.T, b []byte) []DecodeOutcome {
	t.Helper()
	var s DecoderState
	var outcomes []DecodeOutcome
	i := 0
	for i < len(b) {
		o := Feed(&s, b[i])
		outcomes = append(outcomes, o)
		if o.Consumed {
			i++
		}
	}
	return outcomes
}

func TestFeedASCII(t *testing.T) {
	outcomes := feedAll(t, []byte("A"))
	if len(outcomes) != 1 || outcomes[0].Status != Success || outcomes[0].Rune != 'A' {
		t.Fatalf("got %+v, want single Success('A')", outcomes)
	}
}

func TestFeedMultiByte(t *testing.T) {
	// U+00E9 (é), 2-byte sequence 0xC3 0xA9.
	outcomes := feedAll(t, []byte{0xC3, 0xA9})
	if len(outcomes) != 2 {
		t.Fatalf("got %d outcomes, want 2", len(outcomes))
	}
	if outcomes[0].Status != Incomplete {
		t.Errorf("first byte: got %v, want Incomplete", outcomes[0].Status)
	}
	if outcomes[1].Status != Success || outcomes[1].Rune != 0x00E9 {
		t.Errorf("second byte: got %+v, want Success(0x00E9)", outcomes[1])
	}
}

func TestFeedStrayContinuationByte(t *testing.T) {
	var s DecoderState
	o := Feed(&s, 0x80)
	if o.Status != Invalid || !o.Consumed {
		t.Fatalf("got %+v, want Invalid/Consumed=true at a boundary", o)
	}
	if !s.AtBoundary() {
		t.Error("decoder should be reset to a boundary after an invalid leader")
	}
}

func TestFeedAbortedSequenceReEmitsLeader(t *testing.T) {
	var s DecoderState
	// Start a 3-byte sequence, then abort it with an ASCII byte.
	if o := Feed(&s, 0xE0); o.Status != Incomplete {
		t.Fatalf("leader: got %v, want Incomplete", o.Status)
	}
	o := Feed(&s, 'A')
	if o.Status != Invalid || o.Consumed {
		t.Fatalf("abort: got %+v, want Invalid/Consumed=false", o)
	}
	if !s.AtBoundary() {
		t.Fatal("decoder should reset to a boundary on an aborted sequence")
	}
	// Caller re-feeds 'A' to the now-reset decoder.
	o2 := Feed(&s, 'A')
	if o2.Status != Success || o2.Rune != 'A' {
		t.Fatalf("re-feed: got %+v, want Success('A')", o2)
	}
}

func TestFeedIncompleteAtEndOfInput(t *testing.T) {
	var s DecoderState
	o := Feed(&s, 0xC3) // leader of a 2-byte sequence, no continuation follows
	if o.Status != Incomplete {
		t.Fatalf("got %v, want Incomplete", o.Status)
	}
	if s.AtBoundary() {
		t.Error("decoder should not be at a boundary mid-sequence")
	}
	if s.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", s.Pending())
	}
}

func TestFeedInvalidLeaderByte(t *testing.T) {
	var s DecoderState
	o := Feed(&s, 0xFF)
	if o.Status != Invalid || !o.Consumed {
		t.Fatalf("got %+v, want Invalid/Consumed=true", o)
	}
}
