package uniscan

import "testing"

func TestScanASCIIZeroBudget(t *testing.T) {
	stop, n := ScanASCII([]byte("hello"), 0)
	if stop != EndOfWidth || n != 0 {
		t.Fatalf("ScanASCII(_, 0) = (%v, %d), want (EndOfWidth, 0)", stop, n)
	}
}

func TestScanASCIIEmptyInput(t *testing.T) {
	stop, n := ScanASCII(nil, 10)
	if stop != EndOfInput || n != 0 {
		t.Fatalf("ScanASCII(nil, 10) = (%v, %d), want (EndOfInput, 0)", stop, n)
	}
}

func TestScanASCIIRunsToEndOfInput(t *testing.T) {
	stop, n := ScanASCII([]byte("hello"), 100)
	if stop != EndOfInput || n != 5 {
		t.Fatalf("got (%v, %d), want (EndOfInput, 5)", stop, n)
	}
}

func TestScanASCIIRunsToEndOfWidth(t *testing.T) {
	stop, n := ScanASCII([]byte("hello world"), 5)
	if stop != EndOfWidth || n != 5 {
		t.Fatalf("got (%v, %d), want (EndOfWidth, 5)", stop, n)
	}
}

func TestScanASCIIStopsAtControlByte(t *testing.T) {
	stop, n := ScanASCII([]byte("ab\tcd"), 100)
	if stop != UnexpectedInput || n != 2 {
		t.Fatalf("got (%v, %d), want (UnexpectedInput, 2)", stop, n)
	}
}

func TestScanASCIIStopsAtNonASCIIByte(t *testing.T) {
	b := append([]byte("ab"), 0xC3, 0xA9) // "ab" + é lead byte
	stop, n := ScanASCII(b, 100)
	if stop != UnexpectedInput || n != 2 {
		t.Fatalf("got (%v, %d), want (UnexpectedInput, 2)", stop, n)
	}
}

func TestScanASCIIUnexpectedInputIgnoresBudget(t *testing.T) {
	// A control byte inside the budget window is still UnexpectedInput,
	// not silently absorbed into EndOfWidth.
	stop, n := ScanASCII([]byte("a\tbcdef"), 3)
	if stop != UnexpectedInput || n != 1 {
		t.Fatalf("got (%v, %d), want (UnexpectedInput, 1)", stop, n)
	}
}

func TestStopConditionString(t *testing.T) {
	cases := map[StopCondition]string{
		UnexpectedInput: "UnexpectedInput",
		EndOfInput:      "EndOfInput",
		EndOfWidth:      "EndOfWidth",
	}
	for sc, want := range cases {
		if got := sc.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", sc, got, want)
		}
	}
}
