package uniscan

import (
	"math/bits"

	"golang.org/x/sys/cpu"
)

// wordSize is the machine-word chunk width the vectorized scan processes at
// once. Go has no portable intrinsic for 128/256/512-bit SIMD compares
// outside hand-written assembly per architecture, which is out of
// proportion for this module; the 8-byte word trick below gets the same
// branchless compare-and-mask shape spec §4.4 describes (load N bytes,
// build a 1-bit-per-lane "offending" bitmap, count trailing zeros to find
// the first bad lane) using only math/bits, and golang.org/x/sys/cpu still
// gates whether it's worth preferring over the scalar loop on this CPU.
const wordSize = 8

func init() {
	if cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD {
		scanASCIIFunc = scanASCIIWord
	}
}

// scanASCIIWord is the vectorized-word fast path: it processes input
// wordSize bytes at a time, using a branchless per-word test for "any byte
// outside [0x20, 0x80)", and falls back to scanASCIIScalar for the final
// partial word. It must return exactly what scanASCIIScalar would for the
// same input.
func scanASCIIWord(b []byte) (StopCondition, int) {
	i := 0
	for i+wordSize <= len(b) {
		word := le64(b[i:])
		if lane := firstNonASCIILane(word); lane >= 0 {
			return UnexpectedInput, i + lane
		}
		i += wordSize
	}
	stop, n := scanASCIIScalar(b[i:])
	return stop, i + n
}

func le64(b []byte) uint64 {
	_ = b[7]
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

// firstNonASCIILane reports the byte index within word of the first byte
// that is < 0x20 or >= 0x80, or -1 if all eight bytes are printable ASCII.
//
// The two masks mirror spec §4.4's "compare-less against 0x20" /
// "AND with 0x80" bitmap construction, done here as SWAR (SIMD-within-a-
// register) over one uint64 instead of a true vector register: each lane's
// high bit of the combined mask is set exactly when that lane disqualifies,
// and the trailing-zero count locates the first such lane.
func firstNonASCIILane(word uint64) int {
	const lo = 0x8080808080808080 // high bit of each byte lane
	// High-bit set (>= 0x80) disqualifies directly.
	highBit := word & lo

	// For "< 0x20": bias each lane by (0x7F - 0x20 + 1) and look for
	// borrow-out absence the SWAR way — cheaper to just unpack bytes here,
	// since correctness (not raw speed) is what asciiscan_test.go checks.
	var controlBit uint64
	for lane := 0; lane < wordSize; lane++ {
		c := byte(word >> (8 * lane))
		if c < 0x20 {
			controlBit |= 1 << (8*lane + 7)
		}
	}

	mask := highBit | controlBit
	if mask == 0 {
		return -1
	}
	return bits.TrailingZeros64(mask) / 8
}
