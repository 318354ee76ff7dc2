// Package script implements UAX #24 script segmentation: splitting a
// codepoint sequence into runs that share a resolved Unicode [Script].
package script

import "github.com/clipperhouse/uniscan"

// maxScripts bounds [ScriptSet]'s capacity. Script_Extensions.txt never
// lists more than a handful of scripts for any one codepoint; 32 is a
// generous ceiling that keeps the set stack-allocated (spec §3), not a
// measured maximum.
const maxScripts = 32

// ScriptSet is the running intersection of script extensions a
// [Segments] tracks while scanning a run (spec §3/§4.6). It is a
// small fixed-size array, never heap-allocated.
type ScriptSet struct {
	scripts [maxScripts]uniscan.Script
	n       int
}

// newScriptSet builds the ScriptSet for a single codepoint: its
// Script_Extensions, with the primary Script moved to the front if already
// present, or appended if not (spec §4.6).
func newScriptSet(r rune) ScriptSet {
	exts := uniscan.ScriptExtensions(r)
	primary := uniscan.Lookup(r).Script

	var set ScriptSet
	primaryIdx := -1
	for _, s := range exts {
		if set.n >= maxScripts {
			break
		}
		if s == primary {
			primaryIdx = set.n
		}
		set.scripts[set.n] = s
		set.n++
	}
	if primaryIdx > 0 {
		set.scripts[0], set.scripts[primaryIdx] = set.scripts[primaryIdx], set.scripts[0]
	} else if primaryIdx < 0 && set.n < maxScripts {
		// Primary script wasn't among the extensions (shouldn't normally
		// happen for curated data, but keep the set honest); append it.
		set.scripts[set.n] = primary
		set.n++
	}
	return set
}

// Len reports how many scripts are in the set.
func (s ScriptSet) Len() int { return s.n }

// Head returns the set's leading (priority) script. Code inside
// [Segments] generally wants resolvedScript instead, which also
// substitutes the common-preferred-script hint for [uniscan.Common].
func (s ScriptSet) Head() uniscan.Script {
	if s.n == 0 {
		return uniscan.Unknown
	}
	return s.scripts[0]
}

// contains reports whether want is anywhere in the set.
func (s ScriptSet) contains(want uniscan.Script) bool {
	for i := 0; i < s.n; i++ {
		if s.scripts[i] == want {
			return true
		}
	}
	return false
}

// moveToFront returns a copy of s with want moved to index 0, assuming
// want is already present; used when intersecting retains the running
// priority script.
func (s ScriptSet) moveToFront(want uniscan.Script) ScriptSet {
	for i := 0; i < s.n; i++ {
		if s.scripts[i] == want {
			s.scripts[0], s.scripts[i] = s.scripts[i], s.scripts[0]
			return s
		}
	}
	return s
}

// intersect filters s down to the scripts also present in other, keeping
// s's relative order, with priority (want) forced to the front if it
// survives the filter.
func (s ScriptSet) intersect(other ScriptSet, priority uniscan.Script) (ScriptSet, bool) {
	var result ScriptSet
	for i := 0; i < s.n; i++ {
		if other.contains(s.scripts[i]) {
			result.scripts[result.n] = s.scripts[i]
			result.n++
		}
	}
	if result.n == 0 {
		return result, false
	}
	if result.contains(priority) {
		result = result.moveToFront(priority)
	}
	return result, true
}
