// Package padding implements the context-filling and obfuscation engine:
// zero-width filler injection sized against a token budget.
package padding

import "strings"

// Filler code points. All render with zero visual width but carry a
// non-zero cost under token estimation.
const (
	zeroWidthSpace     = '​'
	zeroWidthNonJoiner = '‌'
	zeroWidthJoiner    = '‍'
)

// fillerRunes is the closed set of filler units the engine inserts.
var fillerRunes = []rune{zeroWidthSpace, zeroWidthNonJoiner, zeroWidthJoiner}

// IsFiller reports whether r is one of the engine's filler code points.
func IsFiller(r rune) bool {
	return r == zeroWidthSpace || r == zeroWidthNonJoiner || r == zeroWidthJoiner
}

// Strip removes every filler unit from s, recovering the text that was
// originally padded.
func Strip(s string) string {
	return strings.Map(func(r rune) rune {
		if IsFiller(r) {
			return -1
		}
		return r
	}, s)
}

// CountFillers returns the number of filler units in s.
func CountFillers(s string) int {
	n := 0
	for _, r := range s {
		if IsFiller(r) {
			n++
		}
	}
	return n
}

// fillerSequence returns a deterministic sequence of n filler units,
// cycling through the filler set. Used for ratio sampling and by the
// distributor so identical inputs always produce identical output.
func fillerSequence(n int) string {
	var b strings.Builder
	b.Grow(n * 3) // filler runes are 3 bytes in UTF-8
	for i := 0; i < n; i++ {
		b.WriteRune(fillerRunes[i%len(fillerRunes)])
	}
	return b.String()
}
