package padding

import "strings"

// Distribute inserts n filler units into text, spread as evenly as
// integer division allows across the runes+1 insertion slots (before,
// between, and after every character). Any remainder goes to the
// earliest slots. Deterministic: identical (text, n) always yields
// identical output, which keeps the search's probes stable. The original
// text is recoverable as a subsequence via Strip.
func Distribute(text string, n int) string {
	if n <= 0 {
		return text
	}

	runes := []rune(text)
	slots := len(runes) + 1
	base := n / slots
	rem := n % slots

	var b strings.Builder
	b.Grow(len(text) + n*3)

	k := 0 // running filler index, cycles the filler set
	emit := func(count int) {
		for i := 0; i < count; i++ {
			b.WriteRune(fillerRunes[k%len(fillerRunes)])
			k++
		}
	}

	for slot := 0; slot < slots; slot++ {
		count := base
		if slot < rem {
			count++
		}
		emit(count)
		if slot < len(runes) {
			b.WriteRune(runes[slot])
		}
	}
	return b.String()
}
