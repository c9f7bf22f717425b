package padding

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

// Level names an obfuscation intensity. Each level maps to a closed
// range of filler units injected after every source character.
type Level string

const (
	LevelLight  Level = "light"
	LevelMedium Level = "medium"
	LevelHeavy  Level = "heavy"
)

// Range returns the closed [min, max] per-character injection range for
// the level. Unknown levels inject nothing.
func (l Level) Range() (min, max int) {
	switch l {
	case LevelLight:
		return 10, 50
	case LevelMedium:
		return 154, 158
	case LevelHeavy:
		return 500, 1000
	default:
		return 0, 0
	}
}

// ValidLevel reports whether l is a recognized obfuscation level.
func ValidLevel(l Level) bool {
	switch l {
	case LevelLight, LevelMedium, LevelHeavy:
		return true
	}
	return false
}

// Injector inserts random filler runs after each character. Unlike
// Distribute it has no determinism requirement; the random source is
// injectable so tests can fix the seed. rand.Rand is not safe for
// concurrent use, so calls serialize on mu.
type Injector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewInjector builds an Injector around rng. A nil rng gets a
// time-seeded source.
func NewInjector(rng *rand.Rand) *Injector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Injector{rng: rng}
}

// Obfuscate appends a random count of filler units, drawn from the
// level's range, after every character of text. Empty text and unknown
// levels pass through unchanged.
func (in *Injector) Obfuscate(text string, level Level) string {
	min, max := level.Range()
	if max == 0 || text == "" {
		return text
	}

	in.mu.Lock()
	defer in.mu.Unlock()

	var b strings.Builder
	b.Grow(len(text) * (1 + max))
	for _, r := range text {
		b.WriteRune(r)
		n := min + in.rng.Intn(max-min+1)
		for i := 0; i < n; i++ {
			b.WriteRune(fillerRunes[in.rng.Intn(len(fillerRunes))])
		}
	}
	return b.String()
}
