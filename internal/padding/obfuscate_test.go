package padding

import (
	"math/rand"
	"testing"
)

func TestLevel_Ranges(t *testing.T) {
	cases := []struct {
		level    Level
		min, max int
	}{
		{LevelLight, 10, 50},
		{LevelMedium, 154, 158},
		{LevelHeavy, 500, 1000},
		{Level("shouty"), 0, 0},
	}
	for _, c := range cases {
		min, max := c.level.Range()
		if min != c.min || max != c.max {
			t.Errorf("%s: got [%d, %d], want [%d, %d]", c.level, min, max, c.min, c.max)
		}
	}
}

func TestInjector_MediumPerCharacterCounts(t *testing.T) {
	in := NewInjector(rand.New(rand.NewSource(1)))
	out := in.Obfuscate("hello", LevelMedium)

	if Strip(out) != "hello" {
		t.Fatalf("obfuscation must preserve the source text, got %q", Strip(out))
	}

	counts := slotCounts(out)
	// Slot 0 precedes the first character; the injector only appends
	// after characters.
	if counts[0] != 0 {
		t.Errorf("filler before first character: %d", counts[0])
	}
	for i, n := range counts[1:] {
		if n < 154 || n > 158 {
			t.Errorf("character %d: %d filler units, want [154, 158]", i, n)
		}
	}
}

func TestInjector_LightTotalRange(t *testing.T) {
	in := NewInjector(rand.New(rand.NewSource(7)))
	out := in.Obfuscate("abcde", LevelLight)

	total := CountFillers(out)
	if total < 50 || total > 250 {
		t.Errorf("5-character light obfuscation injected %d units, want [50, 250]", total)
	}
}

func TestInjector_SeededDeterminism(t *testing.T) {
	a := NewInjector(rand.New(rand.NewSource(42))).Obfuscate("hello", LevelLight)
	b := NewInjector(rand.New(rand.NewSource(42))).Obfuscate("hello", LevelLight)
	if a != b {
		t.Error("same seed must reproduce the same output")
	}
}

func TestInjector_EdgeCases(t *testing.T) {
	in := NewInjector(rand.New(rand.NewSource(3)))

	if got := in.Obfuscate("", LevelHeavy); got != "" {
		t.Errorf("empty text should pass through, got %d runes", len([]rune(got)))
	}
	if got := in.Obfuscate("text", Level("unknown")); got != "text" {
		t.Errorf("unknown level should pass through, got %q", got)
	}
}
