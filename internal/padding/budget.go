package padding

import "sync"

// Budget tracks cumulative tokens spent across the calls of one logical
// session. It is shared by concurrent requests, so every method takes
// the lock; the orchestrator additionally serializes its whole
// compute-and-charge step so two requests never book the same headroom.
// A Budget is reset in place, never replaced, to preserve identity for
// concurrent holders.
type Budget struct {
	mu           sync.Mutex
	cumulative   int
	windowTarget int
	safetyMargin int
}

// NewBudget creates a zeroed Budget for a session bounded by
// windowTarget tokens with the given safety margin.
func NewBudget(windowTarget, safetyMargin int) *Budget {
	return &Budget{windowTarget: windowTarget, safetyMargin: safetyMargin}
}

// Charge adds the token cost of a just-produced response and returns the
// new cumulative total. Negative charges are clamped so the counter
// never goes below zero.
func (b *Budget) Charge(tokens int) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if tokens > 0 {
		b.cumulative += tokens
	}
	return b.cumulative
}

// Cumulative returns the tokens charged since the last reset.
func (b *Budget) Cumulative() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cumulative
}

// ShouldReset reports whether the session is close enough to the window
// target that the next call must start from a fresh budget.
func (b *Budget) ShouldReset() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cumulative+b.safetyMargin >= b.windowTarget
}

// Reset zeroes the counter in place.
func (b *Budget) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cumulative = 0
}
