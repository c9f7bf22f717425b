package padding

import (
	"sync"
	"testing"
)

func TestBudget_Monotonic(t *testing.T) {
	b := NewBudget(1000, 100)

	prev := 0
	for _, charge := range []int{50, 0, 120, 3, 300} {
		got := b.Charge(charge)
		if got < prev {
			t.Fatalf("cumulative decreased: %d -> %d", prev, got)
		}
		prev = got
	}
	if b.Cumulative() != 473 {
		t.Errorf("cumulative: got %d, want 473", b.Cumulative())
	}
}

func TestBudget_NegativeChargeClamped(t *testing.T) {
	b := NewBudget(1000, 100)
	if got := b.Charge(-50); got != 0 {
		t.Errorf("negative charge: got %d, want 0", got)
	}
}

func TestBudget_ResetThreshold(t *testing.T) {
	b := NewBudget(1000, 100)

	b.Charge(899)
	if b.ShouldReset() {
		t.Error("899 + 100 < 1000 should not trigger reset")
	}
	b.Charge(1)
	if !b.ShouldReset() {
		t.Error("900 + 100 >= 1000 must trigger reset")
	}

	b.Reset()
	if b.Cumulative() != 0 {
		t.Errorf("after reset: got %d, want 0", b.Cumulative())
	}
	if b.ShouldReset() {
		t.Error("fresh budget should not need a reset")
	}
}

func TestBudget_ConcurrentCharges(t *testing.T) {
	b := NewBudget(1_000_000, 0)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				b.Charge(1)
			}
		}()
	}
	wg.Wait()

	if b.Cumulative() != 5000 {
		t.Errorf("cumulative after concurrent charges: got %d, want 5000", b.Cumulative())
	}
}
