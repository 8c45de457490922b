package alphasuite

import (
	"testing"
	"time"
)

// go test -v --run TestFixedDelay
func TestFixedDelay(t *testing.T) {
	p := FixedDelay(3 * time.Second)

	for _, attempt := range []int{0, 1, 100} {
		delay, ok := p.Next(attempt)
		if !ok {
			t.Fatalf("fixed delay must never give up (attempt %d)", attempt)
		}
		if delay != 3*time.Second {
			t.Errorf("attempt %d: expected 3s, got %v", attempt, delay)
		}
	}
}

// go test -v --run TestCappedBackoffGrowth
func TestCappedBackoffGrowth(t *testing.T) {
	p := CappedBackoff{Base: time.Second, Max: 8 * time.Second}

	want := []time.Duration{
		time.Second,
		2 * time.Second,
		4 * time.Second,
		8 * time.Second,
		8 * time.Second, // capped
	}
	for attempt, expected := range want {
		delay, ok := p.Next(attempt)
		if !ok {
			t.Fatalf("must not give up without MaxAttempts (attempt %d)", attempt)
		}
		if delay != expected {
			t.Errorf("attempt %d: expected %v, got %v", attempt, expected, delay)
		}
	}

	// Large attempt numbers must not overflow past the cap.
	if delay, _ := p.Next(63); delay != 8*time.Second {
		t.Errorf("expected capped delay for huge attempt, got %v", delay)
	}
}

// go test -v --run TestCappedBackoffGivesUp
func TestCappedBackoffGivesUp(t *testing.T) {
	p := CappedBackoff{Base: time.Millisecond, Max: time.Second, MaxAttempts: 2}

	if _, ok := p.Next(1); !ok {
		t.Fatal("attempt below the limit must proceed")
	}
	if _, ok := p.Next(2); ok {
		t.Fatal("attempt at the limit must give up")
	}
}
