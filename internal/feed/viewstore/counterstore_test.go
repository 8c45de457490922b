package viewstore

import "testing"

// go test -v --run TestCounterIncrement
func TestCounterIncrement(t *testing.T) {
	s := NewCounterStore()

	// Absent counter starts from zero.
	if got := s.Get(CounterTokensScanned); got != 0 {
		t.Fatalf("expected 0 for absent counter, got %d", got)
	}
	if got := s.Increment(CounterTokensScanned); got != 1 {
		t.Fatalf("expected 1 after first increment, got %d", got)
	}
	if got := s.Increment(CounterTokensScanned); got != 2 {
		t.Fatalf("expected 2 after second increment, got %d", got)
	}
}

// go test -v --run TestCounterResyncIndependence
func TestCounterResyncIndependence(t *testing.T) {
	s := NewCounterStore()

	s.Resync(map[string]int64{CounterTokensScanned: 42})
	for i := 0; i < 3; i++ {
		s.Increment(CounterTradesDetected)
	}

	if got := s.Get(CounterTokensScanned); got != 42 {
		t.Errorf("tokens_scanned: expected 42, got %d", got)
	}
	if got := s.Get(CounterTradesDetected); got != 3 {
		t.Errorf("trades_detected: expected 3, got %d", got)
	}
}

// go test -v --run TestCounterResyncWins
func TestCounterResyncWins(t *testing.T) {
	s := NewCounterStore()

	// Optimistic increments land before the authoritative snapshot.
	for i := 0; i < 10; i++ {
		s.Increment(CounterArbFound)
	}
	s.Resync(map[string]int64{CounterArbFound: 4})

	if got := s.Get(CounterArbFound); got != 4 {
		t.Errorf("snapshot must win over optimistic increments, got %d", got)
	}
}

// go test -v --run TestCounterResyncLeavesAbsentKeys
func TestCounterResyncLeavesAbsentKeys(t *testing.T) {
	s := NewCounterStore()

	s.Increment(CounterTradesDetected)
	s.Resync(map[string]int64{CounterTokensScanned: 7})

	if got := s.Get(CounterTradesDetected); got != 1 {
		t.Errorf("counter absent from snapshot must be untouched, got %d", got)
	}
	if got := s.Get(CounterTokensScanned); got != 7 {
		t.Errorf("tokens_scanned: expected 7, got %d", got)
	}

	all := s.All()
	if len(all) != 2 {
		t.Errorf("expected 2 counters, got %v", all)
	}
}
