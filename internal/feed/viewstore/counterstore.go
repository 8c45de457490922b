package viewstore

import "sync"

// Counter names used by the dashboard, matching the backend's stats keys.
const (
	CounterTokensScanned  = "tokens_scanned"
	CounterTradesDetected = "trades_detected"
	CounterArbFound       = "arb_found"
)

// CounterStore holds the per-domain event counters. Counters are bumped
// optimistically as events arrive and overwritten wholesale when an
// authoritative snapshot lands; the snapshot always wins, even over
// optimistic increments that happened after the fetch was issued.
type CounterStore struct {
	mu     sync.Mutex
	counts map[string]int64
}

func NewCounterStore() *CounterStore {
	return &CounterStore{
		counts: make(map[string]int64),
	}
}

// Increment adds 1 to the named counter, creating it at 1 if absent, and
// returns the new value.
func (s *CounterStore) Increment(name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[name]++
	return s.counts[name]
}

// Get returns the named counter's value, 0 if absent.
func (s *CounterStore) Get(name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[name]
}

// Resync overwrites every counter present in the snapshot with the
// snapshot's value. Counters absent from the snapshot keep their current
// value.
func (s *CounterStore) Resync(snapshot map[string]int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for name, v := range snapshot {
		s.counts[name] = v
	}
}

// All returns a copy of every counter.
func (s *CounterStore) All() map[string]int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int64, len(s.counts))
	for name, v := range s.counts {
		out[name] = v
	}
	return out
}
