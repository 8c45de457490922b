package viewstore

import (
	"sync"

	"github.com/bvkgo/topic"
)

// ListStore is a size-capped "latest N" collection of rendered entries,
// ordered newest-first by arrival. Inserting past the cap overwrites the
// oldest entry, so an insertion is O(1).
//
// The store is safe for concurrent use; the single mutex stands in for the
// serialized access the browser-side original got for free.
type ListStore struct {
	mu        sync.Mutex
	ring      []Entry
	head      int // index of the newest entry, valid when size > 0
	size      int
	populated bool

	updates *topic.Topic[Entry]
}

// NewListStore creates a store holding at most capacity entries.
func NewListStore(capacity int) *ListStore {
	if capacity < 1 {
		capacity = 1
	}
	return &ListStore{
		ring:    make([]Entry, capacity),
		updates: topic.New[Entry](),
	}
}

// InsertFront makes e the newest entry, evicting the oldest when the store
// is at capacity. The first insertion ever marks the store populated, which
// tells the rendering surface to drop its "no items yet" placeholder row;
// the flag never re-arms.
func (s *ListStore) InsertFront(e Entry) {
	s.mu.Lock()
	n := len(s.ring)
	s.head = (s.head - 1 + n) % n
	s.ring[s.head] = e
	if s.size < n {
		s.size++
	}
	s.populated = true
	s.mu.Unlock()

	s.updates.Send(e)
}

// Entries returns a copy of the stored entries, newest first.
func (s *ListStore) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.ring)
	out := make([]Entry, s.size)
	for i := 0; i < s.size; i++ {
		out[i] = s.ring[(s.head+i)%n]
	}
	return out
}

// Len returns the number of stored entries.
func (s *ListStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.size
}

// Cap returns the configured maximum size.
func (s *ListStore) Cap() int {
	return len(s.ring)
}

// Populated reports whether the store has ever held an entry.
func (s *ListStore) Populated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.populated
}

// UpdatesCh subscribes a presentation sink to inserted entries. The returned
// func cancels the subscription.
func (s *ListStore) UpdatesCh() (<-chan Entry, func()) {
	sub, ch, _ := s.updates.Subscribe(0, false /* includeRecent */)
	return ch, sub.Unsubscribe
}
