package viewstore

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Entry is a render-ready projection of one inbound event: the display cells
// for a surface, a capture timestamp, and an outbound deep link. It lives in
// exactly one ListStore slot.
type Entry struct {
	ID         uuid.UUID `json:"id"`
	Fields     []string  `json:"fields"` // rendered cells, in surface column order
	Link       string    `json:"link"`   // explorer deep link; not validated or followed
	CapturedAt time.Time `json:"captured_at"`
}

// NewEntry captures an entry now with a fresh identity.
func NewEntry(link string, fields ...string) Entry {
	return Entry{
		ID:         uuid.New(),
		Fields:     fields,
		Link:       link,
		CapturedAt: time.Now(),
	}
}

// Text returns the entry's full rendered text content, the input to
// client-side filtering.
func (e Entry) Text() string {
	return strings.Join(e.Fields, " ")
}
