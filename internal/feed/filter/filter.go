// Package filter derives row visibility from a live search query. Filtering
// is presentation-only: it never touches the stores, so clearing the query
// restores full visibility with no data loss.
package filter

import (
	"strings"

	"alphafeed/internal/feed/viewstore"
)

// Match reports whether a row's rendered text satisfies the query:
// case-insensitive substring, empty query matches everything.
func Match(text, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(query))
}

// Apply computes one visibility flag per row, in row order. Pure and
// idempotent: the same rows and query always yield the same flags.
func Apply(rows []viewstore.Entry, query string) []bool {
	visible := make([]bool, len(rows))
	for i, row := range rows {
		visible[i] = Match(row.Text(), query)
	}
	return visible
}

// Visible returns only the rows whose rendered text matches the query,
// preserving order.
func Visible(rows []viewstore.Entry, query string) []viewstore.Entry {
	out := make([]viewstore.Entry, 0, len(rows))
	for _, row := range rows {
		if Match(row.Text(), query) {
			out = append(out, row)
		}
	}
	return out
}
