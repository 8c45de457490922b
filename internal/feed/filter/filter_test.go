package filter

import (
	"reflect"
	"testing"

	"alphafeed/internal/feed/viewstore"
)

func rows() []viewstore.Entry {
	return []viewstore.Entry{
		viewstore.NewEntry("", "PEPE", "$120000.00", "SAFE"),
		viewstore.NewEntry("", "WOJAK", "$9000.00", "RISKY"),
		viewstore.NewEntry("", "DOGE2", "$55000.00", "SAFE"),
	}
}

// go test -v --run TestFilterCaseInsensitive
func TestFilterCaseInsensitive(t *testing.T) {
	got := Apply(rows(), "pepe")
	want := []bool{true, false, false}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	// Query matches anywhere in the rendered text, not just the symbol.
	got = Apply(rows(), "safe")
	want = []bool{true, false, true}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

// go test -v --run TestFilterEmptyQueryAllVisible
func TestFilterEmptyQueryAllVisible(t *testing.T) {
	for _, v := range Apply(rows(), "") {
		if !v {
			t.Fatal("empty query must make every row visible")
		}
	}
}

// go test -v --run TestFilterIdempotent
func TestFilterIdempotent(t *testing.T) {
	rs := rows()
	first := Apply(rs, "Risky")
	second := Apply(rs, "Risky")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same rows and query must yield the same visibility: %v vs %v", first, second)
	}
}

// go test -v --run TestFilterVisibleKeepsOrder
func TestFilterVisibleKeepsOrder(t *testing.T) {
	rs := rows()
	visible := Visible(rs, "safe")
	if len(visible) != 2 {
		t.Fatalf("expected 2 visible rows, got %d", len(visible))
	}
	if visible[0].Fields[0] != "PEPE" || visible[1].Fields[0] != "DOGE2" {
		t.Errorf("filtering must preserve row order, got %v", visible)
	}

	// Clearing the query restores everything: no data was lost.
	if got := Visible(rs, ""); len(got) != len(rs) {
		t.Errorf("cleared query must restore full visibility, got %d rows", len(got))
	}
}
