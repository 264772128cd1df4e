package stats

import (
	"strings"

	"github.com/verte-zerg/urltop/internal/model"
)

// Table counts occurrences of string keys. Every stored key has a count of
// at least one.
type Table struct {
	counts map[string]int
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{counts: map[string]int{}}
}

// Add increments the count for key, inserting it with count 1 when absent.
// Keys are copied on insert so the table never pins a caller's line buffer.
func (t *Table) Add(key string) {
	if n, ok := t.counts[key]; ok {
		t.counts[key] = n + 1
		return
	}
	t.counts[strings.Clone(key)] = 1
}

// Count returns the count for key, or 0 when it was never added.
func (t *Table) Count(key string) int {
	return t.counts[key]
}

// Len returns the number of distinct keys.
func (t *Table) Len() int {
	return len(t.counts)
}

// Top returns the limit highest-ranked entries. See TopN.
func (t *Table) Top(limit int) []model.Entry {
	return TopN(t.counts, limit)
}
