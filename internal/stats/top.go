// Package stats contains statistics calculations and reporting.
package stats

import (
	"container/heap"
	"sort"

	"github.com/verte-zerg/urltop/internal/model"
)

// TopN returns the limit highest-count entries, ordered by count descending
// and then by key ascending. A limit of zero, a negative limit, or a limit
// larger than the table selects every entry.
func TopN(counts map[string]int, limit int) []model.Entry {
	if len(counts) == 0 {
		return []model.Entry{}
	}
	if limit <= 0 || limit > len(counts) {
		limit = len(counts)
	}

	var items []model.Entry
	if limit == len(counts) {
		items = make([]model.Entry, 0, len(counts))
		for key, count := range counts {
			items = append(items, model.Entry{Key: key, Count: count})
		}
	} else {
		items = selectTop(counts, limit)
	}
	sort.Slice(items, func(i, j int) bool {
		return ranksBefore(items[i], items[j])
	})
	return items
}

// ranksBefore reports whether a is placed ahead of b in a top list.
func ranksBefore(a, b model.Entry) bool {
	if a.Count == b.Count {
		return a.Key < b.Key
	}
	return a.Count > b.Count
}

// selectTop keeps the best limit entries in a min-heap whose root is the
// weakest entry kept so far. The result is unordered.
func selectTop(counts map[string]int, limit int) []model.Entry {
	h := make(entryHeap, 0, limit)
	for key, count := range counts {
		e := model.Entry{Key: key, Count: count}
		if len(h) < limit {
			heap.Push(&h, e)
			continue
		}
		if ranksBefore(e, h[0]) {
			h[0] = e
			heap.Fix(&h, 0)
		}
	}
	return h
}

type entryHeap []model.Entry

func (h entryHeap) Len() int           { return len(h) }
func (h entryHeap) Less(i, j int) bool { return ranksBefore(h[j], h[i]) }
func (h entryHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *entryHeap) Push(x any)        { *h = append(*h, x.(model.Entry)) }
func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
