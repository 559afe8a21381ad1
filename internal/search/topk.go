// Package search implements the exhaustive (C8) query evaluator over
// posting-list iterators and the WAND (C9) evaluator over a
// termlist.TermList of them.
package search

import (
	"container/heap"
	"sort"
)

// ErrEmptyQuery is returned when a query has no tokens after
// tokenization (spec.md §7 EmptyQuery).
var ErrEmptyQuery = errorString("search: empty query")

type errorString string

func (e errorString) Error() string { return string(e) }

// Result is one scored document in a result set, sorted by descending
// score with ties broken by ascending did (spec.md §5 ordering
// guarantee).
type Result struct {
	DID   int64
	Score float64
}

// topK is a bounded min-heap of Result, used both by the exhaustive
// evaluator (whenever k>=1) and by WAND, which also reads the heap's minimum as θ
// (spec.md §9 Design Notes, "Heap-versus-sort top-k").
type topK struct {
	k     int
	items []Result
}

func newTopK(k int) *topK {
	return &topK{k: k, items: make([]Result, 0, k)}
}

// Len, Less, Swap, Push, Pop implement container/heap.Interface, ordered
// as a min-heap on Score so the minimum is always evictable in O(log k).
func (h *topK) Len() int { return len(h.items) }
func (h *topK) Less(i, j int) bool {
	if h.items[i].Score != h.items[j].Score {
		return h.items[i].Score < h.items[j].Score
	}
	// break ties the opposite way in the min-heap so that, after the
	// final descending sort, equal scores end up ascending by did.
	return h.items[i].DID > h.items[j].DID
}
func (h *topK) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *topK) Push(x any)    { h.items = append(h.items, x.(Result)) }
func (h *topK) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]
	return item
}

// offer pushes a candidate, evicting the current minimum when the heap is
// already at capacity k. A candidate is dropped outright if the heap is
// full and the candidate does not beat the current minimum.
func (h *topK) offer(r Result) {
	if h.k <= 0 {
		return
	}
	if h.Len() < h.k {
		heap.Push(h, r)
		return
	}
	if h.Len() > 0 && (r.Score > h.items[0].Score || (r.Score == h.items[0].Score && r.DID < h.items[0].DID)) {
		heap.Pop(h)
		heap.Push(h, r)
	}
}

// threshold returns θ: the kth-best score seen so far, or 0 if fewer than
// k scored documents exist yet.
func (h *topK) threshold() float64 {
	if h.Len() < h.k {
		return 0
	}
	return h.items[0].Score
}

// drain empties the heap into descending-score order, ties broken by
// ascending did.
func (h *topK) drain() []Result {
	out := make([]Result, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(h).(Result)
	}
	return out
}

// rankAccumulator turns a did->score map into ordered Results: negative k
// means "return all" (spec.md §6: default top-k is "all"), k==0 means
// empty, and k>0 extracts the top-k via the bounded heap (spec.md §9,
// "Heap-versus-sort top-k").
func rankAccumulator(acc map[int64]float64, k int) []Result {
	if k == 0 {
		return nil
	}
	if k < 0 {
		out := make([]Result, 0, len(acc))
		for did, score := range acc {
			out = append(out, Result{DID: did, Score: score})
		}
		sort.Slice(out, func(i, j int) bool {
			if out[i].Score != out[j].Score {
				return out[i].Score > out[j].Score
			}
			return out[i].DID < out[j].DID
		})
		return out
	}
	h := newTopK(k)
	for did, score := range acc {
		h.offer(Result{DID: did, Score: score})
	}
	return h.drain()
}
