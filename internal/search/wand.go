package search

import (
	"context"
	"errors"

	"github.com/pplewka/zwo/internal/postings"
	"github.com/pplewka/zwo/internal/scoring"
	"github.com/pplewka/zwo/internal/store"
	"github.com/pplewka/zwo/internal/termlist"
)

// WAND implements the pivot-based document-at-a-time pruning evaluator of
// spec.md §4.9, grounded in other_examples/.../qgram-wand.go's pivot/
// sort-by-current shape, generalized to the full pivot-disposition state
// machine (already-evaluated / misaligned / fully-aligned branches) and
// the min-df pick-term policy (Open Question 2).
func WAND(ctx context.Context, s TermStore, sc *scoring.Scorer, terms []string, k int) ([]Result, error) {
	terms = dedup(terms)
	if len(terms) == 0 {
		return nil, ErrEmptyQuery
	}
	if k == 0 {
		return nil, nil
	}

	entries := make([]termlist.Entry, 0, len(terms))
	for _, term := range terms {
		df, err := s.DF(ctx, term)
		if errors.Is(err, store.ErrTermNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		ub, err := s.TermUpperBound(ctx, term)
		if err != nil {
			return nil, err
		}
		pl, err := s.PostingsFor(ctx, term)
		if err != nil {
			return nil, err
		}
		pl.Next() // prime the cursor: -1 -> 0 (Open Question 3)
		entries = append(entries, termlist.Entry{
			Term:       term,
			List:       pl,
			UpperBound: sc.TermUpperBound(ub, df),
		})
	}
	if len(entries) == 0 {
		return nil, nil
	}

	// Exhaustive fallback for "return everything": WAND's pruning only
	// helps bound a top-k, so a negative k (spec.md §6 "default returns
	// all") runs the plain accumulation instead.
	if k < 0 {
		return exhaustiveFromEntries(entries, sc), nil
	}

	heap := newTopK(k)
	curDoc := int64(-1)

	for {
		entryList := termlist.New(entries)
		entryList.SortByCurrent()
		n := entryList.Len()

		theta := heap.threshold()

		// Pivot selection: scan in ascending-did order, accumulating
		// upper bounds until the running sum exceeds theta.
		pivotIdx := -1
		running := 0.0
		for i := 0; i < n; i++ {
			running += entryList.At(i).UpperBound
			if running > theta {
				pivotIdx = i
				break
			}
		}
		if pivotIdx < 0 {
			break // no pivot: no further document can enter the heap
		}

		pivotDID := entryList.At(pivotIdx).List.DID()
		if pivotDID == postings.DIDMax {
			break
		}

		if pivotDID <= curDoc {
			// already evaluated: advance the min-df term before the pivot
			i := pickMinDF(entryList, pivotIdx)
			entryList.At(i).List.NextGE(curDoc + 1)
			entries = collect(entryList)
			continue
		}

		aligned := true
		for i := 0; i < pivotIdx; i++ {
			if entryList.At(i).List.DID() != pivotDID {
				aligned = false
				break
			}
		}

		if aligned {
			curDoc = pivotDID
			score := 0.0
			for i := 0; i < n; i++ {
				e := entryList.At(i)
				if e.List.DID() != curDoc {
					continue
				}
				p := e.List.Current()
				score += sc.Contribution(p.Weight, e.List.DF(), p.Page, p.Date)
			}
			heap.offer(Result{DID: curDoc, Score: score})
			for i := 0; i < n; i++ {
				e := entryList.At(i)
				if e.List.DID() == curDoc {
					e.List.Next()
				}
			}
			entries = collect(entryList)
			continue
		}

		i := pickMinDF(entryList, pivotIdx)
		entryList.At(i).List.NextGE(pivotDID)
		entries = collect(entryList)
	}

	return heap.drain(), nil
}

// pickMinDF chooses, among entries strictly before pivotIdx, the one with
// the smallest df (largest idf), ties broken by earliest position
// (spec.md §4.9 "Pick-term policy").
func pickMinDF(tl *termlist.TermList, pivotIdx int) int {
	best := 0
	bestDF := tl.At(0).List.DF()
	for i := 1; i < pivotIdx; i++ {
		df := tl.At(i).List.DF()
		if df < bestDF {
			best = i
			bestDF = df
		}
	}
	return best
}

func collect(tl *termlist.TermList) []termlist.Entry {
	out := make([]termlist.Entry, tl.Len())
	for i := 0; i < tl.Len(); i++ {
		out[i] = tl.At(i)
	}
	return out
}

// exhaustiveFromEntries runs the same accumulation Exhaustive does, but
// over already-resolved entries (used by WAND's k<0 "return all" path so
// it does not re-query the store).
func exhaustiveFromEntries(entries []termlist.Entry, sc *scoring.Scorer) []Result {
	acc := make(map[int64]float64)
	for _, e := range entries {
		for p := e.List.Current(); p.DID != postings.DIDMax; p = e.List.Next() {
			df := e.List.DF()
			acc[p.DID] += sc.Contribution(p.Weight, df, p.Page, p.Date)
		}
	}
	return rankAccumulator(acc, -1)
}
