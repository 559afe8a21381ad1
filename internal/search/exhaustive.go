package search

import (
	"context"
	"errors"

	"github.com/pplewka/zwo/internal/postings"
	"github.com/pplewka/zwo/internal/scoring"
	"github.com/pplewka/zwo/internal/store"
)

// TermStore is the subset of *store.Store the evaluators need.
type TermStore interface {
	DF(ctx context.Context, term string) (int, error)
	PostingsFor(ctx context.Context, term string) (*postings.PostingList, error)
	TermUpperBound(ctx context.Context, term string) (float64, error)
}

// Exhaustive implements the term-at-a-time evaluator of spec.md §4.8:
// mirrors query_processing.py's QueryProcessor.process, accumulating
// every term's postings into a per-did map, then sorting or heap-
// extracting the top-k.
func Exhaustive(ctx context.Context, s TermStore, sc *scoring.Scorer, terms []string, k int) ([]Result, error) {
	terms = dedup(terms)
	if len(terms) == 0 {
		return nil, ErrEmptyQuery
	}
	if k == 0 {
		return nil, nil
	}

	acc := make(map[int64]float64)
	for _, term := range terms {
		df, err := s.DF(ctx, term)
		if errors.Is(err, store.ErrTermNotFound) {
			continue // MissingTerm: skip, continue with others
		}
		if err != nil {
			return nil, err
		}
		pl, err := s.PostingsFor(ctx, term)
		if err != nil {
			return nil, err
		}
		for p := pl.Next(); p.DID != postings.DIDMax; p = pl.Next() {
			acc[p.DID] += sc.Contribution(p.Weight, df, p.Page, p.Date)
		}
	}

	return rankAccumulator(acc, k), nil
}

// dedup returns terms with duplicates removed, preserving first-seen
// order (query-term dedup, spec.md §4.9 Inputs).
func dedup(terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
