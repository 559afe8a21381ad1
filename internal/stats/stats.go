// Package stats builds the derived statistics tables (dls, dfs, d,
// max_page, ub) from raw ingested rows, exactly once, before index
// creation. Grounded in db.py's @collection_statistic-decorated builder
// functions, reworked as a clear-then-build pair of calls into the store.
package stats

import "context"

// derivedStore is the subset of *store.Store this package needs, kept as
// an interface so tests can exercise Build against a fake.
type derivedStore interface {
	ClearDerived(ctx context.Context) error
	BuildDerived(ctx context.Context) error
}

// Build clears then recomputes the five derived tables described in
// spec.md §4.4. The five derivations are order-independent and each is
// idempotent given immutable tfs/boost source tables, so Build itself is
// safe to call more than once against the same store.
func Build(ctx context.Context, s derivedStore) error {
	if err := s.ClearDerived(ctx); err != nil {
		return err
	}
	return s.BuildDerived(ctx)
}
