package search

import (
	"context"

	"github.com/pplewka/zwo/internal/postings"
	"github.com/pplewka/zwo/internal/store"
)

// fakeTerm is one term's fixture data for the in-memory fakeStore.
type fakeTerm struct {
	df  int
	ub  float64
	pos []postings.Posting
}

// fakeStore implements TermStore over an in-memory fixture, standing in
// for a *store.Store in unit tests so the evaluators can be exercised
// without a real SQLite file.
type fakeStore struct {
	terms map[string]fakeTerm
}

func (f *fakeStore) DF(_ context.Context, term string) (int, error) {
	t, ok := f.terms[term]
	if !ok {
		return 0, store.ErrTermNotFound
	}
	return t.df, nil
}

func (f *fakeStore) PostingsFor(_ context.Context, term string) (*postings.PostingList, error) {
	t, ok := f.terms[term]
	if !ok {
		return nil, store.ErrTermNotFound
	}
	items := make([]postings.Posting, len(t.pos))
	copy(items, t.pos)
	return postings.New(term, t.df, items), nil
}

func (f *fakeStore) TermUpperBound(_ context.Context, term string) (float64, error) {
	t, ok := f.terms[term]
	if !ok {
		return 0, store.ErrTermNotFound
	}
	return t.ub, nil
}

// threeDocCorpus builds the fixture for spec.md §8's end-to-end scenario
// table: D1 "opening ceremony held" (page 1, date 20000915), D2 "denmark
// sweden bridge opens" (page 3, date 20000702), D3 "tokyo train derailed
// disaster" (page 5, date 20001120). Titles are folded into weight via
// W_T=2 exactly as spec.md's scenario table configures (W_C=1, W_T=2).
func threeDocCorpus() *fakeStore {
	// weight table per (term, did): content occurrences (W_C=1) plus
	// title occurrences (W_T=2), matching corpus.Document.Rows.
	type posting = postings.Posting
	terms := map[string]fakeTerm{
		// D1 title "Olympic ceremony" contributes: olympic(title=2), ceremony(title=2)
		"olympic":  {df: 1, ub: 2, pos: []posting{{DID: 1, Weight: 2, Page: 1, Date: 20000915}}},
		"ceremony": {df: 1, ub: 3, pos: []posting{{DID: 1, Weight: 1 + 2, Page: 1, Date: 20000915}}},
		"opening":  {df: 1, ub: 1, pos: []posting{{DID: 1, Weight: 1, Page: 1, Date: 20000915}}},
		"held":     {df: 1, ub: 1, pos: []posting{{DID: 1, Weight: 1, Page: 1, Date: 20000915}}},

		// D2 title "Bridge between nations" + content "denmark sweden bridge opens"
		"denmark": {df: 1, ub: 1, pos: []posting{{DID: 2, Weight: 1, Page: 3, Date: 20000702}}},
		"sweden":  {df: 1, ub: 1, pos: []posting{{DID: 2, Weight: 1, Page: 3, Date: 20000702}}},
		"bridge":  {df: 1, ub: 3, pos: []posting{{DID: 2, Weight: 1 + 2, Page: 3, Date: 20000702}}},
		"opens":   {df: 1, ub: 1, pos: []posting{{DID: 2, Weight: 1, Page: 3, Date: 20000702}}},
		"between": {df: 1, ub: 2, pos: []posting{{DID: 2, Weight: 2, Page: 3, Date: 20000702}}},
		"nations": {df: 1, ub: 2, pos: []posting{{DID: 2, Weight: 2, Page: 3, Date: 20000702}}},

		// D3 title "Train disaster" + content "tokyo train derailed disaster"
		"tokyo":    {df: 1, ub: 1, pos: []posting{{DID: 3, Weight: 1, Page: 5, Date: 20001120}}},
		"train":    {df: 1, ub: 3, pos: []posting{{DID: 3, Weight: 1 + 2, Page: 5, Date: 20001120}}},
		"derailed": {df: 1, ub: 1, pos: []posting{{DID: 3, Weight: 1, Page: 5, Date: 20001120}}},
		"disaster": {df: 1, ub: 3, pos: []posting{{DID: 3, Weight: 1 + 2, Page: 5, Date: 20001120}}},
	}
	return &fakeStore{terms: terms}
}
