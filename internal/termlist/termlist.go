// Package termlist implements the ordered collection of posting-list
// iterators the WAND evaluator drives, grounded in the
// teacher's booleanSearchOptimized term-ordering conventions and the
// sorted-postings-per-term idiom of rekki/go-query-index's MemOnlyIndex
// (other_examples/.../mem.go).
package termlist

import (
	"sort"

	"github.com/pplewka/zwo/internal/postings"
)

// Entry pairs one term's posting-list iterator with its memoised upper
// bound contribution ub(t)*log(|D|/df(t)), computed once per query per
// term as spec.md §9 "Upper-bound cache" requires.
type Entry struct {
	Term       string
	List       *postings.PostingList
	UpperBound float64
}

// TermList is an ordered sequence of Entry plus a reverse map from term
// to position, rebuilt after every SortByCurrent.
type TermList struct {
	entries []Entry
	byTerm  map[string]int
}

// New builds a TermList from entries, in whatever order they are given;
// callers should call SortByCurrent once every iterator has been primed
// with an initial Next() before the first use.
func New(entries []Entry) *TermList {
	tl := &TermList{entries: entries}
	tl.rebuild()
	return tl
}

func (tl *TermList) rebuild() {
	tl.byTerm = make(map[string]int, len(tl.entries))
	for i, e := range tl.entries {
		tl.byTerm[e.Term] = i
	}
}

// Len returns the number of terms in the list.
func (tl *TermList) Len() int { return len(tl.entries) }

// At returns the entry at position i.
func (tl *TermList) At(i int) Entry { return tl.entries[i] }

// ByTerm returns the entry for term t and whether it was found.
func (tl *TermList) ByTerm(t string) (Entry, bool) {
	i, ok := tl.byTerm[t]
	if !ok {
		return Entry{}, false
	}
	return tl.entries[i], true
}

// SortByCurrent reorders entries by ascending current did (the sentinel
// DID_MAX sorts last), then rebuilds the reverse map to match.
func (tl *TermList) SortByCurrent() {
	sort.SliceStable(tl.entries, func(i, j int) bool {
		return tl.entries[i].List.DID() < tl.entries[j].List.DID()
	})
	tl.rebuild()
}
