// Package postings implements the in-memory representation of a single
// term's posting list and its skip iterator, grounded in the Python
// source's Posting/InvertedIndex dataclasses and generalized to the
// sequential-next/skip-next_ge contract the WAND evaluator needs.
package postings

import (
	"math"
	"sort"
)

// DIDMax is the sentinel document id returned once an iterator is
// exhausted; it compares greater than any real document id.
const DIDMax = int64(math.MaxInt64)

// Posting is one (did, weight, page, date) row. weight is the per-document
// effective term frequency after the title boost has already been folded
// in at index time.
type Posting struct {
	DID    int64
	Weight float64
	Page   int
	Date   int
}

// sentinelPosting is returned by Current/Next/NextGE once the list is
// exhausted.
var sentinelPosting = Posting{DID: DIDMax}

// PostingList is the sorted, strictly-ascending-by-did posting array for
// one term, plus a cursor. The cursor starts at -1 (nothing current yet);
// Next pre-increments it, matching spec.md §9 Open Question 3.
//
// Each PostingList is produced by exactly one store query and owned
// exclusively by the query that constructed it; it is never shared or
// mutated concurrently.
type PostingList struct {
	term   string
	df     int
	items  []Posting
	cursor int
}

// New wraps an already did-ascending-sorted slice of postings for term,
// with document frequency df (== len(items) under invariant 1 of spec.md
// §3, but passed explicitly since callers may source df from the dfs
// table independently of the posting count).
func New(term string, df int, items []Posting) *PostingList {
	return &PostingList{term: term, df: df, items: items, cursor: -1}
}

// Term returns the term this list belongs to.
func (p *PostingList) Term() string { return p.term }

// DF returns the term's document frequency.
func (p *PostingList) DF() int { return p.df }

// Len returns the number of postings in the list.
func (p *PostingList) Len() int { return len(p.items) }

// Current returns the posting at the cursor, or the sentinel if the
// cursor has not been advanced yet or the list is exhausted.
func (p *PostingList) Current() Posting {
	if p.cursor < 0 || p.cursor >= len(p.items) {
		return sentinelPosting
	}
	return p.items[p.cursor]
}

// DID is a shortcut for Current().DID.
func (p *PostingList) DID() int64 { return p.Current().DID }

// Exhausted reports whether the iterator has no more postings.
func (p *PostingList) Exhausted() bool { return p.cursor >= len(p.items) }

// Next advances the cursor by one and returns the new current posting, or
// the sentinel if that runs past the end.
func (p *PostingList) Next() Posting {
	p.cursor++
	return p.Current()
}

// NextGE advances the cursor to the first posting with did >= target via
// binary search over the unconsumed suffix, returning it. If no such
// posting exists, the cursor is left at the end and the sentinel is
// returned. If the current posting already satisfies did >= target, the
// cursor does not move.
func (p *PostingList) NextGE(target int64) Posting {
	from := p.cursor
	if from < 0 {
		from = 0
	}
	if from < len(p.items) && p.items[from].DID >= target {
		p.cursor = from
		return p.items[from]
	}
	n := len(p.items)
	idx := from + sort.Search(n-from, func(i int) bool {
		return p.items[from+i].DID >= target
	})
	p.cursor = idx
	return p.Current()
}
