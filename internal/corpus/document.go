// Package corpus holds the immutable in-memory representation of a parsed
// article: the document itself, and the pre-computed counters ingestion
// needs once, rather than re-tokenizing on every store write.
package corpus

import "github.com/pplewka/zwo/internal/tokenize"

// Weights controls how content and title term counts are folded into the
// stored posting weight. Defaults mirror the teacher's title-boost
// convention: content counts once, title counts more.
type Weights struct {
	Content float64
	Title   float64
}

// DefaultWeights matches spec.md §6 configuration defaults (W_C=1, W_T>1).
var DefaultWeights = Weights{Content: 1, Title: 2}

// Document is a single parsed article. Created once by ingestion and never
// mutated afterward.
type Document struct {
	ID    int64
	Title string
	URL   string

	// Content holds the article body as an ordered sequence of paragraphs,
	// exactly as read off disk (untokenized) for callers that want the raw
	// text (e.g. parse-single dumps).
	Content []string

	Date int // YYYYMMDD
	Page int

	ContentCounter map[string]int
	TitleCounter   map[string]int
}

// New builds a Document from its identity fields and raw paragraphs,
// computing both term counters once at construction time.
func New(id int64, title, url string, content []string, date, page int) *Document {
	return &Document{
		ID:             id,
		Title:          title,
		URL:            url,
		Content:        content,
		Date:           date,
		Page:           page,
		ContentCounter: count(tokenize.Tokenize(content)),
		TitleCounter:   count(tokenize.Tokenize([]string{title})),
	}
}

func count(tokens []string) map[string]int {
	counter := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counter[t]++
	}
	return counter
}

// TermRow is one (term, weight) pair ready for the tfs table.
type TermRow struct {
	Term   string
	Weight float64
}

// Rows enumerates (term, weight) over every term appearing in either
// counter, folding the title boost in at index time so query-time scoring
// never needs to distinguish "title occurrence" from "content occurrence".
func (d *Document) Rows(w Weights) []TermRow {
	seen := make(map[string]struct{}, len(d.ContentCounter)+len(d.TitleCounter))
	rows := make([]TermRow, 0, len(d.ContentCounter)+len(d.TitleCounter))
	for term := range d.ContentCounter {
		seen[term] = struct{}{}
	}
	for term := range d.TitleCounter {
		seen[term] = struct{}{}
	}
	for term := range seen {
		weight := w.Content*float64(d.ContentCounter[term]) + w.Title*float64(d.TitleCounter[term])
		rows = append(rows, TermRow{Term: term, Weight: weight})
	}
	return rows
}
