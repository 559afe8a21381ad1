// Package store persists and serves the logical tables of spec.md §4.3
// through a single SQLite file (modernc.org/sqlite, pure Go, no cgo),
// accessed via jmoiron/sqlx exactly as the teacher's internal/indexer
// accesses Postgres via pgx, grounded in Storage.InsertDocuments and
// db.py's chunked-transaction insert helpers.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/pplewka/zwo/internal/corpus"
	"github.com/pplewka/zwo/internal/postings"
)

// ErrTermNotFound is returned by DF/PostingsFor when a term has no row in
// dfs, and by TermUpperBound when it has no row in ub — spec.md §4.3 Errors: "callers must treat this as
// 'term contributes no postings'".
var ErrTermNotFound = errors.New("store: term not found")

// ErrIndexIncomplete is returned when a required derived table is empty
// at query time (spec.md §7 IndexIncomplete).
var ErrIndexIncomplete = errors.New("store: index incomplete, run build-index first")

// DefaultBatchSize is the chunk size used for batched inserts when a
// Store is opened without an explicit override (spec.md §4.3: "chunk
// size >= 1000").
const DefaultBatchSize = 1000

// Store wraps a *sqlx.DB bound to one SQLite file holding every logical
// table in spec.md §4.3.
type Store struct {
	db        *sqlx.DB
	BatchSize int
}

// Open creates (if needed) and migrates the schema at path, returning a
// ready-to-use Store. Mirrors the teacher's NewPostgresClient shape,
// replacing pgxpool.NewWithConfig with sqlx.Open against the pure-Go
// sqlite driver.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1) // modernc.org/sqlite: one writer at a time
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("store: ping %s: %w", path, err)
	}
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return nil, fmt.Errorf("store: apply schema: %w", err)
		}
	}
	return &Store{db: db, BatchSize: DefaultBatchSize}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

func chunk(n, size int) [][2]int {
	if size <= 0 {
		size = DefaultBatchSize
	}
	var out [][2]int
	for i := 0; i < n; i += size {
		end := i + size
		if end > n {
			end = n
		}
		out = append(out, [2]int{i, end})
	}
	return out
}

// withChunks runs fn once per chunk of items, each inside its own
// transaction, committing after every chunk — grounded in db.py's
// chunks()/BEGIN TRANSACTION/COMMIT pattern and the teacher's
// per-batch pgx.Batch submission.
func (s *Store) withChunks(ctx context.Context, n int, fn func(tx *sqlx.Tx, lo, hi int) error) error {
	for _, bounds := range chunk(n, s.BatchSize) {
		tx, err := s.db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("store: begin tx: %w", err)
		}
		if err := fn(tx, bounds[0], bounds[1]); err != nil {
			tx.Rollback()
			return err
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("store: commit tx: %w", err)
		}
	}
	return nil
}

// InsertDocuments writes the identity rows (did, title, url) for docs,
// chunked as described in spec.md §4.3.
func (s *Store) InsertDocuments(ctx context.Context, docs []*corpus.Document) error {
	return s.withChunks(ctx, len(docs), func(tx *sqlx.Tx, lo, hi int) error {
		for _, d := range docs[lo:hi] {
			if _, err := tx.ExecContext(ctx, insertDoc, d.ID, d.Title, d.URL); err != nil {
				return fmt.Errorf("store: insert doc %d: %w", d.ID, err)
			}
		}
		return nil
	})
}

// InsertTFRows writes one (did, term, tf) row per term in each document's
// Rows(), chunked per document (a document's terms never span chunks, so
// a single document's rows always commit atomically together).
func (s *Store) InsertTFRows(ctx context.Context, docs []*corpus.Document, weights corpus.Weights) error {
	return s.withChunks(ctx, len(docs), func(tx *sqlx.Tx, lo, hi int) error {
		for _, d := range docs[lo:hi] {
			for _, row := range d.Rows(weights) {
				if _, err := tx.ExecContext(ctx, insertTF, d.ID, row.Term, row.Weight); err != nil {
					return fmt.Errorf("store: insert tf %d/%s: %w", d.ID, row.Term, err)
				}
			}
		}
		return nil
	})
}

// InsertBoost writes the (did, date, page) row for each document.
func (s *Store) InsertBoost(ctx context.Context, docs []*corpus.Document) error {
	return s.withChunks(ctx, len(docs), func(tx *sqlx.Tx, lo, hi int) error {
		for _, d := range docs[lo:hi] {
			if _, err := tx.ExecContext(ctx, insertBoost, d.ID, d.Date, d.Page); err != nil {
				return fmt.Errorf("store: insert boost %d: %w", d.ID, err)
			}
		}
		return nil
	})
}

// PostingsFor returns all postings for term sorted ascending by did,
// joining tfs and boost in one query so each posting already carries
// page/date (Open Question 1, resolved in SPEC_FULL.md §4.3).
func (s *Store) PostingsFor(ctx context.Context, term string) (*postings.PostingList, error) {
	df, err := s.DF(ctx, term)
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryxContext(ctx, selectPostingsForTerm, term)
	if err != nil {
		return nil, fmt.Errorf("store: postings for %q: %w", term, err)
	}
	defer rows.Close()

	items := make([]postings.Posting, 0, df)
	for rows.Next() {
		var did int64
		var tf float64
		var page, date int
		if err := rows.Scan(&did, &tf, &page, &date); err != nil {
			return nil, fmt.Errorf("store: scan posting for %q: %w", term, err)
		}
		items = append(items, postings.Posting{DID: did, Weight: tf, Page: page, Date: date})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate postings for %q: %w", term, err)
	}
	return postings.New(term, df, items), nil
}

// DF returns the document frequency of term, or ErrTermNotFound if term
// has no row in dfs.
func (s *Store) DF(ctx context.Context, term string) (int, error) {
	var df int
	err := s.db.GetContext(ctx, &df, selectDF, term)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrTermNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("store: df(%q): %w", term, err)
	}
	return df, nil
}

// DocMeta is the (title, url) identity pair for a document, used to
// render result lines without re-tokenizing or re-scoring anything.
type DocMeta struct {
	Title string `db:"title"`
	URL   string `db:"url"`
}

// Doc returns the title/url identity row for did.
func (s *Store) Doc(ctx context.Context, did int64) (DocMeta, error) {
	var meta DocMeta
	err := s.db.GetContext(ctx, &meta, selectDoc, did)
	if err != nil {
		return DocMeta{}, fmt.Errorf("store: doc(%d): %w", did, err)
	}
	return meta, nil
}

// CollectionSize returns |D|, the distinct document count.
func (s *Store) CollectionSize(ctx context.Context) (int, error) {
	var size int
	err := s.db.GetContext(ctx, &size, selectCollectionSize)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrIndexIncomplete
	}
	if err != nil {
		return 0, fmt.Errorf("store: collection size: %w", err)
	}
	return size, nil
}

// DocLength returns dl(did).
func (s *Store) DocLength(ctx context.Context, did int64) (float64, error) {
	var dl float64
	err := s.db.GetContext(ctx, &dl, selectDocLength, did)
	if err != nil {
		return 0, fmt.Errorf("store: dl(%d): %w", did, err)
	}
	return dl, nil
}

// Page returns page(did).
func (s *Store) Page(ctx context.Context, did int64) (int, error) {
	var page int
	err := s.db.GetContext(ctx, &page, selectPage, did)
	if err != nil {
		return 0, fmt.Errorf("store: page(%d): %w", did, err)
	}
	return page, nil
}

// Date returns date(did).
func (s *Store) Date(ctx context.Context, did int64) (int, error) {
	var date int
	err := s.db.GetContext(ctx, &date, selectDate, did)
	if err != nil {
		return 0, fmt.Errorf("store: date(%d): %w", did, err)
	}
	return date, nil
}

// MaxPage returns max_page across all documents.
func (s *Store) MaxPage(ctx context.Context) (int, error) {
	var mp int
	err := s.db.GetContext(ctx, &mp, selectMaxPage)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrIndexIncomplete
	}
	if err != nil {
		return 0, fmt.Errorf("store: max_page: %w", err)
	}
	return mp, nil
}

// TermUpperBound returns ub(term), or ErrTermNotFound if term has no row.
func (s *Store) TermUpperBound(ctx context.Context, term string) (float64, error) {
	var max float64
	err := s.db.GetContext(ctx, &max, selectTermUpperBound, term)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrTermNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("store: ub(%q): %w", term, err)
	}
	return max, nil
}

// ClearDerived empties the five derived tables so stats.Build can
// recompute them idempotently.
func (s *Store) ClearDerived(ctx context.Context) error {
	for _, stmt := range clearDerived {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("store: clear derived: %w", err)
		}
	}
	return nil
}

// BuildDerived runs the five statistics derivations of spec.md §4.4, each
// as one INSERT INTO ... SELECT ... statement over the immutable tfs/boost
// tables. Order between the five is irrelevant.
func (s *Store) BuildDerived(ctx context.Context) error {
	for _, stmt := range []string{buildDLS, buildDFS, buildD, buildMaxPage, buildUB} {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("store: build derived: %w", err)
		}
	}
	return nil
}

// BuildIndices creates the six auxiliary lookup indexes named in
// spec.md §4.3, adapted from posting_list.py's create_indices and the
// teacher's constant-SQL index-creation style.
func (s *Store) BuildIndices(ctx context.Context) error {
	for _, stmt := range indices {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("store: build indices: %w", err)
		}
	}
	return nil
}
