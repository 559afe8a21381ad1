package ingest

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/pplewka/zwo/internal/corpus"
)

// Config controls the directory walk's worker pool.
type Config struct {
	Workers int
}

// WalkDirectory recursively discovers every *.xml file under root and
// parses each one, fanning parse work out across cfg.Workers goroutines
// (grounded in the teacher's Indexer.documentChan/worker pattern, upgraded
// to golang.org/x/sync/errgroup, the idiomatic bounded-fan-out used
// elsewhere in the retrieval pack). Malformed articles are logged and
// their errors collected; they never abort the walk. One that ParseArticle
// still returns a document for is kept with empty content (id -1 when its
// doc-id is missing or bad); one that cannot be decoded at all is left
// out. Documents are returned sorted by id so downstream batching is
// deterministic.
func WalkDirectory(ctx context.Context, root string, cfg Config) ([]*corpus.Document, []error) {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	paths, err := discover(root)
	if err != nil {
		return nil, []error{err}
	}

	var (
		mu   sync.Mutex
		docs []*corpus.Document
		errs []error
	)

	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan string)

	g.Go(func() error {
		defer close(jobs)
		for _, p := range paths {
			select {
			case jobs <- p:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for p := range jobs {
				doc, err := ParseArticle(p)
				mu.Lock()
				if err != nil {
					if errors.Is(err, ErrMalformedArticle) {
						log.Printf("ingest: skipping malformed article %s: %v", p, err)
						errs = append(errs, err)
					} else {
						mu.Unlock()
						return err
					}
				}
				if doc != nil {
					docs = append(docs, doc)
				}
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return docs, append(errs, err)
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, errs
}

// discover walks root collecting every file with a .xml extension,
// mirroring importer.py's Importer.import_dir.
func discover(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".xml") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
