// Command zwo is the CLI surface for the NYT-corpus search engine,
// grounded in the teacher's cmd/main.go flag-based mode dispatch and
// graceful-shutdown signal handling.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pplewka/zwo/internal/config"
	"github.com/pplewka/zwo/internal/corpus"
	"github.com/pplewka/zwo/internal/httpapi"
	"github.com/pplewka/zwo/internal/ingest"
	"github.com/pplewka/zwo/internal/scoring"
	"github.com/pplewka/zwo/internal/search"
	"github.com/pplewka/zwo/internal/stats"
	"github.com/pplewka/zwo/internal/store"
	"github.com/pplewka/zwo/internal/tokenize"
)

func main() {
	var (
		configFile = flag.String("config", "zwo.yaml", "Path to configuration file")
		mode       = flag.String("mode", "build-index", "Mode: parse-single, list-directory, build-index, query, serve")
		dbPath     = flag.String("db", "", "Path to the sqlite index file (overrides config)")
		workers    = flag.Int("workers", 0, "Number of worker goroutines (0 = use config default)")
		k          = flag.Int("k", -1, "Top-k results for query mode (negative = all)")
	)
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Printf("Failed to load configuration from %s: %v", *configFile, err)
		log.Println("Using default configuration...")
		cfg = config.Default()
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Received shutdown signal, gracefully shutting down...")
		cancel()
	}()

	args := flag.Args()

	switch *mode {
	case "parse-single":
		if len(args) < 1 {
			log.Fatalf("parse-single requires a file argument")
		}
		runParseSingle(args[0])

	case "list-directory":
		if len(args) < 1 {
			log.Fatalf("list-directory requires a directory argument")
		}
		runListDirectory(args[0])

	case "build-index":
		if len(args) < 1 {
			log.Fatalf("build-index requires a directory argument")
		}
		runBuildIndex(ctx, args[0], cfg)

	case "query":
		if len(args) < 1 {
			log.Fatalf("query requires a query-text argument")
		}
		runQuery(ctx, strings.Join(args, " "), *k, cfg)

	case "serve":
		runServe(ctx, cfg)

	default:
		log.Fatalf("Unknown mode: %s. Use parse-single, list-directory, build-index, query, or serve.", *mode)
	}
}

func runParseSingle(path string) {
	doc, err := ingest.ParseArticle(path)
	if err != nil {
		log.Printf("parse-single: %v", err)
	}
	if doc == nil {
		os.Exit(1)
	}
	fmt.Printf("did=%d title=%q url=%q page=%d date=%d\n", doc.ID, doc.Title, doc.URL, doc.Page, doc.Date)
	fmt.Printf("content tokens: %d, title tokens: %d\n", len(doc.ContentCounter), len(doc.TitleCounter))
	for _, p := range doc.Content {
		fmt.Println(p)
	}
}

func runListDirectory(dir string) {
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".xml") {
			fmt.Printf("%s (%d bytes)\n", path, info.Size())
		}
		return nil
	})
	if err != nil {
		log.Fatalf("list-directory: %v", err)
	}
}

func runBuildIndex(ctx context.Context, dir string, cfg *config.Config) {
	docs, errs := ingest.WalkDirectory(ctx, dir, ingest.Config{Workers: cfg.Workers})
	for _, e := range errs {
		log.Printf("build-index: %v", e)
	}
	if len(docs) == 0 {
		log.Fatalf("build-index: no documents found under %s", dir)
	}

	s, err := store.Open(ctx, cfg.DBPath)
	if err != nil {
		log.Fatalf("build-index: %v", err)
	}
	defer s.Close()
	s.BatchSize = cfg.BatchSize

	weights := corpus.Weights{Content: cfg.WC, Title: cfg.WT}

	if err := s.InsertDocuments(ctx, docs); err != nil {
		log.Fatalf("build-index: %v", err)
	}
	if err := s.InsertTFRows(ctx, docs, weights); err != nil {
		log.Fatalf("build-index: %v", err)
	}
	if err := s.InsertBoost(ctx, docs); err != nil {
		log.Fatalf("build-index: %v", err)
	}
	if err := stats.Build(ctx, s); err != nil {
		log.Fatalf("build-index: %v", err)
	}
	if err := s.BuildIndices(ctx); err != nil {
		log.Fatalf("build-index: %v", err)
	}

	log.Printf("build-index: indexed %d documents into %s", len(docs), cfg.DBPath)
}

func runQuery(ctx context.Context, queryText string, k int, cfg *config.Config) {
	s, err := store.Open(ctx, cfg.DBPath)
	if err != nil {
		log.Fatalf("query: %v", err)
	}
	defer s.Close()

	sc, err := scorerFrom(ctx, s, cfg)
	if err != nil {
		log.Fatalf("query: %v", err)
	}

	terms := tokenize.Tokenize([]string{queryText})
	results, err := search.WAND(ctx, s, sc, terms, k)
	if err != nil && err != search.ErrEmptyQuery {
		log.Fatalf("query: %v", err)
	}

	for i, r := range results {
		meta, err := s.Doc(ctx, r.DID)
		if err != nil {
			log.Printf("query: %v", err)
			continue
		}
		fmt.Printf("%d. score=%d did=%d %s\n", i+1, int(r.Score), r.DID, meta.Title)
	}
}

func runServe(ctx context.Context, cfg *config.Config) {
	s, err := store.Open(ctx, cfg.DBPath)
	if err != nil {
		log.Fatalf("serve: %v", err)
	}
	defer s.Close()

	sc, err := scorerFrom(ctx, s, cfg)
	if err != nil {
		log.Fatalf("serve: %v", err)
	}

	api := httpapi.New(s, sc)
	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	})
	api.RegisterRoutes(app)

	go func() {
		log.Printf("serve: listening on %s", cfg.HTTPAddr)
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			log.Fatalf("serve: fiber app failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("serve: shutting down...")
	if err := app.Shutdown(); err != nil {
		log.Printf("serve: shutdown failed: %v", err)
	}
}

func scorerFrom(ctx context.Context, s *store.Store, cfg *config.Config) (*scoring.Scorer, error) {
	size, err := s.CollectionSize(ctx)
	if err != nil {
		return nil, err
	}
	maxPage, err := s.MaxPage(ctx)
	if err != nil {
		return nil, err
	}
	return &scoring.Scorer{
		WP:             cfg.WP,
		WDate:          cfg.WDate,
		CDate:          cfg.CDate,
		MaxPage:        maxPage,
		CollectionSize: size,
	}, nil
}
