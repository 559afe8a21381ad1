// Package httpapi is an enrichment HTTP surface over the same WAND query
// path the CLI's "query" mode uses, grounded in the teacher's
// pkg/search/api.go SearchAPI built on gofiber/fiber/v2. The CLI "query"
// mode remains the spec-mandated surface; this is additive.
package httpapi

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pplewka/zwo/internal/scoring"
	"github.com/pplewka/zwo/internal/search"
	"github.com/pplewka/zwo/internal/store"
	"github.com/pplewka/zwo/internal/tokenize"
)

// API wraps a Store and Scorer behind a fiber /search route.
type API struct {
	store *store.Store
	sc    *scoring.Scorer
}

// New builds an API over an already-open Store and the Scorer built from
// its collection statistics.
func New(s *store.Store, sc *scoring.Scorer) *API {
	return &API{store: s, sc: sc}
}

// RegisterRoutes mounts GET /search on app, matching the teacher's
// SearchAPI.RegisterRoutes shape.
func (a *API) RegisterRoutes(app *fiber.App) {
	app.Get("/search", a.searchHandler)
}

type resultView struct {
	Rank  int     `json:"rank"`
	Score float64 `json:"score"`
	DID   int64   `json:"did"`
	Title string  `json:"title"`
	URL   string  `json:"url"`
}

func (a *API) searchHandler(c *fiber.Ctx) error {
	q := c.Query("q", "")
	k, err := strconv.Atoi(c.Query("k", "-1"))
	if err != nil {
		k = -1
	}

	ctx := context.Background()
	start := time.Now()
	terms := tokenize.Tokenize([]string{q})
	results, err := search.WAND(ctx, a.store, a.sc, terms, k)
	if err != nil && err != search.ErrEmptyQuery {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "search failed: " + err.Error(),
		})
	}

	views := make([]resultView, 0, len(results))
	for i, r := range results {
		meta, err := a.store.Doc(ctx, r.DID)
		if err != nil {
			continue
		}
		views = append(views, resultView{Rank: i + 1, Score: r.Score, DID: r.DID, Title: meta.Title, URL: meta.URL})
	}

	return c.JSON(fiber.Map{
		"query":           q,
		"k":               k,
		"total":           len(views),
		"elapsed_seconds": time.Since(start).Seconds(),
		"results":         views,
	})
}
