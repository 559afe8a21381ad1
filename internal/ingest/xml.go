// Package ingest turns NYT-corpus article XML files on disk into
// corpus.Document values, grounded in original_source/src/parser.py's
// _nytcorpus_to_document and Parser.parse, rewritten as Go
// encoding/xml struct decoding plus Go-style error handling in place of
// the Python AttributeError fallback.
package ingest

import (
	"encoding/xml"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pplewka/zwo/internal/corpus"
)

// ErrMalformedArticle is returned (and logged, never fatal) when an
// article's mandatory fields — doc-id or body paragraphs — cannot be
// located (spec.md §7 MalformedArticle).
var ErrMalformedArticle = errors.New("ingest: malformed article")

const noTitle = "NO TITLE FOUND"

// nitf mirrors just enough of the NYT-corpus NITF-like DTD to extract the
// fields spec.md §6 names: doc-id, title, url, page, date, full-text
// paragraphs.
type nitf struct {
	XMLName xml.Name `xml:"nitf"`
	Head    struct {
		Title   string `xml:"title"`
		DocData struct {
			DocID struct {
				IDString string `xml:"id-string,attr"`
			} `xml:"doc-id"`
			Series struct {
				Value int `xml:"value,attr"`
			} `xml:"series.depth"`
		} `xml:"docdata"`
		PubData struct {
			ExRef string `xml:"ex-ref,attr"`
			Date  string `xml:"date.publication,attr"`
		} `xml:"pubdata"`
	} `xml:"head"`
	Body struct {
		BodyContent struct {
			Blocks []struct {
				Class string `xml:"class,attr"`
				Ps    []string `xml:"p"`
			} `xml:"block"`
		} `xml:"body.content"`
	} `xml:"body"`
}

// ParseArticle reads and parses one NYT-corpus XML file into a
// corpus.Document. An article whose doc-id or body paragraphs cannot be
// located is logged to stderr and returned with its id (or -1) and empty
// content, wrapped in ErrMalformedArticle, so callers can log-and-skip
// without aborting a directory walk (spec.md §7 propagation policy).
func ParseArticle(path string) (*corpus.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: open %s: %w", path, err)
	}
	defer f.Close()

	var doc nitf
	if err := xml.NewDecoder(f).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedArticle, path, err)
	}

	idStr := doc.Head.DocData.DocID.IDString
	if idStr == "" {
		log.Printf("ingest: %s: no doc-id found", path)
		return corpus.New(-1, "Error", "Error", nil, 0, 0), fmt.Errorf("%w: %s: missing doc-id", ErrMalformedArticle, path)
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		log.Printf("ingest: %s: doc-id %q is not an integer", path, idStr)
		return corpus.New(-1, "Error", "Error", nil, 0, 0), fmt.Errorf("%w: %s: bad doc-id %q", ErrMalformedArticle, path, idStr)
	}

	title := doc.Head.Title
	if title == "" {
		log.Printf("ingest: document %d had no title", id)
		title = noTitle
	}

	var paragraphs []string
	for _, block := range doc.Body.BodyContent.Blocks {
		if block.Class != "full_text" {
			continue
		}
		paragraphs = append(paragraphs, block.Ps...)
	}
	if len(paragraphs) == 0 {
		log.Printf("ingest: %s: no full_text body found for document %d", path, id)
		return corpus.New(id, title, doc.Head.PubData.ExRef, nil, 0, 0), fmt.Errorf("%w: %s: empty body", ErrMalformedArticle, path)
	}

	date := parseDate(doc.Head.PubData.Date)
	page := doc.Head.DocData.Series.Value

	return corpus.New(id, title, doc.Head.PubData.ExRef, paragraphs, date, page), nil
}

// parseDate extracts a YYYYMMDD integer from a pubdata date.publication
// attribute of the form "20000915T000000". Malformed or missing dates
// fall back to 0 rather than aborting the parse.
func parseDate(raw string) int {
	digits := raw
	if i := strings.IndexByte(raw, 'T'); i >= 0 {
		digits = raw[:i]
	}
	if len(digits) < 8 {
		return 0
	}
	date, err := strconv.Atoi(digits[:8])
	if err != nil {
		return 0
	}
	return date
}
