// Package tokenize turns article text into the token sequence the index and
// the query path both operate on. Tokenization must be identical at index
// time and query time: changing it invalidates whatever index was already
// built.
package tokenize

import (
	"regexp"

	"golang.org/x/text/unicode/norm"
)

// acronymRegex finds runs of two or more single-letter-plus-period groups,
// e.g. "U.S." or "e.g.", anchored so a letter-dot pair inside a longer word
// is never mistaken for one. This stands in for the Python source's
// negative-lookbehind regex (`(?<!( |\.)[a-zA-Z]\.)`), which Go's RE2-based
// regexp package cannot express directly.
var acronymRegex = regexp.MustCompile(`(?:^|[^A-Za-z0-9.])((?:[A-Za-z]\.){2,})`)

// junkRegex matches every run of characters that is neither an ASCII
// letter, an ASCII digit, nor a space, nor the sentinel byte used to
// protect acronym periods during the cleanup pass. Non-ASCII letters are
// stripped like punctuation.
var junkRegex = regexp.MustCompile("[^a-zA-Z0-9 \x00]+")

const sentinel = '\x00'

// Tokenize concatenates the given paragraphs, lowercases them, strips
// punctuation while preserving acronyms like "u.s.", and splits on
// whitespace. Empty tokens are discarded.
func Tokenize(paragraphs []string) []string {
	joined := norm.NFC.String(joinParagraphs(paragraphs))
	protected := protectAcronyms(joined)
	cleaned := junkRegex.ReplaceAllString(protected, " ")
	restored := restoreAcronyms(cleaned)
	return splitLower(restored)
}

func joinParagraphs(paragraphs []string) string {
	out := make([]byte, 0, 64)
	for i, p := range paragraphs {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, p...)
	}
	return string(out)
}

// protectAcronyms replaces the periods inside every matched acronym span
// with a sentinel byte so the general cleanup pass does not strip them.
func protectAcronyms(s string) string {
	locs := acronymRegex.FindAllStringSubmatchIndex(s, -1)
	if locs == nil {
		return s
	}
	b := []byte(s)
	for _, loc := range locs {
		start, end := loc[2], loc[3]
		for i := start; i < end; i++ {
			if b[i] == '.' {
				b[i] = sentinel
			}
		}
	}
	return string(b)
}

func restoreAcronyms(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] == sentinel {
			b[i] = '.'
		}
	}
	return string(b)
}

func splitLower(s string) []string {
	fields := make([]string, 0, 16)
	start := -1
	lower := []byte(s)
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if c >= 'A' && c <= 'Z' {
			c = c - 'A' + 'a'
		}
		lower[i] = c
		if c == ' ' {
			if start >= 0 {
				fields = append(fields, string(lower[start:i]))
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		fields = append(fields, string(lower[start:]))
	}
	return fields
}
