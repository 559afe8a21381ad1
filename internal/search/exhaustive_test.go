package search

import (
	"context"
	"errors"
	"testing"

	"github.com/pplewka/zwo/internal/scoring"
)

func scenarioScorer() *scoring.Scorer {
	return &scoring.Scorer{WP: 0.5, WDate: 1, CDate: 0, MaxPage: 5, CollectionSize: 3}
}

func TestExhaustiveOlympicCeremony(t *testing.T) {
	s := threeDocCorpus()
	results, err := Exhaustive(context.Background(), s, scenarioScorer(), []string{"olympics", "opening", "ceremony"}, 10)
	if err != nil {
		t.Fatalf("Exhaustive: %v", err)
	}
	if len(results) == 0 || results[0].DID != 1 {
		t.Errorf("expected top result did=1, got %v", results)
	}
}

func TestExhaustiveDenmarkSwedenBridge(t *testing.T) {
	s := threeDocCorpus()
	results, err := Exhaustive(context.Background(), s, scenarioScorer(), []string{"denmark", "sweden", "bridge"}, 10)
	if err != nil {
		t.Fatalf("Exhaustive: %v", err)
	}
	if len(results) == 0 || results[0].DID != 2 {
		t.Errorf("expected top result did=2, got %v", results)
	}
}

func TestExhaustiveEmptyQuery(t *testing.T) {
	s := threeDocCorpus()
	_, err := Exhaustive(context.Background(), s, scenarioScorer(), nil, 10)
	if !errors.Is(err, ErrEmptyQuery) {
		t.Errorf("expected ErrEmptyQuery, got %v", err)
	}
}

func TestExhaustiveAllUnknownTerms(t *testing.T) {
	s := threeDocCorpus()
	results, err := Exhaustive(context.Background(), s, scenarioScorer(), []string{"xyzzy"}, 10)
	if err != nil {
		t.Fatalf("Exhaustive: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected empty result for unknown term, got %v", results)
	}
}

func TestExhaustiveKZero(t *testing.T) {
	s := threeDocCorpus()
	results, err := Exhaustive(context.Background(), s, scenarioScorer(), []string{"bridge"}, 0)
	if err != nil {
		t.Fatalf("Exhaustive: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("k=0 should return empty, got %v", results)
	}
}

// Invariant 9 (spec.md §8): increasing tf(d,t) never decreases S(d).
func TestScoreMonotonicity(t *testing.T) {
	sc := scenarioScorer()
	low := sc.Contribution(1, 1, 1, 20000915)
	high := sc.Contribution(5, 1, 1, 20000915)
	if high < low {
		t.Errorf("increasing weight decreased score: low=%v high=%v", low, high)
	}
}
