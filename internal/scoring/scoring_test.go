package scoring

import (
	"math"
	"testing"
)

func newScorer() *Scorer {
	return &Scorer{WP: 0.5, WDate: 1, CDate: 0, MaxPage: 5, CollectionSize: 3}
}

func TestIDF(t *testing.T) {
	s := newScorer()
	got := s.IDF(1)
	want := math.Log(3.0 / 1.0)
	if got != want {
		t.Errorf("IDF(1) = %v, want %v", got, want)
	}
}

func TestIDFZeroDF(t *testing.T) {
	s := newScorer()
	if got := s.IDF(0); got != 0 {
		t.Errorf("IDF(0) = %v, want 0", got)
	}
}

func TestPageBoostWithinBounds(t *testing.T) {
	s := newScorer()
	for page := 1; page <= 5; page++ {
		b := s.PageBoost(page)
		if b < 0 || b > 1 {
			t.Errorf("PageBoost(%d) = %v, want within [0,1]", page, b)
		}
	}
}

func TestPageBoostDecreasesWithPage(t *testing.T) {
	s := newScorer()
	if s.PageBoost(1) <= s.PageBoost(5) {
		t.Errorf("expected PageBoost to decrease as page grows")
	}
}

func TestPageBoostNoMaxPage(t *testing.T) {
	s := &Scorer{WP: 0.5, MaxPage: 0, CollectionSize: 1}
	if got := s.PageBoost(3); got != 1 {
		t.Errorf("PageBoost with max_page=0 = %v, want 1", got)
	}
}

func TestContributionMonotonicInWeight(t *testing.T) {
	s := newScorer()
	low := s.Contribution(1, 1, 1, 20000915)
	high := s.Contribution(2, 1, 1, 20000915)
	if high <= low {
		t.Errorf("expected contribution to increase with weight: low=%v high=%v", low, high)
	}
}

func TestDaysSinceEpochZeroAtEpoch(t *testing.T) {
	if got := daysSinceEpoch(epoch); got != 0 {
		t.Errorf("daysSinceEpoch(epoch) = %v, want 0", got)
	}
}

func TestDaysSinceEpochOrdersDates(t *testing.T) {
	earlier := daysSinceEpoch(20000702)
	later := daysSinceEpoch(20001120)
	if later <= earlier {
		t.Errorf("expected later date to have a larger day count: earlier=%v later=%v", earlier, later)
	}
}
