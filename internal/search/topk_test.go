package search

import "testing"

func TestRankAccumulatorAllForNegativeK(t *testing.T) {
	acc := map[int64]float64{1: 1.0, 2: 3.0, 3: 2.0}
	got := rankAccumulator(acc, -1)
	want := []int64{2, 3, 1}
	for i, did := range want {
		if got[i].DID != did {
			t.Errorf("position %d did=%d, want %d", i, got[i].DID, did)
		}
	}
}

func TestRankAccumulatorZeroK(t *testing.T) {
	acc := map[int64]float64{1: 1.0}
	got := rankAccumulator(acc, 0)
	if len(got) != 0 {
		t.Errorf("k=0 should return empty, got %v", got)
	}
}

func TestRankAccumulatorBoundedK(t *testing.T) {
	acc := map[int64]float64{1: 1.0, 2: 3.0, 3: 2.0, 4: 5.0}
	got := rankAccumulator(acc, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].DID != 4 || got[1].DID != 2 {
		t.Errorf("got %v, want [4,2]", got)
	}
}

func TestRankAccumulatorTieBreakAscendingDID(t *testing.T) {
	acc := map[int64]float64{5: 1.0, 3: 1.0, 4: 1.0}
	got := rankAccumulator(acc, -1)
	want := []int64{3, 4, 5}
	for i, did := range want {
		if got[i].DID != did {
			t.Errorf("position %d did=%d, want %d", i, got[i].DID, did)
		}
	}
}

func TestRankAccumulatorKLargerThanResults(t *testing.T) {
	acc := map[int64]float64{1: 1.0, 2: 2.0}
	got := rankAccumulator(acc, 10)
	if len(got) != 2 {
		t.Errorf("k > |results| should return all, got %d", len(got))
	}
}
