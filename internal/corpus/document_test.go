package corpus

import "testing"

func TestNewComputesCounters(t *testing.T) {
	d := New(1, "Olympic ceremony", "http://example/1", []string{"opening ceremony held"}, 20000915, 1)

	if d.ContentCounter["ceremony"] != 1 {
		t.Errorf("content counter[ceremony] = %d, want 1", d.ContentCounter["ceremony"])
	}
	if d.TitleCounter["ceremony"] != 1 {
		t.Errorf("title counter[ceremony] = %d, want 1", d.TitleCounter["ceremony"])
	}
	if d.TitleCounter["olympic"] != 1 {
		t.Errorf("title counter[olympic] = %d, want 1", d.TitleCounter["olympic"])
	}
}

func TestRowsWeighting(t *testing.T) {
	d := New(1, "ceremony opens", "u", []string{"ceremony held"}, 20000915, 1)
	rows := d.Rows(Weights{Content: 1, Title: 2})

	byTerm := make(map[string]float64, len(rows))
	for _, r := range rows {
		byTerm[r.Term] = r.Weight
	}

	// "ceremony" appears once in content (weight 1) and once in title
	// (weight 2*1): total 3.
	if got, want := byTerm["ceremony"], 3.0; got != want {
		t.Errorf("weight[ceremony] = %v, want %v", got, want)
	}
	// "held" appears only in content: weight 1.
	if got, want := byTerm["held"], 1.0; got != want {
		t.Errorf("weight[held] = %v, want %v", got, want)
	}
	// "opens" appears only in title: weight 2.
	if got, want := byTerm["opens"], 2.0; got != want {
		t.Errorf("weight[opens] = %v, want %v", got, want)
	}
}

// Invariant 4 (spec.md §8): dl(d) = sum of weights across all terms.
func TestRowsSumMatchesDocLength(t *testing.T) {
	d := New(2, "Bridge between nations", "u", []string{"denmark sweden bridge opens"}, 20000702, 3)
	rows := d.Rows(DefaultWeights)

	sum := 0.0
	for _, r := range rows {
		sum += r.Weight
	}
	// content: denmark, sweden, bridge, opens (4 terms, weight 1 each) = 4
	// title: bridge, between, nations (3 terms, weight 2 each) = 6
	// "bridge" appears in both, folded into one row via Rows().
	want := 4.0 + 6.0
	if sum != want {
		t.Errorf("sum of row weights = %v, want %v", sum, want)
	}
}
