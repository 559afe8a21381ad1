package config

import "testing"

func TestDefaultMatchesScenarioWeights(t *testing.T) {
	cfg := Default()
	// spec.md §8 end-to-end scenarios configure W_C=1, W_T=2, W_P=0.5,
	// W_DATE=1, C_DATE=0.
	if cfg.WC != 1 {
		t.Errorf("WC = %v, want 1", cfg.WC)
	}
	if cfg.WT != 2 {
		t.Errorf("WT = %v, want 2", cfg.WT)
	}
	if cfg.WP != 0.5 {
		t.Errorf("WP = %v, want 0.5", cfg.WP)
	}
	if cfg.WDate != 1 {
		t.Errorf("WDate = %v, want 1", cfg.WDate)
	}
	if cfg.CDate != 0 {
		t.Errorf("CDate = %v, want 0", cfg.CDate)
	}
}

func TestDefaultBatchSizeMeetsSpecFloor(t *testing.T) {
	cfg := Default()
	if cfg.BatchSize < 1000 {
		t.Errorf("BatchSize = %d, want >= 1000 per spec.md §4.3", cfg.BatchSize)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load("does-not-exist"); err == nil {
		t.Errorf("expected error loading nonexistent config")
	}
}
