package core

import (
	"math/rand"
	"testing"
	"time"
)

func TestSelectCategoryRespectsCooldown(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	names := []string{"animals", "fruits", "colors"}
	now := time.Now()
	window := time.Hour

	for i := 0; i < 50; i++ {
		ledger := map[string]time.Time{"animals": now.Add(-time.Minute)}
		chosen := selectCategory(names, ledger, now, window, rng)
		if chosen == "animals" {
			t.Fatal("category inside the cool-down window was selected")
		}
		if _, ok := ledger[chosen]; !ok {
			t.Fatalf("selection %q not recorded in ledger", chosen)
		}
	}
}

func TestSelectCategoryExpiredEntriesEligible(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	names := []string{"animals"}
	now := time.Now()

	ledger := map[string]time.Time{"animals": now.Add(-2 * time.Hour)}
	if chosen := selectCategory(names, ledger, now, time.Hour, rng); chosen != "animals" {
		t.Fatalf("expired cool-down entry should be eligible, got %q", chosen)
	}
}

func TestSelectCategoryResetsExhaustedLedger(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	names := []string{"animals", "fruits"}
	now := time.Now()

	ledger := map[string]time.Time{
		"animals": now.Add(-time.Minute),
		"fruits":  now.Add(-time.Minute),
	}
	chosen := selectCategory(names, ledger, now, time.Hour, rng)
	if chosen == "" {
		t.Fatal("rotation must not stall when every category is cooling down")
	}
	// Ledger was cleared before selection: only the fresh pick remains.
	if len(ledger) != 1 {
		t.Fatalf("ledger should hold only the new selection, got %v", ledger)
	}
	if _, ok := ledger[chosen]; !ok {
		t.Fatalf("new selection %q missing from ledger", chosen)
	}
}

func TestSampleWords(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	words := []string{"a", "b", "c", "d", "e"}

	sample := sampleWords(words, 3, rng)
	if len(sample) != 3 {
		t.Fatalf("expected 3 words, got %d", len(sample))
	}
	seen := map[string]bool{}
	for _, w := range sample {
		if seen[w] {
			t.Fatalf("duplicate word %q in sample", w)
		}
		seen[w] = true
	}
}

func TestSampleWordsSmallCategory(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	sample := sampleWords([]string{"a", "b"}, 5, rng)
	if len(sample) != 2 {
		t.Fatalf("small category should yield a smaller sample, got %d", len(sample))
	}
}
