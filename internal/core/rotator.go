package core

import (
	"math/rand"
	"time"

	"github.com/samber/lo"
)

// selectCategory picks the next category uniformly among those outside
// the cool-down window, recording the pick in the ledger. If the
// cool-down leaves nothing eligible the ledger resets instead of
// stalling rotation.
func selectCategory(names []string, ledger map[string]time.Time, now time.Time, window time.Duration, rng *rand.Rand) string {
	if len(names) == 0 {
		return ""
	}

	eligible := lo.Filter(names, func(name string, _ int) bool {
		last, used := ledger[name]
		return !used || now.Sub(last) >= window
	})
	if len(eligible) == 0 {
		clear(ledger)
		eligible = names
	}

	chosen := eligible[rng.Intn(len(eligible))]
	ledger[chosen] = now
	return chosen
}

// sampleWords draws up to n words without replacement. A category
// smaller than n simply yields a smaller sample.
func sampleWords(words []string, n int, rng *rand.Rand) []string {
	if n > len(words) {
		n = len(words)
	}
	picked := make([]string, 0, n)
	for _, idx := range rng.Perm(len(words))[:n] {
		picked = append(picked, words[idx])
	}
	return picked
}
