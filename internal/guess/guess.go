// Package guess turns free-text guesses into canonical form and
// classifies them against a round's answer set.
package guess

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Kind classifies a guess against the answer set.
type Kind int

const (
	// Miss means no answer matched.
	Miss Kind = iota
	// Near means the guess is close to an answer. Feedback only: a near
	// guess never scores and never marks a word solved.
	Near
	// Correct means the guess is canonically identical to an answer.
	Correct
)

// Result reports the classification and, for Correct and Near, the
// answer word that matched (as listed in the answer set).
type Result struct {
	Kind Kind
	Word string
}

// Matcher holds the near-miss tuning knobs.
type Matcher struct {
	// Similarity is the minimum 1-dist/maxlen ratio for a Near.
	Similarity float64
	// MinNearLength is the minimum canonical guess length for the
	// substring heuristic.
	MinNearLength int
}

// DefaultMatcher returns the stock near-miss tuning.
func DefaultMatcher() Matcher {
	return Matcher{Similarity: 0.85, MinNearLength: 4}
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases, strips diacritics and punctuation, collapses
// internal whitespace and trims, so that visually equivalent guesses
// compare equal. Normalize is idempotent.
func Normalize(s string) string {
	s = strings.ToLower(s)
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			// Hyphens, apostrophes and friends become separators.
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Evaluate classifies raw against the answers not yet in solved,
// scanning in answer-set order. Exact canonical identity wins over any
// near-miss on any answer, so all answers are checked for an exact
// match before the near heuristics run.
func (m Matcher) Evaluate(raw string, answers []string, solved map[string]struct{}) Result {
	cg := Normalize(raw)
	if cg == "" {
		return Result{Kind: Miss}
	}

	for _, ans := range answers {
		if _, done := solved[ans]; done {
			continue
		}
		if cg == Normalize(ans) {
			return Result{Kind: Correct, Word: ans}
		}
	}

	for _, ans := range answers {
		if _, done := solved[ans]; done {
			continue
		}
		if m.near(cg, Normalize(ans)) {
			return Result{Kind: Near, Word: ans}
		}
	}

	return Result{Kind: Miss}
}

func (m Matcher) near(cg, ca string) bool {
	if ca == "" {
		return false
	}
	if len([]rune(cg)) >= m.MinNearLength &&
		(strings.Contains(ca, cg) || strings.Contains(cg, ca)) {
		return true
	}
	dist := levenshtein.ComputeDistance(cg, ca)
	longest := max(len([]rune(cg)), len([]rune(ca)))
	sim := 1 - float64(dist)/float64(longest)
	return sim >= m.Similarity
}
