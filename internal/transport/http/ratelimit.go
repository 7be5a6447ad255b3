package http

import (
	"golang.org/x/time/rate"

	"github.com/vovakirdan/palpite-server/internal/config"
)

// newGuessLimiter builds the per-connection guess rate limiter. A zero
// rate disables limiting.
func newGuessLimiter(game *config.Game) *rate.Limiter {
	if game.GuessRatePerSec <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(game.GuessRatePerSec), game.GuessBurst)
}

func allowGuess(l *rate.Limiter) bool {
	return l == nil || l.Allow()
}
