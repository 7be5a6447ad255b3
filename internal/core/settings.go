package core

import (
	"time"

	"github.com/vovakirdan/palpite-server/internal/guess"
)

// MaxNameLength bounds player display names, in runes.
const MaxNameLength = 32

// Settings holds the gameplay constants a room runs under.
type Settings struct {
	RoundDuration    time.Duration
	FinalWarningLead time.Duration
	RoundsPerMatch   int
	AnswersPerRound  int
	RoomCapacity     int
	IdleTimeout      time.Duration
	ReapInterval     time.Duration
	InterRoundDelay  time.Duration
	RestartDelay     time.Duration
	CooldownWindow   time.Duration
	LeaderboardSize  int
	Matcher          guess.Matcher
}

// DefaultSettings returns the stock gameplay configuration.
func DefaultSettings() Settings {
	return Settings{
		RoundDuration:    90 * time.Second,
		FinalWarningLead: 10 * time.Second,
		RoundsPerMatch:   5,
		AnswersPerRound:  5,
		RoomCapacity:     8,
		IdleTimeout:      3 * time.Minute,
		ReapInterval:     30 * time.Second,
		InterRoundDelay:  3 * time.Second,
		RestartDelay:     10 * time.Second,
		CooldownWindow:   10 * time.Minute,
		LeaderboardSize:  10,
		Matcher:          guess.DefaultMatcher(),
	}
}
