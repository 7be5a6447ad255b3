package core

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/palpite-server/internal/catalog"
)

// testSettings uses hour-long delays so no timer fires during a test;
// transitions are driven directly.
func testSettings() Settings {
	s := DefaultSettings()
	s.RoundDuration = time.Hour
	s.FinalWarningLead = 10 * time.Second
	s.RoundsPerMatch = 2
	s.AnswersPerRound = 2
	s.RoomCapacity = 4
	s.IdleTimeout = time.Minute
	s.InterRoundDelay = time.Hour
	s.RestartDelay = time.Hour
	s.CooldownWindow = time.Hour
	return s
}

func testCatalog() catalog.Catalog {
	return catalog.Catalog{
		"animals": {"gato", "cachorro", "cavalo"},
		"fruits":  {"banana", "manga", "abacaxi"},
	}
}

func newTestRegistry(t *testing.T, s Settings) *Registry {
	t.Helper()
	logger := zerolog.Nop()
	return NewRegistry(testCatalog(), s, &logger)
}

func mustEvent(t *testing.T, ch <-chan *Event, kind EventKind) *Event {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case ev := <-ch:
			if ev == nil {
				continue
			}
			if ev.Kind == kind {
				return ev
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
	t.Fatalf("expected event kind %v not received", kind)
	return nil
}

// noEvent asserts no pending event of the given kind.
func noEvent(t *testing.T, ch <-chan *Event, kind EventKind) {
	t.Helper()
	for {
		select {
		case ev := <-ch:
			if ev != nil && ev.Kind == kind {
				t.Fatalf("unexpected event: %+v", ev)
			}
		default:
			return
		}
	}
}

func drainEvents(ch <-chan *Event) {
	for {
		select {
		case <-ch:
		default:
			return
		}
	}
}
