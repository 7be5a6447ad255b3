package core

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/palpite-server/internal/catalog"
	"github.com/vovakirdan/palpite-server/internal/guess"
)

// Phase is the room state machine's current state.
type Phase int

const (
	// PhaseRoundActive means a round is running and guesses can score.
	PhaseRoundActive Phase = iota
	// PhaseRoundSettling is the window between a round's end and the
	// next round's start.
	PhaseRoundSettling
	// PhaseMatchEnded means all rounds are exhausted and a restart is
	// scheduled.
	PhaseMatchEnded
	// PhaseMatchRestarting is the transient counter reinitialization.
	PhaseMatchRestarting
)

// Room is one game session. All mutations run under its lock; timer
// callbacks verify the scheduling generation so a superseded callback
// never observably fires.
type Room struct {
	ID string

	mu       sync.Mutex
	settings Settings
	catalog  catalog.Catalog
	log      zerolog.Logger
	rng      *rand.Rand

	players map[string]*Player
	joinSeq int

	phase          Phase
	round          int
	category       string
	answers        []string
	solved         map[string]struct{}
	solvedOrder    []string
	lastUsed       map[string]time.Time
	accepting      bool
	winnersTallied bool
	roundStarted   time.Time
	roundEnds      time.Time

	gen       uint64
	timers    roundTimers
	destroyed bool
}

func newRoom(id string, settings Settings, cat catalog.Catalog, logger zerolog.Logger) *Room {
	return &Room{
		ID:       id,
		settings: settings,
		catalog:  cat,
		log:      logger.With().Str("room", id).Logger(),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		players:  make(map[string]*Player),
		solved:   make(map[string]struct{}),
		lastUsed: make(map[string]time.Time),
	}
}

// join admits a player, starting round 1 on the first admission.
// Returns ErrRoomFull at capacity without mutating state.
func (r *Room) join(name string) (*Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.destroyed {
		return nil, ErrUnknownRoom
	}
	if len(r.players) >= r.settings.RoomCapacity {
		return nil, ErrRoomFull
	}

	p := NewPlayer(name)
	p.joinSeq = r.joinSeq
	r.joinSeq++
	r.players[p.Handle] = p

	if r.round == 0 && r.phase == PhaseRoundActive {
		r.round = 1
		r.startRoundLocked(time.Now())
	}

	p.send(r.stateEventLocked())
	p.send(r.systemChat(fmt.Sprintf("Round in progress! Category: %s", r.category)))
	remaining := int(time.Until(r.roundEnds).Seconds())
	if remaining < 0 {
		remaining = 0
	}
	p.send(r.systemChat(fmt.Sprintf("You have %d seconds left in this round.", remaining)))
	r.broadcastLocked(&Event{Kind: EventRoster, Room: r.ID, Roster: r.rosterLocked()})

	r.log.Info().Str("player", p.Name).Int("round", r.round).Msg("player joined")
	return p, nil
}

// guess evaluates text for the given player. Scoring and solved-state
// mutation only happen while the room accepts guesses; outside that
// window the guess is feedback only.
func (r *Room) guess(handle, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.players[handle]
	if !ok {
		return ErrUnknownPlayer
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrMalformedInput
	}
	p.LastActive = time.Now()

	res := r.settings.Matcher.Evaluate(text, r.answers, r.solved)
	switch {
	case res.Kind == guess.Correct && r.accepting:
		r.solved[res.Word] = struct{}{}
		r.solvedOrder = append(r.solvedOrder, res.Word)
		pts := solveScore(len(r.solvedOrder))
		p.Points += pts

		r.broadcastLocked(&Event{Kind: EventChatMessage, Room: r.ID,
			Chat: &ChatMessage{Speaker: p.Name, Text: text, Correct: true}})
		r.broadcastLocked(&Event{Kind: EventWordSolved, Room: r.ID, Solved: &WordSolved{
			Solver:      p.Name,
			Word:        res.Word,
			SolvedWords: append([]string(nil), r.solvedOrder...),
			Round:       r.round,
		}})
		r.broadcastLocked(&Event{Kind: EventRoster, Room: r.ID, Roster: r.rosterLocked()})
		r.log.Debug().Str("player", p.Name).Str("word", res.Word).Int("points", pts).Msg("word solved")

		if len(r.solvedOrder) == len(r.answers) {
			r.broadcastLocked(r.systemChat("All words guessed!"))
			r.endRoundLocked()
		}
	case res.Kind == guess.Near:
		p.send(r.systemChat(fmt.Sprintf("%q is very close to one of the words!", text)))
	default:
		r.broadcastLocked(&Event{Kind: EventChatMessage, Room: r.ID,
			Chat: &ChatMessage{Speaker: p.Name, Text: text, Correct: false}})
	}
	return nil
}

// startRoundLocked begins round r.round: rotates the category, draws a
// fresh answer set and schedules the round timers against a new
// generation.
func (r *Room) startRoundLocked(now time.Time) {
	r.phase = PhaseRoundActive
	r.category = selectCategory(r.catalog.Names(), r.lastUsed, now, r.settings.CooldownWindow, r.rng)
	r.answers = sampleWords(r.catalog.Words(r.category), r.settings.AnswersPerRound, r.rng)
	r.solved = make(map[string]struct{})
	r.solvedOrder = nil
	r.accepting = true
	r.roundStarted = now
	r.roundEnds = now.Add(r.settings.RoundDuration)

	r.gen++
	r.timers.cancelRound()
	r.afterLocked(&r.timers.halfTime, r.settings.RoundDuration/2, r.onHalfTime)
	r.afterLocked(&r.timers.finalWarning, r.settings.RoundDuration-r.settings.FinalWarningLead, r.onFinalWarning)
	r.afterLocked(&r.timers.timeout, r.settings.RoundDuration, r.onRoundTimeout)

	r.broadcastLocked(r.stateEventLocked())
	r.broadcastLocked(&Event{Kind: EventGameplayState, Room: r.ID,
		Gameplay: &GameplayState{AcceptingGuesses: true}})
	r.broadcastLocked(r.systemChat(fmt.Sprintf(
		"Round %d! Category: %s. You have %d seconds to guess the words.",
		r.round, r.category, int(r.settings.RoundDuration.Seconds()))))

	r.log.Info().Int("round", r.round).Str("category", r.category).
		Int("answers", len(r.answers)).Msg("round started")
}

// endRoundLocked closes the active round, either on full solve or on
// timeout, and advances the match.
func (r *Room) endRoundLocked() {
	r.accepting = false
	r.gen++
	r.timers.cancelRound()
	r.broadcastLocked(&Event{Kind: EventGameplayState, Room: r.ID,
		Gameplay: &GameplayState{AcceptingGuesses: false}})

	r.round++
	if r.round > r.settings.RoundsPerMatch {
		r.endMatchLocked()
		return
	}
	r.phase = PhaseRoundSettling
	r.afterLocked(&r.timers.transition, r.settings.InterRoundDelay, func(now time.Time) {
		r.startRoundLocked(now)
	})
}

// endMatchLocked broadcasts the final ranking, tallies winners once and
// schedules the restart.
func (r *Room) endMatchLocked() {
	r.phase = PhaseMatchEnded
	r.broadcastLocked(&Event{Kind: EventMatchEnded, Room: r.ID, Ranking: r.rankingLocked()})
	r.tallyWinnersLocked()
	r.broadcastLocked(&Event{Kind: EventWinLeaderboard, Room: r.ID, Leaderboard: r.leaderboardLocked()})
	r.broadcastLocked(r.systemChat("Match over! A new match starts shortly."))
	r.log.Info().Msg("match ended")

	r.afterLocked(&r.timers.transition, r.settings.RestartDelay, func(now time.Time) {
		r.restartMatchLocked(now)
	})
}

// restartMatchLocked reinitializes counters and begins round 1.
func (r *Room) restartMatchLocked(now time.Time) {
	r.phase = PhaseMatchRestarting
	r.round = 0
	r.category = ""
	r.answers = nil
	r.solved = make(map[string]struct{})
	r.solvedOrder = nil
	r.winnersTallied = false
	for _, p := range r.players {
		p.Points = 0
	}
	r.broadcastLocked(&Event{Kind: EventRoster, Room: r.ID, Roster: r.rosterLocked()})

	r.round = 1
	r.startRoundLocked(now)
}

func (r *Room) onHalfTime(time.Time) {
	left := int((r.settings.RoundDuration / 2).Seconds())
	r.broadcastLocked(r.systemChat(fmt.Sprintf("Half time! %d seconds left.", left)))
}

func (r *Room) onFinalWarning(time.Time) {
	left := int(r.settings.FinalWarningLead.Seconds())
	r.broadcastLocked(r.systemChat(fmt.Sprintf("Careful! Only %d seconds left!", left)))
}

func (r *Room) onRoundTimeout(time.Time) {
	r.broadcastLocked(r.systemChat("Time's up!"))
	r.endRoundLocked()
}

// afterLocked schedules fn bound to the current generation. The
// callback is a no-op once the room moves on or is destroyed.
func (r *Room) afterLocked(rt *roomTimer, d time.Duration, fn func(now time.Time)) {
	gen := r.gen
	rt.schedule(d, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.destroyed || r.gen != gen {
			return
		}
		fn(time.Now())
	})
}

// removePlayer drops a player on disconnect and reports whether the
// room emptied. The caller destroys emptied rooms.
func (r *Room) removePlayer(handle string) (empty bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.players[handle]
	if !ok {
		return len(r.players) == 0
	}
	delete(r.players, handle)
	r.broadcastLocked(&Event{Kind: EventRoster, Room: r.ID, Roster: r.rosterLocked()})
	r.log.Info().Str("player", p.Name).Msg("player left")
	return len(r.players) == 0
}

// sweepIdle evicts every player idle past threshold, notifying the
// evicted player and the room. Reports whether the room emptied.
func (r *Room) sweepIdle(now time.Time, threshold time.Duration) (evicted []string, empty bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for handle, p := range r.players {
		if now.Sub(p.LastActive) <= threshold {
			continue
		}
		delete(r.players, handle)
		p.send(&Event{Kind: EventIdleEviction, Room: r.ID, Eviction: &IdleEviction{Target: p.Name}})
		r.broadcastLocked(r.systemChat(fmt.Sprintf("%s was removed for inactivity.", p.Name)))
		r.broadcastLocked(&Event{Kind: EventRoster, Room: r.ID, Roster: r.rosterLocked()})
		evicted = append(evicted, p.Name)
	}
	return evicted, len(r.players) == 0
}

// destroy cancels every pending timer and marks the room dead. No
// callback scheduled before destruction can fire afterwards.
func (r *Room) destroy() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.destroyed = true
	r.gen++
	r.timers.cancelAll()
	r.log.Info().Msg("room destroyed")
}

func (r *Room) stateEventLocked() *Event {
	return &Event{Kind: EventRoomState, Room: r.ID, State: &RoomState{
		Category:    r.category,
		SolvedWords: append([]string(nil), r.solvedOrder...),
		Round:       r.round,
	}}
}

func (r *Room) systemChat(text string) *Event {
	return &Event{Kind: EventChatMessage, Room: r.ID,
		Chat: &ChatMessage{Speaker: SystemSpeaker, Text: text}}
}

// broadcastLocked sends an event to all players in the room.
func (r *Room) broadcastLocked(ev *Event) {
	for _, p := range r.players {
		p.send(ev)
	}
}
