package core

// EventKind is a notification the engine emits to players.
type EventKind int

const (
	// EventRoomState delivers the current category, solved words and round.
	EventRoomState EventKind = iota
	// EventRoster delivers the room's player list with points and wins.
	EventRoster
	// EventChatMessage delivers a chat line, player or system authored.
	EventChatMessage
	// EventWordSolved notifies that a player solved a word.
	EventWordSolved
	// EventMatchEnded delivers the final ranking of a finished match.
	EventMatchEnded
	// EventWinLeaderboard delivers the cumulative win standings.
	EventWinLeaderboard
	// EventGameplayState notifies whether guesses are currently accepted.
	EventGameplayState
	// EventRoomFull tells a joining connection the room is at capacity.
	EventRoomFull
	// EventIdleEviction tells a player it was removed for inactivity.
	EventIdleEviction
)

// SystemSpeaker is the reserved chat speaker for engine messages.
const SystemSpeaker = "System"

// Event is sent to players to describe what happened in a room.
type Event struct {
	Kind        EventKind
	Room        string
	State       *RoomState
	Roster      []RosterEntry
	Chat        *ChatMessage
	Solved      *WordSolved
	Ranking     []RankEntry
	Leaderboard []WinEntry
	Gameplay    *GameplayState
	Eviction    *IdleEviction
}

// RoomState is the snapshot a player needs to render a round.
type RoomState struct {
	Category    string
	SolvedWords []string
	Round       int
}

// RosterEntry is one player's line in the room roster.
type RosterEntry struct {
	Name   string
	Points int
	Wins   int
}

// ChatMessage is one chat line; Correct marks a scoring guess.
type ChatMessage struct {
	Speaker string
	Text    string
	Correct bool
}

// WordSolved reports a correct guess and the updated solved set.
type WordSolved struct {
	Solver      string
	Word        string
	SolvedWords []string
	Round       int
}

// RankEntry is one line of the end-of-match ranking.
type RankEntry struct {
	Name   string
	Points int
}

// WinEntry is one line of the cumulative win leaderboard.
type WinEntry struct {
	Name string
	Wins int
}

// GameplayState reports whether the room accepts scoring guesses.
type GameplayState struct {
	AcceptingGuesses bool
}

// IdleEviction reports an inactivity removal.
type IdleEviction struct {
	Target string
}
