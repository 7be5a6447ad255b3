package proto

import "encoding/json"

// Inbound is the envelope for messages coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	ProtocolVersion = 1

	InboundTypeJoin  = "join"
	InboundTypeGuess = "guess"

	OutboundTypeEvent = "event"
	OutboundTypeError = "error"
)

// JoinData requests admission into a room.
type JoinData struct {
	Room string `json:"room"`
	Name string `json:"name"`
}

// GuessData is a free-text guess against the room's answer set.
type GuessData struct {
	Room string `json:"room"`
	Text string `json:"text"`
}

// Outbound is the envelope for messages sent to the client.
type Outbound struct {
	Type  string `json:"type"`
	Event string `json:"event,omitempty"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// Outbound event names.
const (
	EventRoomState      = "roomState"
	EventRoster         = "roster"
	EventChatMessage    = "chatMessage"
	EventWordSolved     = "wordSolved"
	EventMatchEnded     = "matchEnded"
	EventWinLeaderboard = "winLeaderboard"
	EventGameplayState  = "gameplayState"
	EventRoomFull       = "roomFull"
	EventIdleEviction   = "idleEviction"
)

// RoomStateData is the render snapshot for a round.
type RoomStateData struct {
	Category    string   `json:"category"`
	SolvedWords []string `json:"solvedWords"`
	Round       int      `json:"round"`
}

// RosterEntry is one player's roster line.
type RosterEntry struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
	Wins   int    `json:"wins"`
}

// ChatMessageData is one chat line.
type ChatMessageData struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

// WordSolvedData reports a scored guess.
type WordSolvedData struct {
	Solver      string   `json:"solver"`
	Word        string   `json:"word"`
	SolvedWords []string `json:"solvedWords"`
	Round       int      `json:"round"`
}

// RankEntry is one line of the end-of-match ranking.
type RankEntry struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// MatchEndedData carries the final ranking of a match.
type MatchEndedData struct {
	Ranking []RankEntry `json:"ranking"`
}

// WinEntry is one line of the cumulative win leaderboard.
type WinEntry struct {
	Name string `json:"name"`
	Wins int    `json:"wins"`
}

// GameplayStateData reports whether guesses currently score.
type GameplayStateData struct {
	AcceptingGuesses bool `json:"acceptingGuesses"`
}

// RoomFullData reports a rejected join.
type RoomFullData struct {
	Room string `json:"room"`
}

// IdleEvictionData reports an inactivity removal.
type IdleEvictionData struct {
	Target string `json:"target"`
}

// Error describes a protocol-level error response.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}
