package http

import (
	"encoding/json"

	"github.com/vovakirdan/palpite-server/internal/core"
	"github.com/vovakirdan/palpite-server/internal/proto"
)

func decodeJoin(inbound proto.Inbound) (proto.JoinData, *proto.Error) {
	var join proto.JoinData
	if err := json.Unmarshal(inbound.Data, &join); err != nil {
		return join, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "invalid join payload"}
	}
	if join.Room == "" || join.Name == "" {
		return join, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "room and name are required"}
	}
	return join, nil
}

func decodeGuess(inbound proto.Inbound) (proto.GuessData, *proto.Error) {
	var guess proto.GuessData
	if err := json.Unmarshal(inbound.Data, &guess); err != nil {
		return guess, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "invalid guess payload"}
	}
	if guess.Text == "" {
		return guess, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "guess text is required"}
	}
	return guess, nil
}

func outboundFromEvent(event *core.Event) proto.Outbound {
	out := proto.Outbound{Type: proto.OutboundTypeEvent}

	switch event.Kind {
	case core.EventRoomState:
		out.Event = proto.EventRoomState
		out.Data = proto.RoomStateData{
			Category:    event.State.Category,
			SolvedWords: event.State.SolvedWords,
			Round:       event.State.Round,
		}
	case core.EventRoster:
		out.Event = proto.EventRoster
		roster := make([]proto.RosterEntry, 0, len(event.Roster))
		for _, e := range event.Roster {
			roster = append(roster, proto.RosterEntry{Name: e.Name, Points: e.Points, Wins: e.Wins})
		}
		out.Data = roster
	case core.EventChatMessage:
		out.Event = proto.EventChatMessage
		out.Data = proto.ChatMessageData{
			Speaker: event.Chat.Speaker,
			Text:    event.Chat.Text,
			Correct: event.Chat.Correct,
		}
	case core.EventWordSolved:
		out.Event = proto.EventWordSolved
		out.Data = proto.WordSolvedData{
			Solver:      event.Solved.Solver,
			Word:        event.Solved.Word,
			SolvedWords: event.Solved.SolvedWords,
			Round:       event.Solved.Round,
		}
	case core.EventMatchEnded:
		out.Event = proto.EventMatchEnded
		ranking := make([]proto.RankEntry, 0, len(event.Ranking))
		for _, e := range event.Ranking {
			ranking = append(ranking, proto.RankEntry{Name: e.Name, Points: e.Points})
		}
		out.Data = proto.MatchEndedData{Ranking: ranking}
	case core.EventWinLeaderboard:
		out.Event = proto.EventWinLeaderboard
		board := make([]proto.WinEntry, 0, len(event.Leaderboard))
		for _, e := range event.Leaderboard {
			board = append(board, proto.WinEntry{Name: e.Name, Wins: e.Wins})
		}
		out.Data = board
	case core.EventGameplayState:
		out.Event = proto.EventGameplayState
		out.Data = proto.GameplayStateData{AcceptingGuesses: event.Gameplay.AcceptingGuesses}
	case core.EventRoomFull:
		out.Event = proto.EventRoomFull
		out.Data = proto.RoomFullData{Room: event.Room}
	case core.EventIdleEviction:
		out.Event = proto.EventIdleEviction
		out.Data = proto.IdleEvictionData{Target: event.Eviction.Target}
	}

	return out
}
