package http

import (
	"encoding/json"
	"testing"

	"github.com/vovakirdan/palpite-server/internal/config"
	"github.com/vovakirdan/palpite-server/internal/core"
	"github.com/vovakirdan/palpite-server/internal/proto"
)

func TestDecodeJoin(t *testing.T) {
	join, protoErr := decodeJoin(proto.Inbound{
		Type: proto.InboundTypeJoin,
		Data: json.RawMessage(`{"room":"sala","name":"alice"}`),
	})
	if protoErr != nil {
		t.Fatalf("unexpected error: %+v", protoErr)
	}
	if join.Room != "sala" || join.Name != "alice" {
		t.Fatalf("unexpected join data: %+v", join)
	}
}

func TestDecodeJoinRejectsBadPayload(t *testing.T) {
	cases := []json.RawMessage{
		json.RawMessage(`not json`),
		json.RawMessage(`{"room":"sala"}`),
		json.RawMessage(`{"name":"alice"}`),
	}
	for _, data := range cases {
		if _, protoErr := decodeJoin(proto.Inbound{Type: proto.InboundTypeJoin, Data: data}); protoErr == nil {
			t.Fatalf("payload %s: expected an error", data)
		}
	}
}

func TestDecodeGuessRequiresText(t *testing.T) {
	if _, protoErr := decodeGuess(proto.Inbound{
		Type: proto.InboundTypeGuess,
		Data: json.RawMessage(`{"room":"sala","text":""}`),
	}); protoErr == nil {
		t.Fatal("expected an error for empty guess text")
	}
}

func TestOutboundFromEvent(t *testing.T) {
	out := outboundFromEvent(&core.Event{
		Kind: core.EventWordSolved,
		Room: "sala",
		Solved: &core.WordSolved{
			Solver:      "alice",
			Word:        "gato",
			SolvedWords: []string{"gato"},
			Round:       2,
		},
	})
	if out.Type != proto.OutboundTypeEvent || out.Event != proto.EventWordSolved {
		t.Fatalf("unexpected envelope: %+v", out)
	}
	solved, ok := out.Data.(proto.WordSolvedData)
	if !ok {
		t.Fatalf("unexpected data type: %T", out.Data)
	}
	if solved.Solver != "alice" || solved.Word != "gato" || solved.Round != 2 {
		t.Fatalf("unexpected payload: %+v", solved)
	}

	out = outboundFromEvent(&core.Event{
		Kind: core.EventChatMessage,
		Room: "sala",
		Chat: &core.ChatMessage{Speaker: core.SystemSpeaker, Text: "Time's up!"},
	})
	chat, ok := out.Data.(proto.ChatMessageData)
	if !ok {
		t.Fatalf("unexpected data type: %T", out.Data)
	}
	if chat.Speaker != core.SystemSpeaker || chat.Correct {
		t.Fatalf("unexpected payload: %+v", chat)
	}

	out = outboundFromEvent(&core.Event{
		Kind:     core.EventIdleEviction,
		Room:     "sala",
		Eviction: &core.IdleEviction{Target: "alice"},
	})
	if out.Event != proto.EventIdleEviction {
		t.Fatalf("unexpected event name: %s", out.Event)
	}
}

func TestGuessLimiterDisabledByZeroRate(t *testing.T) {
	game := config.Game{GuessRatePerSec: 0}
	if l := newGuessLimiter(&game); l != nil {
		t.Fatal("zero rate must disable the limiter")
	}
	if !allowGuess(nil) {
		t.Fatal("a nil limiter must allow every guess")
	}

	game = config.Game{GuessRatePerSec: 1, GuessBurst: 2}
	l := newGuessLimiter(&game)
	if l == nil {
		t.Fatal("positive rate must build a limiter")
	}
	if !allowGuess(l) || !allowGuess(l) {
		t.Fatal("burst guesses should be allowed")
	}
	if allowGuess(l) {
		t.Fatal("guess beyond the burst should be limited")
	}
}
