package core

import (
	"time"

	"github.com/google/uuid"
)

// Player is one connected participant within a room.
type Player struct {
	Handle     string
	Name       string
	Points     int
	Wins       int
	LastActive time.Time

	joinSeq int

	// Events carries room events to this player's connection in
	// emission order. Slow consumers drop.
	Events chan *Event
}

// NewPlayer constructs a player with a fresh connection handle.
func NewPlayer(name string) *Player {
	return &Player{
		Handle:     uuid.NewString(),
		Name:       name,
		LastActive: time.Now(),
		Events:     make(chan *Event, 32),
	}
}

func (p *Player) send(ev *Event) {
	select {
	case p.Events <- ev:
	default:
		// Drop if slow consumer.
	}
}
