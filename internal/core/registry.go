package core

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/palpite-server/internal/catalog"
)

// Registry owns the set of live rooms, admits and evicts players, and
// garbage-collects empty rooms. Lock order is registry before room;
// timer callbacks only ever take the room lock.
type Registry struct {
	mu       sync.Mutex
	rooms    map[string]*Room
	catalog  catalog.Catalog
	settings Settings
	log      *zerolog.Logger
}

// NewRegistry builds a registry over a loaded catalog.
func NewRegistry(cat catalog.Catalog, settings Settings, logger *zerolog.Logger) *Registry {
	return &Registry{
		rooms:    make(map[string]*Room),
		catalog:  cat,
		settings: settings,
		log:      logger,
	}
}

// Join admits a player into the room, creating it lazily on first
// reference. Returns ErrRoomFull at capacity and ErrMalformedInput for
// an empty room id or display name.
func (g *Registry) Join(roomID, name string) (*Player, error) {
	roomID = strings.TrimSpace(roomID)
	name = strings.TrimSpace(name)
	if roomID == "" || name == "" {
		return nil, ErrMalformedInput
	}
	if runes := []rune(name); len(runes) > MaxNameLength {
		name = string(runes[:MaxNameLength])
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	room, ok := g.rooms[roomID]
	if !ok {
		room = newRoom(roomID, g.settings, g.catalog, *g.log)
		g.rooms[roomID] = room
		g.log.Info().Str("room", roomID).Msg("room created")
	}
	return room.join(name)
}

// Guess routes a guess into its room. Unknown rooms and players are
// silently ignored: the message may have raced a disconnect.
func (g *Registry) Guess(roomID, handle, text string) {
	g.mu.Lock()
	room := g.rooms[roomID]
	g.mu.Unlock()

	if room == nil {
		g.log.Debug().Str("room", roomID).Msg("guess for unknown room dropped")
		return
	}
	if err := room.guess(handle, text); err != nil {
		g.log.Debug().Err(err).Str("room", roomID).Msg("guess dropped")
	}
}

// Disconnect removes a player, destroying the room the instant its
// player map empties.
func (g *Registry) Disconnect(roomID, handle string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	room, ok := g.rooms[roomID]
	if !ok {
		return
	}
	if room.removePlayer(handle) {
		room.destroy()
		delete(g.rooms, roomID)
	}
}

// RoomCount reports the number of live rooms.
func (g *Registry) RoomCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.rooms)
}

// Run drives the inactivity reaper until the context is cancelled.
func (g *Registry) Run(ctx context.Context) {
	ticker := time.NewTicker(g.settings.ReapInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			g.sweep(now)
		}
	}
}

// sweep walks every room, evicting idle players and deleting rooms the
// eviction emptied.
func (g *Registry) sweep(now time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for id, room := range g.rooms {
		evicted, empty := room.sweepIdle(now, g.settings.IdleTimeout)
		for _, name := range evicted {
			g.log.Info().Str("room", id).Str("player", name).Msg("idle player evicted")
		}
		if empty {
			room.destroy()
			delete(g.rooms, id)
		}
	}
}
