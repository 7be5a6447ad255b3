package http

import (
	"context"
	"errors"
	"io"
	stdhttp "net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/palpite-server/internal/config"
	"github.com/vovakirdan/palpite-server/internal/core"
	"github.com/vovakirdan/palpite-server/internal/proto"
)

// errEvicted closes a connection whose player was reaped for idling.
var errEvicted = errors.New("player evicted")

// WSHandler upgrades HTTP connections and bridges them to the game
// registry. A connection must join a room before it can guess.
type WSHandler struct {
	registry *core.Registry
	game     *config.Game
	log      *zerolog.Logger
}

// NewWSHandler builds a new WebSocket handler.
func NewWSHandler(registry *core.Registry, game *config.Game, logger *zerolog.Logger) stdhttp.Handler {
	return &WSHandler{registry: registry, game: game, log: logger}
}

func (h *WSHandler) ServeHTTP(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	ctx := r.Context()

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("ws accept error")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "internal error")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	player, roomID, err := h.waitForJoin(ctx, conn)
	if err != nil {
		h.closeWith(conn, err)
		return
	}
	defer h.registry.Disconnect(roomID, player.Handle)

	errCh := make(chan error, 2)
	go func() {
		errCh <- h.readLoop(ctx, conn, roomID, player)
	}()
	go func() {
		errCh <- h.writeLoop(ctx, conn, player)
	}()

	err = <-errCh
	cancel() // stop the other goroutine
	<-errCh

	h.closeWith(conn, err)
}

// waitForJoin reads inbound frames until one successfully admits the
// connection into a room. Rejections (room full, malformed input) are
// reported and the connection may retry.
func (h *WSHandler) waitForJoin(ctx context.Context, conn *websocket.Conn) (*core.Player, string, error) {
	for {
		var inbound proto.Inbound
		if err := wsjson.Read(ctx, conn, &inbound); err != nil {
			return nil, "", err
		}
		if inbound.Type != proto.InboundTypeJoin {
			if err := writeError(ctx, conn, core.ErrCodeBadRequest, "join a room first"); err != nil {
				return nil, "", err
			}
			continue
		}

		join, protoErr := decodeJoin(inbound)
		if protoErr != nil {
			if err := wsjson.Write(ctx, conn, proto.Outbound{Type: proto.OutboundTypeError, Error: protoErr}); err != nil {
				return nil, "", err
			}
			continue
		}

		player, err := h.registry.Join(join.Room, join.Name)
		switch {
		case errors.Is(err, core.ErrRoomFull):
			if werr := wsjson.Write(ctx, conn, proto.Outbound{
				Type:  proto.OutboundTypeEvent,
				Event: proto.EventRoomFull,
				Data:  proto.RoomFullData{Room: join.Room},
			}); werr != nil {
				return nil, "", werr
			}
		case errors.Is(err, core.ErrMalformedInput):
			if werr := writeError(ctx, conn, core.ErrCodeBadRequest, "room and name are required"); werr != nil {
				return nil, "", werr
			}
		case err != nil:
			return nil, "", err
		default:
			return player, join.Room, nil
		}
	}
}

func (h *WSHandler) readLoop(ctx context.Context, conn *websocket.Conn, roomID string, player *core.Player) error {
	limiter := newGuessLimiter(h.game)

	for {
		var inbound proto.Inbound
		if err := wsjson.Read(ctx, conn, &inbound); err != nil {
			return err
		}

		switch inbound.Type {
		case proto.InboundTypeGuess:
			guess, protoErr := decodeGuess(inbound)
			if protoErr != nil {
				if err := wsjson.Write(ctx, conn, proto.Outbound{Type: proto.OutboundTypeError, Error: protoErr}); err != nil {
					return err
				}
				continue
			}
			if !allowGuess(limiter) {
				if err := writeError(ctx, conn, "rate_limited", "too many guesses, slow down"); err != nil {
					return err
				}
				continue
			}
			h.registry.Guess(roomID, player.Handle, guess.Text)
		case proto.InboundTypeJoin:
			if err := writeError(ctx, conn, core.ErrCodeBadRequest, "already in a room"); err != nil {
				return err
			}
		default:
			if err := writeError(ctx, conn, "invalid_message", "unknown message type"); err != nil {
				return err
			}
		}
	}
}

func (h *WSHandler) writeLoop(ctx context.Context, conn *websocket.Conn, player *core.Player) error {
	for {
		select {
		case event, ok := <-player.Events:
			if !ok {
				return nil
			}
			if err := wsjson.Write(ctx, conn, outboundFromEvent(event)); err != nil {
				h.log.Error().Err(err).Str("player", player.Handle).Msg("write ws event")
				return err
			}
			if event.Kind == core.EventIdleEviction {
				return errEvicted
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func writeError(ctx context.Context, conn *websocket.Conn, code, msg string) error {
	return wsjson.Write(ctx, conn, proto.Outbound{
		Type:  proto.OutboundTypeError,
		Error: &proto.Error{Code: code, Msg: msg},
	})
}

func (h *WSHandler) closeWith(conn *websocket.Conn, err error) {
	status := websocket.StatusNormalClosure
	reason := "closing"
	if errors.Is(err, errEvicted) {
		reason = "idle eviction"
		err = nil
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		if errors.Is(err, io.EOF) {
			err = nil
		}
		if s := websocket.CloseStatus(err); s != 0 {
			status = s
		}
		if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
			err = nil
		}
		if err != nil {
			if status == websocket.StatusNormalClosure {
				status = websocket.StatusInternalError
			}
			reason = err.Error()
			h.log.Warn().Err(err).Msg("ws connection closed with error")
		}
	}

	conn.Close(status, reason)
}
