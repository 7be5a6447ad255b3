package core

import "errors"

// Error codes surfaced on the wire.
const (
	ErrCodeRoomFull   = "room_full"
	ErrCodeBadRequest = "bad_request"
)

var (
	// ErrRoomFull rejects a join at capacity. Reported to the joining
	// connection only; room state is untouched.
	ErrRoomFull = errors.New("room full")
	// ErrUnknownRoom marks a guess against a room that no longer exists.
	// Dropped silently: the sender may already be torn down.
	ErrUnknownRoom = errors.New("unknown room")
	// ErrUnknownPlayer marks a guess from an evicted or stale handle.
	ErrUnknownPlayer = errors.New("unknown player")
	// ErrMalformedInput rejects empty names or guesses after trimming.
	ErrMalformedInput = errors.New("malformed input")
)
