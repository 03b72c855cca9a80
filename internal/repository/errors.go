// Package repository implements storage access for rooms, participants,
// movies and votes over database/sql.  Sentinel errors defined here let
// handlers distinguish failure scenarios and translate them into HTTP
// status codes without inspecting driver errors.
package repository

import (
	"errors"
	"strings"
)

// ErrRoomNotFound is returned when no room exists for a given code.
// Handlers translate this into an HTTP 404 response.
var ErrRoomNotFound = errors.New("room not found")

// ErrRoomFull is returned when a third participant attempts to join a
// room that already holds two. Handlers translate this into HTTP 400.
var ErrRoomFull = errors.New("room is full")

// ErrNotParticipant is returned when a session id does not correspond
// to a participant of the target room. Handlers translate this into
// HTTP 403.
var ErrNotParticipant = errors.New("not a participant in this room")

// ErrCodeSpaceExhausted is returned when room creation fails to find a
// free 4-digit code within the bounded retry budget. This is a capacity
// signal, not a client error; handlers translate it into HTTP 500.
var ErrCodeSpaceExhausted = errors.New("could not generate unique room code")

// isDuplicate reports whether err is a unique-constraint violation.
// Matching on the driver message keeps the repository free of direct
// imports of both the MySQL and SQLite drivers.
func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
