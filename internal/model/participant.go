package model

import "time"

// Participant is a member of a room, identified across requests by an
// opaque session identifier carried in a cookie.  The session id is
// unique across all participants and acts as a bearer token with no
// signing, expiry or revocation.
//
// RoomID and JoinedAt are persistence details and are not part of the
// JSON representation.
type Participant struct {
	ID        int64     `json:"id"`         // participants.id
	RoomID    int64     `json:"-"`          // participants.room_id
	Name      string    `json:"name"`       // participants.name
	SessionID string    `json:"session_id"` // participants.session_id
	JoinedAt  time.Time `json:"-"`          // participants.joined_at
}
