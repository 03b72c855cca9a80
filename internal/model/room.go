package model

import "time"

// Room is a short-lived, code-addressable group of up to two participants
// voting on the shared movie catalog.  Rooms own their participants and
// votes: deleting a room cascades to both at the storage layer.
//
// Fields:
//  ID        – primary key identifier.
//  Code      – unique 4-digit join code, leading zeros preserved.
//  CreatedAt – creation timestamp.
//  IsActive  – stored and returned but never transitioned by any
//              operation; lookups do not filter on it.
type Room struct {
	ID        int64     `json:"id"`         // rooms.id
	Code      string    `json:"code"`       // rooms.code
	CreatedAt time.Time `json:"created_at"` // rooms.created_at
	IsActive  bool      `json:"is_active"`  // rooms.is_active
}
