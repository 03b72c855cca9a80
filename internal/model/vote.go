package model

import "time"

// Vote records a participant's like/dislike for a movie within a room.
// At most one vote exists per (room, participant, movie); casting again
// overwrites Liked in place, so the last vote wins and no history is
// retained.
type Vote struct {
	ID            int64     `json:"id"`             // votes.id
	RoomID        int64     `json:"-"`              // votes.room_id
	MovieID       int64     `json:"movie_id"`       // votes.movie_id
	ParticipantID int64     `json:"participant_id"` // votes.participant_id
	Liked         bool      `json:"liked"`          // votes.liked
	CreatedAt     time.Time `json:"-"`              // votes.created_at
}
