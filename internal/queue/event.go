// Package queue defines message payloads exchanged over the message broker.
package queue

// MatchFoundEvent is published when a cast vote turns a movie into a
// unanimous match for its room.  It carries enough information for
// downstream consumers to log, notify or trigger analytics without
// querying the primary database.  Clients still learn about matches by
// polling the matches endpoint; this event is not a client push channel.
type MatchFoundEvent struct {
	RoomID       int64    `json:"room_id"`
	RoomCode     string   `json:"room_code"`
	MovieID      int64    `json:"movie_id"`
	MovieTitle   string   `json:"movie_title"`
	Participants []string `json:"participants"`
	MatchedAt    string   `json:"matched_at"`
}
