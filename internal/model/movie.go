package model

// Movie is reference data shared read-only across all rooms.  The table
// is populated once from the static catalog the first time any room
// requests movies and never mutated afterwards.
//
// Optional columns are pointers so that absent values serialize as JSON
// null, matching the API contract.  Genre may hold several comma-joined
// values.
type Movie struct {
	ID          int64   `json:"id"`          // movies.id
	Title       string  `json:"title"`       // movies.title
	Year        *int    `json:"year"`        // movies.year (nullable)
	Genre       *string `json:"genre"`       // movies.genre (nullable)
	PosterURL   *string `json:"poster_url"`  // movies.poster_url (nullable)
	Description *string `json:"description"` // movies.description (nullable)
}

// Match pairs a movie liked by every current participant of a room with
// the display names of those participants, in load order.
type Match struct {
	Movie        Movie    `json:"movie"`
	Participants []string `json:"participants"`
}
