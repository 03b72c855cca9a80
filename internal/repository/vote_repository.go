package repository

import (
	"context"
	"database/sql"

	"github.com/umans-tech/cinematch-backend/internal/model"
)

// VoteRepo provides persistence for votes and the match aggregation.
// At most one vote exists per (room, participant, movie); UpsertTx
// overwrites in place and the unique constraint on that triple is the
// backstop against concurrent duplicate inserts.
type VoteRepo struct {
	db *sql.DB
}

// NewVoteRepo returns a new VoteRepo bound to the given database.
func NewVoteRepo(db *sql.DB) *VoteRepo { return &VoteRepo{db: db} }

// UpsertTx records a participant's vote on a movie within a room.  An
// existing vote for the same triple has its liked value overwritten;
// otherwise a new row is inserted.  Either way the persisted row is
// returned.  The caller must commit or rollback the transaction.
func (r *VoteRepo) UpsertTx(ctx context.Context, tx *sql.Tx, roomID, participantID, movieID int64, liked bool) (*model.Vote, error) {
	var id int64
	const find = `SELECT id FROM votes WHERE room_id = ? AND participant_id = ? AND movie_id = ?`
	err := tx.QueryRowContext(ctx, find, roomID, participantID, movieID).Scan(&id)
	switch {
	case err == sql.ErrNoRows:
		const ins = `INSERT INTO votes (room_id, movie_id, participant_id, liked) VALUES (?, ?, ?, ?)`
		res, err := tx.ExecContext(ctx, ins, roomID, movieID, participantID, liked)
		if err != nil {
			return nil, err
		}
		if id, err = res.LastInsertId(); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		const upd = `UPDATE votes SET liked = ? WHERE id = ?`
		if _, err := tx.ExecContext(ctx, upd, liked, id); err != nil {
			return nil, err
		}
	}

	const sel = `SELECT id, room_id, movie_id, participant_id, liked, created_at FROM votes WHERE id = ?`
	var v model.Vote
	err = tx.QueryRowContext(ctx, sel, id).Scan(&v.ID, &v.RoomID, &v.MovieID, &v.ParticipantID, &v.Liked, &v.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// MatchedMovies returns the movies liked by every current participant
// of a room, ordered by movie id.  A single grouped aggregation over
// the room's liked votes replaces the per-movie query loop: only room
// participants can vote in a room, so a distinct liked-voter count
// equal to the participant count means everyone liked the movie.
func (r *VoteRepo) MatchedMovies(ctx context.Context, roomID int64, participantCount int) ([]model.Movie, error) {
	const q = `SELECT m.id, m.title, m.year, m.genre, m.poster_url, m.description
		FROM movies m
		JOIN votes v ON v.movie_id = m.id
		WHERE v.room_id = ? AND v.liked = 1
		GROUP BY m.id, m.title, m.year, m.genre, m.poster_url, m.description
		HAVING COUNT(DISTINCT v.participant_id) = ?
		ORDER BY m.id`
	rows, err := r.db.QueryContext(ctx, q, roomID, participantCount)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Movie{}
	for rows.Next() {
		m, err := scanMovie(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// LikedVoterCount returns how many distinct participants of a room have
// a liked vote for the given movie.  Used after a vote commits to
// detect that the movie just became a match.
func (r *VoteRepo) LikedVoterCount(ctx context.Context, roomID, movieID int64) (int, error) {
	const q = `SELECT COUNT(DISTINCT participant_id) FROM votes WHERE room_id = ? AND movie_id = ? AND liked = 1`
	var n int
	err := r.db.QueryRowContext(ctx, q, roomID, movieID).Scan(&n)
	return n, err
}
