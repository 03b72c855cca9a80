package repository

import (
	"context"
	"database/sql"

	"github.com/umans-tech/cinematch-backend/internal/model"
)

// ParticipantRepo provides persistence for room participants.  The join
// flow spans several statements (existence check, capacity count,
// insert), so the mutating methods take a transaction opened by the
// caller; the unique constraint on participants.session_id is the
// backstop against concurrent duplicate joins.
type ParticipantRepo struct {
	db *sql.DB
}

// NewParticipantRepo returns a new ParticipantRepo bound to the given database.
func NewParticipantRepo(db *sql.DB) *ParticipantRepo { return &ParticipantRepo{db: db} }

const participantCols = `id, room_id, name, session_id, joined_at`

func scanParticipant(row *sql.Row) (*model.Participant, error) {
	var p model.Participant
	err := row.Scan(&p.ID, &p.RoomID, &p.Name, &p.SessionID, &p.JoinedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotParticipant
		}
		return nil, err
	}
	return &p, nil
}

// GetByRoomAndSessionTx resolves the participant registered in a room
// under a session id.  It returns ErrNotParticipant when the session
// does not belong to the room, which callers use both for idempotent
// rejoin (create instead) and for rejecting votes (403).
func (r *ParticipantRepo) GetByRoomAndSessionTx(ctx context.Context, tx *sql.Tx, roomID int64, sessionID string) (*model.Participant, error) {
	const q = `SELECT ` + participantCols + ` FROM participants WHERE room_id = ? AND session_id = ?`
	return scanParticipant(tx.QueryRowContext(ctx, q, roomID, sessionID))
}

// CountByRoomTx returns the number of participants currently in a room.
func (r *ParticipantRepo) CountByRoomTx(ctx context.Context, tx *sql.Tx, roomID int64) (int, error) {
	var n int
	err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM participants WHERE room_id = ?`, roomID).Scan(&n)
	return n, err
}

// CreateTx inserts a new participant and populates the generated id and
// join timestamp on the provided record.  The caller must commit or
// rollback the transaction.
func (r *ParticipantRepo) CreateTx(ctx context.Context, tx *sql.Tx, p *model.Participant) error {
	const q = `INSERT INTO participants (room_id, name, session_id) VALUES (?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, p.RoomID, p.Name, p.SessionID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	// Query back the full row to populate the timestamp default.
	const sel = `SELECT ` + participantCols + ` FROM participants WHERE id = ?`
	created, err := scanParticipant(tx.QueryRowContext(ctx, sel, id))
	if err != nil {
		return err
	}
	*p = *created
	return nil
}

// ListByRoom returns all participants of a room in insertion order.
func (r *ParticipantRepo) ListByRoom(ctx context.Context, roomID int64) ([]model.Participant, error) {
	const q = `SELECT ` + participantCols + ` FROM participants WHERE room_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Participant{}
	for rows.Next() {
		var p model.Participant
		if err := rows.Scan(&p.ID, &p.RoomID, &p.Name, &p.SessionID, &p.JoinedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
