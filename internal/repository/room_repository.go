package repository

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"

	"github.com/umans-tech/cinematch-backend/internal/model"
)

// roomCodeAttempts bounds the collision-retry loop in Create.  With a
// 10000-code space the loop only exhausts when the service is near
// capacity, which is surfaced as ErrCodeSpaceExhausted.
const roomCodeAttempts = 10

// RoomRepo provides persistence for rooms.  Code uniqueness is enforced
// by a unique constraint on rooms.code; the retry loop in Create is the
// UX layer on top of that backstop.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo returns a new RoomRepo bound to the given database.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

// DB exposes the underlying handle so handlers can open transactions
// spanning several repositories.
func (r *RoomRepo) DB() *sql.DB { return r.db }

// generateRoomCode draws a uniform 4-digit code, leading zeros kept, so
// codes stay human-typeable.
func generateRoomCode() string {
	return fmt.Sprintf("%04d", rand.Intn(10000))
}

// Create persists a new room under a freshly generated code.  A
// uniqueness violation discards the attempt and retries with a new
// code, up to roomCodeAttempts times; exhaustion returns
// ErrCodeSpaceExhausted.  Each attempt runs in its own transaction so a
// failed insert leaves nothing behind.
func (r *RoomRepo) Create(ctx context.Context) (*model.Room, error) {
	for attempt := 0; attempt < roomCodeAttempts; attempt++ {
		code := generateRoomCode()
		tx, err := r.db.BeginTx(ctx, nil)
		if err != nil {
			return nil, err
		}
		res, err := tx.ExecContext(ctx, `INSERT INTO rooms (code) VALUES (?)`, code)
		if err != nil {
			_ = tx.Rollback()
			if isDuplicate(err) {
				continue
			}
			return nil, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			_ = tx.Rollback()
			return nil, err
		}
		room := &model.Room{ID: id}
		const sel = `SELECT id, code, created_at, is_active FROM rooms WHERE id = ?`
		if err := tx.QueryRowContext(ctx, sel, id).Scan(&room.ID, &room.Code, &room.CreatedAt, &room.IsActive); err != nil {
			_ = tx.Rollback()
			return nil, err
		}
		if err := tx.Commit(); err != nil {
			return nil, err
		}
		return room, nil
	}
	return nil, ErrCodeSpaceExhausted
}

// GetByCode looks a room up by its exact join code.  No filtering on
// is_active is applied; inactive rooms resolve like active ones.
func (r *RoomRepo) GetByCode(ctx context.Context, code string) (*model.Room, error) {
	const q = `SELECT id, code, created_at, is_active FROM rooms WHERE code = ?`
	var room model.Room
	err := r.db.QueryRowContext(ctx, q, code).Scan(&room.ID, &room.Code, &room.CreatedAt, &room.IsActive)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}
