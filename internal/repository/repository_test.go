package repository

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/umans-tech/cinematch-backend/internal/model"
)

// newTestDB opens a throwaway SQLite database with the application
// schema applied. Foreign keys are enabled through the DSN so cascade
// behavior matches production.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_foreign_keys=on", path))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	// Single connection keeps SQLite predictable under test.
	db.SetMaxOpenConns(1)

	require.NoError(t, InitSchema(db, DialectSQLite))
	return db
}

func mustCount(t *testing.T, db *sql.DB, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(query, args...).Scan(&n))
	return n
}

// addParticipant joins a participant through the repository inside its
// own transaction, the way the join handler does.
func addParticipant(t *testing.T, db *sql.DB, roomID int64, name, sessionID string) *model.Participant {
	t.Helper()
	ctx := context.Background()
	repo := NewParticipantRepo(db)

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	p := &model.Participant{RoomID: roomID, Name: name, SessionID: sessionID}
	require.NoError(t, repo.CreateTx(ctx, tx, p))
	require.NoError(t, tx.Commit())
	return p
}

// castVote records a vote through the repository inside its own
// transaction, the way the vote handler does.
func castVote(t *testing.T, db *sql.DB, roomID, participantID, movieID int64, liked bool) *model.Vote {
	t.Helper()
	ctx := context.Background()
	repo := NewVoteRepo(db)

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	v, err := repo.UpsertTx(ctx, tx, roomID, participantID, movieID, liked)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	return v
}
