package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

var codePattern = regexp.MustCompile(`^[0-9]{4}$`)

func TestRoomRepoCreate(t *testing.T) {
	db := newTestDB(t)
	repo := NewRoomRepo(db)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 30; i++ {
		room, err := repo.Create(ctx)
		require.NoError(t, err)
		require.Regexp(t, codePattern, room.Code)
		require.False(t, seen[room.Code], "duplicate code %s", room.Code)
		seen[room.Code] = true
		require.True(t, room.IsActive)
		require.False(t, room.CreatedAt.IsZero())
	}
	require.Equal(t, 30, mustCount(t, db, `SELECT COUNT(*) FROM rooms`))
}

func TestRoomRepoGetByCode(t *testing.T) {
	db := newTestDB(t)
	repo := NewRoomRepo(db)
	ctx := context.Background()

	room, err := repo.Create(ctx)
	require.NoError(t, err)

	got, err := repo.GetByCode(ctx, room.Code)
	require.NoError(t, err)
	require.Equal(t, room.ID, got.ID)
	require.Equal(t, room.Code, got.Code)

	_, err = repo.GetByCode(ctx, "no such code")
	require.ErrorIs(t, err, ErrRoomNotFound)
}

func TestRoomRepoCreateRetriesOnCollision(t *testing.T) {
	db := newTestDB(t)
	repo := NewRoomRepo(db)
	ctx := context.Background()

	// Pre-occupy a slice of the code space; creation must still succeed
	// by retrying past collisions.
	for i := 0; i < 50; i++ {
		_, err := db.Exec(`INSERT INTO rooms (code) VALUES (?)`, generateRoomCode())
		if err != nil && !isDuplicate(err) {
			t.Fatalf("seed insert: %v", err)
		}
	}
	for i := 0; i < 10; i++ {
		_, err := repo.Create(ctx)
		require.NoError(t, err)
	}
}
