package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVoteRepoUpsertOverwritesInPlace(t *testing.T) {
	db := newTestDB(t)
	roomRepo := NewRoomRepo(db)
	movieRepo := NewMovieRepo(db)
	ctx := context.Background()

	require.NoError(t, movieRepo.SeedIfEmpty(ctx))
	room, err := roomRepo.Create(ctx)
	require.NoError(t, err)
	alice := addParticipant(t, db, room.ID, "Alice", "session-a")

	first := castVote(t, db, room.ID, alice.ID, 5, true)
	require.True(t, first.Liked)
	require.Equal(t, int64(5), first.MovieID)
	require.Equal(t, alice.ID, first.ParticipantID)

	// Repeat vote on the same movie flips liked without a second row.
	second := castVote(t, db, room.ID, alice.ID, 5, false)
	require.Equal(t, first.ID, second.ID)
	require.False(t, second.Liked)
	require.Equal(t, 1, mustCount(t, db,
		`SELECT COUNT(*) FROM votes WHERE room_id = ? AND participant_id = ? AND movie_id = ?`,
		room.ID, alice.ID, 5))

	// Votes on other movies are separate rows.
	castVote(t, db, room.ID, alice.ID, 6, true)
	require.Equal(t, 2, mustCount(t, db, `SELECT COUNT(*) FROM votes`))
}

func TestVoteRepoMatchedMovies(t *testing.T) {
	db := newTestDB(t)
	roomRepo := NewRoomRepo(db)
	movieRepo := NewMovieRepo(db)
	voteRepo := NewVoteRepo(db)
	ctx := context.Background()

	require.NoError(t, movieRepo.SeedIfEmpty(ctx))
	room, err := roomRepo.Create(ctx)
	require.NoError(t, err)
	alice := addParticipant(t, db, room.ID, "Alice", "session-a")
	bob := addParticipant(t, db, room.ID, "Bob", "session-b")

	castVote(t, db, room.ID, alice.ID, 5, true)
	castVote(t, db, room.ID, alice.ID, 7, true)
	castVote(t, db, room.ID, bob.ID, 5, true)
	castVote(t, db, room.ID, bob.ID, 7, false)

	movies, err := voteRepo.MatchedMovies(ctx, room.ID, 2)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	require.Equal(t, int64(5), movies[0].ID)

	// Overwriting the like with a dislike removes the match.
	castVote(t, db, room.ID, bob.ID, 5, false)
	movies, err = voteRepo.MatchedMovies(ctx, room.ID, 2)
	require.NoError(t, err)
	require.Empty(t, movies)
}

func TestVoteRepoMatchedMoviesScopedToRoom(t *testing.T) {
	db := newTestDB(t)
	roomRepo := NewRoomRepo(db)
	movieRepo := NewMovieRepo(db)
	voteRepo := NewVoteRepo(db)
	ctx := context.Background()

	require.NoError(t, movieRepo.SeedIfEmpty(ctx))
	r1, err := roomRepo.Create(ctx)
	require.NoError(t, err)
	r2, err := roomRepo.Create(ctx)
	require.NoError(t, err)

	a1 := addParticipant(t, db, r1.ID, "Alice", "session-a")
	b1 := addParticipant(t, db, r1.ID, "Bob", "session-b")
	c2 := addParticipant(t, db, r2.ID, "Carol", "session-c")
	d2 := addParticipant(t, db, r2.ID, "Dave", "session-d")

	castVote(t, db, r1.ID, a1.ID, 5, true)
	castVote(t, db, r1.ID, b1.ID, 5, true)
	castVote(t, db, r2.ID, c2.ID, 5, true)
	castVote(t, db, r2.ID, d2.ID, 9, true)

	movies, err := voteRepo.MatchedMovies(ctx, r1.ID, 2)
	require.NoError(t, err)
	require.Len(t, movies, 1)

	// Room 2 never agreed on anything; room 1's likes do not leak in.
	movies, err = voteRepo.MatchedMovies(ctx, r2.ID, 2)
	require.NoError(t, err)
	require.Empty(t, movies)
}

func TestVoteRepoLikedVoterCount(t *testing.T) {
	db := newTestDB(t)
	roomRepo := NewRoomRepo(db)
	movieRepo := NewMovieRepo(db)
	voteRepo := NewVoteRepo(db)
	ctx := context.Background()

	require.NoError(t, movieRepo.SeedIfEmpty(ctx))
	room, err := roomRepo.Create(ctx)
	require.NoError(t, err)
	alice := addParticipant(t, db, room.ID, "Alice", "session-a")
	bob := addParticipant(t, db, room.ID, "Bob", "session-b")

	n, err := voteRepo.LikedVoterCount(ctx, room.ID, 5)
	require.NoError(t, err)
	require.Zero(t, n)

	castVote(t, db, room.ID, alice.ID, 5, true)
	castVote(t, db, room.ID, bob.ID, 5, true)
	n, err = voteRepo.LikedVoterCount(ctx, room.ID, 5)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}
