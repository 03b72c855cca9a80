package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/umans-tech/cinematch-backend/internal/model"
	"github.com/umans-tech/cinematch-backend/internal/queue"
	"github.com/umans-tech/cinematch-backend/internal/repository"
)

// VoteHandler binds vote casting and match computation to HTTP.  Votes
// are idempotent per (room, participant, movie): the last vote wins.
//
// Publish, when set, is invoked best-effort after a committed liked
// vote completes a unanimous match; failures are ignored so broker
// outages never fail the vote itself.
type VoteHandler struct {
	RoomRepo        *repository.RoomRepo
	ParticipantRepo *repository.ParticipantRepo
	VoteRepo        *repository.VoteRepo
	MovieRepo       *repository.MovieRepo
	Publish         func(ctx context.Context, event queue.MatchFoundEvent) error
}

// NewVoteHandler constructs a new VoteHandler with the provided
// repositories. All repository dependencies must be non-nil; publish
// may be nil to disable match events.
func NewVoteHandler(roomRepo *repository.RoomRepo, participantRepo *repository.ParticipantRepo, voteRepo *repository.VoteRepo, movieRepo *repository.MovieRepo, publish func(ctx context.Context, event queue.MatchFoundEvent) error) *VoteHandler {
	if roomRepo == nil || participantRepo == nil || voteRepo == nil || movieRepo == nil {
		panic("nil repository passed to NewVoteHandler")
	}
	return &VoteHandler{
		RoomRepo:        roomRepo,
		ParticipantRepo: participantRepo,
		VoteRepo:        voteRepo,
		MovieRepo:       movieRepo,
		Publish:         publish,
	}
}

// CastVote handles POST /api/v1/votes?code=.  The caller must already
// be a participant of the room; a session with no matching participant
// is rejected with 403 and no cookie is minted for it.
func (h *VoteHandler) CastVote(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "code is required"})
	}
	var body struct {
		MovieID int64 `json:"movie_id"`
		Liked   bool  `json:"liked"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.MovieID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "movie_id is required"})
	}

	ctx := c.Request().Context()
	room, err := h.RoomRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	tx, err := h.RoomRepo.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	participant, err := h.ParticipantRepo.GetByRoomAndSessionTx(ctx, tx, room.ID, requestSessionID(c))
	if err != nil {
		if errors.Is(err, repository.ErrNotParticipant) {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "not a participant in this room"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	vote, err := h.VoteRepo.UpsertTx(ctx, tx, room.ID, participant.ID, body.MovieID, body.Liked)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	committed = true
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	if vote.Liked && h.Publish != nil {
		h.publishIfMatched(ctx, room, vote.MovieID)
	}
	return c.JSON(http.StatusOK, vote)
}

// publishIfMatched emits a MatchFoundEvent when the just-committed like
// made the movie unanimous.  All errors are swallowed: match events are
// an observability side channel, never part of the request contract.
func (h *VoteHandler) publishIfMatched(ctx context.Context, room *model.Room, movieID int64) {
	participants, err := h.ParticipantRepo.ListByRoom(ctx, room.ID)
	if err != nil || len(participants) < 2 {
		return
	}
	liked, err := h.VoteRepo.LikedVoterCount(ctx, room.ID, movieID)
	if err != nil || liked != len(participants) {
		return
	}
	movie, err := h.MovieRepo.GetByID(ctx, movieID)
	if err != nil {
		return
	}
	names := make([]string, 0, len(participants))
	for _, p := range participants {
		names = append(names, p.Name)
	}
	_ = h.Publish(ctx, queue.MatchFoundEvent{
		RoomID:       room.ID,
		RoomCode:     room.Code,
		MovieID:      movie.ID,
		MovieTitle:   movie.Title,
		Participants: names,
		MatchedAt:    time.Now().UTC().Format(time.RFC3339),
	})
}

// GetMatches handles GET /api/v1/votes/matches?code=.  A match needs at
// least two voters, so rooms with fewer participants always yield an
// empty list regardless of votes.
func (h *VoteHandler) GetMatches(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "code is required"})
	}
	ctx := c.Request().Context()
	room, err := h.RoomRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	participants, err := h.ParticipantRepo.ListByRoom(ctx, room.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	matches := []model.Match{}
	if len(participants) < 2 {
		return c.JSON(http.StatusOK, matches)
	}

	names := make([]string, 0, len(participants))
	for _, p := range participants {
		names = append(names, p.Name)
	}
	movies, err := h.VoteRepo.MatchedMovies(ctx, room.ID, len(participants))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	for _, m := range movies {
		matches = append(matches, model.Match{Movie: m, Participants: names})
	}
	return c.JSON(http.StatusOK, matches)
}
