package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/umans-tech/cinematch-backend/internal/repository"
)

// MovieHandler exposes the shared movie catalog.  Every listing first
// validates the room code and then triggers the lazy catalog seed, so
// the first request from any room populates the movies table.
type MovieHandler struct {
	RoomRepo  *repository.RoomRepo
	MovieRepo *repository.MovieRepo
}

// NewMovieHandler constructs a new MovieHandler with the provided
// repositories. All dependencies must be non-nil.
func NewMovieHandler(roomRepo *repository.RoomRepo, movieRepo *repository.MovieRepo) *MovieHandler {
	if roomRepo == nil || movieRepo == nil {
		panic("nil repository passed to NewMovieHandler")
	}
	return &MovieHandler{RoomRepo: roomRepo, MovieRepo: movieRepo}
}

// ListMovies handles GET /api/v1/movies?code=.  The catalog is global:
// every room sees the same list, ordered by id.
func (h *MovieHandler) ListMovies(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "code is required"})
	}
	ctx := c.Request().Context()
	if _, err := h.RoomRepo.GetByCode(ctx, code); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if err := h.MovieRepo.SeedIfEmpty(ctx); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	movies, err := h.MovieRepo.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, movies)
}

// ListUnvoted handles GET /api/v1/movies/unvoted?code=&participant_id=.
// It returns the movies the participant has not voted on yet, in every
// room: votes are filtered by participant id alone.
func (h *MovieHandler) ListUnvoted(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "code is required"})
	}
	participantID, err := strconv.ParseInt(c.QueryParam("participant_id"), 10, 64)
	if err != nil || participantID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid participant_id"})
	}
	ctx := c.Request().Context()
	if _, err := h.RoomRepo.GetByCode(ctx, code); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if err := h.MovieRepo.SeedIfEmpty(ctx); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	movies, err := h.MovieRepo.ListUnvoted(ctx, participantID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, movies)
}
