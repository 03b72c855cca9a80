package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/umans-tech/cinematch-backend/internal/model"
	"github.com/umans-tech/cinematch-backend/internal/repository"
)

// RoomHandler binds room creation, lookup and joining to HTTP.  Room
// mutations run inside a single transaction per request so the
// capacity check and the insert cannot be separated by a concurrent
// join; the storage-level unique constraints are the backstop.
type RoomHandler struct {
	RoomRepo        *repository.RoomRepo
	ParticipantRepo *repository.ParticipantRepo
}

// NewRoomHandler constructs a new RoomHandler with the provided
// repositories. All dependencies must be non-nil.
func NewRoomHandler(roomRepo *repository.RoomRepo, participantRepo *repository.ParticipantRepo) *RoomHandler {
	if roomRepo == nil || participantRepo == nil {
		panic("nil repository passed to NewRoomHandler")
	}
	return &RoomHandler{RoomRepo: roomRepo, ParticipantRepo: participantRepo}
}

// CreateRoom handles POST /api/v1/rooms.  It allocates a room under a
// unique 4-digit code and returns it.  Exhausting the code-collision
// retries is a capacity fault and yields 500.
func (h *RoomHandler) CreateRoom(c echo.Context) error {
	room, err := h.RoomRepo.Create(c.Request().Context())
	if err != nil {
		if errors.Is(err, repository.ErrCodeSpaceExhausted) {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not generate unique room code"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, room)
}

// GetRoom handles GET /api/v1/rooms/:code.  Lookup is by exact code
// with no is_active filtering.
func (h *RoomHandler) GetRoom(c echo.Context) error {
	room, err := h.RoomRepo.GetByCode(c.Request().Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, room)
}

// JoinRoom handles POST /api/v1/rooms/:code/join.  Joining is
// idempotent per (room, session): rejoining with the same cookie
// returns the existing participant.  A third distinct session is
// rejected with 400 before any row is written.
func (h *RoomHandler) JoinRoom(c echo.Context) error {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	ctx := c.Request().Context()
	room, err := h.RoomRepo.GetByCode(ctx, c.Param("code"))
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	sid := sessionID(c)

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

	// Already joined with this session: return the existing row.
	existing, err := h.ParticipantRepo.GetByRoomAndSessionTx(ctx, tx, room.ID, sid)
	if err == nil {
		committed = true
		if err := tx.Commit(); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		return c.JSON(http.StatusOK, existing)
	}
	if !errors.Is(err, repository.ErrNotParticipant) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	count, err := h.ParticipantRepo.CountByRoomTx(ctx, tx, room.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if count >= 2 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room is full"})
	}

	participant := &model.Participant{RoomID: room.ID, Name: body.Name, SessionID: sid}
	if err := h.ParticipantRepo.CreateTx(ctx, tx, participant); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	committed = true
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, participant)
}
