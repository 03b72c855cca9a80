package handler_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/umans-tech/cinematch-backend/internal/handler"
	"github.com/umans-tech/cinematch-backend/internal/queue"
	"github.com/umans-tech/cinematch-backend/internal/repository"
	"github.com/umans-tech/cinematch-backend/internal/router"
)

// testServer bundles the wired Echo instance with the handles the tests
// need to seed state and observe side effects.
type testServer struct {
	e         *echo.Echo
	db        *sql.DB
	published []queue.MatchFoundEvent
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_foreign_keys=on", path))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	db.SetMaxOpenConns(1)
	require.NoError(t, repository.InitSchema(db, repository.DialectSQLite))

	roomRepo := repository.NewRoomRepo(db)
	participantRepo := repository.NewParticipantRepo(db)
	movieRepo := repository.NewMovieRepo(db)
	voteRepo := repository.NewVoteRepo(db)

	ts := &testServer{db: db}
	publish := func(_ context.Context, ev queue.MatchFoundEvent) error {
		ts.published = append(ts.published, ev)
		return nil
	}

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAPI(e,
		handler.NewRoomHandler(roomRepo, participantRepo),
		handler.NewMovieHandler(roomRepo, movieRepo),
		handler.NewVoteHandler(roomRepo, participantRepo, voteRepo, movieRepo, publish),
	)
	ts.e = e
	return ts
}

// do performs a request against the in-memory server.  A non-empty
// session attaches the session cookie; a non-empty body is sent as JSON.
func (ts *testServer) do(t *testing.T, method, target, session, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if session != "" {
		req.AddCookie(&http.Cookie{Name: "session_id", Value: session})
	}
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

// createRoom creates a room over HTTP and returns its join code.
func (ts *testServer) createRoom(t *testing.T) string {
	t.Helper()
	rec := ts.do(t, http.MethodPost, "/api/v1/rooms", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]any](t, rec)
	return body["code"].(string)
}

// join joins a room under the given session and returns the
// participant's id.
func (ts *testServer) join(t *testing.T, code, session, name string) int64 {
	t.Helper()
	rec := ts.do(t, http.MethodPost, "/api/v1/rooms/"+code+"/join", session, fmt.Sprintf(`{"name":%q}`, name))
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]any](t, rec)
	return int64(body["id"].(float64))
}

func mustCount(t *testing.T, db *sql.DB, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(query, args...).Scan(&n))
	return n
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
