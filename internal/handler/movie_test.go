package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/umans-tech/cinematch-backend/internal/catalog"
)

func TestListMoviesSeedsCatalogOnce(t *testing.T) {
	ts := newTestServer(t)
	code := ts.createRoom(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/movies?code="+code, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	movies := decode[[]map[string]any](t, rec)
	require.Len(t, movies, len(catalog.Movies))
	require.Equal(t, catalog.Movies[0].Title, movies[0]["title"])

	// Repeated listing must not re-seed.
	rec = ts.do(t, http.MethodGet, "/api/v1/movies?code="+code, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	movies = decode[[]map[string]any](t, rec)
	require.Len(t, movies, len(catalog.Movies))
	require.Equal(t, len(catalog.Movies), mustCount(t, ts.db, `SELECT COUNT(*) FROM movies`))
}

func TestListMoviesRequiresKnownRoom(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/movies?code=zzzz", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/movies", "", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListUnvotedMovies(t *testing.T) {
	ts := newTestServer(t)
	code := ts.createRoom(t)
	ts.do(t, http.MethodGet, "/api/v1/movies?code="+code, "", "") // seed

	aliceID := ts.join(t, code, "session-a", "Alice")
	for _, movieID := range []int{1, 3} {
		rec := ts.do(t, http.MethodPost, "/api/v1/votes?code="+code, "session-a",
			fmt.Sprintf(`{"movie_id":%d,"liked":true}`, movieID))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	target := fmt.Sprintf("/api/v1/movies/unvoted?code=%s&participant_id=%d", code, aliceID)
	rec := ts.do(t, http.MethodGet, target, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	movies := decode[[]map[string]any](t, rec)
	require.Len(t, movies, len(catalog.Movies)-2)
	for _, m := range movies {
		id := int(m["id"].(float64))
		require.NotContains(t, []int{1, 3}, id)
	}
}

func TestListUnvotedMoviesValidation(t *testing.T) {
	ts := newTestServer(t)
	code := ts.createRoom(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/movies/unvoted?code="+code+"&participant_id=abc", "", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/movies/unvoted?code=zzzz&participant_id=1", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}
