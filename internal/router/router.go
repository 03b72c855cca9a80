// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/umans-tech/cinematch-backend/internal/handler"
)

// RegisterRoutes registers routes that live outside the versioned API
// prefix. Currently it exposes only the liveness check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.Health)
}

// RegisterAPI registers the versioned API surface under /api/v1.  The
// optional middleware (rate limiting) applies to the whole group but
// not to the health check.
func RegisterAPI(e *echo.Echo, rooms *handler.RoomHandler, movies *handler.MovieHandler, votes *handler.VoteHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/api/v1", mw...)

	g.POST("/rooms", rooms.CreateRoom)
	g.GET("/rooms/:code", rooms.GetRoom)
	g.POST("/rooms/:code/join", rooms.JoinRoom)

	g.GET("/movies", movies.ListMovies)
	g.GET("/movies/unvoted", movies.ListUnvoted)

	g.POST("/votes", votes.CastVote)
	g.GET("/votes/matches", votes.GetMatches)
}
