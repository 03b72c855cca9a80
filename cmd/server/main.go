package main

import (
	"database/sql"
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/umans-tech/cinematch-backend/internal/config"
	"github.com/umans-tech/cinematch-backend/internal/database"
	"github.com/umans-tech/cinematch-backend/internal/handler"
	"github.com/umans-tech/cinematch-backend/internal/middleware"
	"github.com/umans-tech/cinematch-backend/internal/repository"
	"github.com/umans-tech/cinematch-backend/internal/router"
	queue_publisher "github.com/umans-tech/cinematch-backend/internal/service"
)

func main() {
	cfg := config.Load()

	var db *sql.DB
	var err error
	var dialect repository.Dialect
	switch cfg.DBDriver {
	case "mysql":
		db, err = database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		dialect = repository.DialectMySQL
	default:
		db, err = database.OpenSQLite(cfg.DBPath)
		dialect = repository.DialectSQLite
	}
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := repository.InitSchema(db, dialect); err != nil {
		log.Fatalf("database: %v", err)
	}

	roomRepo := repository.NewRoomRepo(db)
	participantRepo := repository.NewParticipantRepo(db)
	movieRepo := repository.NewMovieRepo(db)
	voteRepo := repository.NewVoteRepo(db)

	rooms := handler.NewRoomHandler(roomRepo, participantRepo)
	movies := handler.NewMovieHandler(roomRepo, movieRepo)
	votes := handler.NewVoteHandler(roomRepo, participantRepo, voteRepo, movieRepo, queue_publisher.PublishMatchFound)

	e := echo.New()
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true, // the session cookie must survive cross-origin calls
	}))

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, rate limiting disabled")
	}
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterAPI(e, rooms, movies, votes, limiter)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, db=%s)", addr, cfg.Env, cfg.DBDriver)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
