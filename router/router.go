// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/ballotbox/handlers"
	"github.com/danielhkuo/ballotbox/ledger"
	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/notify"
	"github.com/danielhkuo/ballotbox/session"
)

func NewRouter(db *sql.DB, sessions *session.Controller, lgr *ledger.Ledger, hub *notify.Hub) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	userHandler := handlers.NewUserHandler(db)
	sessionHandler := handlers.NewSessionHandler(sessions)
	votingHandler := handlers.NewVotingHandler(lgr)
	resultsHandler := handlers.NewResultsHandler(lgr)
	eventsHandler := handlers.NewEventsHandler(hub, sessions)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Authentication
	mux.HandleFunc("POST /login", middleware.WithLogging(userHandler.Login))

	// Voting operations
	mux.HandleFunc("GET /candidates", middleware.WithLogging(votingHandler.Candidates))
	mux.HandleFunc("GET /vote-check", middleware.WithLogging(votingHandler.VoteCheck))
	mux.HandleFunc("POST /vote", middleware.WithLogging(votingHandler.CastVote))
	mux.HandleFunc("GET /results", middleware.WithLogging(resultsHandler.GetResults))

	// Session lifecycle (admin operations)
	mux.HandleFunc("POST /session/start", middleware.WithLogging(sessionHandler.Start))
	mux.HandleFunc("POST /session/stop", middleware.WithLogging(sessionHandler.Stop))
	mux.HandleFunc("GET /session/status", middleware.WithLogging(sessionHandler.Status))

	// Live updates (SSE; no logging wrapper, the stream is long-lived)
	mux.HandleFunc("GET /events", eventsHandler.Subscribe)

	// User management (admin operations)
	mux.HandleFunc("GET /users", middleware.WithLogging(userHandler.ListUsers))
	mux.HandleFunc("POST /users", middleware.WithLogging(userHandler.CreateUser))
	mux.HandleFunc("DELETE /users/{id}", middleware.WithLogging(userHandler.DeleteUser))
	mux.HandleFunc("DELETE /vote/{id}", middleware.WithLogging(votingHandler.RemoveBallot))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ballotbox API v1"))
	})

	return mux
}
