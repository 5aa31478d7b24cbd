// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Ballot Box API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, sessions, ledger, hub)

# Endpoints

Health:

	GET /health

Authentication:

	POST /login - Exchange identifier + secret for the user record

Voting (voters):

	GET  /candidates - Candidate slates per position
	GET  /vote-check - Has this voter voted for this position?
	POST /vote       - Cast a ballot
	GET  /results    - Live tallies

Session lifecycle (admin):

	POST /session/start  - Open a voting window
	POST /session/stop   - Close it early
	GET  /session/status - {active, endTime|null}

Live updates:

	GET /events - Server-Sent Events stream

User management (admin):

	GET    /users      - List users
	POST   /users      - Create user (generated secret returned once)
	DELETE /users/{id} - Delete user
	DELETE /vote/{id}  - Remove a ballot (correction)

# Handler Initialization

The router creates handler instances with dependency injection:

	userHandler := handlers.NewUserHandler(db)
	sessionHandler := handlers.NewSessionHandler(sessions)
	votingHandler := handlers.NewVotingHandler(ledger)
	resultsHandler := handlers.NewResultsHandler(ledger)
	eventsHandler := handlers.NewEventsHandler(hub, sessions)

All routes except the SSE stream are wrapped with request logging.
*/
package router
