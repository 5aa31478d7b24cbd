// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Ballot Box API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - UserHandler: login and administrative user management
  - SessionHandler: voting-window start/stop/status
  - VotingHandler: candidate slates, vote checks, ballot casting/removal
  - ResultsHandler: live tallies
  - EventsHandler: Server-Sent Events notification stream

Handlers are thin: they parse and validate the wire shape, then call the
core packages (session, ledger) which own the real invariants. Typed
failures flow back through middleware.AppError.

# Session Lifecycle

	POST /session/start  → Start (duration in seconds; 409 already_active)
	POST /session/stop   → Stop (409 not_active)
	GET  /session/status → Status (lazy-expiry read)

# Voting Flow

	POST /login       → Login (identifier + secret)
	GET  /candidates  → Candidates
	GET  /vote-check  → VoteCheck (?voterId=&position=)
	POST /vote        → CastVote (409 session_closed / duplicate_vote)
	GET  /results     → GetResults

# Administration

	GET    /users      → ListUsers
	POST   /users      → CreateUser (returns the generated secret once)
	DELETE /users/{id} → DeleteUser
	DELETE /vote/{id}  → RemoveBallot

# Live Updates

	GET /events → Subscribe (SSE)

The stream opens with a session-status-changed snapshot, then relays
session-status-changed, session-ended, and tally-changed events.
*/
package handlers
