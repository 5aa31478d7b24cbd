// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Ballot Box API server.

Ballot Box runs a time-boxed election: an administrator opens a voting
window of fixed duration, eligible voters cast at most one ballot per
contested position while the window is open, and live per-candidate
tallies are pushed to all connected observers.

# Starting the Server

The server reads configuration from environment variables (optionally a
.env file) or CLI flags:

	go run . -p 5000 -t sqlite -d ballotbox.db

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

# Configuration

  - PORT (-p): server port (default: 5000)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): connection string, or sqlite file path
  - STRICT_SLATE (-strict-slate): validate candidates against the slate
    (default: true)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - session: voting-window state machine with lazy expiry
  - ledger: ballot ledger and tally engine
  - notify: in-process event bus feeding the SSE stream
  - handlers: HTTP request handlers
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: request/response types
  - apperr: typed operation failures with stable reason codes
  - auth: credential generation and bcrypt verification
  - db: connection and schema creation
  - cliparse: configuration parsing

Correctness of the voting window never depends on in-process timers: the
durable session record plus the lazy-expiry read path survive restarts,
and a one-second background ticker only makes the close visible to
observers promptly.

See package documentation for each component.
*/
package main
