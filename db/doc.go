// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection and schema creation.

# Opening a Connection

Open selects the driver from the configured database type:

	conn, err := db.Open(cfg) // "sqlite" or "postgres"

The sqlite DSN enables WAL mode, a 5 second busy timeout, and foreign
keys.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - users: voter and administrator records (bcrypt secret hash only)
  - candidate_slates: read-only candidate list per position
  - ballots: one ballot per voter per position, enforced by
    UNIQUE(voter_id, position)
  - session_state: the single durable voting-window record (id = 1)

# Conventions

All timestamps are Unix milliseconds in BIGINT/INTEGER columns so both
dialects scan into int64. Queries throughout the codebase use $1-style
placeholders in ascending order, which both lib/pq and modernc sqlite
accept.
*/
package db
