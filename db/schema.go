// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, databaseType string) error {
	var schema string
	switch databaseType {
	case "postgres":
		schema = schemaPostgres
	case "sqlite":
		schema = schemaSQLite
	default:
		return fmt.Errorf("unsupported database type %q", databaseType)
	}

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Timestamps are stored as Unix milliseconds (BIGINT/INTEGER) so both
// dialects scan into int64 without driver-specific time handling.

const schemaPostgres = `
-- Users (voters and administrators)
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    identifier TEXT NOT NULL UNIQUE,
    role TEXT NOT NULL DEFAULT 'voter' CHECK (role IN ('voter', 'admin')),
    secret_hash TEXT NOT NULL,
    created_at_ms BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_users_identifier ON users(identifier);

-- Candidate slates (read-only reference data)
CREATE TABLE IF NOT EXISTS candidate_slates (
    position TEXT PRIMARY KEY,
    candidates TEXT NOT NULL
);

-- Ballots: the UNIQUE constraint is the atomicity boundary for
-- duplicate-vote detection
CREATE TABLE IF NOT EXISTS ballots (
    id TEXT PRIMARY KEY,
    voter_id TEXT NOT NULL,
    position TEXT NOT NULL,
    candidate TEXT NOT NULL,
    cast_at_ms BIGINT NOT NULL,
    UNIQUE (voter_id, position)
);

CREATE INDEX IF NOT EXISTS idx_ballots_position ON ballots(position);

-- Session state: single durable row, id is always 1
CREATE TABLE IF NOT EXISTS session_state (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    active BOOLEAN NOT NULL DEFAULT FALSE,
    end_time_ms BIGINT
);
`

const schemaSQLite = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    identifier TEXT NOT NULL UNIQUE,
    role TEXT NOT NULL DEFAULT 'voter' CHECK (role IN ('voter', 'admin')),
    secret_hash TEXT NOT NULL,
    created_at_ms INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_users_identifier ON users(identifier);

CREATE TABLE IF NOT EXISTS candidate_slates (
    position TEXT PRIMARY KEY,
    candidates TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS ballots (
    id TEXT PRIMARY KEY,
    voter_id TEXT NOT NULL,
    position TEXT NOT NULL,
    candidate TEXT NOT NULL,
    cast_at_ms INTEGER NOT NULL,
    UNIQUE (voter_id, position)
);

CREATE INDEX IF NOT EXISTS idx_ballots_position ON ballots(position);

CREATE TABLE IF NOT EXISTS session_state (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    active INTEGER NOT NULL DEFAULT 0,
    end_time_ms INTEGER
);
`
