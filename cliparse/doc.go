// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5000)
  - DatabaseURL: PostgreSQL connection string or sqlite file path
  - DatabaseType: "sqlite" (default) or "postgres"
  - StrictSlate: validate cast candidates against the slate (default: true)

# CLI Flags

	-p             Server port
	-d             Database URL or sqlite file path
	-t             Database type (sqlite or postgres)
	-strict-slate  Validate candidates against the slate

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	STRICT_SLATE  → -strict-slate

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if:

  - DATABASE_TYPE is neither sqlite nor postgres
  - DATABASE_URL is missing for the postgres type

The sqlite type defaults to a ballotbox.db file in the working directory.
*/
package cliparse
