// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package apperr defines the typed failures every Ballot Box operation can
return.

Each failure carries a stable reason code (the API contract) and a
human-readable message. Core packages return sentinel values:

	if errors.Is(err, apperr.ErrDuplicateVote) { ... }

Transport code maps a failure to its HTTP status and envelope:

	code := apperr.CodeOf(err)
	status := apperr.HTTPStatus(code)

Storage failures wrap the driver error for logging but serialize as an
opaque storage_failure to clients.
*/
package apperr
