// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the request, response, and domain types shared by
the Ballot Box API.

# Domain Types

  - User: a voter or administrator record (the credential hash never
    appears here; it stays inside the storage layer)
  - Ballot: one voter's choice for one position
  - Slate: the candidate list for a contested position
  - SessionStatus: whether the voting window is open and when it closes
  - Tally: position -> candidate -> count, derived from ballots

# Wire Conventions

End times and cast timestamps are Unix milliseconds (JSON numbers).
SessionStatus.EndTime is null whenever Active is false.

Error responses use a stable machine-checkable code in the "error" field
plus a human-readable "message"; see package apperr for the code set.
*/
package models
