// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/ballotbox/apperr"
	"github.com/danielhkuo/ballotbox/models"
	"github.com/danielhkuo/ballotbox/notify"
	"github.com/danielhkuo/ballotbox/session"
)

// Ledger is the append-mostly set of cast ballots plus the tally view
// over it. At-most-one-vote-per-voter-per-position is enforced by the
// UNIQUE(voter_id, position) constraint: the insert itself is the
// atomicity boundary, there is no check-then-act window.
type Ledger struct {
	db          *sql.DB
	sessions    *session.Controller
	hub         *notify.Hub
	strictSlate bool
}

func New(db *sql.DB, sessions *session.Controller, hub *notify.Hub, strictSlate bool) *Ledger {
	return &Ledger{db: db, sessions: sessions, hub: hub, strictSlate: strictSlate}
}

// Cast records one voter's choice for one position. Fails with
// session_closed outside the voting window, duplicate_vote if the voter
// already holds a ballot for the position (for the lifetime of the
// election, not just the current window), and validation_error for
// malformed input or an off-slate candidate.
func (l *Ledger) Cast(voterID, position, candidate string) (models.Ballot, error) {
	if voterID == "" || position == "" || candidate == "" {
		return models.Ballot{}, apperr.Validation("voterId, position and candidate are required")
	}

	st, err := l.sessions.Status()
	if err != nil {
		return models.Ballot{}, err
	}
	if !st.Active {
		return models.Ballot{}, apperr.ErrSessionClosed
	}

	if l.strictSlate {
		if err := l.checkSlate(position, candidate); err != nil {
			return models.Ballot{}, err
		}
	}

	ballot := models.Ballot{
		ID:        uuid.NewString(),
		VoterID:   voterID,
		Position:  position,
		Candidate: candidate,
		CastAt:    time.Now().UnixMilli(),
	}

	_, err = l.db.Exec(`
		INSERT INTO ballots (id, voter_id, position, candidate, cast_at_ms)
		VALUES ($1, $2, $3, $4, $5)
	`, ballot.ID, ballot.VoterID, ballot.Position, ballot.Candidate, ballot.CastAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Ballot{}, apperr.ErrDuplicateVote
		}
		return models.Ballot{}, apperr.Storage(err)
	}

	slog.Info("ballot cast", "ballot_id", ballot.ID, "position", position)
	l.publishTally()

	return ballot, nil
}

// HasVoted reports whether a ballot exists for (voterID, position).
// Advisory only - UI pre-disabling; the authoritative duplicate check is
// the insert inside Cast.
func (l *Ledger) HasVoted(voterID, position string) (bool, error) {
	if voterID == "" || position == "" {
		return false, apperr.Validation("voterId and position are required")
	}

	var voted bool
	err := l.db.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM ballots
			WHERE voter_id = $1 AND position = $2
		)
	`, voterID, position).Scan(&voted)
	if err != nil {
		return false, apperr.Storage(err)
	}

	return voted, nil
}

// Remove deletes a ballot unconditionally (administrative correction).
// The voter becomes eligible for the position again simply because the
// record is gone.
func (l *Ledger) Remove(ballotID string) error {
	res, err := l.db.Exec(`DELETE FROM ballots WHERE id = $1`, ballotID)
	if err != nil {
		return apperr.Storage(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return apperr.Storage(err)
	}
	if n == 0 {
		return apperr.NotFound("ballot not found")
	}

	slog.Info("ballot removed", "ballot_id", ballotID)
	l.publishTally()

	return nil
}

// Tally counts ballots grouped by position then candidate. Deterministic
// and independent of insertion order.
func (l *Ledger) Tally() (models.Tally, error) {
	rows, err := l.db.Query(`
		SELECT position, candidate, COUNT(*)
		FROM ballots
		GROUP BY position, candidate
	`)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	defer rows.Close()

	tally := models.Tally{}
	for rows.Next() {
		var position, candidate string
		var count int
		if err := rows.Scan(&position, &candidate, &count); err != nil {
			return nil, apperr.Storage(err)
		}
		if tally[position] == nil {
			tally[position] = map[string]int{}
		}
		tally[position][candidate] = count
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage(err)
	}

	return tally, nil
}

// Slates returns the candidate lists for all contested positions.
func (l *Ledger) Slates() ([]models.Slate, error) {
	rows, err := l.db.Query(`
		SELECT position, candidates
		FROM candidate_slates
		ORDER BY position
	`)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	defer rows.Close()

	slates := []models.Slate{}
	for rows.Next() {
		var slate models.Slate
		var encoded string
		if err := rows.Scan(&slate.Position, &encoded); err != nil {
			return nil, apperr.Storage(err)
		}
		if err := json.Unmarshal([]byte(encoded), &slate.Candidates); err != nil {
			return nil, apperr.Storage(err)
		}
		slates = append(slates, slate)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage(err)
	}

	return slates, nil
}

// checkSlate verifies the candidate belongs to the slate for position.
func (l *Ledger) checkSlate(position, candidate string) error {
	var encoded string
	err := l.db.QueryRow(`
		SELECT candidates FROM candidate_slates WHERE position = $1
	`, position).Scan(&encoded)
	if err == sql.ErrNoRows {
		return apperr.Validation("unknown position: " + position)
	}
	if err != nil {
		return apperr.Storage(err)
	}

	var candidates []string
	if err := json.Unmarshal([]byte(encoded), &candidates); err != nil {
		return apperr.Storage(err)
	}

	if !slices.Contains(candidates, candidate) {
		return apperr.Validation("candidate is not on the slate for " + position)
	}

	return nil
}

// publishTally broadcasts the fresh counts. Best-effort: a failed
// recompute only costs observers a push, the ballot mutation stands.
func (l *Ledger) publishTally() {
	tally, err := l.Tally()
	if err != nil {
		slog.Warn("failed to compute tally for broadcast", "error", err)
		return
	}
	l.hub.Publish(notify.Event{Type: notify.EventTallyChanged, Payload: tally})
}

// isUniqueViolation detects a duplicate-key insert failure from either
// driver (modernc sqlite or lib/pq).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
