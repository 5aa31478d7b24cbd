// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"database/sql"
	"log/slog"
	"sync"
	"time"

	"github.com/danielhkuo/ballotbox/apperr"
	"github.com/danielhkuo/ballotbox/models"
	"github.com/danielhkuo/ballotbox/notify"
)

// Controller owns the voting-window lifecycle. The authoritative state is
// the single session_state row; openness is always derived from the
// stored end time, never from an in-memory countdown, so it survives
// process restarts.
//
// One mutex serializes every read-modify-write (Start, Stop, Status, and
// the background ticker); a single server process is assumed.
type Controller struct {
	db  *sql.DB
	hub *notify.Hub
	mu  sync.Mutex
}

func NewController(db *sql.DB, hub *notify.Hub) *Controller {
	return &Controller{db: db, hub: hub}
}

// Start opens a voting window of the given duration. Fails with
// already_active if a window is open, validation_error for a
// non-positive duration.
func (c *Controller) Start(duration time.Duration) (models.SessionStatus, error) {
	if duration <= 0 {
		return models.SessionStatus{}, apperr.Validation("duration must be a positive number of seconds")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	st, err := c.statusLocked()
	if err != nil {
		return models.SessionStatus{}, err
	}
	if st.Active {
		return models.SessionStatus{}, apperr.ErrAlreadyActive
	}

	endMs := time.Now().Add(duration).UnixMilli()
	_, err = c.db.Exec(`
		INSERT INTO session_state (id, active, end_time_ms)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET active = excluded.active, end_time_ms = excluded.end_time_ms
	`, true, endMs)
	if err != nil {
		return models.SessionStatus{}, apperr.Storage(err)
	}

	status := models.SessionStatus{Active: true, EndTime: &endMs}
	c.hub.Publish(notify.Event{Type: notify.EventSessionStatus, Payload: status})

	slog.Info("voting session started", "end_time_ms", endMs, "duration", duration)
	return status, nil
}

// Stop closes the window explicitly. Fails with not_active if no window
// is open (including a window that already lapsed).
func (c *Controller) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, err := c.statusLocked()
	if err != nil {
		return err
	}
	if !st.Active {
		return apperr.ErrNotActive
	}

	if err := c.closeLocked(); err != nil {
		return err
	}

	slog.Info("voting session stopped")
	return nil
}

// Status reports whether the window is open via the lazy-expiry read: if
// the stored record still claims active but the end time has passed, the
// record is transitioned to closed (and observers notified) before
// returning. Idempotent in outcome.
func (c *Controller) Status() (models.SessionStatus, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.statusLocked()
}

// Run polls the window state until ctx is cancelled. Best-effort: the
// lazy-expiry read path alone guarantees correctness, this loop only
// gives connected observers a prompt session-ended event. Storage
// failures are logged and retried on the next tick.
func (c *Controller) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := c.Status(); err != nil {
				slog.Error("session expiry check failed", "error", err)
			}
		}
	}
}

// statusLocked performs the lazy-expiry read. Caller holds c.mu.
func (c *Controller) statusLocked() (models.SessionStatus, error) {
	var active bool
	var endMs sql.NullInt64
	err := c.db.QueryRow(`SELECT active, end_time_ms FROM session_state WHERE id = 1`).Scan(&active, &endMs)
	if err == sql.ErrNoRows {
		// No window has ever been opened
		return models.SessionStatus{}, nil
	}
	if err != nil {
		return models.SessionStatus{}, apperr.Storage(err)
	}

	if !active {
		return models.SessionStatus{}, nil
	}
	if !endMs.Valid || time.Now().UnixMilli() >= endMs.Int64 {
		// The window lapsed; persist the transition before reporting
		// closed. If the write fails the record must keep claiming
		// active, so the error propagates instead.
		if err := c.closeLocked(); err != nil {
			return models.SessionStatus{}, err
		}
		slog.Info("voting session expired")
		return models.SessionStatus{}, nil
	}

	end := endMs.Int64
	return models.SessionStatus{Active: true, EndTime: &end}, nil
}

// closeLocked persists the open -> closed transition and notifies
// observers. Caller holds c.mu and has verified the window is open.
func (c *Controller) closeLocked() error {
	_, err := c.db.Exec(`UPDATE session_state SET active = $1, end_time_ms = NULL WHERE id = 1`, false)
	if err != nil {
		return apperr.Storage(err)
	}

	c.hub.Publish(notify.Event{Type: notify.EventSessionStatus, Payload: models.SessionStatus{}})
	c.hub.Publish(notify.Event{Type: notify.EventSessionEnded})
	return nil
}
