// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package notify is the in-process notification bus.

The session controller and ballot ledger publish events; connected
observers (the SSE endpoint) subscribe:

	ch, cancel := hub.Subscribe()
	defer cancel()
	for ev := range ch { ... }

# Event Types

  - session-status-changed: payload models.SessionStatus
  - session-ended: empty payload
  - tally-changed: payload models.Tally

# Delivery Guarantees

Best-effort, at-most-once per subscriber. Publish never blocks: events
to a subscriber with a full buffer are dropped. The bus is a convenience
channel, never the source of truth - observers reconcile by calling
GET /session/status and GET /results.
*/
package notify
