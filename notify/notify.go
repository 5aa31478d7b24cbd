// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"log/slog"
	"sync"
)

// Event types fanned out to observers.
const (
	EventSessionStatus = "session-status-changed"
	EventSessionEnded  = "session-ended"
	EventTallyChanged  = "tally-changed"
)

// Event is one state-change notification. Payload is the JSON-ready body
// for the event type: a SessionStatus, a Tally, or nil for session-ended.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// subscriberBuffer is the per-subscriber channel depth. A subscriber that
// falls this far behind starts losing events; delivery is at-most-once
// and observers recover by re-querying status and tally.
const subscriberBuffer = 16

// Hub fans events out to all subscribed observers. Publish never blocks
// on a slow subscriber.
type Hub struct {
	mu   sync.Mutex
	subs map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[chan Event]struct{})}
}

// Subscribe registers an observer. The returned cancel func must be
// called when the observer disconnects; after cancel the channel is
// closed.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if _, ok := h.subs[ch]; ok {
			delete(h.subs, ch)
			close(ch)
		}
		h.mu.Unlock()
	}

	return ch, cancel
}

// Publish delivers the event to every subscriber whose buffer has room.
func (h *Hub) Publish(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
			slog.Warn("dropping event for slow subscriber", "type", ev.Type)
		}
	}
}

// SubscriberCount reports how many observers are connected.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
