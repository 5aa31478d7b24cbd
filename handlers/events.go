// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/ballotbox/notify"
	"github.com/danielhkuo/ballotbox/session"
)

type EventsHandler struct {
	hub      *notify.Hub
	sessions *session.Controller
}

func NewEventsHandler(hub *notify.Hub, sessions *session.Controller) *EventsHandler {
	return &EventsHandler{hub: hub, sessions: sessions}
}

// Subscribe handles GET /events
// Streams the notification feed as Server-Sent Events. Delivery is
// best-effort; a client that misses events reconciles by re-querying
// /session/status and /results, which this handler helps along by
// pushing the current status as the first event.
func (h *EventsHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		slog.Error("streaming not supported by response writer")
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable nginx buffering
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ch, cancel := h.hub.Subscribe()
	defer cancel()

	// Snapshot first so a (re)connecting observer converges immediately
	status, err := h.sessions.Status()
	if err != nil {
		slog.Warn("failed to read status for new subscriber", "error", err)
	} else {
		if err := writeEvent(w, flusher, notify.Event{Type: notify.EventSessionStatus, Payload: status}); err != nil {
			return
		}
	}

	slog.Info("observer connected", "remote", r.RemoteAddr)

	for {
		select {
		case <-r.Context().Done():
			slog.Info("observer disconnected", "remote", r.RemoteAddr)
			return
		case ev, open := <-ch:
			if !open {
				return
			}
			if err := writeEvent(w, flusher, ev); err != nil {
				slog.Info("observer write failed", "remote", r.RemoteAddr, "error", err)
				return
			}
		}
	}
}

// writeEvent serializes one event in SSE framing and flushes it.
func writeEvent(w http.ResponseWriter, flusher http.Flusher, ev notify.Event) error {
	payload := ev.Payload
	if payload == nil {
		payload = struct{}{}
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Type, data); err != nil {
		return err
	}
	flusher.Flush()
	return nil
}
