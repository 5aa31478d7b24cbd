// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"time"

	"github.com/danielhkuo/ballotbox/apperr"
	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/models"
	"github.com/danielhkuo/ballotbox/session"
)

type SessionHandler struct {
	sessions *session.Controller
}

func NewSessionHandler(sessions *session.Controller) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Start handles POST /session/start
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req models.StartSessionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, apperr.CodeValidation, "Invalid JSON")
		return
	}

	status, err := h.sessions.Start(time.Duration(req.Duration) * time.Second)
	if err != nil {
		middleware.AppError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, status)
}

// Stop handles POST /session/stop
func (h *SessionHandler) Stop(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Stop(); err != nil {
		middleware.AppError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.AckResponse{Message: "Voting session stopped"})
}

// Status handles GET /session/status
func (h *SessionHandler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.sessions.Status()
	if err != nil {
		middleware.AppError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, status)
}
