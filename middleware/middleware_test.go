// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/ballotbox/apperr"
	"github.com/danielhkuo/ballotbox/models"
)

func TestWithLoggingCallsNext(t *testing.T) {
	called := false
	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest("GET", "/test", nil))

	if !called {
		t.Error("WithLogging did not call the wrapped handler")
	}
	if w.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", w.Code, http.StatusTeapot)
	}
}

func TestJSONResponse(t *testing.T) {
	w := httptest.NewRecorder()
	JSONResponse(w, http.StatusCreated, models.AckResponse{Message: "ok"})

	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", w.Code, http.StatusCreated)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var resp models.AckResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp.Message != "ok" {
		t.Errorf("message = %q, want ok", resp.Message)
	}
}

func TestAppError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"duplicate vote", apperr.ErrDuplicateVote, http.StatusConflict, apperr.CodeDuplicateVote},
		{"session closed", apperr.ErrSessionClosed, http.StatusConflict, apperr.CodeSessionClosed},
		{"validation", apperr.Validation("bad input"), http.StatusBadRequest, apperr.CodeValidation},
		{"invalid credentials", apperr.ErrInvalidCredentials, http.StatusUnauthorized, apperr.CodeInvalidCredentials},
		{"not found", apperr.NotFound("ballot not found"), http.StatusNotFound, apperr.CodeNotFound},
		{"storage", apperr.Storage(errors.New("disk on fire")), http.StatusInternalServerError, apperr.CodeStorage},
		{"untyped", errors.New("mystery"), http.StatusInternalServerError, apperr.CodeStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			AppError(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			var resp models.ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if resp.Error != tt.wantCode {
				t.Errorf("error code = %q, want %q", resp.Error, tt.wantCode)
			}
		})
	}
}

func TestAppErrorDoesNotLeakStorageCause(t *testing.T) {
	w := httptest.NewRecorder()
	AppError(w, apperr.Storage(errors.New("password=hunter2 connection refused")))

	if strings.Contains(w.Body.String(), "hunter2") {
		t.Error("storage cause leaked into the client response")
	}
}

func TestParseJSONBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/vote", strings.NewReader(`{"voterId":"alice"}`))

	var body models.CastBallotRequest
	if err := ParseJSONBody(req, &body); err != nil {
		t.Fatalf("ParseJSONBody() error = %v", err)
	}
	if body.VoterID != "alice" {
		t.Errorf("VoterID = %q, want alice", body.VoterID)
	}

	req = httptest.NewRequest("POST", "/vote", strings.NewReader("not json"))
	if err := ParseJSONBody(req, &body); err == nil {
		t.Error("ParseJSONBody() should fail on malformed JSON")
	}
}

func TestCORS(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Preflight request short-circuits
	w := httptest.NewRecorder()
	req := httptest.NewRequest("OPTIONS", "/vote", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	CORS(inner).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("preflight status = %d, want %d", w.Code, http.StatusOK)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Allow-Origin = %q, want the request origin", got)
	}

	// Regular request passes through with headers set
	w = httptest.NewRecorder()
	CORS(inner).ServeHTTP(w, httptest.NewRequest("GET", "/results", nil))

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin without Origin header = %q, want *", got)
	}
}
