// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorsIsMatchesByCode(t *testing.T) {
	err := Validation("duration must be positive")
	if !errors.Is(err, Validation("anything")) {
		t.Error("Validation errors with different messages should match by code")
	}
	if errors.Is(err, ErrDuplicateVote) {
		t.Error("validation error should not match duplicate_vote")
	}
}

func TestErrorsIsThroughWrapping(t *testing.T) {
	err := fmt.Errorf("casting ballot: %w", ErrDuplicateVote)
	if !errors.Is(err, ErrDuplicateVote) {
		t.Error("wrapped sentinel should still match")
	}
	if CodeOf(err) != CodeDuplicateVote {
		t.Errorf("CodeOf() = %q, want %q", CodeOf(err), CodeDuplicateVote)
	}
}

func TestStorageWrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Storage(cause)

	if !errors.Is(err, cause) {
		t.Error("Storage() should keep the cause reachable via errors.Is")
	}
	if CodeOf(err) != CodeStorage {
		t.Errorf("CodeOf() = %q, want %q", CodeOf(err), CodeStorage)
	}
	// The cause must not leak into the client-facing message
	if MessageOf(err) != "storage error" {
		t.Errorf("MessageOf() = %q, want generic storage message", MessageOf(err))
	}
}

func TestCodeOfUntypedError(t *testing.T) {
	if got := CodeOf(errors.New("boom")); got != CodeStorage {
		t.Errorf("CodeOf(untyped) = %q, want %q", got, CodeStorage)
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{CodeValidation, http.StatusBadRequest},
		{CodeInvalidCredentials, http.StatusUnauthorized},
		{CodeNotFound, http.StatusNotFound},
		{CodeAlreadyActive, http.StatusConflict},
		{CodeNotActive, http.StatusConflict},
		{CodeSessionClosed, http.StatusConflict},
		{CodeDuplicateVote, http.StatusConflict},
		{CodeStorage, http.StatusInternalServerError},
		{"unknown", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := HTTPStatus(tt.code); got != tt.want {
				t.Errorf("HTTPStatus(%q) = %d, want %d", tt.code, got, tt.want)
			}
		})
	}
}
