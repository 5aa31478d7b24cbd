// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Stable reason codes returned to callers. These are part of the API
// contract; clients branch on them, so they never change.
const (
	CodeNotFound           = "not_found"
	CodeInvalidCredentials = "invalid_credentials"
	CodeAlreadyActive      = "already_active"
	CodeNotActive          = "not_active"
	CodeSessionClosed      = "session_closed"
	CodeDuplicateVote      = "duplicate_vote"
	CodeValidation         = "validation_error"
	CodeStorage            = "storage_failure"
)

// Error is a typed operation failure carrying a stable reason code and a
// human-readable message. A wrapped cause, if any, is reachable via
// errors.Unwrap.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error with the same code, so
// errors.Is(err, apperr.ErrDuplicateVote) works regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Sentinel instances for errors.Is comparisons.
var (
	ErrNotFound           = &Error{Code: CodeNotFound, Message: "resource not found"}
	ErrInvalidCredentials = &Error{Code: CodeInvalidCredentials, Message: "invalid credentials"}
	ErrAlreadyActive      = &Error{Code: CodeAlreadyActive, Message: "voting session already active"}
	ErrNotActive          = &Error{Code: CodeNotActive, Message: "no active voting session"}
	ErrSessionClosed      = &Error{Code: CodeSessionClosed, Message: "voting session is closed"}
	ErrDuplicateVote      = &Error{Code: CodeDuplicateVote, Message: "already voted for this position"}
)

// Validation returns a validation_error with the given message.
func Validation(message string) *Error {
	return &Error{Code: CodeValidation, Message: message}
}

// NotFound returns a not_found error naming the missing resource.
func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

// Storage wraps a persistence-layer failure. The underlying error is kept
// for logs but never serialized to clients.
func Storage(err error) *Error {
	return &Error{Code: CodeStorage, Message: "storage error", Err: err}
}

// CodeOf extracts the reason code from err, or storage_failure for
// untyped errors.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeStorage
}

// MessageOf extracts the client-facing message from err.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal error"
}

// HTTPStatus maps a reason code to its HTTP status.
func HTTPStatus(code string) int {
	switch code {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeInvalidCredentials:
		return http.StatusUnauthorized
	case CodeNotFound:
		return http.StatusNotFound
	case CodeAlreadyActive, CodeNotActive, CodeSessionClosed, CodeDuplicateVote:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
