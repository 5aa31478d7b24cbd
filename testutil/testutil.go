// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/ballotbox/auth"
	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/db"
)

// SetupTestDB creates a fresh sqlite database in a per-test temp dir with
// the full schema. The file is removed with the test's temp dir.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := cliparse.Config{
		DatabaseType: "sqlite",
		DatabaseURL:  filepath.Join(t.TempDir(), "ballotbox-test.db"),
	}

	conn, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         5000,
		DatabaseType: "sqlite",
		DatabaseURL:  "ballotbox-test.db",
		StrictSlate:  true,
	}
}

// CreateTestUser inserts a user with the given secret and returns its ID
func CreateTestUser(t *testing.T, conn *sql.DB, identifier, role, secret string) string {
	t.Helper()

	hash, err := auth.HashSecret(secret)
	if err != nil {
		t.Fatalf("Failed to hash test secret: %v", err)
	}

	id := uuid.NewString()
	_, err = conn.Exec(`
		INSERT INTO users (id, identifier, role, secret_hash, created_at_ms)
		VALUES ($1, $2, $3, $4, $5)
	`, id, identifier, role, hash, time.Now().UnixMilli())
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return id
}

// CreateTestSlate inserts a candidate slate for a position
func CreateTestSlate(t *testing.T, conn *sql.DB, position string, candidates ...string) {
	t.Helper()

	encoded, err := json.Marshal(candidates)
	if err != nil {
		t.Fatalf("Failed to encode candidates: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO candidate_slates (position, candidates)
		VALUES ($1, $2)
	`, position, string(encoded))
	if err != nil {
		t.Fatalf("Failed to create test slate: %v", err)
	}
}

// OpenTestSession writes an active session record ending after d
func OpenTestSession(t *testing.T, conn *sql.DB, d time.Duration) {
	t.Helper()

	endMs := time.Now().Add(d).UnixMilli()
	_, err := conn.Exec(`
		INSERT INTO session_state (id, active, end_time_ms)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET active = excluded.active, end_time_ms = excluded.end_time_ms
	`, true, endMs)
	if err != nil {
		t.Fatalf("Failed to open test session: %v", err)
	}
}

// CloseTestSession writes a closed session record
func CloseTestSession(t *testing.T, conn *sql.DB) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO session_state (id, active, end_time_ms)
		VALUES (1, $1, NULL)
		ON CONFLICT (id) DO UPDATE SET active = excluded.active, end_time_ms = excluded.end_time_ms
	`, false)
	if err != nil {
		t.Fatalf("Failed to close test session: %v", err)
	}
}

// CastTestBallot inserts a ballot directly and returns its ID
func CastTestBallot(t *testing.T, conn *sql.DB, voterID, position, candidate string) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO ballots (id, voter_id, position, candidate, cast_at_ms)
		VALUES ($1, $2, $3, $4, $5)
	`, id, voterID, position, candidate, time.Now().UnixMilli())
	if err != nil {
		t.Fatalf("Failed to cast test ballot: %v", err)
	}

	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertErrorCode checks the machine-readable reason code in an error
// response body
func AssertErrorCode(t *testing.T, w *httptest.ResponseRecorder, code string) {
	t.Helper()
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(bytes.NewReader(w.Body.Bytes())).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if resp.Error != code {
		t.Errorf("Expected error code %q, got %q. Body: %s", code, resp.Error, w.Body.String())
	}
}
