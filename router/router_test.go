// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/ballotbox/ledger"
	"github.com/danielhkuo/ballotbox/notify"
	"github.com/danielhkuo/ballotbox/session"
	"github.com/danielhkuo/ballotbox/testutil"
)

func newTestRouter(t *testing.T) *http.ServeMux {
	t.Helper()

	db := testutil.SetupTestDB(t)
	hub := notify.NewHub()
	sessions := session.NewController(db, hub)
	lgr := ledger.New(db, sessions, hub, true)

	return NewRouter(db, sessions, lgr, hub)
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "ballotbox API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	mux := newTestRouter(t)

	// Test that routes respond (handler is invoked)
	// Note: Some routes return 4xx without fixture data, which is valid
	// handler behavior; a 405 or an unrouted 404 would mean a missing route
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},

		{"POST", "/login"},

		{"GET", "/candidates"},
		{"GET", "/vote-check"},
		{"POST", "/vote"},
		{"GET", "/results"},

		{"POST", "/session/start"},
		{"POST", "/session/stop"},
		{"GET", "/session/status"},

		{"GET", "/users"},
		{"POST", "/users"},
		{"DELETE", "/users/test-id"},
		{"DELETE", "/vote/test-id"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("%s %s returned 405 - route not registered for method", tc.method, tc.path)
			}
		})
	}
}

func TestUnknownMethodRejected(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("DELETE", "/results", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("DELETE /results = %d, want 405", w.Code)
	}
}
