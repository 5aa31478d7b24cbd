// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/ballotbox/apperr"
	"github.com/danielhkuo/ballotbox/auth"
	"github.com/danielhkuo/ballotbox/models"
	"github.com/danielhkuo/ballotbox/testutil"
)

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	handler := NewUserHandler(env.db)

	testutil.CreateTestUser(t, env.db, "ALICE", models.RoleVoter, "correct-horse")

	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "valid credentials",
			body:           models.LoginRequest{Identifier: "ALICE", Secret: "correct-horse"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "identifier is case-insensitive",
			body:           models.LoginRequest{Identifier: "alice", Secret: "correct-horse"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "wrong secret",
			body:           models.LoginRequest{Identifier: "ALICE", Secret: "battery-staple"},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apperr.CodeInvalidCredentials,
		},
		{
			name:           "unknown identifier",
			body:           models.LoginRequest{Identifier: "MALLORY", Secret: "correct-horse"},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apperr.CodeInvalidCredentials,
		},
		{
			name:           "missing fields",
			body:           models.LoginRequest{Identifier: "ALICE"},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apperr.CodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/login", tt.body, nil)
			w := httptest.NewRecorder()

			handler.Login(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedCode != "" {
				testutil.AssertErrorCode(t, w, tt.expectedCode)
			}
		})
	}
}

func TestLoginResponseOmitsSecret(t *testing.T) {
	env := newTestEnv(t)
	handler := NewUserHandler(env.db)

	testutil.CreateTestUser(t, env.db, "ALICE", models.RoleAdmin, "correct-horse")

	req := testutil.MakeRequest("POST", "/login", models.LoginRequest{Identifier: "ALICE", Secret: "correct-horse"}, nil)
	w := httptest.NewRecorder()
	handler.Login(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var user models.User
	testutil.AssertJSON(t, w, &user)
	if user.Identifier != "ALICE" || user.Role != models.RoleAdmin {
		t.Errorf("unexpected user payload: %+v", user)
	}
	if strings.Contains(w.Body.String(), "secret") || strings.Contains(w.Body.String(), "hash") {
		t.Error("login response must not carry secret material")
	}
}

func TestCreateUser(t *testing.T) {
	env := newTestEnv(t)
	handler := NewUserHandler(env.db)

	req := testutil.MakeRequest("POST", "/users", models.CreateUserRequest{Identifier: "bob"}, nil)
	w := httptest.NewRecorder()
	handler.CreateUser(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.CreateUserResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.User.Identifier != "BOB" {
		t.Errorf("identifier = %q, want upper-cased %q", resp.User.Identifier, "BOB")
	}
	if resp.User.Role != models.RoleVoter {
		t.Errorf("role = %q, want default %q", resp.User.Role, models.RoleVoter)
	}
	if len(resp.Secret) != auth.SecretLength {
		t.Errorf("secret length = %d, want %d", len(resp.Secret), auth.SecretLength)
	}

	// The generated secret works for login
	loginW := httptest.NewRecorder()
	loginReq := testutil.MakeRequest("POST", "/login", models.LoginRequest{Identifier: "bob", Secret: resp.Secret}, nil)
	handler.Login(loginW, loginReq)
	testutil.AssertStatus(t, loginW, http.StatusOK)

	// Only the hash is stored
	var stored string
	if err := env.db.QueryRow(`SELECT secret_hash FROM users WHERE id = $1`, resp.User.ID).Scan(&stored); err != nil {
		t.Fatalf("Failed to read stored user: %v", err)
	}
	if stored == resp.Secret {
		t.Error("secret stored in plaintext")
	}
}

func TestCreateUserValidation(t *testing.T) {
	env := newTestEnv(t)
	handler := NewUserHandler(env.db)

	tests := []struct {
		name string
		body interface{}
	}{
		{"missing identifier", models.CreateUserRequest{Role: models.RoleVoter}},
		{"bad role", models.CreateUserRequest{Identifier: "carol", Role: "superuser"}},
		{"malformed body", "not json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/users", tt.body, nil)
			w := httptest.NewRecorder()

			handler.CreateUser(w, req)

			testutil.AssertStatus(t, w, http.StatusBadRequest)
			testutil.AssertErrorCode(t, w, apperr.CodeValidation)
		})
	}
}

func TestCreateUserDuplicateIdentifier(t *testing.T) {
	env := newTestEnv(t)
	handler := NewUserHandler(env.db)

	testutil.CreateTestUser(t, env.db, "CAROL", models.RoleVoter, "secret")

	// Collides after upper-casing
	req := testutil.MakeRequest("POST", "/users", models.CreateUserRequest{Identifier: "carol"}, nil)
	w := httptest.NewRecorder()
	handler.CreateUser(w, req)

	testutil.AssertStatus(t, w, http.StatusConflict)
	testutil.AssertErrorCode(t, w, apperr.CodeValidation)
}

func TestListUsers(t *testing.T) {
	env := newTestEnv(t)
	handler := NewUserHandler(env.db)

	w := httptest.NewRecorder()
	handler.ListUsers(w, testutil.MakeRequest("GET", "/users", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var users []models.User
	testutil.AssertJSON(t, w, &users)
	if len(users) != 0 {
		t.Errorf("expected no users, got %d", len(users))
	}

	testutil.CreateTestUser(t, env.db, "ZED", models.RoleVoter, "s1")
	testutil.CreateTestUser(t, env.db, "ANNA", models.RoleAdmin, "s2")

	w = httptest.NewRecorder()
	handler.ListUsers(w, testutil.MakeRequest("GET", "/users", nil, nil))
	testutil.AssertJSON(t, w, &users)

	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].Identifier != "ANNA" || users[1].Identifier != "ZED" {
		t.Errorf("users not ordered by identifier: %+v", users)
	}
}

func TestDeleteUser(t *testing.T) {
	env := newTestEnv(t)
	handler := NewUserHandler(env.db)

	userID := testutil.CreateTestUser(t, env.db, "DAVE", models.RoleVoter, "secret")

	req := testutil.MakeRequest("DELETE", "/users/"+userID, nil, nil)
	req.SetPathValue("id", userID)
	w := httptest.NewRecorder()
	handler.DeleteUser(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var count int
	env.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count)
	if count != 0 {
		t.Error("user not deleted")
	}

	// Deleting again is a 404
	w = httptest.NewRecorder()
	req = testutil.MakeRequest("DELETE", "/users/"+userID, nil, nil)
	req.SetPathValue("id", userID)
	handler.DeleteUser(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)
	testutil.AssertErrorCode(t, w, apperr.CodeNotFound)
}
