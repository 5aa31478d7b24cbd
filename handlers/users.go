// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/ballotbox/apperr"
	"github.com/danielhkuo/ballotbox/auth"
	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/models"
)

type UserHandler struct {
	db *sql.DB
}

func NewUserHandler(db *sql.DB) *UserHandler {
	return &UserHandler{db: db}
}

// Login handles POST /login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, apperr.CodeValidation, "Invalid JSON")
		return
	}

	if req.Identifier == "" || req.Secret == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, apperr.CodeValidation, "identifier and secret are required")
		return
	}

	// Identifiers are stored upper-cased; normalize the attempt the same
	// way
	identifier := strings.ToUpper(req.Identifier)

	var user models.User
	var secretHash string
	err := h.db.QueryRow(`
		SELECT id, identifier, role, secret_hash, created_at_ms
		FROM users WHERE identifier = $1
	`, identifier).Scan(&user.ID, &user.Identifier, &user.Role, &secretHash, &user.CreatedAt)

	if err == sql.ErrNoRows {
		// Same failure as a wrong secret, no account enumeration
		middleware.AppError(w, apperr.ErrInvalidCredentials)
		return
	}
	if err != nil {
		middleware.AppError(w, apperr.Storage(err))
		return
	}

	if err := auth.VerifySecret(secretHash, req.Secret); err != nil {
		middleware.AppError(w, err)
		return
	}

	slog.Info("user logged in", "user_id", user.ID, "role", user.Role)

	middleware.JSONResponse(w, http.StatusOK, user)
}

// ListUsers handles GET /users (admin)
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT id, identifier, role, created_at_ms
		FROM users
		ORDER BY identifier
	`)
	if err != nil {
		middleware.AppError(w, apperr.Storage(err))
		return
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Identifier, &user.Role, &user.CreatedAt); err != nil {
			middleware.AppError(w, apperr.Storage(err))
			return
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		middleware.AppError(w, apperr.Storage(err))
		return
	}

	middleware.JSONResponse(w, http.StatusOK, users)
}

// CreateUser handles POST /users (admin)
// Generates the voter's secret and returns it exactly once; only the
// bcrypt hash is stored.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, apperr.CodeValidation, "Invalid JSON")
		return
	}

	if req.Identifier == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, apperr.CodeValidation, "identifier is required")
		return
	}
	if req.Role == "" {
		req.Role = models.RoleVoter
	}
	if req.Role != models.RoleVoter && req.Role != models.RoleAdmin {
		middleware.ErrorResponse(w, http.StatusBadRequest, apperr.CodeValidation, "role must be voter or admin")
		return
	}

	secret, err := auth.GenerateSecret()
	if err != nil {
		middleware.AppError(w, apperr.Storage(err))
		return
	}
	hash, err := auth.HashSecret(secret)
	if err != nil {
		middleware.AppError(w, apperr.Storage(err))
		return
	}

	user := models.User{
		ID:         uuid.NewString(),
		Identifier: strings.ToUpper(req.Identifier),
		Role:       req.Role,
		CreatedAt:  time.Now().UnixMilli(),
	}

	_, err = h.db.Exec(`
		INSERT INTO users (id, identifier, role, secret_hash, created_at_ms)
		VALUES ($1, $2, $3, $4, $5)
	`, user.ID, user.Identifier, user.Role, hash, user.CreatedAt)

	if err != nil {
		// Check if it's a uniqueness violation on the identifier
		if strings.Contains(err.Error(), "UNIQUE constraint failed") ||
			strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
			middleware.ErrorResponse(w, http.StatusConflict, apperr.CodeValidation, "identifier already exists")
			return
		}
		middleware.AppError(w, apperr.Storage(err))
		return
	}

	slog.Info("user created", "user_id", user.ID, "role", user.Role)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateUserResponse{
		User:   user,
		Secret: secret,
	})
}

// DeleteUser handles DELETE /users/{id} (admin)
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, apperr.CodeValidation, "user id is required")
		return
	}

	res, err := h.db.Exec(`DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		middleware.AppError(w, apperr.Storage(err))
		return
	}

	n, err := res.RowsAffected()
	if err != nil {
		middleware.AppError(w, apperr.Storage(err))
		return
	}
	if n == 0 {
		middleware.AppError(w, apperr.NotFound("user not found"))
		return
	}

	slog.Info("user deleted", "user_id", userID)

	middleware.JSONResponse(w, http.StatusOK, models.AckResponse{Message: "User deleted"})
}
