// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/ballotbox/apperr"
	"github.com/danielhkuo/ballotbox/ledger"
	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/models"
)

type VotingHandler struct {
	ledger *ledger.Ledger
}

func NewVotingHandler(ledger *ledger.Ledger) *VotingHandler {
	return &VotingHandler{ledger: ledger}
}

// Candidates handles GET /candidates
func (h *VotingHandler) Candidates(w http.ResponseWriter, r *http.Request) {
	slates, err := h.ledger.Slates()
	if err != nil {
		middleware.AppError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, slates)
}

// VoteCheck handles GET /vote-check?voterId=...&position=...
func (h *VotingHandler) VoteCheck(w http.ResponseWriter, r *http.Request) {
	voterID := r.URL.Query().Get("voterId")
	position := r.URL.Query().Get("position")

	voted, err := h.ledger.HasVoted(voterID, position)
	if err != nil {
		middleware.AppError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoteCheckResponse{Voted: voted})
}

// CastVote handles POST /vote
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	var req models.CastBallotRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, apperr.CodeValidation, "Invalid JSON")
		return
	}

	ballot, err := h.ledger.Cast(req.VoterID, req.Position, req.Candidate)
	if err != nil {
		middleware.AppError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CastBallotResponse{
		BallotID: ballot.ID,
		Message:  "Ballot cast successfully",
	})
}

// RemoveBallot handles DELETE /vote/{id} (administrative correction)
func (h *VotingHandler) RemoveBallot(w http.ResponseWriter, r *http.Request) {
	ballotID := r.PathValue("id")
	if ballotID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, apperr.CodeValidation, "ballot id is required")
		return
	}

	if err := h.ledger.Remove(ballotID); err != nil {
		middleware.AppError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.AckResponse{Message: "Ballot removed"})
}
