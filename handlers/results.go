// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/ballotbox/ledger"
	"github.com/danielhkuo/ballotbox/middleware"
)

type ResultsHandler struct {
	ledger *ledger.Ledger
}

func NewResultsHandler(ledger *ledger.Ledger) *ResultsHandler {
	return &ResultsHandler{ledger: ledger}
}

// GetResults handles GET /results
// Live per-candidate tallies, recomputed from the ballot ledger on
// demand.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	tally, err := h.ledger.Tally()
	if err != nil {
		middleware.AppError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, tally)
}
