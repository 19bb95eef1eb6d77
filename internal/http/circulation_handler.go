package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"libratech/internal/ledger"
)

type CirculationHandler struct {
	ledger *ledger.Ledger
}

func NewCirculationHandler(led *ledger.Ledger) *CirculationHandler {
	return &CirculationHandler{ledger: led}
}

type checkoutReq struct {
	MemberID string `json:"member_id" validate:"required"`
	BookID   string `json:"book_id" validate:"required"`
}

// Checkout lends a copy to a member. The book may be given by ID or
// ISBN. Rejections are reported one at a time, in checkout order:
// unknown member, suspended member, unknown book, no copies, limit.
func (h *CirculationHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.MemberID = strings.TrimSpace(req.MemberID)
	req.BookID = strings.TrimSpace(req.BookID)

	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	tx, err := h.ledger.Borrow(req.MemberID, req.BookID)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	JSONSuccessCreated(w, newTransactionView(tx, h.ledger.Now()))
}

type checkinReq struct {
	BookID string `json:"book_id" validate:"required"`
}

// Checkin closes the most recent open loan of the given book.
func (h *CirculationHandler) Checkin(w http.ResponseWriter, r *http.Request) {
	var req checkinReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.BookID = strings.TrimSpace(req.BookID)

	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	tx, err := h.ledger.Return(req.BookID)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	JSONSuccess(w, newTransactionView(tx, h.ledger.Now()), nil)
}

// writeLedgerError maps circulation errors onto the response envelope:
// lookup failures are 404, policy rejections 422.
func writeLedgerError(w http.ResponseWriter, err error) {
	switch {
	case ledger.IsNotFound(err):
		JSONError(w, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
	case ledger.IsPolicyViolation(err):
		JSONError(w, http.StatusUnprocessableEntity, "POLICY_VIOLATION", err.Error(), nil)
	default:
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
