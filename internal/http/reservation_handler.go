package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"libratech/internal/auth"
	"libratech/internal/entity"
	"libratech/internal/httpx"
	"libratech/internal/ledger"
	"libratech/internal/store"
)

type ReservationHandler struct {
	store  *store.Memory
	ledger *ledger.Ledger
}

func NewReservationHandler(st *store.Memory, led *ledger.Ledger) *ReservationHandler {
	return &ReservationHandler{store: st, ledger: led}
}

type reserveReq struct {
	BookID   string `json:"book_id" validate:"required"`
	MemberID string `json:"member_id"`
}

// Create places a hold. Members reserve for themselves; an admin may
// reserve on a member's behalf by naming the member.
func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req reserveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.BookID = strings.TrimSpace(req.BookID)
	req.MemberID = strings.TrimSpace(req.MemberID)

	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	memberID := httpx.UserIDFrom(r)
	if httpx.RoleFrom(r) == auth.RoleAdmin {
		if req.MemberID == "" {
			JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input",
				[]ErrorDetail{{Field: "member_id", Message: "member_id is required"}})
			return
		}
		memberID = req.MemberID
	}

	res, err := h.ledger.Reserve(req.BookID, memberID)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	JSONSuccessCreated(w, res)
}

// List returns holds: all of them for admins, the caller's own for
// members.
func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	role := httpx.RoleFrom(r)

	reservations := []entity.Reservation{}
	for _, res := range h.store.Reservations() {
		if role != auth.RoleAdmin && res.MemberID != userID {
			continue
		}
		reservations = append(reservations, res)
	}

	JSONSuccess(w, reservations, map[string]any{"total": len(reservations)})
}
