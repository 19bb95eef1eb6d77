package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"libratech/internal/auth"
	"libratech/internal/entity"
	"libratech/internal/ledger"
	"libratech/internal/store"
)

type MemberHandler struct {
	store  *store.Memory
	ledger *ledger.Ledger
}

func NewMemberHandler(st *store.Memory, led *ledger.Ledger) *MemberHandler {
	return &MemberHandler{store: st, ledger: led}
}

// List returns the member roster, optionally filtered by status and a
// free-text query over ID, name and email.
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	status := strings.TrimSpace(r.URL.Query().Get("status"))
	q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))

	members := []entity.Member{}
	for _, m := range h.store.Members() {
		if status != "" && string(m.Status) != status {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(m.ID), q) &&
			!strings.Contains(strings.ToLower(m.Name), q) &&
			!strings.Contains(strings.ToLower(m.Email), q) {
			continue
		}
		members = append(members, m)
	}

	JSONSuccess(w, members, map[string]any{"total": len(members)})
}

type addMemberReq struct {
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Role       string `json:"role" validate:"omitempty,oneof=Student Teacher Staff"`
	Department string `json:"department" validate:"max=100"`
	Password   string `json:"password" validate:"omitempty,min=6"`
}

// Create registers a member on behalf of the library desk. The role
// picks the borrow ceiling; an omitted password falls back to the
// configured starter password hash.
func (h *MemberHandler) Create(starterHash string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addMemberReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
			return
		}
		req.Name = strings.TrimSpace(req.Name)
		req.Email = strings.TrimSpace(req.Email)

		if details := ValidateStruct(req); len(details) > 0 {
			JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
			return
		}

		hash := starterHash
		if req.Password != "" {
			var err error
			hash, err = auth.HashPassword(req.Password)
			if err != nil {
				JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
				return
			}
		}

		member, err := h.ledger.RegisterMember(entity.Member{
			Name:         req.Name,
			Email:        req.Email,
			Role:         entity.MemberRole(req.Role),
			Department:   req.Department,
			PasswordHash: hash,
		})
		if err != nil {
			JSONError(w, http.StatusConflict, "ALREADY_EXISTS", "Member already registered", nil)
			return
		}

		JSONSuccessCreated(w, member)
	}
}
