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

type AdminHandler struct {
	store  *store.Memory
	ledger *ledger.Ledger
}

func NewAdminHandler(st *store.Memory, led *ledger.Ledger) *AdminHandler {
	return &AdminHandler{store: st, ledger: led}
}

func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	admins := h.store.Admins()
	JSONSuccess(w, admins, map[string]any{"total": len(admins)})
}

type addAdminReq struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=50"`
	Role     string `json:"role" validate:"omitempty,oneof='Super Admin' Staff"`
	Password string `json:"password" validate:"required,min=6"`
}

func (h *AdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req addAdminReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	admin, err := h.ledger.AddAdmin(entity.Admin{
		Name:         req.Name,
		Email:        req.Email,
		Username:     req.Username,
		Role:         req.Role,
		PasswordHash: hash,
	})
	if err != nil {
		JSONError(w, http.StatusConflict, "ALREADY_EXISTS", "Username already taken", nil)
		return
	}

	JSONSuccessCreated(w, admin)
}
