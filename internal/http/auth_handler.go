package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"libratech/internal/auth"
	"libratech/internal/entity"
	"libratech/internal/httpx"
	"libratech/internal/ledger"
	"libratech/internal/store"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	store  *store.Memory
	ledger *ledger.Ledger
	secret string
}

func NewAuthHandler(st *store.Memory, led *ledger.Ledger, secret string) *AuthHandler {
	return &AuthHandler{store: st, ledger: led, secret: secret}
}

type memberLoginReq struct {
	MemberID string `json:"member_id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// MemberLogin authenticates a library member by ID and password.
// Suspended accounts are rejected even with the right password.
func (h *AuthHandler) MemberLogin(w http.ResponseWriter, r *http.Request) {
	var req memberLoginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.MemberID = strings.TrimSpace(req.MemberID)

	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	member, ok := h.store.FindMember(req.MemberID)
	if !ok || !auth.VerifyPassword(member.PasswordHash, req.Password) {
		JSONError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid member ID or password", nil)
		return
	}
	if member.Status == entity.MemberSuspended {
		JSONError(w, http.StatusForbidden, "ACCOUNT_SUSPENDED", "Account suspended. Please contact the library desk.", nil)
		return
	}

	token, _, err := auth.GenerateToken(h.secret, member.ID, auth.RoleMember, tokenTTL)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	JSONSuccess(w, map[string]any{
		"token":  token,
		"member": member,
	}, nil)
}

type adminLoginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AdminLogin authenticates a staff account and stamps its last login.
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req adminLoginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Username = strings.TrimSpace(req.Username)

	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	admin, ok := h.store.FindAdminByUsername(req.Username)
	if !ok || !auth.VerifyPassword(admin.PasswordHash, req.Password) {
		JSONError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password", nil)
		return
	}

	if err := h.ledger.RecordAdminLogin(admin.Username); err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	token, _, err := auth.GenerateToken(h.secret, admin.ID, auth.RoleAdmin, tokenTTL)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	JSONSuccess(w, map[string]any{
		"token": token,
		"admin": admin,
	}, nil)
}

type registerReq struct {
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Department string `json:"department" validate:"max=100"`
	Password   string `json:"password" validate:"required,min=6"`
}

// Register creates a student account open to self-service signup.
// Staff and teacher accounts are created by admins instead.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
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

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	member, err := h.ledger.RegisterMember(entity.Member{
		Name:         req.Name,
		Email:        req.Email,
		Department:   req.Department,
		Role:         entity.RoleStudent,
		PasswordHash: hash,
	})
	if err != nil {
		JSONError(w, http.StatusConflict, "ALREADY_EXISTS", "Member already registered", nil)
		return
	}

	token, _, err := auth.GenerateToken(h.secret, member.ID, auth.RoleMember, tokenTTL)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	JSONSuccessCreated(w, map[string]any{
		"token":  token,
		"member": member,
	})
}

// Me returns the account behind the bearer token.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	role := httpx.RoleFrom(r)

	switch role {
	case auth.RoleAdmin:
		for _, a := range h.store.Admins() {
			if a.ID == userID {
				JSONSuccess(w, map[string]any{"role": role, "admin": a}, nil)
				return
			}
		}
	case auth.RoleMember:
		if m, ok := h.store.FindMember(userID); ok {
			JSONSuccess(w, map[string]any{"role": role, "member": m}, nil)
			return
		}
	}
	JSONError(w, http.StatusNotFound, "NOT_FOUND", "Account not found", nil)
}
