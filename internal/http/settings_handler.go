package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"libratech/internal/entity"
	"libratech/internal/ledger"
	"libratech/internal/store"
)

type SettingsHandler struct {
	store  *store.Memory
	ledger *ledger.Ledger
}

func NewSettingsHandler(st *store.Memory, led *ledger.Ledger) *SettingsHandler {
	return &SettingsHandler{store: st, ledger: led}
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	JSONSuccess(w, h.store.Settings(), nil)
}

type updateSettingsReq struct {
	LibraryName string `json:"library_name" validate:"required,min=1,max=100"`
	LogoURL     string `json:"logo_url" validate:"omitempty,url"`
	Language    string `json:"language" validate:"required,oneof=en zh"`
}

// Update replaces the library-wide settings. Admin only; lasts until
// the process exits.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.LibraryName = strings.TrimSpace(req.LibraryName)

	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	cfg := entity.Settings{
		LibraryName: req.LibraryName,
		LogoURL:     req.LogoURL,
		Language:    req.Language,
	}
	h.ledger.UpdateSettings(cfg)

	JSONSuccess(w, cfg, nil)
}
