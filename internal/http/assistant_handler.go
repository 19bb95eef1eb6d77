package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"libratech/internal/assistant"
	"libratech/internal/store"
)

type AssistantHandler struct {
	store     *store.Memory
	librarian *assistant.Librarian
}

func NewAssistantHandler(st *store.Memory, librarian *assistant.Librarian) *AssistantHandler {
	return &AssistantHandler{store: st, librarian: librarian}
}

type askReq struct {
	Query string `json:"query" validate:"required,min=1,max=2000"`
}

// Ask forwards a question to the librarian assistant with the current
// catalog as context. The reply is always 200; backend trouble shows
// up as fallback text, never as an error status.
func (h *AssistantHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req askReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Query = strings.TrimSpace(req.Query)

	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	reply := h.librarian.Ask(r.Context(), req.Query, h.store.Books())
	JSONSuccess(w, map[string]any{"reply": reply}, nil)
}
