package http

import (
	"net/http"
	"strings"

	"libratech/internal/auth"
	"libratech/internal/entity"
	"libratech/internal/httpx"
	"libratech/internal/ledger"
	"libratech/internal/store"
)

type NotificationHandler struct {
	store  *store.Memory
	ledger *ledger.Ledger
}

func NewNotificationHandler(st *store.Memory, led *ledger.Ledger) *NotificationHandler {
	return &NotificationHandler{store: st, ledger: led}
}

// List returns the feed, newest first. Admins see everything including
// system entries; members see their own.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	role := httpx.RoleFrom(r)

	notifications := []entity.Notification{}
	unread := 0
	for _, n := range h.store.Notifications() {
		if role != auth.RoleAdmin && n.UserID != userID {
			continue
		}
		notifications = append(notifications, n)
		if !n.IsRead {
			unread++
		}
	}

	JSONSuccess(w, notifications, map[string]any{
		"total":  len(notifications),
		"unread": unread,
	})
}

// MarkRead acknowledges one entry, addressed by the path segment in
// /notifications/{id}/read.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/notifications/")
	id = strings.TrimSuffix(id, "/read")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}

	if err := h.ledger.MarkNotificationRead(id); err != nil {
		writeLedgerError(w, err)
		return
	}
	JSONSuccessNoContent(w)
}

// MarkAllRead acknowledges the entire feed.
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	h.ledger.MarkAllNotificationsRead()
	JSONSuccessNoContent(w)
}
