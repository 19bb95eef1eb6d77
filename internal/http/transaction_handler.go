package http

import (
	"net/http"
	"time"

	"libratech/internal/auth"
	"libratech/internal/entity"
	"libratech/internal/httpx"
	"libratech/internal/ledger"
	"libratech/internal/store"
)

// transactionView is a transaction plus its status derived at serve
// time, so an unreturned loan past due always reads Overdue.
type transactionView struct {
	entity.Transaction
	Status entity.TransactionStatus `json:"status"`
}

func newTransactionView(tx entity.Transaction, now time.Time) transactionView {
	return transactionView{Transaction: tx, Status: tx.StatusAt(now)}
}

type TransactionHandler struct {
	store  *store.Memory
	ledger *ledger.Ledger
}

func NewTransactionHandler(st *store.Memory, led *ledger.Ledger) *TransactionHandler {
	return &TransactionHandler{store: st, ledger: led}
}

// List returns the circulation ledger. Admins see everything; members
// see only their own loans. An optional status query filters on the
// derived status.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	role := httpx.RoleFrom(r)
	status := r.URL.Query().Get("status")

	now := h.ledger.Now()
	views := []transactionView{}
	for _, tx := range h.store.Transactions() {
		if role != auth.RoleAdmin && tx.MemberID != userID {
			continue
		}
		v := newTransactionView(tx, now)
		if status != "" && string(v.Status) != status {
			continue
		}
		views = append(views, v)
	}

	JSONSuccess(w, views, map[string]any{"total": len(views)})
}
