package http

import (
	"net/http"

	"libratech/internal/entity"
	"libratech/internal/ledger"
	"libratech/internal/store"
)

type DashboardHandler struct {
	store  *store.Memory
	ledger *ledger.Ledger
}

func NewDashboardHandler(st *store.Memory, led *ledger.Ledger) *DashboardHandler {
	return &DashboardHandler{store: st, ledger: led}
}

type dashboardStats struct {
	TotalBooks        int              `json:"total_books"`
	TotalCopies       int              `json:"total_copies"`
	AvailableCopies   int              `json:"available_copies"`
	TotalMembers      int              `json:"total_members"`
	ActiveMembers     int              `json:"active_members"`
	SuspendedMembers  int              `json:"suspended_members"`
	OpenLoans         int              `json:"open_loans"`
	OverdueLoans      int              `json:"overdue_loans"`
	TodayTransactions int              `json:"today_transactions"`
	PendingHolds      int              `json:"pending_holds"`
	Categories        map[string]int   `json:"categories"`
	WeeklyActivity    []weeklyActivity `json:"weekly_activity"`
}

type weeklyActivity struct {
	Date      string `json:"date"`
	Checkouts int    `json:"checkouts"`
	Checkins  int    `json:"checkins"`
}

// Stats computes the admin dashboard snapshot. Everything is derived
// from the collections at serve time; nothing is pre-aggregated.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	now := h.ledger.Now()
	today := now.Format("2006-01-02")

	stats := dashboardStats{
		Categories: map[string]int{},
	}

	for _, b := range h.store.Books() {
		stats.TotalBooks++
		stats.TotalCopies += b.TotalCopies
		stats.AvailableCopies += b.AvailableCopies
		if b.Category != "" {
			stats.Categories[b.Category]++
		}
	}

	for _, m := range h.store.Members() {
		stats.TotalMembers++
		switch m.Status {
		case entity.MemberActive:
			stats.ActiveMembers++
		case entity.MemberSuspended:
			stats.SuspendedMembers++
		}
	}

	// last 7 days, oldest first
	days := make([]weeklyActivity, 7)
	dayIndex := map[string]int{}
	for i := 0; i < 7; i++ {
		d := now.AddDate(0, 0, i-6).Format("2006-01-02")
		days[i] = weeklyActivity{Date: d}
		dayIndex[d] = i
	}

	for _, tx := range h.store.Transactions() {
		switch tx.StatusAt(now) {
		case entity.TransactionOpen:
			stats.OpenLoans++
		case entity.TransactionOverdue:
			stats.OpenLoans++
			stats.OverdueLoans++
		}

		out := tx.CheckoutDate.Format("2006-01-02")
		if out == today {
			stats.TodayTransactions++
		}
		if i, ok := dayIndex[out]; ok {
			days[i].Checkouts++
		}
		if tx.ReturnDate != nil {
			in := tx.ReturnDate.Format("2006-01-02")
			if in == today {
				stats.TodayTransactions++
			}
			if i, ok := dayIndex[in]; ok {
				days[i].Checkins++
			}
		}
	}

	for _, res := range h.store.Reservations() {
		if res.Status == entity.ReservationPending {
			stats.PendingHolds++
		}
	}

	stats.WeeklyActivity = days
	JSONSuccess(w, stats, nil)
}
