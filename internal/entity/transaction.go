package entity

import "time"

type TransactionStatus string

const (
	TransactionOpen    TransactionStatus = "Open"
	TransactionClosed  TransactionStatus = "Closed"
	TransactionOverdue TransactionStatus = "Overdue"
)

// Transaction is one borrow record. It references a concrete physical
// copy (CopyID), not just the title, so returns resolve unambiguously.
// Status is not stored: it is derived from the dates so an unreturned
// loan can never carry a stale "Open" past its due date.
type Transaction struct {
	ID           string     `json:"id"`
	BookID       string     `json:"book_id"`
	CopyID       string     `json:"copy_id"`
	BookTitle    string     `json:"book_title"`
	MemberID     string     `json:"member_id"`
	MemberName   string     `json:"member_name"`
	CheckoutDate time.Time  `json:"checkout_date"`
	DueDate      time.Time  `json:"due_date"`
	ReturnDate   *time.Time `json:"return_date,omitempty"`
	FineAmount   float64    `json:"fine_amount,omitempty"`
}

// StatusAt derives the transaction status at the given instant.
func (t Transaction) StatusAt(now time.Time) TransactionStatus {
	if t.ReturnDate != nil {
		return TransactionClosed
	}
	if now.After(t.DueDate) {
		return TransactionOverdue
	}
	return TransactionOpen
}

// IsOpen reports whether the copy is still out, overdue or not.
func (t Transaction) IsOpen() bool {
	return t.ReturnDate == nil
}
