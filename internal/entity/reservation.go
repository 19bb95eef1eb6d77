package entity

import "time"

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "Pending"
	ReservationFulfilled ReservationStatus = "Fulfilled"
	ReservationCancelled ReservationStatus = "Cancelled"
)

type Reservation struct {
	ID          string            `json:"id"`
	BookID      string            `json:"book_id"`
	BookTitle   string            `json:"book_title"`
	MemberID    string            `json:"member_id"`
	MemberName  string            `json:"member_name"`
	RequestDate time.Time         `json:"request_date"`
	Status      ReservationStatus `json:"status"`
}
