package entity

import "time"

type MemberRole string

const (
	RoleStudent MemberRole = "Student"
	RoleTeacher MemberRole = "Teacher"
	RoleStaff   MemberRole = "Staff"
)

type MemberStatus string

const (
	MemberActive    MemberStatus = "Active"
	MemberSuspended MemberStatus = "Suspended"
	MemberExpired   MemberStatus = "Expired"
)

type Member struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Role           MemberRole   `json:"role"`
	Department     string       `json:"department"`
	Email          string       `json:"email"`
	Status         MemberStatus `json:"status"`
	JoinDate       time.Time    `json:"join_date"`
	CurrentBorrows int          `json:"current_borrows"`
	MaxBorrows     int          `json:"max_borrows"`
	TotalFinesDue  float64      `json:"total_fines_due"`
	PasswordHash   string       `json:"-"`
}

// MaxBorrowsFor returns the borrow ceiling for a role. Teachers get the
// extended allowance, everyone else the standard one.
func MaxBorrowsFor(role MemberRole) int {
	if role == RoleTeacher {
		return 20
	}
	return 5
}
