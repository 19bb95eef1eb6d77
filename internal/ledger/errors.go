package ledger

import "errors"

// Lookup failures.
var (
	ErrMemberNotFound    = errors.New("member not found")
	ErrBookNotFound      = errors.New("book not found")
	ErrAdminNotFound     = errors.New("admin not found")
	ErrNoOpenTransaction = errors.New("book not found in open transactions")
	ErrNotificationNotFound = errors.New("notification not found")
)

// Policy violations.
var (
	ErrMemberSuspended    = errors.New("member account is not active")
	ErrNoAvailableCopies  = errors.New("no available copies")
	ErrBorrowLimitReached = errors.New("borrow limit reached")
	ErrMemberExists       = errors.New("member id already registered")
	ErrAdminExists        = errors.New("admin username already taken")
	ErrBookExists         = errors.New("book id or isbn already in catalog")
)

// IsNotFound reports whether err is one of the lookup-failure kinds.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrMemberNotFound) ||
		errors.Is(err, ErrBookNotFound) ||
		errors.Is(err, ErrAdminNotFound) ||
		errors.Is(err, ErrNoOpenTransaction) ||
		errors.Is(err, ErrNotificationNotFound)
}

// IsPolicyViolation reports whether err is a circulation-policy
// rejection rather than a lookup failure.
func IsPolicyViolation(err error) bool {
	return errors.Is(err, ErrMemberSuspended) ||
		errors.Is(err, ErrNoAvailableCopies) ||
		errors.Is(err, ErrBorrowLimitReached) ||
		errors.Is(err, ErrMemberExists) ||
		errors.Is(err, ErrAdminExists) ||
		errors.Is(err, ErrBookExists)
}
