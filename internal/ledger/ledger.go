// Package ledger is the authoritative record of books, members,
// transactions, and reservations. Every mutation of the library state
// goes through one of its operations; the HTTP layer is a read-only
// projection plus operation invocation. Each operation runs as a
// single store transaction, so the cross-collection counters
// (available copies, current borrows) can never drift from the open
// transactions that explain them.
package ledger

import (
	"errors"
	"fmt"
	"time"

	"libratech/internal/entity"
	"libratech/internal/store"
)

// LoanPeriod is how long a checkout lasts before the copy is overdue.
const LoanPeriod = 14 * 24 * time.Hour

type Ledger struct {
	store *store.Memory
	now   func() time.Time
}

func New(st *store.Memory) *Ledger {
	return &Ledger{store: st, now: time.Now}
}

// WithClock overrides the wall clock. Tests use this to pin checkout
// and due dates.
func (l *Ledger) WithClock(now func() time.Time) *Ledger {
	l.now = now
	return l
}

// Now reports the ledger's current instant. Derived transaction
// statuses should be computed against this clock, not time.Now, so a
// pinned test clock stays consistent across reads and writes.
func (l *Ledger) Now() time.Time {
	return l.now()
}

// Validate runs the ordered precondition checks for a checkout without
// mutating anything. The order is part of the contract: member lookup,
// then book lookup, then availability, then borrow limit. When several
// conditions fail at once the first in this order is reported.
func (l *Ledger) Validate(memberID, bookIdentifier string) error {
	var err error
	l.store.View(func(s *store.State) {
		_, _, err = validateBorrow(s, memberID, bookIdentifier)
	})
	return err
}

func validateBorrow(s *store.State, memberID, bookIdentifier string) (memberIdx, bookIdx int, err error) {
	memberIdx, ok := s.FindMember(memberID)
	if !ok {
		return -1, -1, ErrMemberNotFound
	}
	if s.Members[memberIdx].Status != entity.MemberActive {
		return -1, -1, ErrMemberSuspended
	}
	bookIdx, ok = s.FindBook(bookIdentifier)
	if !ok {
		return -1, -1, ErrBookNotFound
	}
	if s.Books[bookIdx].AvailableCopies <= 0 {
		return -1, -1, ErrNoAvailableCopies
	}
	if s.Members[memberIdx].CurrentBorrows >= s.Members[memberIdx].MaxBorrows {
		return -1, -1, ErrBorrowLimitReached
	}
	return memberIdx, bookIdx, nil
}

// Borrow checks out one copy of the identified book (by ID or ISBN) to
// the member. On success it records an open transaction against a
// concrete copy, decrements the book's available count, increments the
// member's borrow count, and emits a success notification.
func (l *Ledger) Borrow(memberID, bookIdentifier string) (entity.Transaction, error) {
	var tx entity.Transaction
	now := l.now()
	err := l.store.Update(func(s *store.State) error {
		mi, bi, err := validateBorrow(s, memberID, bookIdentifier)
		if err != nil {
			return err
		}
		book := &s.Books[bi]
		member := &s.Members[mi]

		copyID, ok := freeCopyID(s, *book)
		if !ok {
			return ErrNoAvailableCopies
		}

		tx = entity.Transaction{
			ID:           fmt.Sprintf("TX%d", now.UnixNano()),
			BookID:       book.ID,
			CopyID:       copyID,
			BookTitle:    book.Title,
			MemberID:     member.ID,
			MemberName:   member.Name,
			CheckoutDate: now,
			DueDate:      now.Add(LoanPeriod),
		}
		s.Transactions = append([]entity.Transaction{tx}, s.Transactions...)
		if book.AvailableCopies > 0 {
			book.AvailableCopies--
		}
		member.CurrentBorrows++

		l.notify(s, member.ID, "Circulation",
			fmt.Sprintf("Checked out %q to %s", book.Title, member.Name),
			entity.NotifySuccess, now)
		return nil
	})
	if err != nil {
		return entity.Transaction{}, err
	}
	return tx, nil
}

// Return checks in the identified book (by ID or ISBN). It closes the
// most recent open transaction for that book, restores the available
// count (capped at the total), and decrements the borrower's count
// (floored at zero). Fines are neither computed nor cleared here.
func (l *Ledger) Return(bookIdentifier string) (entity.Transaction, error) {
	var closed entity.Transaction
	now := l.now()
	err := l.store.Update(func(s *store.State) error {
		bi, ok := s.FindBook(bookIdentifier)
		if !ok {
			return ErrBookNotFound
		}
		book := &s.Books[bi]

		ti := -1
		for i := range s.Transactions { // newest first
			if s.Transactions[i].BookID == book.ID && s.Transactions[i].IsOpen() {
				ti = i
				break
			}
		}
		if ti < 0 {
			return ErrNoOpenTransaction
		}

		returnDate := now
		s.Transactions[ti].ReturnDate = &returnDate
		closed = s.Transactions[ti]

		if book.AvailableCopies < book.TotalCopies {
			book.AvailableCopies++
		}
		if mi, ok := s.FindMember(closed.MemberID); ok && s.Members[mi].CurrentBorrows > 0 {
			s.Members[mi].CurrentBorrows--
		}

		l.notify(s, closed.MemberID, "Circulation",
			fmt.Sprintf("%q returned", book.Title),
			entity.NotifySuccess, now)
		return nil
	})
	if errors.Is(err, ErrNoOpenTransaction) {
		// The failed check-in leaves every collection untouched, but
		// the desk still gets a notice in the feed.
		_ = l.store.Update(func(s *store.State) error {
			l.notify(s, "system", "Notice",
				"Book not found in open transactions",
				entity.NotifyWarning, now)
			return nil
		})
	}
	if err != nil {
		return entity.Transaction{}, err
	}
	return closed, nil
}

// Reserve appends a pending reservation for the member. The ledger
// does not deduplicate reservations; callers that want one reservation
// per member and book must check the list themselves.
func (l *Ledger) Reserve(bookID, memberID string) (entity.Reservation, error) {
	var res entity.Reservation
	now := l.now()
	err := l.store.Update(func(s *store.State) error {
		mi, ok := s.FindMember(memberID)
		if !ok {
			return ErrMemberNotFound
		}
		bi, ok := s.FindBook(bookID)
		if !ok {
			return ErrBookNotFound
		}
		res = entity.Reservation{
			ID:          fmt.Sprintf("r%d", now.UnixNano()),
			BookID:      s.Books[bi].ID,
			BookTitle:   s.Books[bi].Title,
			MemberID:    s.Members[mi].ID,
			MemberName:  s.Members[mi].Name,
			RequestDate: now,
			Status:      entity.ReservationPending,
		}
		s.Reservations = append(s.Reservations, res)

		l.notify(s, res.MemberID, "Reservation",
			fmt.Sprintf("Reservation placed: %s", res.BookTitle),
			entity.NotifySuccess, now)
		return nil
	})
	if err != nil {
		return entity.Reservation{}, err
	}
	return res, nil
}

// RegisterMember adds a member. A missing ID is generated from the
// role prefix (S for students and staff, T for teachers); a missing
// borrow ceiling comes from the role.
func (l *Ledger) RegisterMember(m entity.Member) (entity.Member, error) {
	now := l.now()
	if m.ID == "" {
		prefix := "S"
		if m.Role == entity.RoleTeacher {
			prefix = "T"
		}
		m.ID = fmt.Sprintf("%s%d", prefix, now.UnixMilli())
	}
	if m.Role == "" {
		m.Role = entity.RoleStudent
	}
	if m.Status == "" {
		m.Status = entity.MemberActive
	}
	if m.MaxBorrows == 0 {
		m.MaxBorrows = entity.MaxBorrowsFor(m.Role)
	}
	m.JoinDate = now
	m.CurrentBorrows = 0
	m.TotalFinesDue = 0

	err := l.store.Update(func(s *store.State) error {
		if _, ok := s.FindMember(m.ID); ok {
			return ErrMemberExists
		}
		s.Members = append(s.Members, m)
		return nil
	})
	if err != nil {
		return entity.Member{}, err
	}
	return m, nil
}

// AddBook adds a title to the catalog with all copies available.
func (l *Ledger) AddBook(b entity.Book) (entity.Book, error) {
	now := l.now()
	if b.ID == "" {
		b.ID = fmt.Sprintf("b%d", now.UnixMilli())
	}
	if b.ISBN == "" {
		b.ISBN = "000-0000000000"
	}
	if b.PublishYear == 0 {
		b.PublishYear = now.Year()
	}
	if b.Publisher == "" {
		b.Publisher = "Unknown"
	}
	if b.TotalCopies < 1 {
		b.TotalCopies = 1
	}
	b.AvailableCopies = b.TotalCopies

	err := l.store.Update(func(s *store.State) error {
		if _, ok := s.FindBook(b.ID); ok {
			return ErrBookExists
		}
		if _, ok := s.FindBook(b.ISBN); ok && b.ISBN != "000-0000000000" {
			return ErrBookExists
		}
		s.Books = append(s.Books, b)
		return nil
	})
	if err != nil {
		return entity.Book{}, err
	}
	return b, nil
}

// AddAdmin appends a staff admin account with a sequential ID.
func (l *Ledger) AddAdmin(a entity.Admin) (entity.Admin, error) {
	err := l.store.Update(func(s *store.State) error {
		if _, ok := s.FindAdminByUsername(a.Username); ok {
			return ErrAdminExists
		}
		a.ID = fmt.Sprintf("A%03d", len(s.Admins)+1)
		if a.Role == "" {
			a.Role = "Staff"
		}
		s.Admins = append(s.Admins, a)
		return nil
	})
	if err != nil {
		return entity.Admin{}, err
	}
	return a, nil
}

// RecordAdminLogin stamps the admin's last-login time.
func (l *Ledger) RecordAdminLogin(username string) error {
	now := l.now()
	return l.store.Update(func(s *store.State) error {
		i, ok := s.FindAdminByUsername(username)
		if !ok {
			return ErrAdminNotFound
		}
		s.Admins[i].LastLogin = &now
		return nil
	})
}

// MarkNotificationRead acknowledges a single feed entry.
func (l *Ledger) MarkNotificationRead(id string) error {
	return l.store.Update(func(s *store.State) error {
		for i := range s.Notifications {
			if s.Notifications[i].ID == id {
				s.Notifications[i].IsRead = true
				return nil
			}
		}
		return ErrNotificationNotFound
	})
}

// MarkAllNotificationsRead acknowledges the whole feed.
func (l *Ledger) MarkAllNotificationsRead() {
	_ = l.store.Update(func(s *store.State) error {
		for i := range s.Notifications {
			s.Notifications[i].IsRead = true
		}
		return nil
	})
}

// UpdateSettings replaces the library settings.
func (l *Ledger) UpdateSettings(cfg entity.Settings) {
	_ = l.store.Update(func(s *store.State) error {
		s.Settings = cfg
		return nil
	})
}

// freeCopyID picks the lowest-numbered copy of the book that is not
// currently out on loan.
func freeCopyID(s *store.State, book entity.Book) (string, bool) {
	open := s.OpenCopyIDs(book.ID)
	for seq := 1; seq <= book.TotalCopies; seq++ {
		id := fmt.Sprintf("%s_c%d", book.ID, seq)
		if !open[id] {
			return id, true
		}
	}
	return "", false
}

func (l *Ledger) notify(s *store.State, userID, title, message string, typ entity.NotificationType, now time.Time) {
	n := entity.Notification{
		ID:      fmt.Sprintf("n%d", now.UnixNano()),
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    typ,
		Date:    now,
	}
	s.Notifications = append([]entity.Notification{n}, s.Notifications...)
}
