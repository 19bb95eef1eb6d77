// Package store holds the whole library state in memory. There is no
// persistence layer: every collection is volatile for the process
// lifetime, and all cross-collection mutation happens inside a single
// write transaction so readers never observe a half-applied operation.
package store

import (
	"strings"
	"sync"

	"libratech/internal/entity"
)

// State is the complete in-memory dataset. Transactions and
// notifications are kept newest-first, matching insertion by prepend.
type State struct {
	Books         []entity.Book
	Members       []entity.Member
	Transactions  []entity.Transaction
	Reservations  []entity.Reservation
	Notifications []entity.Notification
	Admins        []entity.Admin
	Settings      entity.Settings
}

// FindBook resolves a book by primary ID or by ISBN.
func (s *State) FindBook(idOrISBN string) (int, bool) {
	for i := range s.Books {
		if s.Books[i].ID == idOrISBN || s.Books[i].ISBN == idOrISBN {
			return i, true
		}
	}
	return -1, false
}

func (s *State) FindMember(id string) (int, bool) {
	for i := range s.Members {
		if s.Members[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

func (s *State) FindAdminByUsername(username string) (int, bool) {
	for i := range s.Admins {
		if strings.EqualFold(s.Admins[i].Username, username) {
			return i, true
		}
	}
	return -1, false
}

// OpenCopyIDs returns the copy IDs of the given book that are
// currently out on loan.
func (s *State) OpenCopyIDs(bookID string) map[string]bool {
	out := make(map[string]bool)
	for _, tx := range s.Transactions {
		if tx.BookID == bookID && tx.IsOpen() {
			out[tx.CopyID] = true
		}
	}
	return out
}

// Memory guards a State behind a RW mutex. Write access goes through
// Update; read accessors return copies so callers cannot mutate shared
// slices.
type Memory struct {
	mu    sync.RWMutex
	state State
}

func New() *Memory {
	return &Memory{}
}

// Update runs fn under the write lock. If fn returns an error the
// state is restored to the snapshot taken before fn ran, so a failed
// operation leaves no partial mutation behind.
func (m *Memory) Update(fn func(*State) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	snapshot := cloneState(m.state)
	if err := fn(&m.state); err != nil {
		m.state = snapshot
		return err
	}
	return nil
}

// View runs fn with read access to the state. fn must not mutate
// anything it is handed.
func (m *Memory) View(fn func(*State)) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	fn(&m.state)
}

func (m *Memory) Books() []entity.Book {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]entity.Book(nil), m.state.Books...)
}

func (m *Memory) FindBook(idOrISBN string) (entity.Book, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i, ok := m.state.FindBook(idOrISBN); ok {
		return m.state.Books[i], true
	}
	return entity.Book{}, false
}

func (m *Memory) Members() []entity.Member {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]entity.Member(nil), m.state.Members...)
}

func (m *Memory) FindMember(id string) (entity.Member, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i, ok := m.state.FindMember(id); ok {
		return m.state.Members[i], true
	}
	return entity.Member{}, false
}

func (m *Memory) Transactions() []entity.Transaction {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]entity.Transaction(nil), m.state.Transactions...)
}

func (m *Memory) Reservations() []entity.Reservation {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]entity.Reservation(nil), m.state.Reservations...)
}

func (m *Memory) Notifications() []entity.Notification {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]entity.Notification(nil), m.state.Notifications...)
}

func (m *Memory) Admins() []entity.Admin {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]entity.Admin(nil), m.state.Admins...)
}

func (m *Memory) FindAdminByUsername(username string) (entity.Admin, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i, ok := m.state.FindAdminByUsername(username); ok {
		return m.state.Admins[i], true
	}
	return entity.Admin{}, false
}

func (m *Memory) Settings() entity.Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Settings
}

func cloneState(s State) State {
	return State{
		Books:         append([]entity.Book(nil), s.Books...),
		Members:       append([]entity.Member(nil), s.Members...),
		Transactions:  append([]entity.Transaction(nil), s.Transactions...),
		Reservations:  append([]entity.Reservation(nil), s.Reservations...),
		Notifications: append([]entity.Notification(nil), s.Notifications...),
		Admins:        append([]entity.Admin(nil), s.Admins...),
		Settings:      s.Settings,
	}
}
