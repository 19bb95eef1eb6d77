package store

import (
	"time"

	"libratech/internal/entity"
)

// NewSeeded builds a Memory pre-loaded with the demo catalog, members,
// admins, and historical transactions. The availability and borrow
// counters are derived from the open transactions rather than written
// by hand, so the seeded state always satisfies the conservation
// invariant (available + open == total).
//
// memberHash and adminHash are bcrypt hashes for the shared starter
// passwords of the seeded accounts.
func NewSeeded(adminHash, memberHash string) *Memory {
	m := New()
	_ = m.Update(func(s *State) error {
		s.Settings = entity.Settings{
			LibraryName: "LibraTech LMS",
			Language:    "en",
		}
		s.Books = seedBooks()
		s.Members = seedMembers(memberHash)
		s.Transactions = seedTransactions()
		s.Admins = seedAdmins(adminHash)

		for i := range s.Books {
			open := len(s.OpenCopyIDs(s.Books[i].ID))
			s.Books[i].AvailableCopies = s.Books[i].TotalCopies - open
		}
		for i := range s.Members {
			count := 0
			for _, tx := range s.Transactions {
				if tx.MemberID == s.Members[i].ID && tx.IsOpen() {
					count++
				}
			}
			s.Members[i].CurrentBorrows = count
		}
		return nil
	})
	return m
}

func seedBooks() []entity.Book {
	return []entity.Book{
		{
			ID: "b1", ISBN: "978-0134685991", Title: "Effective Java",
			Author: "Joshua Bloch", Publisher: "Addison-Wesley", PublishYear: 2018,
			Category: "Computer Science", Location: "2F-CS-01", Price: 45.00,
			TotalCopies: 5, CoverURL: "https://picsum.photos/200/300?random=1",
		},
		{
			ID: "b2", ISBN: "978-0262033848", Title: "Introduction to Algorithms",
			Author: "Thomas H. Cormen", Publisher: "MIT Press", PublishYear: 2009,
			Category: "Computer Science", Location: "2F-CS-02", Price: 90.00,
			TotalCopies: 3, CoverURL: "https://picsum.photos/200/300?random=2",
		},
		{
			ID: "b3", ISBN: "978-1400079988", Title: "War and Peace",
			Author: "Leo Tolstoy", Publisher: "Vintage", PublishYear: 1869,
			Category: "Literature", Location: "1F-LIT-05", Price: 20.00,
			TotalCopies: 2, CoverURL: "https://picsum.photos/200/300?random=3",
		},
		{
			ID: "b4", ISBN: "978-0062316097", Title: "Sapiens: A Brief History of Humankind",
			Author: "Yuval Noah Harari", Publisher: "Harper", PublishYear: 2015,
			Category: "History", Location: "3F-HIS-12", Price: 35.00,
			TotalCopies: 8, CoverURL: "https://picsum.photos/200/300?random=4",
		},
	}
}

func seedMembers(memberHash string) []entity.Member {
	return []entity.Member{
		{
			ID: "S2023001", Name: "Alice Johnson", Role: entity.RoleStudent,
			Department: "Computer Science", Email: "alice.j@uni.edu",
			Status: entity.MemberActive, JoinDate: date(2023, 9, 1),
			MaxBorrows: 5, PasswordHash: memberHash,
		},
		{
			ID: "T2010055", Name: "Dr. Robert Smith", Role: entity.RoleTeacher,
			Department: "History", Email: "r.smith@uni.edu",
			Status: entity.MemberActive, JoinDate: date(2010, 8, 15),
			MaxBorrows: 20, PasswordHash: memberHash,
		},
		{
			ID: "S2023045", Name: "Michael Brown", Role: entity.RoleStudent,
			Department: "Physics", Email: "mike.b@uni.edu",
			Status: entity.MemberSuspended, JoinDate: date(2023, 9, 1),
			MaxBorrows: 5, TotalFinesDue: 15.50, PasswordHash: memberHash,
		},
	}
}

func seedTransactions() []entity.Transaction {
	returned := date(2023, 10, 14)
	return []entity.Transaction{
		{
			ID: "tx_1002", BookID: "b1", CopyID: "b1_c1", BookTitle: "Effective Java",
			MemberID: "S2023001", MemberName: "Alice Johnson",
			CheckoutDate: date(2023, 10, 20), DueDate: date(2023, 11, 3),
		},
		{
			ID: "tx_1001", BookID: "b2", CopyID: "b2_c1", BookTitle: "Introduction to Algorithms",
			MemberID: "S2023001", MemberName: "Alice Johnson",
			CheckoutDate: date(2023, 10, 1), DueDate: date(2023, 10, 15),
			ReturnDate: &returned,
		},
		{
			ID: "tx_1003", BookID: "b4", CopyID: "b4_c2", BookTitle: "Sapiens: A Brief History of Humankind",
			MemberID: "S2023045", MemberName: "Michael Brown",
			CheckoutDate: date(2023, 9, 1), DueDate: date(2023, 9, 15),
			FineAmount: 15.50,
		},
	}
}

func seedAdmins(adminHash string) []entity.Admin {
	w := date(2024, 3, 19)
	a := date(2024, 3, 20)
	return []entity.Admin{
		{
			ID: "A001", Name: "System Admin", Email: "admin@library.com",
			Username: "admin", Role: "Super Admin", LastLogin: &a,
			PasswordHash: adminHash,
		},
		{
			ID: "A002", Name: "Librarian Wang", Email: "wang@library.com",
			Username: "wang", Role: "Staff", LastLogin: &w,
			PasswordHash: adminHash,
		},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
