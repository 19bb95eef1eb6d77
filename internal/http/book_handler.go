package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"libratech/internal/entity"
	"libratech/internal/ledger"
	"libratech/internal/store"
)

type BookHandler struct {
	store  *store.Memory
	ledger *ledger.Ledger
}

func NewBookHandler(st *store.Memory, led *ledger.Ledger) *BookHandler {
	return &BookHandler{store: st, ledger: led}
}

// List returns the catalog, optionally filtered by a free-text query
// over title, author and ISBN, and by category.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))
	category := strings.TrimSpace(r.URL.Query().Get("category"))

	var books []entity.Book
	for _, b := range h.store.Books() {
		if category != "" && b.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(b.Title), q) &&
			!strings.Contains(strings.ToLower(b.Author), q) &&
			!strings.Contains(strings.ToLower(b.ISBN), q) {
			continue
		}
		books = append(books, b)
	}
	if books == nil {
		books = []entity.Book{}
	}

	JSONSuccess(w, books, map[string]any{"total": len(books)})
}

// Get resolves a book by ID or ISBN from the trailing path segment.
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	const prefix = "/books/"
	identifier := strings.TrimPrefix(r.URL.Path, prefix)
	if identifier == "" || strings.Contains(identifier, "/") {
		http.NotFound(w, r)
		return
	}

	book, ok := h.store.FindBook(identifier)
	if !ok {
		JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		return
	}
	JSONSuccess(w, book, nil)
}

// History lists every transaction ever recorded against a book,
// newest first, with the derived status of each.
func (h *BookHandler) History(w http.ResponseWriter, r *http.Request) {
	identifier := strings.TrimPrefix(r.URL.Path, "/books/")
	identifier = strings.TrimSuffix(identifier, "/history")
	if identifier == "" || strings.Contains(identifier, "/") {
		http.NotFound(w, r)
		return
	}

	book, ok := h.store.FindBook(identifier)
	if !ok {
		JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		return
	}

	history := []transactionView{}
	now := h.ledger.Now()
	for _, tx := range h.store.Transactions() {
		if tx.BookID == book.ID {
			history = append(history, newTransactionView(tx, now))
		}
	}

	JSONSuccess(w, history, map[string]any{"total": len(history)})
}

type addBookReq struct {
	Title       string  `json:"title" validate:"required,min=1,max=200"`
	Author      string  `json:"author" validate:"required,min=1,max=100"`
	ISBN        string  `json:"isbn" validate:"omitempty,isbn"`
	Publisher   string  `json:"publisher" validate:"max=100"`
	PublishYear int     `json:"publish_year" validate:"omitempty,gte=1400,lte=2100"`
	Category    string  `json:"category" validate:"max=50"`
	Location    string  `json:"location" validate:"max=50"`
	Price       float64 `json:"price" validate:"gte=0"`
	TotalCopies int     `json:"total_copies" validate:"omitempty,gte=1,lte=1000"`
	CoverURL    string  `json:"cover_url" validate:"omitempty,url"`
}

// Create adds a title to the catalog. Admin only.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req addBookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Author = strings.TrimSpace(req.Author)

	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	book, err := h.ledger.AddBook(entity.Book{
		Title:       req.Title,
		Author:      req.Author,
		ISBN:        req.ISBN,
		Publisher:   req.Publisher,
		PublishYear: req.PublishYear,
		Category:    req.Category,
		Location:    req.Location,
		Price:       req.Price,
		TotalCopies: req.TotalCopies,
		CoverURL:    req.CoverURL,
	})
	if err != nil {
		JSONError(w, http.StatusConflict, "ALREADY_EXISTS", "Book already in catalog", nil)
		return
	}

	JSONSuccessCreated(w, book)
}
