package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"libratech/internal/testutil"
)

func TestBookHandler_List(t *testing.T) {
	env := newTestEnv()

	tests := []struct {
		name          string
		query         string
		expectedTotal float64
	}{
		{name: "all books", query: "", expectedTotal: 4},
		{name: "free text over title", query: "?q=algorithms", expectedTotal: 1},
		{name: "free text over author", query: "?q=tolstoy", expectedTotal: 1},
		{name: "free text over isbn", query: "?q=978-0134685991", expectedTotal: 1},
		{name: "category filter", query: "?category=History", expectedTotal: 1},
		{name: "no match", query: "?q=zzzzz", expectedTotal: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			env.router.ServeHTTP(w, testutil.NewRequest(http.MethodGet, "/books"+tt.query, nil))

			resp := testutil.RecordHTTPResponse(w)
			assert.Equal(t, http.StatusOK, resp.Code)
			meta := resp.Body["meta"].(map[string]interface{})
			assert.Equal(t, tt.expectedTotal, meta["total"])
		})
	}
}

func TestBookHandler_Get(t *testing.T) {
	env := newTestEnv()

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expectedID     string
	}{
		{name: "by id", path: "/books/b1", expectedStatus: http.StatusOK, expectedID: "b1"},
		{name: "by isbn", path: "/books/978-0262033848", expectedStatus: http.StatusOK, expectedID: "b2"},
		{name: "unknown", path: "/books/b999", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			env.router.ServeHTTP(w, testutil.NewRequest(http.MethodGet, tt.path, nil))

			resp := testutil.RecordHTTPResponse(w)
			assert.Equal(t, tt.expectedStatus, resp.Code)
			if tt.expectedID != "" {
				data := resp.Body["data"].(map[string]interface{})
				assert.Equal(t, tt.expectedID, data["id"])
			}
		})
	}
}

func TestBookHandler_Create(t *testing.T) {
	body := map[string]any{
		"title":        "The Go Programming Language",
		"author":       "Alan A. A. Donovan",
		"isbn":         "978-0134190440",
		"category":     "Computer Science",
		"total_copies": 3,
	}

	t.Run("requires admin", func(t *testing.T) {
		env := newTestEnv()

		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, testutil.NewRequest(http.MethodPost, "/books", body))
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = httptest.NewRecorder()
		env.router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPost, "/books", body, memberToken("S2023001")))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		env := newTestEnv()

		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPost, "/books", body, adminToken()))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusCreated, resp.Code)
		data := resp.Body["data"].(map[string]interface{})
		assert.Equal(t, float64(3), data["total_copies"])
		assert.Equal(t, float64(3), data["available_copies"])

		book, ok := env.store.FindBook("978-0134190440")
		assert.True(t, ok)
		assert.Equal(t, "The Go Programming Language", book.Title)
	})

	t.Run("duplicate isbn", func(t *testing.T) {
		env := newTestEnv()

		dup := map[string]any{"title": "Copy", "author": "Somebody", "isbn": "978-0134685991"}
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPost, "/books", dup, adminToken()))
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("bad isbn", func(t *testing.T) {
		env := newTestEnv()

		bad := map[string]any{"title": "X", "author": "Y", "isbn": "not-an-isbn"}
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPost, "/books", bad, adminToken()))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBookHandler_History(t *testing.T) {
	env := newTestEnv()

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodGet, "/books/b1/history", nil, memberToken("S2023001")))

	resp := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusOK, resp.Code)

	data := resp.Body["data"].([]interface{})
	assert.Len(t, data, 1)
	tx := data[0].(map[string]interface{})
	assert.Equal(t, "tx_1002", tx["id"])
	// due 2023-11-03, never returned: reads Overdue today
	assert.Equal(t, "Overdue", tx["status"])
}

func TestBookHandler_History_RequiresToken(t *testing.T) {
	env := newTestEnv()

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, testutil.NewRequest(http.MethodGet, "/books/b1/history", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
