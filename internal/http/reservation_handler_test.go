package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"libratech/internal/testutil"
)

func TestReservationHandler_Create(t *testing.T) {
	t.Run("member reserves for self", func(t *testing.T) {
		env := newTestEnv()

		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPost, "/reservations",
			map[string]any{"book_id": "b2"}, memberToken("S2023001")))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusCreated, resp.Code)

		data := resp.Body["data"].(map[string]interface{})
		assert.Equal(t, "S2023001", data["member_id"])
		assert.Equal(t, "Introduction to Algorithms", data["book_title"])
		assert.Equal(t, "Pending", data["status"])
	})

	t.Run("admin must name the member", func(t *testing.T) {
		env := newTestEnv()

		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPost, "/reservations",
			map[string]any{"book_id": "b2"}, adminToken()))
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = httptest.NewRecorder()
		env.router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPost, "/reservations",
			map[string]any{"book_id": "b2", "member_id": "T2010055"}, adminToken()))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusCreated, resp.Code)
		data := resp.Body["data"].(map[string]interface{})
		assert.Equal(t, "T2010055", data["member_id"])
	})

	t.Run("duplicate holds allowed", func(t *testing.T) {
		env := newTestEnv()

		for i := 0; i < 2; i++ {
			w := httptest.NewRecorder()
			env.router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPost, "/reservations",
				map[string]any{"book_id": "b2"}, memberToken("S2023001")))
			assert.Equal(t, http.StatusCreated, w.Code)
		}
		assert.Len(t, env.store.Reservations(), 2)
	})

	t.Run("unknown book", func(t *testing.T) {
		env := newTestEnv()

		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPost, "/reservations",
			map[string]any{"book_id": "b999"}, memberToken("S2023001")))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestReservationHandler_List(t *testing.T) {
	env := newTestEnv()

	// one hold each for two members
	for _, tok := range []string{memberToken("S2023001"), memberToken("T2010055")} {
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPost, "/reservations",
			map[string]any{"book_id": "b1"}, tok))
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	t.Run("member sees own only", func(t *testing.T) {
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodGet, "/reservations", nil, memberToken("S2023001")))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Len(t, resp.Body["data"].([]interface{}), 1)
	})

	t.Run("admin sees all", func(t *testing.T) {
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodGet, "/reservations", nil, adminToken()))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Len(t, resp.Body["data"].([]interface{}), 2)
	})
}
