package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"libratech/internal/testutil"
)

func TestNotificationHandler_Flow(t *testing.T) {
	env := newTestEnv()

	// a checkout drops a success entry in the member's feed
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPost, "/circulation/checkout",
		map[string]any{"member_id": "S2023001", "book_id": "b3"}, adminToken()))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodGet, "/notifications", nil, memberToken("S2023001")))

	resp := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusOK, resp.Code)
	data := resp.Body["data"].([]interface{})
	assert.Len(t, data, 1)
	entry := data[0].(map[string]interface{})
	assert.Equal(t, "success", entry["type"])
	assert.Equal(t, false, entry["is_read"])
	meta := resp.Body["meta"].(map[string]interface{})
	assert.Equal(t, float64(1), meta["unread"])

	// other members see nothing
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodGet, "/notifications", nil, memberToken("T2010055")))
	resp = testutil.RecordHTTPResponse(w)
	assert.Len(t, resp.Body["data"].([]interface{}), 0)

	// acknowledge the one entry
	id := entry["id"].(string)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPost, "/notifications/"+id+"/read", nil, memberToken("S2023001")))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodGet, "/notifications", nil, memberToken("S2023001")))
	resp = testutil.RecordHTTPResponse(w)
	meta = resp.Body["meta"].(map[string]interface{})
	assert.Equal(t, float64(0), meta["unread"])
}

func TestNotificationHandler_MarkRead_Unknown(t *testing.T) {
	env := newTestEnv()

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPost, "/notifications/n999/read", nil, memberToken("S2023001")))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNotificationHandler_MarkAllRead(t *testing.T) {
	env := newTestEnv()

	// two checkouts, two unread entries
	for _, bookID := range []string{"b3", "b4"} {
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPost, "/circulation/checkout",
			map[string]any{"member_id": "S2023001", "book_id": bookID}, adminToken()))
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPost, "/notifications/read-all", nil, adminToken()))
	assert.Equal(t, http.StatusNoContent, w.Code)

	for _, n := range env.store.Notifications() {
		assert.True(t, n.IsRead)
	}
	assert.Len(t, env.store.Notifications(), 2)
}
