package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"libratech/internal/auth"
	"libratech/internal/testutil"
)

func TestMemberHandler_List(t *testing.T) {
	env := newTestEnv()

	tests := []struct {
		name          string
		query         string
		expectedTotal float64
	}{
		{name: "all", query: "", expectedTotal: 3},
		{name: "suspended only", query: "?status=Suspended", expectedTotal: 1},
		{name: "active only", query: "?status=Active", expectedTotal: 2},
		{name: "free text over name", query: "?q=alice", expectedTotal: 1},
		{name: "free text over id", query: "?q=t2010", expectedTotal: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			env.router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodGet, "/members"+tt.query, nil, adminToken()))

			resp := testutil.RecordHTTPResponse(w)
			assert.Equal(t, http.StatusOK, resp.Code)
			meta := resp.Body["meta"].(map[string]interface{})
			assert.Equal(t, tt.expectedTotal, meta["total"])
		})
	}
}

func TestMemberHandler_Create(t *testing.T) {
	t.Run("teacher gets the extended ceiling", func(t *testing.T) {
		env := newTestEnv()

		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPost, "/members", map[string]any{
			"name":       "Prof. Chen",
			"email":      "chen@uni.edu",
			"role":       "Teacher",
			"department": "Mathematics",
		}, adminToken()))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusCreated, resp.Code)

		data := resp.Body["data"].(map[string]interface{})
		assert.Equal(t, "Teacher", data["role"])
		assert.Equal(t, float64(20), data["max_borrows"])
		assert.True(t, strings.HasPrefix(data["id"].(string), "T"))

		// starter password works for the new account
		id := data["id"].(string)
		member, ok := env.store.FindMember(id)
		assert.True(t, ok)
		assert.True(t, auth.VerifyPassword(member.PasswordHash, "123456"))
	})

	t.Run("rejects bad role", func(t *testing.T) {
		env := newTestEnv()

		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPost, "/members", map[string]any{
			"name":  "Someone",
			"email": "someone@uni.edu",
			"role":  "Wizard",
		}, adminToken()))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("admin only", func(t *testing.T) {
		env := newTestEnv()

		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodGet, "/members", nil, memberToken("S2023001")))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAdminHandler_CreateAndList(t *testing.T) {
	env := newTestEnv()

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPost, "/admins", map[string]any{
		"name":     "Librarian Lee",
		"email":    "lee@library.com",
		"username": "lee",
		"password": "secret1",
	}, adminToken()))

	resp := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusCreated, resp.Code)
	data := resp.Body["data"].(map[string]interface{})
	assert.Equal(t, "A003", data["id"])
	assert.Equal(t, "Staff", data["role"])

	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodGet, "/admins", nil, adminToken()))
	list := testutil.RecordHTTPResponse(w)
	assert.Len(t, list.Body["data"].([]interface{}), 3)

	// duplicate username
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPost, "/admins", map[string]any{
		"name":     "Another Lee",
		"email":    "lee2@library.com",
		"username": "lee",
		"password": "secret1",
	}, adminToken()))
	assert.Equal(t, http.StatusConflict, w.Code)
}
