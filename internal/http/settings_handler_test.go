package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"libratech/internal/testutil"
)

func TestSettingsHandler_Get(t *testing.T) {
	env := newTestEnv()

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, testutil.NewRequest(http.MethodGet, "/settings", nil))

	resp := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusOK, resp.Code)
	data := resp.Body["data"].(map[string]interface{})
	assert.Equal(t, "LibraTech LMS", data["library_name"])
	assert.Equal(t, "en", data["language"])
}

func TestSettingsHandler_Update(t *testing.T) {
	body := map[string]any{"library_name": "City Library", "language": "zh"}

	t.Run("admin only", func(t *testing.T) {
		env := newTestEnv()

		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPut, "/settings", body, memberToken("S2023001")))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		env := newTestEnv()

		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPut, "/settings", body, adminToken()))
		assert.Equal(t, http.StatusOK, w.Code)

		cfg := env.store.Settings()
		assert.Equal(t, "City Library", cfg.LibraryName)
		assert.Equal(t, "zh", cfg.Language)
	})

	t.Run("unsupported language", func(t *testing.T) {
		env := newTestEnv()

		bad := map[string]any{"library_name": "City Library", "language": "fr"}
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPut, "/settings", bad, adminToken()))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
