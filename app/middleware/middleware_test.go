package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminGate(t *testing.T) {
	gate := AdminGate("top-secret")

	var called bool
	handler := gate(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid token passes", func(t *testing.T) {
		called = false
		req := httptest.NewRequest("GET", "/api/admin/blogs", nil)
		req.Header.Set("Authorization", "top-secret")
		w := httptest.NewRecorder()

		handler(w, req)

		assert.True(t, called)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token is rejected before the handler runs", func(t *testing.T) {
		called = false
		req := httptest.NewRequest("GET", "/api/admin/blogs", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
	})

	t.Run("wrong token is rejected", func(t *testing.T) {
		called = false
		req := httptest.NewRequest("GET", "/api/admin/blogs", nil)
		req.Header.Set("Authorization", "guess")
		w := httptest.NewRecorder()

		handler(w, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("empty secret rejects everything", func(t *testing.T) {
		emptyGate := AdminGate("")
		h := emptyGate(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run")
		})

		req := httptest.NewRequest("GET", "/api/admin/blogs", nil)
		req.Header.Set("Authorization", "")
		w := httptest.NewRecorder()

		h(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRecoverer(t *testing.T) {
	handler := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
}

func TestCORS(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("preflight short-circuits", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/add/blogs", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("normal request passes through with headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/add/blogs", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Methods"))
	})
}
