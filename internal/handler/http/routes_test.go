package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// doRequest runs a request through the full router. token is sent as a
// Bearer credential when not empty.
func doRequest(t *testing.T, h *Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// decodeBody decodes the recorder body into a value of type T.
func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

func messageOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[map[string]string](t, rec)["message"]
}

// ─────────────────────────────────────────────
// Init route registration
// ─────────────────────────────────────────────

var protectedRoutes = []struct {
	method string
	path   string
}{
	{http.MethodDelete, "/api/users/account"},
	{http.MethodPost, "/api/posts"},
	{http.MethodPut, "/api/posts/1"},
	{http.MethodDelete, "/api/posts/1"},
	{http.MethodPost, "/api/posts/1/like"},
	{http.MethodPost, "/api/posts/1/dislike"},
}

func TestInit_ProtectedRoutesRequireToken(t *testing.T) {
	h := newTestHandler(nil)

	for _, tc := range protectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := doRequest(t, h, tc.method, tc.path, "", "")

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Authentication required", messageOf(t, rec))
		})
	}
}

func TestInit_ProtectedRoutesRejectInvalidToken(t *testing.T) {
	h := newTestHandler(nil)

	for _, tc := range protectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := doRequest(t, h, tc.method, tc.path, "", "forged")

			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Equal(t, "Invalid or expired token", messageOf(t, rec))
		})
	}
}

func TestInit_UnknownRouteReturnsJSON404(t *testing.T) {
	rec := doRequest(t, newTestHandler(nil), http.MethodGet, "/api/nonexistent", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Route not found", messageOf(t, rec))
}

func TestInit_WrongMethodReturnsJSON405(t *testing.T) {
	rec := doRequest(t, newTestHandler(nil), http.MethodPatch, "/api/health", "", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "Method not allowed", messageOf(t, rec))
}

func TestInit_SetsTraceIDHeader(t *testing.T) {
	rec := doRequest(t, newTestHandler(nil), http.MethodGet, "/api/health", "", "")

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestHealth(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		rec := doRequest(t, newTestHandler(nil), http.MethodGet, "/api/health", "", "")

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[map[string]string](t, rec)
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, "test", body["version"])
	})

	t.Run("storage unavailable", func(t *testing.T) {
		h := newTestHandler(nil)
		h.services.AppInfoService = &mockAppInfoService{version: "test", status: "unavailable"}

		rec := doRequest(t, h, http.MethodGet, "/api/health", "", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
