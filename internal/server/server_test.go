package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/partcalc/internal/logging"
	"github.com/agbru/partcalc/internal/metrics"
)

func newTestServer() *Server {
	return New("127.0.0.1:0", metrics.NewBuildMetrics().Handler(), logging.NewNopLogger())
}

func TestServer_Metrics(t *testing.T) {
	s := newTestServer()

	t.Run("GET returns exposition", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody)
		rec := httptest.NewRecorder()

		s.httpSrv.Handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "partcalc_parts_incorporated_total")
		assert.Contains(t, rec.Body.String(), "go_goroutines")
	})

	t.Run("POST is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/metrics", http.NoBody)
		rec := httptest.NewRecorder()

		s.httpSrv.Handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Equal(t, http.MethodGet, rec.Header().Get("Allow"))
	})
}

func TestServer_Health(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	rec := httptest.NewRecorder()

	s.httpSrv.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok\n", rec.Body.String())
}

func TestSecureHeaders(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	rec := httptest.NewRecorder()

	s.httpSrv.Handler.ServeHTTP(rec, req)

	tests := []struct {
		header string
		want   string
	}{
		{"X-Content-Type-Options", "nosniff"},
		{"X-Frame-Options", "DENY"},
		{"Referrer-Policy", "strict-origin-when-cross-origin"},
		{"Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'"},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, rec.Header().Get(tt.header))
		})
	}
}

func TestServer_UnknownPath(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/nope", http.NoBody)
	rec := httptest.NewRecorder()

	s.httpSrv.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
