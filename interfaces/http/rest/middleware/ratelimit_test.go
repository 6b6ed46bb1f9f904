package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimiter_BlocksAfterBurst(t *testing.T) {
	handler := NewRateLimiter(2, zap.NewNop()).Handler(okHandler())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/artists", nil)
		req.RemoteAddr = "10.0.0.1:52000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimiter_IsolatesClients(t *testing.T) {
	handler := NewRateLimiter(1, zap.NewNop()).Handler(okHandler())

	first := httptest.NewRequest("GET", "/artists", nil)
	first.RemoteAddr = "10.0.0.1:52000"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, first)
	assert.Equal(t, http.StatusOK, rec.Code)

	other := httptest.NewRequest("GET", "/artists", nil)
	other.RemoteAddr = "10.0.0.2:52000"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusOK, rec.Code, "a different client has its own bucket")
}

func TestRateLimiter_ZeroLimitDisables(t *testing.T) {
	handler := NewRateLimiter(0, zap.NewNop()).Handler(okHandler())

	for i := 0; i < 20; i++ {
		req := httptest.NewRequest("GET", "/artists", nil)
		req.RemoteAddr = "10.0.0.1:52000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestAuthenticate_OpenWhenNoSecretConfigured(t *testing.T) {
	handler := Authenticate("", "artgraph-backend")(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/artists", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticate_RejectsMissingToken(t *testing.T) {
	handler := Authenticate("secret", "artgraph-backend")(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/artists", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
