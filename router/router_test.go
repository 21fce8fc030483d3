package router

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cantina/config"
	"cantina/ledger"
	"cantina/logger"
	"cantina/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter(maxRequests int) http.Handler {
	cfg := &config.Config{Server: config.ServerConfig{
		Mode:      "test",
		RateLimit: config.RateLimitConfig{MaxRequests: maxRequests, Window: time.Minute},
	}}
	return SetupRouter(cfg, Deps{
		Store: ledger.New(storage.NewMemoryAdapter()),
		Log:   logger.Discard(),
		Now:   func() time.Time { return time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC) },
	})
}

func TestSetupRouter_Routes(t *testing.T) {
	r := testRouter(100)

	for _, path := range []string{
		"/health",
		"/api/v1/snapshot",
		"/api/v1/dashboard",
		"/api/v1/incomes",
		"/api/v1/expenses",
		"/api/v1/categories",
		"/api/v1/reports/years",
		"/api/v1/reports/2024/5",
		"/api/v1/reports/2024/5/export/csv",
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestSetupRouter_CORSPreflight(t *testing.T) {
	w := httptest.NewRecorder()
	testRouter(100).ServeHTTP(w, httptest.NewRequest("OPTIONS", "/api/v1/incomes", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSetupRouter_RateLimitOnlyOnWrites(t *testing.T) {
	r := testRouter(1)
	post := func() int {
		req := httptest.NewRequest("POST", "/api/v1/categories", bytes.NewBufferString(`{"name":"Gás","type":"expense"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}
	require.Equal(t, http.StatusOK, post())
	assert.Equal(t, http.StatusTooManyRequests, post())

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/categories", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestSetupRouter_NilLoggerDefaultsToDiscard(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{Mode: "test"}}
	r := SetupRouter(cfg, Deps{Store: ledger.New(storage.NewMemoryAdapter())})

	w := httptest.NewRecorder()
	require.NotPanics(t, func() {
		r.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/categories", nil))
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
