package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imadgeboyega/destiny-fusion/internal/cache"
	"github.com/imadgeboyega/destiny-fusion/internal/config"
	"github.com/imadgeboyega/destiny-fusion/internal/fusion"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	mem, err := cache.NewMemoryBackend(16)
	require.NoError(t, err)
	svc := fusion.NewService(cache.New(mem, cache.Config{Enabled: true}), 5)
	return newRouter(fusion.NewHandler(svc))
}

func TestHealthAndInfo(t *testing.T) {
	h := testRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var health map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health["status"])
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), fusion.BasePath+"/matrix")
}

func TestRequestIDIsPropagated(t *testing.T) {
	h := testRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestFusionRoutesAreMounted(t *testing.T) {
	h := testRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, fusion.BasePath+"/matrix/summary", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, fusion.BasePath+"/matrix", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, fusion.BasePath+"/matrix", strings.NewReader("{")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnknownRoutesAnswerJSON(t *testing.T) {
	h := testRouter(t)
	tests := []struct {
		method, path string
		code         int
		msg          string
	}{
		{http.MethodGet, "/nope", http.StatusNotFound, "route not found: /nope"},
		{http.MethodPost, "/health", http.StatusMethodNotAllowed, "POST not allowed on /health"},
		{http.MethodGet, fusion.BasePath + "/nope", http.StatusNotFound, "route not found: " + fusion.BasePath + "/nope"},
		{http.MethodGet, fusion.BasePath + "/compatibility", http.StatusMethodNotAllowed, "GET not allowed on " + fusion.BasePath + "/compatibility"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.msg, body["error"])
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	h := testRouter(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestNewCacheBackendFallsBackToMemory(t *testing.T) {
	ctx := context.Background()
	base := func() *config.Config {
		cfg, err := config.Load()
		require.NoError(t, err)
		cfg.CacheTimeout = 50 * time.Millisecond
		return cfg
	}

	cfg := base()
	cfg.CacheBackend = config.BackendNone
	b, _, cleaner := newCacheBackend(ctx, cfg)
	assert.Equal(t, "none", b.Name())
	assert.Nil(t, cleaner)

	cfg = base()
	cfg.CacheBackend = config.BackendRedis
	cfg.RedisURL = "redis://127.0.0.1:1/0"
	b, closer, cleaner := newCacheBackend(ctx, cfg)
	assert.Equal(t, "memory", b.Name())
	assert.Nil(t, cleaner)
	assert.NoError(t, closer.Close())

	cfg = base()
	cfg.CacheBackend = config.BackendPostgres
	cfg.DatabaseURL = "postgres://fusion@127.0.0.1:1/fusion?sslmode=disable&connect_timeout=1"
	b, _, cleaner = newCacheBackend(ctx, cfg)
	assert.Equal(t, "memory", b.Name())
	assert.Nil(t, cleaner)
}
