package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func limitedHandler(rps float64, burst int) echo.HandlerFunc {
	return RateLimiterWithConfig(rps, burst)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
}

func serve(t *testing.T, e *echo.Echo, handler echo.HandlerFunc, remoteAddr string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	return rec.Code
}

func TestRateLimiter_BurstThenReject(t *testing.T) {
	e := echo.New()
	handler := limitedHandler(0.001, 3)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, serve(t, e, handler, "10.0.0.1:4000"), "request %d", i)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	req.RemoteAddr = "10.0.0.1:4000"
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_006")
}

func TestRateLimiter_IPsHaveSeparateBuckets(t *testing.T) {
	e := echo.New()
	handler := limitedHandler(0.001, 1)

	assert.Equal(t, http.StatusOK, serve(t, e, handler, "10.0.0.1:4000"))
	assert.Equal(t, http.StatusTooManyRequests, serve(t, e, handler, "10.0.0.1:4001"))
	assert.Equal(t, http.StatusOK, serve(t, e, handler, "10.0.0.2:4000"))
}

func TestRateLimiter_SeparateMiddlewaresDoNotShareState(t *testing.T) {
	e := echo.New()
	first := limitedHandler(0.001, 1)
	second := limitedHandler(0.001, 1)

	assert.Equal(t, http.StatusOK, serve(t, e, first, "10.0.0.9:1"))
	assert.Equal(t, http.StatusOK, serve(t, e, second, "10.0.0.9:1"))
}

func TestRateLimiter_Concurrent(t *testing.T) {
	e := echo.New()
	handler := limitedHandler(0.001, 5)

	var ok, limited atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
			req.RemoteAddr = "10.0.0.3:5000"
			rec := httptest.NewRecorder()
			_ = handler(e.NewContext(req, rec))
			switch rec.Code {
			case http.StatusOK:
				ok.Add(1)
			case http.StatusTooManyRequests:
				limited.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(5), ok.Load())
	assert.Equal(t, int32(15), limited.Load())
}

func serveForwarded(t *testing.T, e *echo.Echo, handler echo.HandlerFunc, remoteAddr, forwardedFor string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	req.RemoteAddr = remoteAddr
	req.Header.Set(echo.HeaderXForwardedFor, forwardedFor)
	req.Header.Set(echo.HeaderXRealIP, forwardedFor)
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	return rec.Code
}

func TestRateLimiter_ForgedForwardedForDoesNotResetBucket(t *testing.T) {
	e := echo.New()
	e.IPExtractor = echo.ExtractIPDirect()
	handler := limitedHandler(0.001, 2)

	assert.Equal(t, http.StatusOK, serveForwarded(t, e, handler, "203.0.113.50:4000", "198.51.100.1"))
	assert.Equal(t, http.StatusOK, serveForwarded(t, e, handler, "203.0.113.50:4000", "198.51.100.2"))
	assert.Equal(t, http.StatusTooManyRequests, serveForwarded(t, e, handler, "203.0.113.50:4000", "198.51.100.3"))
}

func TestRateLimiter_TrustedProxyKeysOnForwardedClient(t *testing.T) {
	e := echo.New()
	e.IPExtractor = echo.ExtractIPFromXFFHeader()
	handler := limitedHandler(0.001, 1)

	assert.Equal(t, http.StatusOK, serveForwarded(t, e, handler, "10.0.0.2:4000", "203.0.113.7"))
	assert.Equal(t, http.StatusOK, serveForwarded(t, e, handler, "10.0.0.2:4000", "203.0.113.8"))
	assert.Equal(t, http.StatusTooManyRequests, serveForwarded(t, e, handler, "10.0.0.2:4000", "203.0.113.7"))

	// a hop forged by the client sits left of the proxy-appended address
	assert.Equal(t, http.StatusTooManyRequests, serveForwarded(t, e, handler, "10.0.0.2:4000", "192.0.2.99, 203.0.113.8"))
}

func TestVisitorStore_SweepsIdleVisitors(t *testing.T) {
	store := newVisitorStore(5, 10)
	now := time.Now()

	store.allow("idle", now.Add(-5*time.Minute))
	store.allow("recent", now.Add(-30*time.Second))
	store.lastSweep = now.Add(-2 * time.Minute)
	store.allow("current", now)

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.NotContains(t, store.visitors, "idle")
	assert.Contains(t, store.visitors, "recent")
	assert.Len(t, store.visitors, 2)
}

func TestVisitorStore_Defaults(t *testing.T) {
	store := newVisitorStore(0, -1)

	assert.Equal(t, rate.Limit(defaultRequestsPerSecond), store.limit)
	assert.Equal(t, defaultBurstSize, store.burst)
}
