package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"academia/config"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func limitedEcho(limiter *RateLimiter) *echo.Echo {
	e := echo.New()
	e.POST("/api/v1/auth/login", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, limiter.Limit)

	return e
}

func enabledRateLimit() *config.RateLimitConfig {
	return &config.RateLimitConfig{
		Enabled:  true,
		Capacity: 5,
		Refill:   1,
		Interval: time.Minute,
		TTL:      time.Hour,
	}
}

func TestRateLimiter_Disabled(t *testing.T) {
	tests := []struct {
		name   string
		client *redis.Client
		cfg    *config.RateLimitConfig
	}{
		{name: "no redis client", cfg: enabledRateLimit()},
		{name: "switched off", client: redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}), cfg: &config.RateLimitConfig{Capacity: 5}},
		{name: "zero capacity", client: redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}), cfg: &config.RateLimitConfig{Enabled: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limiter := NewRateLimiter(RateLimiterParams{
				Client: tt.client,
				Config: &config.Config{RateLimit: tt.cfg},
				Logger: newDiscardLogger(),
			})
			require.False(t, limiter.enabled())
			e := limitedEcho(limiter)

			for range 10 {
				rec := httptest.NewRecorder()
				e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil))
				require.Equal(t, http.StatusOK, rec.Code)
				assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
			}
		})
	}
}

func TestRateLimiter_RedisUnavailableFailsOpen(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	limiter := NewRateLimiter(RateLimiterParams{
		Client: client,
		Config: &config.Config{RateLimit: enabledRateLimit()},
		Logger: newDiscardLogger(),
	})
	require.True(t, limiter.enabled())

	rec := httptest.NewRecorder()
	limitedEcho(limiter).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiter_KeyIsPerClientAndRoute(t *testing.T) {
	limiter := NewRateLimiter(RateLimiterParams{
		Config: &config.Config{RateLimit: enabledRateLimit()},
		Logger: newDiscardLogger(),
	})

	e := echo.New()
	var key string
	e.POST("/api/v1/auth/login", func(c echo.Context) error {
		key = limiter.key(c)

		return c.NoContent(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	req.RemoteAddr = "203.0.113.9:51000"
	e.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "academia:ratelimit:ip:203.0.113.9:route:POST /api/v1/auth/login", key)
}
