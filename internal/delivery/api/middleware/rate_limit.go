package middleware

import (
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"academia/config"
	"academia/internal/delivery/api/response"
	deliverycontext "academia/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const rateLimitKeyPrefix = "academia:ratelimit"

// tokenBucketScript refills the bucket by whole intervals, then takes one token.
// It returns {allowed, remaining, retry_after_ms}.
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local refill_tokens = tonumber(ARGV[3])
local interval_ms = tonumber(ARGV[4])
local ttl_seconds = tonumber(ARGV[5])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if tokens == nil or last_refill == nil then
	tokens = capacity
	last_refill = now_ms
end

if interval_ms > 0 and refill_tokens > 0 then
	local elapsed = math.max(0, now_ms - last_refill)
	local intervals = math.floor(elapsed / interval_ms)
	if intervals > 0 then
		tokens = math.min(capacity, tokens + (intervals * refill_tokens))
		last_refill = last_refill + (intervals * interval_ms)
	end
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
	allowed = 1
	tokens = tokens - 1
else
	retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)

return { allowed, tokens, retry_after_ms }
`)

// RateLimiter is a Redis token bucket keyed by client IP and route.
type RateLimiter struct {
	client *redis.Client
	cfg    *config.RateLimitConfig
	logger *slog.Logger
	now    func() time.Time
}

// RateLimiterParams holds dependencies for RateLimiter, injected by Fx.
type RateLimiterParams struct {
	fx.In

	Client *redis.Client `optional:"true"`
	Config *config.Config
	Logger *slog.Logger
}

// NewRateLimiter creates the limiter. Without Redis or when disabled it lets every request through.
func NewRateLimiter(params RateLimiterParams) *RateLimiter {
	return &RateLimiter{
		client: params.Client,
		cfg:    params.Config.RateLimit,
		logger: params.Logger,
		now:    time.Now,
	}
}

func (l *RateLimiter) enabled() bool {
	return l.client != nil && l.cfg != nil && l.cfg.Enabled && l.cfg.Capacity > 0
}

// Limit takes one token per request and answers 429 when the bucket is empty.
// Redis failures let the request through.
func (l *RateLimiter) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	if !l.enabled() {
		return next
	}

	return func(c echo.Context) error {
		ctx := c.Request().Context()
		key := l.key(c)

		vals, err := tokenBucketScript.Run(ctx, l.client, []string{key},
			l.now().UnixMilli(),
			l.cfg.Capacity,
			l.cfg.Refill,
			l.cfg.Interval.Milliseconds(),
			int64(math.Ceil(l.cfg.TTL.Seconds())),
		).Int64Slice()
		if err != nil || len(vals) != 3 {
			deliverycontext.GetLoggerOrDefault(ctx, l.logger).Warn("Rate limiter unavailable, allowing request",
				slog.String("key", key),
				slog.Any("error", err))

			return next(c)
		}

		allowed, remaining, retryMs := vals[0] == 1, vals[1], vals[2]
		header := c.Response().Header()
		header.Set("X-RateLimit-Limit", strconv.Itoa(l.cfg.Capacity))
		header.Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if !allowed {
			retryAfter := int(math.Ceil(float64(retryMs) / float64(time.Second/time.Millisecond)))
			header.Set("Retry-After", strconv.Itoa(retryAfter))

			return response.TooManyRequests(c, retryAfter)
		}

		return next(c)
	}
}

func (l *RateLimiter) key(c echo.Context) string {
	ip := c.RealIP()
	if ip == "" {
		ip = "unknown"
	}

	return strings.Join([]string{rateLimitKeyPrefix, "ip", ip, "route", c.Request().Method + " " + c.Path()}, ":")
}
