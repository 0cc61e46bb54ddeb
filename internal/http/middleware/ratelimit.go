package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// RateLimiterConfig bounds how often a single client may submit.
// A non-positive Rate disables limiting.
type RateLimiterConfig struct {
	Rate  rate.Limit
	Burst int
	// IdleTTL is how long a client's bucket survives without traffic.
	IdleTTL time.Duration
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	cfg     RateLimiterConfig
	buckets *cache.Cache
}

// NewRateLimiter creates a limiter. Burst defaults to 1 and IdleTTL to 10 minutes.
func NewRateLimiter(cfg RateLimiterConfig) *RateLimiter {
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = 10 * time.Minute
	}
	return &RateLimiter{
		cfg:     cfg,
		buckets: cache.New(cfg.IdleTTL, 2*cfg.IdleTTL),
	}
}

// Allow reports whether key may proceed now.
func (rl *RateLimiter) Allow(key string) bool {
	if rl.cfg.Rate <= 0 {
		return true
	}
	if v, ok := rl.buckets.Get(key); ok {
		l := v.(*rate.Limiter)
		// touch to extend the idle window
		rl.buckets.SetDefault(key, l)
		return l.Allow()
	}
	l := rate.NewLimiter(rl.cfg.Rate, rl.cfg.Burst)
	if err := rl.buckets.Add(key, l, cache.DefaultExpiration); err != nil {
		// lost the race, use the winner's bucket
		if v, ok := rl.buckets.Get(key); ok {
			l = v.(*rate.Limiter)
		}
	}
	return l.Allow()
}

// Limit rejects POST requests over the budget with 429. Other methods pass.
// Buckets are keyed on the peer address; X-Forwarded-For is client controlled.
func (rl *RateLimiter) Limit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodPost {
			return c.Next()
		}
		if !rl.Allow(c.IP()) {
			c.Set(fiber.HeaderRetryAfter, "60")
			return fiber.NewError(fiber.StatusTooManyRequests, "rate limit exceeded")
		}
		return c.Next()
	}
}

// ClientIP returns the first X-Forwarded-For entry, falling back to the peer
// address. It is recorded with submissions and must not be used for access control.
func ClientIP(c *fiber.Ctx) string {
	if xff := c.Get(fiber.HeaderXForwardedFor); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	return c.IP()
}
