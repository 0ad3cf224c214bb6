package api

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// ClientLimiter hands out one token bucket per client IP.
type ClientLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func NewClientLimiter(requestsPerSecond float64, burst int) *ClientLimiter {
	return &ClientLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

func (l *ClientLimiter) Allow(client string) bool {
	l.mu.Lock()
	limiter, ok := l.limiters[client]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[client] = limiter
	}
	l.mu.Unlock()

	return limiter.Allow()
}

// Middleware rejects requests over the client's budget with 429.
func (l *ClientLimiter) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if !l.Allow(ctx.IP()) {
			return writeError(ctx, fiber.StatusTooManyRequests, "RATE_LIMITED", "rate limit exceeded")
		}
		return ctx.Next()
	}
}
