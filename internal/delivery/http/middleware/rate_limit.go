package middleware

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"skillmatch/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"
)

// WindowCounter counts hits per key inside a fixed window. ok reports whether
// the count is authoritative.
type WindowCounter interface {
	IncrWindow(ctx context.Context, key string, window time.Duration) (count int64, ok bool, err error)
}

type RateLimitMiddleware struct {
	counter WindowCounter
	limit   int
	window  time.Duration
	prefix  string
	log     zerolog.Logger
}

func NewRateLimitMiddleware(counter WindowCounter, prefix string, limit int, window time.Duration, log zerolog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{counter: counter, limit: limit, window: window, prefix: prefix, log: log}
}

// Middleware rejects a caller once it exceeds limit requests in the current
// window. Callers are keyed by the user_id in a JSON body, else by IP. When the
// counter is unavailable requests pass through.
func (m *RateLimitMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if m.counter == nil || m.limit <= 0 {
			return c.Next()
		}

		key := m.prefix + ":" + callerKey(c)
		n, ok, err := m.counter.IncrWindow(c.Context(), key, m.window)
		if err != nil {
			m.log.Debug().Err(err).Str("key", key).Msg("rate limit counter failed")
		}
		if !ok || err != nil {
			return c.Next()
		}

		remaining := int64(m.limit) - n
		if remaining < 0 {
			remaining = 0
		}
		c.Set("X-RateLimit-Limit", strconv.Itoa(m.limit))
		c.Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if n > int64(m.limit) {
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(m.window.Seconds())))
			return response.Error(c, fiber.StatusTooManyRequests, response.MessageTooManyRequests, nil)
		}
		return c.Next()
	}
}

func callerKey(c fiber.Ctx) string {
	var body struct {
		UserID int64 `json:"user_id"`
	}
	if raw := c.Body(); len(raw) > 0 && json.Unmarshal(raw, &body) == nil && body.UserID > 0 {
		return "user:" + strconv.FormatInt(body.UserID, 10)
	}
	return "ip:" + c.IP()
}
