package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"skillmatch/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCounter struct {
	hits map[string]int64
	down bool
}

func (m *memCounter) IncrWindow(_ context.Context, key string, _ time.Duration) (int64, bool, error) {
	if m.down {
		return 0, false, nil
	}
	if m.hits == nil {
		m.hits = make(map[string]int64)
	}
	m.hits[key]++
	return m.hits[key], true, nil
}

func decode(t *testing.T, body io.Reader) response.SemanticResponse {
	t.Helper()
	raw, err := io.ReadAll(body)
	require.NoError(t, err)
	var env response.SemanticResponse
	require.NoError(t, json.Unmarshal(raw, &env))
	return env
}

func newTestApp(handler fiber.Handler, extra ...fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(NewErrorMiddleware(zerolog.Nop()).Middleware())
	for _, h := range extra {
		app.Use(h)
	}
	app.Post("/", handler)
	return app
}

func TestErrorMiddleware_AppError(t *testing.T) {
	app := newTestApp(func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusNotFound, "role not found", nil, errors.New("no rows"))
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "role not found", decode(t, resp.Body).Message)
}

func TestErrorMiddleware_HidesServerErrors(t *testing.T) {
	app := newTestApp(func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusInternalServerError, "db password wrong", nil, nil)
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, response.MessageInternalServerError, decode(t, resp.Body).Message)
}

func TestErrorMiddleware_RecoversPanic(t *testing.T) {
	app := newTestApp(func(c fiber.Ctx) error {
		panic("boom")
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestAccessLog_SetsRequestID(t *testing.T) {
	app := newTestApp(func(c fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	}, NewAccessLogMiddleware(zerolog.Nop()).Middleware())

	req := httptest.NewRequest("POST", "/", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(HeaderRequestID))

	resp, err = app.Test(httptest.NewRequest("POST", "/", nil))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(HeaderRequestID))
}

func TestRateLimit_RejectsOverLimit(t *testing.T) {
	counter := &memCounter{}
	rl := NewRateLimitMiddleware(counter, "rl:chat", 2, time.Minute, zerolog.Nop())
	app := newTestApp(func(c fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}, rl.Middleware())

	send := func(userID string) int {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"user_id":`+userID+`,"message":"hi"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, fiber.StatusOK, send("1"))
	assert.Equal(t, fiber.StatusOK, send("1"))
	assert.Equal(t, fiber.StatusTooManyRequests, send("1"))
	assert.Equal(t, fiber.StatusOK, send("2"))
	assert.Equal(t, int64(3), counter.hits["rl:chat:user:1"])
}

func TestRateLimit_BypassWhenCounterDown(t *testing.T) {
	rl := NewRateLimitMiddleware(&memCounter{down: true}, "rl:chat", 1, time.Minute, zerolog.Nop())
	app := newTestApp(func(c fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}, rl.Middleware())

	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest("POST", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
}
