package handler

import (
	"context"
	"time"

	"skillmatch/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

const healthTimeout = 2 * time.Second

// HealthHandler reports process liveness plus dependency status. Only the
// database is required; a missing Redis degrades rate limiting, not service.
type HealthHandler struct {
	db    Pinger
	redis Pinger
}

func NewHealthHandler(db, redis Pinger) *HealthHandler {
	return &HealthHandler{db: db, redis: redis}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Check)
}

type healthResponse struct {
	Database string `json:"database"`
	Redis    string `json:"redis"`
}

func (h *HealthHandler) Check(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), healthTimeout)
	defer cancel()

	res := healthResponse{Database: pingStatus(ctx, h.db), Redis: pingStatus(ctx, h.redis)}
	if res.Database != "up" {
		return response.Error(c, fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, res)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func pingStatus(ctx context.Context, p Pinger) string {
	if p == nil {
		return "disabled"
	}
	if err := p.Ping(ctx); err != nil {
		return "down"
	}
	return "up"
}
