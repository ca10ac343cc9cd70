package routes

import (
	"skillmatch/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

// Handlers groups everything the router mounts. Nil entries are skipped.
type Handlers struct {
	Health    *handler.HealthHandler
	Roles     *handler.RoleHandler
	Projects  *handler.ProjectHandler
	Assistant *handler.AssistantHandler
	Skills    *handler.SkillHandler
	Users     *handler.UserHandler
}

type Registry struct {
	h Handlers
}

func NewRegistry(h Handlers) *Registry {
	return &Registry{h: h}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.h.Health != nil {
		r.h.Health.RegisterRoutes(app)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.h)
}
