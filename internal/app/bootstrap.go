package app

import (
	"fmt"
	"strings"

	"skillmatch/internal/config"
	"skillmatch/internal/delivery/http/handler"
	"skillmatch/internal/delivery/http/middleware"
	"skillmatch/internal/delivery/http/routes"
	"skillmatch/internal/logger"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

const chatRateLimitPrefix = "rl:chat"

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

// Bootstrap builds the logger, connects the stores and assembles the HTTP app.
// The returned cleanup releases the pools.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	log := logger.New(cfg.Log).With().Str("app", cfg.App.AppName).Str("env", cfg.App.Environment).Logger()

	c, err := NewContainer(cfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("build container: %w", err)
	}

	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(c.Log).Middleware())
	app.Use(cors.New(cors.Config{AllowOrigins: c.Config.CORS.AllowOrigins}))
	app.Use(middleware.NewErrorMiddleware(c.Log).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	uc := c.Usecases
	limiter := middleware.NewRateLimitMiddleware(
		c.Redis,
		chatRateLimitPrefix,
		c.Config.RateLimit.ChatLimit,
		c.Config.RateLimit.ChatWindow,
		c.Log,
	)

	routes.NewRegistry(routes.Handlers{
		Health:    handler.NewHealthHandler(c.DB, c.Redis),
		Roles:     handler.NewRoleHandler(uc.Catalog, uc.Roles, uc.Simulation),
		Projects:  handler.NewProjectHandler(uc.Projects),
		Assistant: handler.NewAssistantHandler(uc.Assistant, limiter.Middleware()),
		Skills:    handler.NewSkillHandler(uc.Catalog),
		Users:     handler.NewUserHandler(uc.UserProfile),
	}).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
