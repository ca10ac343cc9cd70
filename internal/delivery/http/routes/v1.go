package routes

import "github.com/gofiber/fiber/v3"

func RegisterV1(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Roles != nil {
		h.Roles.RegisterRoutes(r)
	}
	if h.Projects != nil {
		h.Projects.RegisterRoutes(r)
	}
	if h.Assistant != nil {
		h.Assistant.RegisterRoutes(r)
	}
	if h.Skills != nil {
		h.Skills.RegisterRoutes(r)
	}
	if h.Users != nil {
		h.Users.RegisterRoutes(r)
	}
}
