package handler

import (
	"skillmatch/internal/delivery/http/dto"
	"skillmatch/internal/delivery/http/middleware"
	"skillmatch/internal/pkg/response"
	"skillmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RoleHandler struct {
	catalog   usecase.CatalogUsecase
	recommend usecase.RoleRecommendationUsecase
	simulate  usecase.SimulationUsecase
}

func NewRoleHandler(catalog usecase.CatalogUsecase, recommend usecase.RoleRecommendationUsecase, simulate usecase.SimulationUsecase) *RoleHandler {
	return &RoleHandler{catalog: catalog, recommend: recommend, simulate: simulate}
}

func (h *RoleHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/roles")
	grp.Get("/", h.List)
	grp.Get("/recommend/:user_id", h.Recommend)
	grp.Post("/simulate", h.Simulate)
	grp.Get("/:role_id", h.Get)
	grp.Get("/:role_id/readiness/:user_id", h.Readiness)
}

func (h *RoleHandler) List(c fiber.Ctx) error {
	roles, err := h.catalog.ListRoles(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		res = append(res, dto.NewRoleResponse(r))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *RoleHandler) Get(c fiber.Ctx) error {
	roleID, err := pathID(c, "role_id")
	if err != nil {
		return err
	}

	role, err := h.catalog.GetRole(c.Context(), roleID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewRoleResponse(role))
}

func (h *RoleHandler) Recommend(c fiber.Ctx) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}

	items, err := h.recommend.RecommendRoles(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewRoleReadinessList(items))
}

func (h *RoleHandler) Readiness(c fiber.Ctx) error {
	roleID, err := pathID(c, "role_id")
	if err != nil {
		return err
	}
	userID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}

	out, err := h.catalog.ComputeReadiness(c.Context(), userID, roleID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewRoleReadinessResponse(out))
}

func (h *RoleHandler) Simulate(c fiber.Ctx) error {
	var req dto.SimulationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	out, err := h.simulate.Simulate(c.Context(), usecase.SimulationInput{
		UserID:      req.UserID,
		RoleID:      req.RoleID,
		SkillID:     req.SkillID,
		TargetLevel: req.TargetLevel,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SimulationResponse{
		CurrentReadiness: out.CurrentReadiness,
		NewReadiness:     out.NewReadiness,
		Improvement:      out.Improvement,
		SkillSimulated:   out.SkillSimulated,
	})
}
