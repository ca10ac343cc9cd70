package handler

import (
	"skillmatch/internal/delivery/http/dto"
	"skillmatch/internal/pkg/response"
	"skillmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc usecase.CatalogUsecase
}

func NewSkillHandler(uc usecase.CatalogUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/skills")
	grp.Get("/", h.List)
	grp.Get("/resources", h.Resources)
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListSkills(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]dto.SkillResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.NewSkillResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *SkillHandler) Resources(c fiber.Ctx) error {
	items, err := h.uc.ListResources(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]dto.LearningResourceResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.NewLearningResourceResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
