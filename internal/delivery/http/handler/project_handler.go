package handler

import (
	"skillmatch/internal/delivery/http/dto"
	"skillmatch/internal/pkg/response"
	"skillmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProjectHandler struct {
	uc usecase.ProjectRecommendationUsecase
}

func NewProjectHandler(uc usecase.ProjectRecommendationUsecase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

func (h *ProjectHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/projects")
	grp.Get("/recommend/:user_id", h.Recommend)
}

func (h *ProjectHandler) Recommend(c fiber.Ctx) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}

	items, err := h.uc.RecommendProjects(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProjectMatchList(items))
}
