package handler

import (
	"net/url"

	"skillmatch/internal/delivery/http/dto"
	"skillmatch/internal/delivery/http/middleware"
	"skillmatch/internal/pkg/response"
	"skillmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	uc usecase.UserProfileUsecase
}

func NewUserHandler(uc usecase.UserProfileUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/users")
	grp.Post("/", h.Create)
	grp.Get("/by-email/:email", h.GetByEmail)
	grp.Get("/:user_id", h.Get)
	grp.Put("/:user_id", h.Update)
	grp.Post("/:user_id/skills", h.UpsertSkill)
	grp.Put("/:user_id/skills", h.UpsertSkill)
	grp.Delete("/:user_id/skills/:skill_id", h.RemoveSkill)
}

func (h *UserHandler) Create(c fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	u, err := h.uc.CreateUser(c.Context(), usecase.CreateUserInput{
		FullName:         req.FullName,
		Email:            req.Email,
		CurrentRoleTitle: req.CurrentRoleTitle,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewUserResponse(u))
}

func (h *UserHandler) GetByEmail(c fiber.Ctx) error {
	email, err := url.PathUnescape(c.Params("email"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid email", nil, err)
	}

	u, err := h.uc.GetUserByEmail(c.Context(), email)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(u))
}

func (h *UserHandler) Update(c fiber.Ctx) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}

	var req dto.UpdateUserRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	u, err := h.uc.UpdateUser(c.Context(), userID, usecase.UpdateUserInput{
		FullName:         req.FullName,
		CurrentRoleTitle: req.CurrentRoleTitle,
		TargetRoleID:     req.TargetRoleID,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(u))
}

func (h *UserHandler) Get(c fiber.Ctx) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}

	u, err := h.uc.GetUser(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(u))
}

func (h *UserHandler) UpsertSkill(c fiber.Ctx) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}

	var req dto.UpsertUserSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	saved, err := h.uc.UpsertSkill(c.Context(), userID, usecase.UpsertSkillInput{
		SkillID:          req.SkillID,
		ProficiencyLevel: req.ProficiencyLevel,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserSkillResponse(saved))
}

func (h *UserHandler) RemoveSkill(c fiber.Ctx) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}
	skillID, err := pathID(c, "skill_id")
	if err != nil {
		return err
	}

	if err := h.uc.RemoveSkill(c.Context(), userID, skillID); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
