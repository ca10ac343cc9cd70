package handler

import (
	"skillmatch/internal/delivery/http/dto"
	"skillmatch/internal/delivery/http/middleware"
	"skillmatch/internal/pkg/response"
	"skillmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AssistantHandler struct {
	uc      usecase.AssistantUsecase
	limiter fiber.Handler
}

// NewAssistantHandler wires the chat endpoint. limiter may be nil.
func NewAssistantHandler(uc usecase.AssistantUsecase, limiter fiber.Handler) *AssistantHandler {
	return &AssistantHandler{uc: uc, limiter: limiter}
}

func (h *AssistantHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/assistant")
	if h.limiter != nil {
		grp.Use(h.limiter)
	}
	grp.Post("/chat", h.Chat)
}

func (h *AssistantHandler) Chat(c fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	out, err := h.uc.HandleChatMessage(c.Context(), usecase.ChatInput{
		UserID:  req.UserID,
		RoleID:  req.RoleID,
		Message: req.Message,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ChatResponse{
		Response:         out.Response,
		SuggestedActions: out.SuggestedActions,
	})
}
