package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/modules/onboarding/models"
	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/modules/onboarding/services"
	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/shared/errx"
)

type ChatHandler struct {
	chatService    *services.ChatService
	profileService *services.ProfileService
}

func NewChatHandler(chatService *services.ChatService, profileService *services.ProfileService) *ChatHandler {
	return &ChatHandler{
		chatService:    chatService,
		profileService: profileService,
	}
}

// PostChat godoc
// @Summary Send a chat turn
// @Description Forward the onboarding dialogue to the AI consultant and store both sides of the turn
// @Tags Chat
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param request body models.ChatRequest true "Dialogue, last entry is the new user message"
// @Success 200 {object} models.ChatResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 429 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /chat [post]
func (h *ChatHandler) PostChat(c *fiber.Ctx) error {
	identity, err := identityOrReject(c)
	if err != nil {
		return respondError(c, err)
	}

	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, errx.Validation("Messages required"))
	}

	reply, err := h.chatService.HandleTurn(c.UserContext(), identity, req.Messages)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reply)
}

// GetHistory godoc
// @Summary Chat history
// @Description Stored messages (oldest first) and the profile collected so far
// @Tags Chat
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} models.HistoryResponse
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /chat/history [get]
func (h *ChatHandler) GetHistory(c *fiber.Ctx) error {
	identity, err := identityOrReject(c)
	if err != nil {
		return respondError(c, err)
	}

	history, err := h.profileService.History(c.UserContext(), identity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(history)
}
