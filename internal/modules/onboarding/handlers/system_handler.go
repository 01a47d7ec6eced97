package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/core/llm"
	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/shared/config"
)

type SystemHandler struct {
	cfg        *config.Config
	llmService *llm.Service
	storeName  string
}

func NewSystemHandler(cfg *config.Config, llmService *llm.Service, storeName string) *SystemHandler {
	return &SystemHandler{cfg: cfg, llmService: llmService, storeName: storeName}
}

// GetHealth godoc
// @Summary Service health check
// @Description Check if API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *SystemHandler) GetHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":      "ok",
		"service":     "portal-api",
		"llmProvider": h.llmService.GetProviderName(),
		"store":       h.storeName,
	})
}

// GetAuthConfig godoc
// @Summary Identity widget configuration
// @Description Publishable key the dashboard needs to start sign-in
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /auth/config [get]
func (h *SystemHandler) GetAuthConfig(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"publishableKey": h.cfg.IdentityPublishableKey,
	})
}

// GetDebugConfig godoc
// @Summary Configuration presence check
// @Description Reports which credentials are set, never their values. Disabled in production.
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /debug/config [get]
func (h *SystemHandler) GetDebugConfig(c *fiber.Ctx) error {
	if h.cfg.IsProduction() {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Not found",
		})
	}
	return c.JSON(fiber.Map{
		"hasPublishableKey": h.cfg.IdentityPublishableKey != "",
		"hasSecretKey":      h.cfg.IdentitySecretKey != "",
		"hasLLMKey":         h.cfg.LLMAPIKey != "",
		"hasDatabaseURL":    h.cfg.DatabaseURL != "",
		"llmProvider":       h.cfg.LLMProvider,
		"storeDriver":       h.cfg.StoreDriver,
	})
}
