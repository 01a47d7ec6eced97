package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/modules/onboarding/models"
	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/modules/onboarding/services"
	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/shared/errx"
)

type OnboardingHandler struct {
	accountService *services.AccountService
	profileService *services.ProfileService
}

func NewOnboardingHandler(accountService *services.AccountService, profileService *services.ProfileService) *OnboardingHandler {
	return &OnboardingHandler{
		accountService: accountService,
		profileService: profileService,
	}
}

// GetAccount godoc
// @Summary Current account
// @Description Returns the caller's account, creating it on first contact
// @Tags Account
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} models.AccountResponse
// @Failure 401 {object} map[string]interface{}
// @Router /account [get]
func (h *OnboardingHandler) GetAccount(c *fiber.Ctx) error {
	identity, err := identityOrReject(c)
	if err != nil {
		return respondError(c, err)
	}

	account, err := h.accountService.Ensure(c.UserContext(), identity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.NewAccountResponse(account))
}

// GetProgress godoc
// @Summary Onboarding progress
// @Description Current stage, completion percentage and step statuses
// @Tags Onboarding
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} models.ProgressResponse
// @Failure 401 {object} map[string]interface{}
// @Router /onboarding/progress [get]
func (h *OnboardingHandler) GetProgress(c *fiber.Ctx) error {
	identity, err := identityOrReject(c)
	if err != nil {
		return respondError(c, err)
	}

	progress, err := h.profileService.Progress(c.UserContext(), identity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(progress)
}

// UpdateCompany godoc
// @Summary Update company settings
// @Description Merge company name, website or industry into the brand profile
// @Tags Settings
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param request body models.UpdateCompanyRequest true "Fields to change"
// @Success 200 {object} models.Profile
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /settings/company [patch]
func (h *OnboardingHandler) UpdateCompany(c *fiber.Ctx) error {
	identity, err := identityOrReject(c)
	if err != nil {
		return respondError(c, err)
	}

	var req models.UpdateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, errx.Validation("Invalid request body"))
	}

	profile, err := h.profileService.UpdateCompany(c.UserContext(), identity, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}
