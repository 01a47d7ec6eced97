package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/core/auth"
	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/core/ratelimit"
)

// Routes bundles what RegisterRoutes mounts.
type Routes struct {
	Chat        *ChatHandler
	Onboarding  *OnboardingHandler
	System      *SystemHandler
	JWT         *auth.JWTService
	ChatLimiter *ratelimit.KeyedLimiter
}

func RegisterRoutes(app *fiber.App, r *Routes) {
	// Public
	app.Get("/health", r.System.GetHealth)
	app.Get("/auth/config", r.System.GetAuthConfig)
	app.Get("/debug/config", r.System.GetDebugConfig)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Authenticated
	requireIdentity := auth.RequireIdentity(r.JWT)
	throttle := ratelimit.Middleware(r.ChatLimiter, func(c *fiber.Ctx) string {
		if identity, ok := auth.IdentityFrom(c); ok {
			return identity.Subject
		}
		return ""
	})

	app.Post("/chat", requireIdentity, throttle, r.Chat.PostChat)
	app.Get("/chat/history", requireIdentity, r.Chat.GetHistory)

	app.Get("/account", requireIdentity, r.Onboarding.GetAccount)
	app.Get("/onboarding/progress", requireIdentity, r.Onboarding.GetProgress)
	app.Patch("/settings/company", requireIdentity, r.Onboarding.UpdateCompany)
}
