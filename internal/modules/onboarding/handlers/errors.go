package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/core/auth"
	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/shared/errx"
)

// respondError writes the client-safe form of err. Causes stay in the logs.
func respondError(c *fiber.Ctx, err error) error {
	return c.Status(errx.StatusOf(err)).JSON(fiber.Map{
		"error": errx.MessageOf(err),
	})
}

func identityOrReject(c *fiber.Ctx) (*auth.Identity, error) {
	identity, ok := auth.IdentityFrom(c)
	if !ok {
		return nil, errx.Authentication("Unauthorized")
	}
	return identity, nil
}
