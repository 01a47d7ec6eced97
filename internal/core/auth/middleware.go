package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/shared/utils"
)

const (
	identityKey = "identity"
	// SessionCookie is where the identity provider's browser SDK keeps the session token
	SessionCookie = "__session"
)

// RequireIdentity rejects requests without a valid session token before any
// handler runs.
func RequireIdentity(jwtService *JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			token = c.Cookies(SessionCookie)
		}
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		identity, err := jwtService.ValidateIdentityToken(token)
		if err != nil {
			utils.LogWarn("rejected identity token", map[string]interface{}{
				"path":  c.Path(),
				"error": err.Error(),
			})
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		c.Locals(identityKey, identity)
		return c.Next()
	}
}

// IdentityFrom returns the identity stored by RequireIdentity.
func IdentityFrom(c *fiber.Ctx) (*Identity, bool) {
	identity, ok := c.Locals(identityKey).(*Identity)
	return identity, ok && identity != nil
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
