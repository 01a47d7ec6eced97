package ratelimit

import (
	"github.com/gofiber/fiber/v2"
)

// Middleware throttles requests per key. Requests whose key cannot be
// determined pass through; authentication runs before this.
func Middleware(limiter *KeyedLimiter, keyFn func(c *fiber.Ctx) string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := keyFn(c)
		if key == "" || limiter.Allow(key) {
			return c.Next()
		}
		c.Set(fiber.HeaderRetryAfter, "60")
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error": "Too many messages, please slow down",
		})
	}
}
