package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedLimiter_PerKeyBuckets(t *testing.T) {
	l := NewKeyedLimiter(1, 2)

	assert.True(t, l.Allow("a"))
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"), "burst exhausted")
	assert.True(t, l.Allow("b"), "other keys are unaffected")

	l.Remove("a")
	assert.True(t, l.Allow("a"), "a removed key starts with a full bucket")
}

func TestKeyedLimiter_Disabled(t *testing.T) {
	l := NewKeyedLimiter(0, 1)
	for i := 0; i < 100; i++ {
		require.True(t, l.Allow("a"))
	}
}

func TestMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/", Middleware(NewKeyedLimiter(1, 1), func(c *fiber.Ctx) string {
		return c.Get("X-Key")
	}), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	send := func(key string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if key != "" {
			req.Header.Set("X-Key", key)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, http.StatusNoContent, send("k"))
	assert.Equal(t, http.StatusTooManyRequests, send("k"))
	assert.Equal(t, http.StatusNoContent, send(""), "requests without a key pass")
	assert.Equal(t, http.StatusNoContent, send(""))
}
