package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"channelmagic/config"
	"channelmagic/utils"
)

// Logout terminates the Supabase session behind the request's Bearer token.
// A request without a token is a no-op success, matching the idempotent
// sign-out semantics of the auth provider.
func Logout(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	token := strings.TrimPrefix(header, "Bearer ")
	if token == header {
		token = ""
	}

	if token != "" {
		if err := config.SignOut(token); err != nil {
			config.Log.WithError(err).Error("Logout failed")
			return utils.RespondWithError(c, fiber.StatusInternalServerError, "Logout failed")
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}
