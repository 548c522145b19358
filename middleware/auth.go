package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys set by the auth middleware.
const (
	LocalUserID      = "user_id"
	LocalAccessToken = "access_token"
)

// UserResolver turns a session access token into a user id. The concrete
// implementation asks Supabase; tests substitute a fake.
type UserResolver interface {
	ResolveUser(token string) (uuid.UUID, error)
}

// Protected rejects requests without a valid Bearer session token. On
// success, the user id and token are stored in the request locals.
func Protected(resolver UserResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return unauthorized(c)
		}

		userID, err := resolver.ResolveUser(token)
		if err != nil {
			return unauthorized(c)
		}

		c.Locals(LocalUserID, userID)
		c.Locals(LocalAccessToken, token)
		return c.Next()
	}
}

// UserID returns the authenticated user's id from the request locals.
func UserID(c *fiber.Ctx) uuid.UUID {
	id, _ := c.Locals(LocalUserID).(uuid.UUID)
	return id
}

// AccessToken returns the session token from the request locals.
func AccessToken(c *fiber.Ctx) string {
	token, _ := c.Locals(LocalAccessToken).(string)
	return token
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Unauthorized",
	})
}
