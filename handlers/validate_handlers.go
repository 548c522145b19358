package handlers

import (
	"github.com/gofiber/fiber/v2"

	"channelmagic/config"
	"channelmagic/internal/heygen"
	"channelmagic/internal/openrouter"
)

// ValidateKeyRequest is the body for both key-validation endpoints.
type ValidateKeyRequest struct {
	APIKey string `json:"apiKey"`
}

// ValidateOpenRouter probes OpenRouter with the submitted key and reports how
// many models it can see.
func ValidateOpenRouter(c *fiber.Ctx) error {
	req := new(ValidateKeyRequest)
	if err := c.BodyParser(req); err != nil || req.APIKey == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"valid": false,
			"error": "API key required",
		})
	}

	client := openrouter.NewClient(req.APIKey)
	modelCount, err := client.ValidateKey(c.Context())
	if err != nil {
		config.Log.WithError(err).Warn("OpenRouter key validation failed")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"valid": false,
			"error": "Invalid API key",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"valid":  true,
		"models": modelCount,
	})
}

// ValidateHeyGen probes HeyGen with the submitted key and reports the
// remaining quota.
func ValidateHeyGen(c *fiber.Ctx) error {
	req := new(ValidateKeyRequest)
	if err := c.BodyParser(req); err != nil || req.APIKey == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"valid": false,
			"error": "API key required",
		})
	}

	client := heygen.NewClient(req.APIKey)
	quota, err := client.ValidateKey(c.Context())
	if err != nil {
		config.Log.WithError(err).Warn("HeyGen key validation failed")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"valid": false,
			"error": "Invalid API key",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"valid": true,
		"quota": quota,
	})
}
