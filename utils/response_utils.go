package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// RespondWithError sends the gateway's error shape: {"error": message}.
func RespondWithError(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"error": message,
	})
}

// FormatValidationErrors flattens validator/v10 errors into one message
// suitable for the error response body.
func FormatValidationErrors(err error) string {
	var parts []string
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	for _, fieldErr := range validationErrors {
		part := fmt.Sprintf("Field '%s' failed on the '%s' tag", fieldErr.Field(), fieldErr.Tag())
		if fieldErr.Param() != "" {
			part = fmt.Sprintf("%s (value: %s)", part, fieldErr.Param())
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, "; ")
}

// SanitizeInput trims surrounding whitespace from user-provided text.
func SanitizeInput(input string) string {
	return strings.TrimSpace(input)
}
