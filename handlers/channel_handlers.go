package handlers

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"channelmagic/config"
	"channelmagic/middleware"
	"channelmagic/models"
	"channelmagic/utils"
)

// CreateChannelRequest defines the expected request body for creating a
// channel. Name is required; Description is optional.
type CreateChannelRequest struct {
	Name        string  `json:"name" validate:"required,min=2"`
	Description *string `json:"description,omitempty"`
}

// ListChannels returns every channel owned by the authenticated user.
func ListChannels(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	body, _, err := config.SupabaseClient.From("channels").
		Select("*", "", false).
		Eq("user_id", userID.String()).
		Execute()
	if err != nil {
		config.Log.WithError(err).Error("Error fetching channels from Supabase")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Failed to fetch channels")
	}

	var channels []models.Channel
	if err := json.Unmarshal(body, &channels); err != nil {
		config.Log.WithError(err).Error("Error unmarshalling channels data")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Failed to fetch channels")
	}

	return c.Status(fiber.StatusOK).JSON(channels)
}

// CreateChannel inserts a channel record owned by the authenticated user and
// returns the created row.
func CreateChannel(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	req := new(CreateChannelRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, utils.FormatValidationErrors(err))
	}

	now := time.Now()
	record := map[string]interface{}{
		"user_id":    userID.String(),
		"name":       utils.SanitizeInput(req.Name),
		"created_at": now,
		"updated_at": now,
	}
	if req.Description != nil {
		record["description"] = *req.Description
	}

	body, _, err := config.SupabaseClient.From("channels").
		Insert(record, false, "", "representation", "").
		Execute()
	if err != nil {
		config.Log.WithError(err).Error("Error executing Supabase insert for channel")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Failed to create channel")
	}

	var results []models.Channel
	if err := json.Unmarshal(body, &results); err != nil || len(results) == 0 {
		config.Log.WithError(err).Error("Error unmarshalling channel creation response")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Failed to create channel")
	}

	return c.Status(fiber.StatusCreated).JSON(results[0])
}

// GetChannel retrieves one channel by id, scoped to the authenticated user.
func GetChannel(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	channelID := c.Params("id")

	body, _, err := config.SupabaseClient.From("channels").
		Select("*", "", false).
		Eq("id", channelID).
		Eq("user_id", userID.String()).
		Execute()
	if err != nil {
		config.Log.WithError(err).WithField("channel_id", channelID).Error("Error fetching channel")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Failed to fetch channel")
	}

	var channels []models.Channel
	if err := json.Unmarshal(body, &channels); err != nil {
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Failed to fetch channel")
	}
	if len(channels) == 0 {
		return utils.RespondWithError(c, fiber.StatusNotFound, "Channel not found")
	}

	return c.Status(fiber.StatusOK).JSON(channels[0])
}

// UpdateChannel applies a partial update to one channel, scoped to the
// authenticated user.
func UpdateChannel(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	channelID := c.Params("id")

	var payload map[string]interface{}
	if err := c.BodyParser(&payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	payload["updated_at"] = time.Now()

	body, _, err := config.SupabaseClient.From("channels").
		Update(payload, "representation", "").
		Eq("id", channelID).
		Eq("user_id", userID.String()).
		Execute()
	if err != nil {
		config.Log.WithError(err).WithField("channel_id", channelID).Error("Error updating channel")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Failed to update channel")
	}

	var results []models.Channel
	if err := json.Unmarshal(body, &results); err != nil {
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Failed to update channel")
	}
	if len(results) == 0 {
		return utils.RespondWithError(c, fiber.StatusNotFound, "Channel not found")
	}

	return c.Status(fiber.StatusOK).JSON(results[0])
}

// DeleteChannel removes one channel, scoped to the authenticated user.
func DeleteChannel(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	channelID := c.Params("id")

	_, _, err := config.SupabaseClient.From("channels").
		Delete("", "").
		Eq("id", channelID).
		Eq("user_id", userID.String()).
		Execute()
	if err != nil {
		config.Log.WithError(err).WithField("channel_id", channelID).Error("Error deleting channel")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Failed to delete channel")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}
