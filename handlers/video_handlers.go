package handlers

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	postgrest "github.com/supabase-community/postgrest-go"

	"channelmagic/config"
	"channelmagic/middleware"
	"channelmagic/models"
	"channelmagic/utils"
)

// CreateVideoRequest defines the expected request body for creating a video
// record. The state machine posts the project summary in this shape.
type CreateVideoRequest struct {
	Title     string   `json:"title" validate:"required"`
	Topic     string   `json:"topic" validate:"required"`
	Status    string   `json:"status"`
	ChannelID *string  `json:"channel_id,omitempty"`
	Platforms []string `json:"platforms,omitempty"`
}

// ListVideos returns the authenticated user's video records, newest first.
// An optional channel_id query parameter narrows the list to one channel.
func ListVideos(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	query := config.SupabaseClient.From("videos").
		Select("*", "", false).
		Eq("user_id", userID.String()).
		Order("created_at", &postgrest.OrderOpts{Ascending: false})

	if channelID := c.Query("channel_id"); channelID != "" {
		query = query.Eq("channel_id", channelID)
	}

	body, _, err := query.Execute()
	if err != nil {
		config.Log.WithError(err).Error("Error fetching videos from Supabase")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Failed to fetch videos")
	}

	var videos []models.Video
	if err := json.Unmarshal(body, &videos); err != nil {
		config.Log.WithError(err).Error("Error unmarshalling videos data")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Failed to fetch videos")
	}

	return c.Status(fiber.StatusOK).JSON(videos)
}

// CreateVideo inserts a video record owned by the authenticated user and
// returns the created row, including the server-assigned id the client keeps
// as its videoId.
func CreateVideo(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	req := new(CreateVideoRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, utils.FormatValidationErrors(err))
	}

	status := req.Status
	if status == "" {
		status = string(models.StatusDraft)
	}

	now := time.Now()
	record := map[string]interface{}{
		"user_id":    userID.String(),
		"title":      utils.SanitizeInput(req.Title),
		"topic":      utils.SanitizeInput(req.Topic),
		"status":     status,
		"created_at": now,
		"updated_at": now,
	}
	if req.ChannelID != nil {
		record["channel_id"] = *req.ChannelID
	}
	if req.Platforms != nil {
		record["platforms"] = req.Platforms
	}

	body, _, err := config.SupabaseClient.From("videos").
		Insert(record, false, "", "representation", "").
		Execute()
	if err != nil {
		config.Log.WithError(err).Error("Error executing Supabase insert for video")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Failed to create video")
	}

	var results []models.Video
	if err := json.Unmarshal(body, &results); err != nil || len(results) == 0 {
		config.Log.WithError(err).Error("Error unmarshalling video creation response")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Failed to create video")
	}

	return c.Status(fiber.StatusCreated).JSON(results[0])
}

// GetVideo retrieves one video record by id, scoped to the authenticated user.
func GetVideo(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	videoID := c.Params("id")

	body, _, err := config.SupabaseClient.From("videos").
		Select("*", "", false).
		Eq("id", videoID).
		Eq("user_id", userID.String()).
		Execute()
	if err != nil {
		config.Log.WithError(err).WithField("video_id", videoID).Error("Error fetching video")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Failed to fetch video")
	}

	var videos []models.Video
	if err := json.Unmarshal(body, &videos); err != nil {
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Failed to fetch video")
	}
	if len(videos) == 0 {
		return utils.RespondWithError(c, fiber.StatusNotFound, "Video not found")
	}

	return c.Status(fiber.StatusOK).JSON(videos[0])
}

// UpdateVideo applies a partial update to one video record. The client's
// updateInDatabase PUTs arbitrary fields here; last write wins, there is no
// version token.
func UpdateVideo(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	videoID := c.Params("id")

	var payload map[string]interface{}
	if err := c.BodyParser(&payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	payload["updated_at"] = time.Now()

	body, _, err := config.SupabaseClient.From("videos").
		Update(payload, "representation", "").
		Eq("id", videoID).
		Eq("user_id", userID.String()).
		Execute()
	if err != nil {
		config.Log.WithError(err).WithField("video_id", videoID).Error("Error updating video")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Failed to update video")
	}

	var results []models.Video
	if err := json.Unmarshal(body, &results); err != nil {
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Failed to update video")
	}
	if len(results) == 0 {
		return utils.RespondWithError(c, fiber.StatusNotFound, "Video not found")
	}

	return c.Status(fiber.StatusOK).JSON(results[0])
}

// DeleteVideo removes one video record, scoped to the authenticated user.
func DeleteVideo(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	videoID := c.Params("id")

	_, _, err := config.SupabaseClient.From("videos").
		Delete("", "").
		Eq("id", videoID).
		Eq("user_id", userID.String()).
		Execute()
	if err != nil {
		config.Log.WithError(err).WithField("video_id", videoID).Error("Error deleting video")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Failed to delete video")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}
