package handlers

import (
	"github.com/gofiber/fiber/v2"

	"channelmagic/config"
	"channelmagic/internal/hashtags"
	"channelmagic/internal/heygen"
	"channelmagic/internal/openrouter"
	"channelmagic/internal/prompts"
	"channelmagic/models"
	"channelmagic/utils"
)

// GenerateScriptRequest is the body for POST /api/generate/script.
type GenerateScriptRequest struct {
	APIKey         string `json:"apiKey"`
	Topic          string `json:"topic"`
	Style          string `json:"style"`
	Duration       string `json:"duration"`
	Platform       string `json:"platform"`
	Locale         string `json:"locale"`
	Niche          string `json:"niche,omitempty"`
	TargetAudience string `json:"targetAudience,omitempty"`
}

// GenerateHashtagsRequest is the body for POST /api/generate/hashtags.
type GenerateHashtagsRequest struct {
	Topic    string `json:"topic"`
	Platform string `json:"platform"`
	Script   string `json:"script,omitempty"`
	Locale   string `json:"locale,omitempty"`
}

// GenerateVideoRequest is the body for POST /api/generate/video.
type GenerateVideoRequest struct {
	APIKey          string `json:"apiKey"`
	Script          string `json:"script"`
	AvatarID        string `json:"avatarId,omitempty"`
	VoiceID         string `json:"voiceId,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
}

// GenerateScript forwards a script prompt to OpenRouter with the caller's own
// API key and returns the completion text. Upstream failures come back as 500
// with the provider's message.
func GenerateScript(c *fiber.Ctx) error {
	req := new(GenerateScriptRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if req.APIKey == "" {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "OpenRouter API key required")
	}

	required := []struct{ name, value string }{
		{"topic", req.Topic},
		{"style", req.Style},
		{"duration", req.Duration},
		{"platform", req.Platform},
		{"locale", req.Locale},
	}
	for _, field := range required {
		if field.value == "" {
			return utils.RespondWithError(c, fiber.StatusBadRequest, "Missing required field: "+field.name)
		}
	}

	if !models.ValidContentStyle(models.ContentStyle(req.Style)) {
		return utils.RespondWithError(c, fiber.StatusBadRequest,
			"Invalid style. Must be one of: educational, entertaining, inspirational")
	}
	if req.Duration != "short" && req.Duration != "long" {
		return utils.RespondWithError(c, fiber.StatusBadRequest,
			"Invalid duration. Must be one of: short, long")
	}
	if !models.ValidPlatform(models.Platform(req.Platform)) {
		return utils.RespondWithError(c, fiber.StatusBadRequest,
			"Invalid platform. Must be one of: youtube, tiktok, instagram")
	}
	if req.Locale != "de" && req.Locale != "en" {
		return utils.RespondWithError(c, fiber.StatusBadRequest,
			"Invalid locale. Must be one of: de, en")
	}

	client := openrouter.NewClient(req.APIKey)
	script, err := client.GenerateScript(c.Context(), prompts.ScriptParams{
		Topic:          req.Topic,
		Style:          models.ContentStyle(req.Style),
		Duration:       req.Duration,
		Platform:       models.Platform(req.Platform),
		Locale:         req.Locale,
		Niche:          req.Niche,
		TargetAudience: req.TargetAudience,
	})
	if err != nil {
		config.Log.WithError(err).Error("Script generation failed")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"script":  script,
	})
}

// GenerateHashtags runs the local hashtag generator. No upstream call.
func GenerateHashtags(c *fiber.Ctx) error {
	req := new(GenerateHashtagsRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Topic == "" {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Topic is required")
	}
	if req.Platform == "" {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Platform is required")
	}
	if !models.ValidPlatform(models.Platform(req.Platform)) {
		return utils.RespondWithError(c, fiber.StatusBadRequest,
			"Invalid platform. Must be one of: youtube, tiktok, instagram")
	}

	locale := req.Locale
	if locale == "" {
		locale = "de"
	}

	tags := hashtags.Generate(req.Topic, models.Platform(req.Platform), req.Script, locale)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":  true,
		"hashtags": tags,
		"platform": req.Platform,
		"count":    len(tags),
	})
}

// GenerateVideo submits an avatar render job to HeyGen with the caller's own
// API key and returns the provider's job id.
func GenerateVideo(c *fiber.Ctx) error {
	req := new(GenerateVideoRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if req.APIKey == "" {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "HeyGen API key required")
	}
	if req.Script == "" {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Script is required")
	}

	client := heygen.NewClient(req.APIKey)
	videoID, err := client.CreateVideo(c.Context(), heygen.VideoParams{
		Script:          req.Script,
		AvatarID:        req.AvatarID,
		VoiceID:         req.VoiceID,
		BackgroundColor: req.BackgroundColor,
	})
	if err != nil {
		config.Log.WithError(err).Error("Video generation failed")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"videoId": videoID,
	})
}

// VideoStatus proxies one status poll to HeyGen. The client polls this on a
// fixed interval and stops on a terminal status.
func VideoStatus(c *fiber.Ctx) error {
	apiKey := c.Query("apiKey")
	videoID := c.Query("videoId")

	if apiKey == "" {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "HeyGen API key required")
	}
	if videoID == "" {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Video ID required")
	}

	client := heygen.NewClient(apiKey)
	status, err := client.GetStatus(c.Context(), videoID)
	if err != nil {
		config.Log.WithError(err).Error("Video status check failed")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"status":  status,
	})
}
