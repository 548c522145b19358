package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"channelmagic/config"
	"channelmagic/handlers"
	"channelmagic/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	config.InitLogger(cfg.LogLevel)

	if err := config.InitSupabase(cfg.SupabaseURL, cfg.SupabaseKey); err != nil {
		log.Fatalf("Failed to initialize Supabase: %v", err)
	}

	app := NewApp(config.SupabaseAuth{})

	config.Log.WithField("addr", cfg.ListenAddr).Info("Starting ChannelMagic API")
	log.Fatal(app.Listen(cfg.ListenAddr))
}

// NewApp builds the Fiber application with all routes wired. The auth
// resolver is injected so tests can run without a Supabase backend.
func NewApp(resolver middleware.UserResolver) *fiber.App {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.RequestLogger())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "ok",
			"message": "ChannelMagic API is healthy",
		})
	})

	api := app.Group("/api")
	protected := middleware.Protected(resolver)

	// Channel CRUD, scoped to the authenticated user.
	channels := api.Group("/channels", protected)
	channels.Get("", handlers.ListChannels)
	channels.Post("", handlers.CreateChannel)
	channels.Get("/:id", handlers.GetChannel)
	channels.Put("/:id", handlers.UpdateChannel)
	channels.Delete("/:id", handlers.DeleteChannel)

	// Video (project record) CRUD, scoped to the authenticated user.
	videos := api.Group("/videos", protected)
	videos.Get("", handlers.ListVideos)
	videos.Post("", handlers.CreateVideo)
	videos.Get("/:id", handlers.GetVideo)
	videos.Put("/:id", handlers.UpdateVideo)
	videos.Delete("/:id", handlers.DeleteVideo)

	// Generation endpoints all require a session on top of the caller's own
	// provider key.
	api.Post("/generate/script", protected, handlers.GenerateScript)
	api.Post("/generate/hashtags", protected, handlers.GenerateHashtags)
	api.Post("/generate/video", protected, handlers.GenerateVideo)
	api.Get("/video/status", protected, handlers.VideoStatus)

	api.Post("/validate/openrouter", protected, handlers.ValidateOpenRouter)
	api.Post("/validate/heygen", handlers.ValidateHeyGen)

	api.Post("/auth/logout", handlers.Logout)

	return app
}
