package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the process configuration, loaded from the environment. A
// .env file is honored when present.
type Config struct {
	ListenAddr    string
	SupabaseURL   string
	SupabaseKey   string
	DefaultLocale string
	LogLevel      string
}

// Load reads configuration from the environment. SUPABASE_URL and
// SUPABASE_SERVICE_KEY are required; everything else has a default.
func Load() (*Config, error) {
	// Missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	cfg := &Config{
		ListenAddr:    getEnv("LISTEN_ADDR", ":8080"),
		SupabaseURL:   os.Getenv("SUPABASE_URL"),
		SupabaseKey:   os.Getenv("SUPABASE_SERVICE_KEY"),
		DefaultLocale: getEnv("DEFAULT_LOCALE", "de"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}

	if cfg.SupabaseURL == "" {
		return nil, fmt.Errorf("SUPABASE_URL must be set")
	}
	if cfg.SupabaseKey == "" {
		return nil, fmt.Errorf("SUPABASE_SERVICE_KEY must be set")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
