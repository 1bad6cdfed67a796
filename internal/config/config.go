// Package config loads runtime configuration from environment variables,
// optionally seeded from a .env file.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values. DatabaseURL may be empty,
// in which case the service runs against the in-memory store.
type Config struct {
	Port        string // HTTP port to listen on
	DatabaseURL string // PostgreSQL connection string (optional)
	AIAPIURL    string // base URL of the OpenAI-compatible suggestion API
	AIAPIKey    string // API key for the suggestion API
	AIModel     string // model name used for suggestions
}

// Load reads the configuration. A missing .env file is not an error; every
// value has a usable default except the AI key, which stays empty until set.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:        getenv("APP_PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		AIAPIURL:    getenv("AI_API_URL", "https://api.openai.com/v1"),
		AIAPIKey:    os.Getenv("AI_API_KEY"),
		AIModel:     getenv("AI_MODEL", "gpt-4o-mini"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
