package config

import (
	"os"
	"time"
)

const (
	// Auth
	TokenTTL          = 7 * 24 * time.Hour
	MinPasswordLength = 6

	// Lifecycle
	DefaultResolutionNote = "Complaint resolved by administrator."

	// HTTP server
	ReadTimeout  = 10 * time.Second
	WriteTimeout = 10 * time.Second
)

// Config holds the runtime settings read from the environment. Values fall
// back to the local docker-compose defaults.
type Config struct {
	Port        string
	DatabaseDSN string
	RedisAddr   string
	JWTSecret   string

	// Telegram notifier is optional: empty token disables it.
	TelegramBotToken  string
	TelegramAdminChat string
}

// Load reads the configuration from the environment.
func Load() *Config {
	return &Config{
		Port:              getEnv("PORT", "8080"),
		DatabaseDSN:       getEnv("DATABASE_DSN", "host=localhost user=user password=password dbname=hosteldb port=5432 sslmode=disable"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		JWTSecret:         getEnv("JWT_SECRET", "dev-only-secret-change-me"),
		TelegramBotToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramAdminChat: os.Getenv("TELEGRAM_ADMIN_CHAT_ID"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
