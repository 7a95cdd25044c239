package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Port string
	Env  string

	// Document store
	MongoURL string
	MongoDB  string

	// Redis (optional; enables rate limiting)
	RedisURL string

	// WhatsApp Cloud API
	WhatsAppToken   string
	WhatsAppPhoneID string
	WhatsAppBaseURL string

	// Outbound relay defaults
	DefaultSender      string
	DefaultCountryCode string

	// Rate limiting
	RateLimitWhitelist []string // IPs or CIDRs exempt from rate limiting
	AutoBlockEnabled   bool     // Enable auto-blocking after repeated violations
}

// Load reads configuration from environment variables.
// In development, it loads from .env file if present.
// In production, it panics on missing required variables.
func Load() *Config {
	// Load .env file if it exists (for development)
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		MongoURL:           getEnv("MONGO_URL", "mongodb://localhost:27017"),
		MongoDB:            getEnv("MONGO_DB", "wts"),
		RedisURL:           os.Getenv("REDIS_URL"),
		WhatsAppToken:      os.Getenv("WHATSAPP_TOKEN"),
		WhatsAppPhoneID:    os.Getenv("WHATSAPP_PHONE_NUMBER_ID"),
		WhatsAppBaseURL:    os.Getenv("WHATSAPP_API_BASE"),
		DefaultSender:      getEnv("DEFAULT_SENDER", "浸會大學 SEE - 西貢/將軍澳社區"),
		DefaultCountryCode: getEnv("DEFAULT_COUNTRY_CODE", "852"),
		AutoBlockEnabled:   getEnv("AUTO_BLOCK_ENABLED", "false") == "true",
	}

	// Parse whitelist (comma-separated IPs or CIDRs)
	if whitelist := os.Getenv("RATE_LIMIT_WHITELIST"); whitelist != "" {
		for _, entry := range strings.Split(whitelist, ",") {
			entry = strings.TrimSpace(entry)
			if entry != "" {
				cfg.RateLimitWhitelist = append(cfg.RateLimitWhitelist, entry)
			}
		}
	}

	// In production, require the store and messaging credentials
	if cfg.Env == "production" {
		if os.Getenv("MONGO_URL") == "" {
			panic("MONGO_URL is required in production")
		}
		if cfg.WhatsAppToken == "" || cfg.WhatsAppPhoneID == "" {
			panic("WHATSAPP_TOKEN and WHATSAPP_PHONE_NUMBER_ID are required in production")
		}
	}

	return cfg
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
