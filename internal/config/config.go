package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port          string
	Env           string
	LogLevel      string
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string

	// Completion endpoint (Ollama-compatible)
	OllamaURL     string
	OllamaModel   string
	OllamaTimeout time.Duration

	// Automation webhook. Empty disables lead.created notifications.
	AutomationWebhookURL string

	// Scheduling links per meeting type, prefilled with name/email at handoff.
	BookingPhoneURL    string
	BookingVideoURL    string
	BookingInPersonURL string

	CORSAllowedOrigins []string

	// Per-IP rate limit for the public intake endpoints.
	RateLimitPerSecond float64
	RateLimitBurst     int
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		OllamaURL:     strings.TrimRight(getEnv("OLLAMA_URL", "http://localhost:11434"), "/"),
		OllamaModel:   getEnv("OLLAMA_MODEL", "phi3"),
		OllamaTimeout: getEnvAsDuration("OLLAMA_TIMEOUT", 60*time.Second),

		AutomationWebhookURL: getEnv("N8N_WEBHOOK_URL", ""),

		BookingPhoneURL:    getEnv("BOOKING_PHONE_URL", "https://calendly.com/murr-lane/30min"),
		BookingVideoURL:    getEnv("BOOKING_VIDEO_URL", "https://calendly.com/murr-lane/30-minute-meeting"),
		BookingInPersonURL: getEnv("BOOKING_IN_PERSON_URL", "https://calendly.com/murr-lane/30-minute-meeting-1"),

		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "")),

		RateLimitPerSecond: getEnvAsFloat("RATE_LIMIT_PER_SECOND", 5),
		RateLimitBurst:     getEnvAsInt("RATE_LIMIT_BURST", 10),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
