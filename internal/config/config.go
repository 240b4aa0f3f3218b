package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	Environment string

	// DatabaseURL is optional; when empty the server runs on the
	// in-memory store.
	DatabaseURL string

	// RedisURL is optional; when empty calendar caching is disabled.
	RedisURL string

	CORSOrigins string

	ResendAPIKey string
	FromEmail    string

	// DefaultUserID stands in for an authentication layer: requests
	// without an X-User-ID header are attributed to this user.
	DefaultUserID string

	DefaultLatitude  float64
	DefaultLongitude float64

	SweepInterval time.Duration
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		RedisURL:    getEnv("REDIS_URL", ""),

		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:5173"),

		ResendAPIKey: getEnv("RESEND_API_KEY", ""),
		FromEmail:    getEnv("FROM_EMAIL", "noreply@example.com"),

		DefaultUserID: getEnv("DEFAULT_USER_ID", "00000000-0000-0000-0000-000000000001"),

		// New York City, matching the original web client default.
		DefaultLatitude:  getFloatEnv("DEFAULT_LATITUDE", 40.7128),
		DefaultLongitude: getFloatEnv("DEFAULT_LONGITUDE", -74.0060),

		SweepInterval: getDurationEnv("SWEEP_INTERVAL", time.Minute),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}
