package config

import (
	"os"
	"time"
)

// DefaultJWTSecret is the insecure fallback used when JWT_SECRET is unset.
// main logs a warning when it is active.
const DefaultJWTSecret = "fallback-secret-key"

type Config struct {
	// Database
	DatabaseURL string

	// JWT
	JWTSecret string
	JWTExpiry time.Duration

	// Google Sign-In
	GoogleClientID string

	// Share links are built against the frontend origin
	FrontendURL string

	// Server
	Port        string
	CORSOrigins string
}

func Load() *Config {
	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", ""),

		JWTSecret: getEnv("JWT_SECRET", DefaultJWTSecret),
		JWTExpiry: parseDuration(getEnv("JWT_EXPIRY", "24h")),

		GoogleClientID: getEnv("GOOGLE_CLIENT_ID", ""),

		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),

		Port:        getEnv("PORT", "3000"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 24 * time.Hour
	}
	return d
}
