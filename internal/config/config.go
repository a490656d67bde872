// Package config centralises environment configuration.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment, once,
// at process start.
type Config struct {
	// Port the HTTP server listens on.
	Port string

	// DatabasePath is the SQLite database file.
	DatabasePath string

	// StaticPath is the directory holding the built single-page app.
	StaticPath string

	// AdminEmail/AdminPassword back the login endpoint. The password
	// may be a bcrypt hash or plaintext.
	AdminEmail    string
	AdminPassword string
	AdminName     string

	// JWTSecret signs session tokens issued by the login endpoint.
	JWTSecret string

	// TokenHours is the session token lifetime in hours.
	TokenHours int
}

// Load reads configuration from the environment with sensible defaults.
// A .env file in the working directory is loaded first if present;
// explicit environment variables win over it.
func Load() Config {
	_ = godotenv.Load() // missing .env is fine

	return Config{
		Port:          getEnv("PORT", "3000"),
		DatabasePath:  getEnv("DATABASE_PATH", "./data/furnitrack.db"),
		StaticPath:    getEnv("STATIC_PATH", "./dist"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@furnitrack.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		AdminName:     getEnv("ADMIN_NAME", "Administrator"),
		JWTSecret:     getEnv("JWT_SECRET", "furnitrack-dev-secret"),
		TokenHours:    getIntEnv("TOKEN_HOURS", 24),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
