package config

import (
	"os"
	"strconv"
)

// Config holds application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Auth     AuthConfig
	Uploads  UploadConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	DatabaseURL string // DATABASE_URL - takes precedence over individual vars
	Host        string
	Port        string
	User        string
	Password    string
	DBName      string
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Host string
}

// AuthConfig holds session token configuration.
// Staff tokens default to 7 days, citizen tokens to 3; both are overridable.
type AuthConfig struct {
	JWTSecret            string
	StaffTokenTTLHours   int // STAFF_TOKEN_TTL_HOURS (default 168 = 7 days)
	CitizenTokenTTLHours int // CITIZEN_TOKEN_TTL_HOURS (default 72)
}

// UploadConfig holds proof-image storage configuration.
type UploadConfig struct {
	BasePath string // UPLOAD_BASE_PATH, served at /uploads
}

// LoadConfig loads configuration from environment variables.
// Supports DATABASE_URL or individual DB_* variables (for local dev).
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        getEnv("DB_HOST", "127.0.0.1"),
			Port:        getEnv("DB_PORT", "3306"),
			User:        os.Getenv("DB_USER"),
			Password:    os.Getenv("DB_PASSWORD"),
			DBName:      os.Getenv("DB_NAME"),
		},
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnv("PORT", getEnv("SERVER_PORT", "8080")),
		},
		Auth: AuthConfig{
			JWTSecret:            getEnv("JWT_SECRET", "dev-secret-change-in-production"),
			StaffTokenTTLHours:   getEnvInt("STAFF_TOKEN_TTL_HOURS", 168),
			CitizenTokenTTLHours: getEnvInt("CITIZEN_TOKEN_TTL_HOURS", 72),
		},
		Uploads: UploadConfig{
			BasePath: getEnv("UPLOAD_BASE_PATH", "uploads"),
		},
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
