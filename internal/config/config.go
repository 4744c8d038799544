package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	Scheduler SchedulerConfig
	Security  SecurityConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// SchedulerConfig holds the plan-health snapshot refresh schedule.
type SchedulerConfig struct {
	SnapshotCron string
}

// SecurityConfig holds the key used to encrypt stored secrets.
// SettingsKey is a base64 fernet key; empty disables the settings endpoints.
type SecurityConfig struct {
	SettingsKey string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	host := getEnv("SERVER_HOST", "0.0.0.0")
	port := getEnv("SERVER_PORT", "8080")

	config := &Config{
		Server: ServerConfig{
			Host: host,
			Port: port,
			Addr: host + ":" + port,
		},
		Database: DatabaseConfig{
			Path: getEnv("DATABASE_PATH", "planner.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
		},
		Scheduler: SchedulerConfig{
			SnapshotCron: getEnv("SNAPSHOT_CRON", "@hourly"),
		},
		Security: SecurityConfig{
			SettingsKey: os.Getenv("SETTINGS_ENCRYPTION_KEY"),
		},
	}

	return config, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
