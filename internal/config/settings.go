package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Settings is the immutable process configuration, built once in main and
// passed by reference into each constructor. No component reads the
// environment after startup.
type Settings struct {
	AppName    string
	AppVersion string

	ListenAddr  string
	CORSOrigins []string

	JWTSecret   string
	TokenExpiry time.Duration

	Database DatabaseConfig
}

// Load reads all settings from environment variables with sensible
// defaults for local development.
func Load() *Settings {
	expireMinutes := getEnvInt("NETSENTINEL_ACCESS_TOKEN_EXPIRE_MINUTES", 30)

	return &Settings{
		AppName:     getEnv("NETSENTINEL_APP_NAME", "NetSentinel API"),
		AppVersion:  getEnv("NETSENTINEL_APP_VERSION", "0.1.0"),
		ListenAddr:  getEnv("NETSENTINEL_LISTEN_ADDR", ":8080"),
		CORSOrigins: strings.Split(getEnv("NETSENTINEL_CORS_ORIGINS", "*"), ","),
		JWTSecret:   getEnv("NETSENTINEL_SECRET_KEY", "change-me-in-production"),
		TokenExpiry: time.Duration(expireMinutes) * time.Minute,
		Database:    GetDatabaseConfig(),
	}
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
