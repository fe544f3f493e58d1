// Package config handles application configuration via environment variables.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configurable values for the app.
type Config struct {
	Env          string
	BookPath     string
	LogPath      string
	LogMaxSizeMB int
}

// Load reads an optional .env file and the environment into a Config struct.
func Load() *Config {
	// a missing .env is fine, the process environment still applies
	_ = godotenv.Load()

	maxSize, err := strconv.Atoi(getEnv("LOG_MAX_SIZE_MB", "10"))
	if err != nil {
		log.Panicf("Invalid LOG_MAX_SIZE_MB: %v", err)
	}

	return &Config{
		Env:          getEnv("ENV", "development"),
		BookPath:     getEnv("BOOK_FILE", "addressbook.json"),
		LogPath:      getEnv("LOG_PATH", "assistant.log"),
		LogMaxSizeMB: maxSize,
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
