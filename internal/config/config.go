package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Language     string
	SeedDemoData bool
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		Language:     getEnv("TRACKER_LANG", "en"),
		SeedDemoData: parseBool(getEnv("TRACKER_SEED_DEMO", "true")),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
