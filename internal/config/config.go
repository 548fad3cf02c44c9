package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// Config is everything the server reads from the environment.
type Config struct {
	Addr           string
	AdminKey       string
	BoardPairs     int
	AllowedOrigins []string
}

// Load builds the config from environment variables. MASTER_KEY is the one
// required setting; everything else has a default.
func Load() (Config, error) {
	key := os.Getenv("MASTER_KEY")
	if key == "" {
		return Config{}, errors.New("MASTER_KEY environment variable is required")
	}

	return Config{
		Addr:           ":" + getEnv("PORT", "8080"),
		AdminKey:       key,
		BoardPairs:     getEnvAsInt("BOARD_PAIRS", 27),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
