package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port               string
	DBUrl              string
	AppEnv             string
	MLServiceURL       string
	MLTimeout          time.Duration
	CORSAllowedOrigins []string
}

// LoadConfig loads .env (if present) and reads the server configuration.
// DB_URL is required; everything else has a default.
func LoadConfig() (*Config, error) {
	envFileErr := godotenv.Load()

	cfg := FromEnv()
	if cfg.DBUrl == "" {
		if envFileErr != nil {
			return nil, fmt.Errorf("DB_URL is required (no .env file: %w)", envFileErr)
		}
		return nil, fmt.Errorf("DB_URL is required")
	}
	return cfg, nil
}

// FromEnv reads the configuration from the current process environment
// without touching .env or validating required keys.
func FromEnv() *Config {
	return &Config{
		Port:               getEnv("PORT", "3000"),
		DBUrl:              getEnv("DB_URL", ""),
		AppEnv:             normalizeEnv(getEnv("APP_ENV", "production")),
		MLServiceURL:       strings.TrimRight(getEnv("ML_SERVICE_URL", "http://localhost:5000"), "/"),
		MLTimeout:          time.Duration(getEnvInt("ML_TIMEOUT_SECONDS", 10)) * time.Second,
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}
}

// IsProduction reports whether APP_ENV resolved to production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt falls back on missing, unparsable or non-positive values.
func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}
