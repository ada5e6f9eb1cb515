package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

type Config struct {
	AppEnv            string
	AppName           string
	APIPrefix         string
	AppPort           string
	DatabaseURL       string
	AutoMigrate       bool
	LogLevel          string
	JWTSecret         string
	JWTAlgorithm      string
	JWTAudience       string
	JWTIssuer         string
	CORSAllowOrigins  []string
	MaxSessions       int
	LogBufferLimit    int
	LogRetentionDays  int
	RetentionSchedule string
}

// RetentionParser is the cron dialect used for RETENTION_SCHEDULE: six
// fields with a leading seconds column.
var RetentionParser = cron.NewParser(
	cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func Load() Config {
	_ = godotenv.Load(".env")

	return Config{
		AppEnv:       getEnv("APP_ENV", "local"),
		AppName:      getEnv("APP_NAME", "MindEase API"),
		APIPrefix:    getEnv("API_PREFIX", "/api/v1"),
		AppPort:      getEnv("APP_PORT", "8000"),
		DatabaseURL:  strings.TrimSpace(os.Getenv("DATABASE_URL")),
		AutoMigrate:  getEnvBool("AUTO_MIGRATE", false),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		JWTAlgorithm: getEnv("JWT_ALGORITHM", "HS256"),
		JWTAudience:  getEnv("JWT_AUDIENCE", ""),
		JWTIssuer:    getEnv("JWT_ISSUER", ""),
		CORSAllowOrigins: getEnvCSV(
			"CORS_ALLOW_ORIGINS",
			[]string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:3000"},
		),
		MaxSessions:       getEnvInt("MAX_SESSIONS", 1000),
		LogBufferLimit:    getEnvInt("LOG_BUFFER_LIMIT", 500),
		LogRetentionDays:  getEnvInt("LOG_RETENTION_DAYS", 30),
		RetentionSchedule: getEnv("RETENTION_SCHEDULE", "0 0 3 * * *"),
	}
}

// UsesDatabase reports whether chat and mood logs go to Postgres.
func (c Config) UsesDatabase() bool {
	return strings.TrimSpace(c.DatabaseURL) != ""
}

func (c Config) Validate() error {
	secret := strings.TrimSpace(c.JWTSecret)
	if secret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if secret == "change-me-in-production" {
		return errors.New("JWT_SECRET must not use insecure default value")
	}
	if len(secret) < 16 {
		return errors.New("JWT_SECRET is too short; use at least 16 characters")
	}
	if strings.TrimSpace(c.JWTAlgorithm) == "" {
		return errors.New("JWT_ALGORITHM is required")
	}
	if c.MaxSessions <= 0 {
		return errors.New("MAX_SESSIONS must be positive")
	}
	if c.LogBufferLimit <= 0 {
		return errors.New("LOG_BUFFER_LIMIT must be positive")
	}
	if c.LogRetentionDays <= 0 {
		return errors.New("LOG_RETENTION_DAYS must be positive")
	}
	if _, err := RetentionParser.Parse(c.RetentionSchedule); err != nil {
		return fmt.Errorf("RETENTION_SCHEDULE is invalid: %w", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvCSV(key string, fallback []string) []string {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, item := range parts {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return fallback
	}
	return result
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}
