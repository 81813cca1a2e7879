package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	DBHost string
	DBPort string
	DBName string
	DBUser string
	DBPass string

	// DBMaxOpenConns is the maximum number of open connections to the database (default 25).
	DBMaxOpenConns int
	// DBMaxIdleConns is the maximum number of idle connections (default 5).
	DBMaxIdleConns int

	// SessionSecret signs the session cookie. Supplied externally so sessions
	// survive process restarts. In "prod" it must be set and not the default.
	SessionSecret string

	// SessionExpireHours is the session lifetime in hours (default 168 = 7 days).
	SessionExpireHours int

	// Env is "dev" (default) or "prod".
	Env string

	// LogFormat is "text" (default) or "json" for structured logging.
	LogFormat string

	// AuditRetentionDays is how long audit log rows are kept before the
	// scheduler prunes them (default 90).
	AuditRetentionDays int

	// AuditPruneCron is the cron expression for the audit pruning job (default daily at 03:00).
	AuditPruneCron string
}

func Load() Config {
	// A .env file is optional; deployed environments set variables directly.
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	return Config{
		Port: getEnv("PORT", "8080"),

		DBHost: getEnv("DB_HOST", "localhost"),
		DBPort: getEnv("DB_PORT", "5432"),
		DBName: getEnv("DB_NAME", "blogdb"),
		DBUser: getEnv("DB_USER", "bloguser"),
		DBPass: getEnv("DB_PASS", "blogpass"),

		DBMaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),

		SessionSecret:      getEnv("SESSION_SECRET", "dev-session-secret"),
		SessionExpireHours: getEnvInt("SESSION_EXPIRE_HOURS", 168),

		Env:       getEnv("ENV", "dev"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		AuditRetentionDays: getEnvInt("AUDIT_RETENTION_DAYS", 90),
		AuditPruneCron:     getEnv("AUDIT_PRUNE_CRON", "0 3 * * *"),
	}
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
