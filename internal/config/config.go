package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gondola-rental/internal/domain"
)

type Config struct {
	Port        string
	Environment string
	Timezone    string

	DatabaseURL string

	RedisURL   string
	RunLockTTL time.Duration

	LogLevel  string
	LogFormat string

	JWTSecret       string
	JWTAccessExpiry time.Duration
	CORSOrigins     string

	DashboardCacheTTL time.Duration

	SMTPHost        string
	SMTPPort        int
	SMTPUser        string
	SMTPPass        string
	SMTPFrom        string
	ResendAPIKey    string
	MailSendTimeout time.Duration
	AdminEmail      string

	CooldownCertificateExpiry time.Duration
	CooldownProjectReminders  time.Duration
	CooldownProjectUpdates    time.Duration
	CooldownWeeklyReports     time.Duration
	CooldownRecordEmpty       bool

	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOBucket    string
	MinIOUseSSL    bool
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		Timezone:    getEnv("APP_TIMEZONE", "UTC"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		RedisURL:   getEnv("REDIS_URL", ""),
		RunLockTTL: getDurationEnv("RUN_LOCK_TTL", 30*time.Minute),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		JWTSecret:       getEnv("JWT_SECRET", ""),
		JWTAccessExpiry: getDurationEnv("JWT_ACCESS_EXPIRY", time.Hour),
		CORSOrigins:     getEnv("CORS_ORIGINS", "http://localhost:5173"),

		DashboardCacheTTL: getDurationEnv("DASHBOARD_CACHE_TTL", 5*time.Minute),

		SMTPHost:        getEnv("SMTP_HOST", "localhost"),
		SMTPPort:        getIntEnv("SMTP_PORT", 587),
		SMTPUser:        getEnv("SMTP_USER", ""),
		SMTPPass:        getEnv("SMTP_PASS", ""),
		SMTPFrom:        getEnv("SMTP_FROM", "noreply@example.com"),
		ResendAPIKey:    getEnv("RESEND_API_KEY", ""),
		MailSendTimeout: getDurationEnv("MAIL_SEND_TIMEOUT", 30*time.Second),
		AdminEmail:      getEnv("ADMIN_EMAIL", ""),

		CooldownCertificateExpiry: getDurationEnv("COOLDOWN_CERTIFICATE_EXPIRY", 24*time.Hour),
		CooldownProjectReminders:  getDurationEnv("COOLDOWN_PROJECT_REMINDERS", 24*time.Hour),
		CooldownProjectUpdates:    getDurationEnv("COOLDOWN_PROJECT_UPDATES", 24*time.Hour),
		CooldownWeeklyReports:     getDurationEnv("COOLDOWN_WEEKLY_REPORTS", 7*24*time.Hour),
		CooldownRecordEmpty:       getBoolEnv("COOLDOWN_RECORD_EMPTY", true),

		MinIOEndpoint:  getEnv("MINIO_ENDPOINT", ""),
		MinIOAccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		MinIOSecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
		MinIOBucket:    getEnv("MINIO_BUCKET", "gondola-notifier-runs"),
		MinIOUseSSL:    getBoolEnv("MINIO_USE_SSL", false),
	}
}

// CooldownIntervals maps every digest category to its minimum re-send interval.
func (c *Config) CooldownIntervals() map[domain.NotificationCategory]time.Duration {
	return map[domain.NotificationCategory]time.Duration{
		domain.CategoryCertificateExpiry: c.CooldownCertificateExpiry,
		domain.CategoryProjectReminders:  c.CooldownProjectReminders,
		domain.CategoryProjectUpdates:    c.CooldownProjectUpdates,
		domain.CategoryWeeklyReports:     c.CooldownWeeklyReports,
	}
}

// Validate rejects settings that would otherwise be silently replaced by a
// fallback further down.
func (c *Config) Validate() error {
	var errs []error
	for _, d := range []struct {
		key   string
		value time.Duration
	}{
		{"COOLDOWN_CERTIFICATE_EXPIRY", c.CooldownCertificateExpiry},
		{"COOLDOWN_PROJECT_REMINDERS", c.CooldownProjectReminders},
		{"COOLDOWN_PROJECT_UPDATES", c.CooldownProjectUpdates},
		{"COOLDOWN_WEEKLY_REPORTS", c.CooldownWeeklyReports},
		{"RUN_LOCK_TTL", c.RunLockTTL},
	} {
		if d.value <= 0 {
			errs = append(errs, fmt.Errorf("%s must be a positive duration, got %s", d.key, d.value))
		}
	}
	return errors.Join(errs...)
}

// Location resolves APP_TIMEZONE, falling back to UTC for unknown zones.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}
