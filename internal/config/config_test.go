package config

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"

	"gondola-rental/internal/domain"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"SMTP_PORT", "MAIL_SEND_TIMEOUT", "COOLDOWN_CERTIFICATE_EXPIRY", "COOLDOWN_WEEKLY_REPORTS",
		"COOLDOWN_RECORD_EMPTY", "RUN_LOCK_TTL", "APP_TIMEZONE",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, 30*time.Second, cfg.MailSendTimeout)
	assert.Equal(t, 30*time.Minute, cfg.RunLockTTL)
	assert.True(t, cfg.CooldownRecordEmpty)

	intervals := cfg.CooldownIntervals()
	assert.Equal(t, 24*time.Hour, intervals[domain.CategoryCertificateExpiry])
	assert.Equal(t, 7*24*time.Hour, intervals[domain.CategoryWeeklyReports])
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("COOLDOWN_PROJECT_UPDATES", "5m")
	t.Setenv("COOLDOWN_RECORD_EMPTY", "false")
	t.Setenv("MAIL_SEND_TIMEOUT", "10s")

	cfg := Load()

	assert.Equal(t, 2525, cfg.SMTPPort)
	assert.Equal(t, 5*time.Minute, cfg.CooldownIntervals()[domain.CategoryProjectUpdates])
	assert.False(t, cfg.CooldownRecordEmpty)
	assert.Equal(t, 10*time.Second, cfg.MailSendTimeout)
}

func TestMalformedValuesFallBack(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-port")
	t.Setenv("COOLDOWN_WEEKLY_REPORTS", "weekly")
	t.Setenv("COOLDOWN_RECORD_EMPTY", "maybe")

	cfg := Load()

	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, 7*24*time.Hour, cfg.CooldownWeeklyReports)
	assert.True(t, cfg.CooldownRecordEmpty)
}

func TestLocation(t *testing.T) {
	cfg := &Config{Timezone: "Asia/Jakarta"}
	assert.Equal(t, "Asia/Jakarta", cfg.Location().String())

	cfg.Timezone = "Mars/Olympus"
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestOptionalClientsDisabled(t *testing.T) {
	cfg := &Config{}

	redisClient, err := NewRedisClient(cfg)
	assert.NoError(t, err)
	assert.Nil(t, redisClient)

	minioClient, err := NewMinIOClient(cfg)
	assert.NoError(t, err)
	assert.Nil(t, minioClient)

	_, err = NewPostgresDB(cfg)
	assert.ErrorIs(t, err, ErrMissingDatabaseURL)
}

func TestValidate(t *testing.T) {
	t.Setenv("COOLDOWN_CERTIFICATE_EXPIRY", "")
	t.Setenv("COOLDOWN_PROJECT_REMINDERS", "")
	t.Setenv("COOLDOWN_WEEKLY_REPORTS", "")
	t.Setenv("COOLDOWN_PROJECT_UPDATES", "")
	t.Setenv("RUN_LOCK_TTL", "")
	assert.NoError(t, Load().Validate())

	t.Setenv("COOLDOWN_WEEKLY_REPORTS", "0")
	t.Setenv("COOLDOWN_PROJECT_UPDATES", "-5m")
	cfg := Load()

	assert.Equal(t, time.Duration(0), cfg.CooldownWeeklyReports)
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "COOLDOWN_WEEKLY_REPORTS")
	assert.Contains(t, err.Error(), "COOLDOWN_PROJECT_UPDATES")
	assert.NotContains(t, err.Error(), "COOLDOWN_CERTIFICATE_EXPIRY")
}
