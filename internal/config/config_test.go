package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"PORT", "APP_ENV", "ADMIN_PASSWORD", "SESSION_SECRET", "SESSION_TTL", "CORS_ORIGINS",
		"NOTIFY_DRIVER", "NOTIFY_DELAY", "MAIL_HOST", "MAIL_PORT", "SEED_MOCK_DATA", "STALE_LEAD_AFTER",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "admin", cfg.AdminPassword)
	assert.Equal(t, NotifySimulated, cfg.NotifyDriver)
	assert.Equal(t, 800*time.Millisecond, cfg.NotifyDelay)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 48*time.Hour, cfg.StaleLeadAfter)
	assert.True(t, cfg.SeedMockData)
	assert.Len(t, cfg.SessionSecret, 64)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("NOTIFY_DRIVER", "SMTP")
	t.Setenv("MAIL_HOST", "smtp.example.com")
	t.Setenv("MAIL_PORT", "2525")
	t.Setenv("SESSION_SECRET", "fixed")
	t.Setenv("SEED_MOCK_DATA", "no")
	t.Setenv("CORS_ORIGINS", "https://a.et, https://b.et ,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, NotifySMTP, cfg.NotifyDriver)
	assert.Equal(t, 2525, cfg.Mail.Port)
	assert.Equal(t, "fixed", cfg.SessionSecret)
	assert.False(t, cfg.SeedMockData)
	assert.Equal(t, []string{"https://a.et", "https://b.et"}, cfg.CORSOrigins)
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("NOTIFY_DELAY", "soon")
	t.Setenv("NOTIFY_DRIVER", "pigeon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOTIFY_DELAY")
	assert.Contains(t, err.Error(), "NOTIFY_DRIVER")
}

func TestLoadRequiresMailHostForSMTP(t *testing.T) {
	clearEnv(t)
	t.Setenv("NOTIFY_DRIVER", "rabbitmq")

	_, err := Load()
	assert.ErrorContains(t, err, "MAIL_HOST")
}

func TestParseBoolEnv(t *testing.T) {
	for _, v := range []string{"1", "true", "YES", " on "} {
		assert.True(t, parseBoolEnv(v), v)
	}
	for _, v := range []string{"", "0", "false", "nope"} {
		assert.False(t, parseBoolEnv(v), v)
	}
}
