package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "taskdeck", cfg.AppName)
	assert.Equal(t, "3000", cfg.HTTP.Port)
	assert.Equal(t, "taskdeck_session", cfg.Session.CookieName)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "test-secret", cfg.Session.Secret)
	assert.NotEmpty(t, cfg.Database.URL)
	assert.Equal(t, 168, cfg.Journal.RetentionHours)
}

func TestLoad_MissingSecretFails(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SESSION_SECRET", "s")
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/app?sslmode=disable")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.HTTP.Port)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
	assert.Equal(t, "postgres://u:p@db:5432/app?sslmode=disable", cfg.Database.URL)
}

func TestGetDuration_PlainSeconds(t *testing.T) {
	t.Setenv("SOME_TIMEOUT", "30")

	assert.Equal(t, 30*time.Second, getDuration("SOME_TIMEOUT", time.Minute))
}
