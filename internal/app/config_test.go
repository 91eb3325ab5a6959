package app_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranayama-studio/pranayama-api/internal/app"
	_ "github.com/pranayama-studio/pranayama-api/testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")

	cfg, err := app.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.AppAddr)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.True(t, cfg.MigrateOnStart)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigRequiresSecret(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "")

	_, err := app.LoadConfig()
	assert.Error(t, err)
}

func TestIsProduction(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")
	t.Setenv("APP_ENV", "production")

	cfg, err := app.LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}
