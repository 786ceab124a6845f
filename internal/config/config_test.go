package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/bookhub")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.GoEnv)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.False(t, cfg.AuthEnabled)
	assert.Equal(t, 20.0, cfg.RateLimitRPS)
	assert.Equal(t, 40, cfg.RateLimitBurst)
}

func TestLoadConfigRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/bookhub")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.HTTPPort)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/bookhub")
	t.Setenv("HTTP_PORT", "not-a-number")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			HTTPPort:       8080,
			LogLevel:       "info",
			LogFormat:      "text",
			RateLimitRPS:   20,
			RateLimitBurst: 40,
		}
	}

	require.NoError(t, base().Validate())

	cfg := base()
	cfg.HTTPPort = 0
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.LogLevel = "verbose"
	assert.Error(t, cfg.Validate())

	// short secret only matters once auth is on
	cfg = base()
	cfg.AuthEnabled = true
	cfg.JWTSecret = "short"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.JWTSecret = "short"
	assert.NoError(t, cfg.Validate())
}
