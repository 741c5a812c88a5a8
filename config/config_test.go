package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_KEY", "")
	cfg, err := LoadWith(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "gemini-2.5-flash", cfg.Advisory.Model)
	assert.Equal(t, 30*time.Second, cfg.Advisory.Timeout)
	assert.Empty(t, cfg.Advisory.APIKey)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 2*time.Hour, cfg.Session.IdleTTL)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("API_KEY", "from-api-key")
	t.Setenv("SOFTSPACE_SERVER_PORT", "9090")
	t.Setenv("SOFTSPACE_REDIS_ENABLED", "true")
	t.Setenv("SOFTSPACE_ADVISORY_TIMEOUT", "5s")

	cfg, err := LoadWith(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "from-api-key", cfg.Advisory.APIKey)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 5*time.Second, cfg.Advisory.Timeout)
}

func TestPrefixedKeyWins(t *testing.T) {
	t.Setenv("API_KEY", "generic")
	t.Setenv("SOFTSPACE_ADVISORY_API_KEY", "prefixed")
	cfg, err := LoadWith(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "prefixed", cfg.Advisory.APIKey)
}

func TestValidateDriver(t *testing.T) {
	t.Setenv("SOFTSPACE_DATABASE_DRIVER", "mysql")
	_, err := LoadWith(viper.New())
	assert.Error(t, err)
}
