package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nihn/eurostartrainfinder/pkg/eurostar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvironmentDefaults(t *testing.T) {
	cfg, err := FromEnvironment(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, eurostar.DefaultBaseURL, cfg.Eurostar.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Eurostar.Timeout)
	assert.Equal(t, 2, cfg.Eurostar.MaxRetries)
	assert.Equal(t, 500*time.Millisecond, cfg.Eurostar.RetryInitialInterval)
	assert.Equal(t, 0, cfg.MaxConcurrency)
	assert.Equal(t, 24*time.Hour, cfg.StationsCacheTTL)
	assert.False(t, cfg.RedisEnabled())
	assert.False(t, cfg.Logging.Debug)
}

func TestFromEnvironmentOverrides(t *testing.T) {
	cfg, err := FromEnvironment(map[string]string{
		"TRAINFINDER_API_KEY":            "secret",
		"TRAINFINDER_BASE_URL":           "http://localhost:9000",
		"TRAINFINDER_REQUEST_TIMEOUT":    "5s",
		"TRAINFINDER_MAX_RETRIES":        "0",
		"TRAINFINDER_MAX_CONCURRENCY":    "4",
		"TRAINFINDER_REDIS_ADDRESS":      "localhost:6379",
		"TRAINFINDER_REDIS_DATABASE":     "3",
		"TRAINFINDER_STATIONS_CACHE_TTL": "1h",
		"TRAINFINDER_DEBUG":              "YES",
		"TRAINFINDER_LOG_FORMAT":         "JSON",
	})
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.Eurostar.APIKey)
	assert.Equal(t, "http://localhost:9000", cfg.Eurostar.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Eurostar.Timeout)
	assert.Equal(t, 0, cfg.Eurostar.MaxRetries)
	assert.Equal(t, 4, cfg.MaxConcurrency)
	assert.True(t, cfg.RedisEnabled())
	assert.Equal(t, 3, cfg.Redis.Database)
	assert.Equal(t, time.Hour, cfg.StationsCacheTTL)
	assert.True(t, cfg.Logging.Debug)
	assert.Equal(t, "JSON", cfg.Logging.Format)
}

func TestFromEnvironmentInvalid(t *testing.T) {
	_, err := FromEnvironment(map[string]string{"TRAINFINDER_MAX_RETRIES": "lots"})
	assert.ErrorContains(t, err, "TRAINFINDER_MAX_RETRIES")

	_, err = FromEnvironment(map[string]string{"TRAINFINDER_REQUEST_TIMEOUT": "10"})
	assert.ErrorContains(t, err, "TRAINFINDER_REQUEST_TIMEOUT")
}

func TestLoadEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("TRAINFINDER_MAX_CONCURRENCY=7\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("TRAINFINDER_MAX_CONCURRENCY") })

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.MaxConcurrency)

	_, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
