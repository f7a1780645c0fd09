package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"NHLBETS_CONFIG", "PORT", "THEODDSAPI_KEY", "ODDS_API_BASE_URL", "NHL_API_BASE_URL",
	"REDIS_URL", "CORS_ORIGINS", "ODDS_TIMEOUT", "NHL_TIMEOUT", "TEAM_CACHE_TTL", "TEAM_REFRESH_INTERVAL",
}

// isolate runs the test from an empty directory with a clean environment
func isolate(t *testing.T) string {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.Odds.Timeout)
	assert.Equal(t, 8*time.Second, cfg.NHL.Timeout)
	assert.Equal(t, time.Duration(0), cfg.Teams.CacheTTL)
	assert.Empty(t, cfg.Odds.APIKey)
	assert.Empty(t, cfg.RedisURL)
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: ":9000"
odds:
  api_key: from-yaml
  timeout: 5s
teams:
  cache_ttl: 6h
  refresh_interval: 1h
cors_origins:
  - https://example.com
`), 0o600))

	t.Setenv("NHLBETS_CONFIG", path)
	t.Setenv("THEODDSAPI_KEY", "from-env")
	t.Setenv("PORT", "7070")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Port)
	assert.Equal(t, "from-env", cfg.Odds.APIKey)
	assert.Equal(t, 5*time.Second, cfg.Odds.Timeout)
	assert.Equal(t, 6*time.Hour, cfg.Teams.CacheTTL)
	assert.Equal(t, time.Hour, cfg.Teams.RefreshInterval)
	assert.Equal(t, []string{"https://example.com"}, cfg.CORSOrigins)
	assert.Equal(t, "https://statsapi.web.nhl.com/api/v1", cfg.NHL.BaseURL)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("THEODDSAPI_KEY=dotenv-key\n"), 0o600))
	// godotenv never overrides variables that are already set, even to ""
	os.Unsetenv("THEODDSAPI_KEY")
	t.Cleanup(func() { os.Unsetenv("THEODDSAPI_KEY") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "dotenv-key", cfg.Odds.APIKey)
}

func TestLoad_InvalidDuration(t *testing.T) {
	isolate(t)
	t.Setenv("TEAM_CACHE_TTL", "forever")

	_, err := Load()
	assert.ErrorContains(t, err, "TEAM_CACHE_TTL")
}

func TestLoad_MissingFile(t *testing.T) {
	isolate(t)
	t.Setenv("NHLBETS_CONFIG", "/nonexistent/config.yaml")

	_, err := Load()
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestLoad_CORSOrigins(t *testing.T) {
	isolate(t)
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
}
