package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test from an empty directory so no stray config.yaml or .env is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(ConfigPathEnvVar, "")
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "carbon_footprint_db", cfg.Store.MongoDatabase)
	assert.Equal(t, "users", cfg.Store.MongoCollection)
	assert.Equal(t, "http://localhost:5001", cfg.Predictor.URL)
	assert.Equal(t, 10*time.Second, cfg.Predictor.Timeout)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 10, cfg.Dashboard.PageSize)
	assert.True(t, cfg.UsesFallbackSecret())
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("CARBON_STORE_DRIVER", "mongo")
	t.Setenv("CARBON_STORE_MONGO_URI", "mongodb://db:27017")
	t.Setenv("CARBON_AUTH_JWT_SECRET", "s3cret")
	t.Setenv("CARBON_PREDICTOR_TIMEOUT", "3s")
	t.Setenv("CARBON_PREDICTOR_PERSISTS", "true")
	t.Setenv("CARBON_SERVER_CORS_ORIGINS", "http://a.example, http://b.example")
	t.Setenv("CARBON_DASHBOARD_PAGE_SIZE", "25")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mongo", cfg.Store.Driver)
	assert.Equal(t, "mongodb://db:27017", cfg.Store.MongoURI)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.False(t, cfg.UsesFallbackSecret())
	assert.Equal(t, 3*time.Second, cfg.Predictor.Timeout)
	assert.True(t, cfg.Predictor.Persists)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 25, cfg.Dashboard.PageSize)
}

func TestLoadFileThenEnv(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "carbon.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\nratelimit:\n  burst: 3\n"), 0o600))
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("CARBON_RATELIMIT_BURST", "7")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 7, cfg.RateLimit.Burst)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	isolate(t)
	t.Setenv("CARBON_STORE_DRIVER", "postgres")

	_, err := Load()
	assert.Error(t, err)
}

func TestEnvTransformFunc(t *testing.T) {
	assert.Equal(t, "store.mongo_uri", envTransformFunc("CARBON_STORE_MONGO_URI"))
	assert.Equal(t, "log.level", envTransformFunc("CARBON_LOG_LEVEL"))
	assert.Equal(t, "debug", envTransformFunc("CARBON_DEBUG"))
}
