package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdirT(t, t.TempDir())
	v := viper.New()
	require.NoError(t, Load(v, ""))
	require.NoError(t, CheckConfigValidity(v))

	cfg := NewSystemConfig(v)
	assert.Equal(t, 3000, cfg.HTTPConfig.Port)
	assert.Equal(t, "website", cfg.HTTPConfig.StaticDir)
	assert.Equal(t, "*", cfg.HTTPConfig.CORSOrigin)
	assert.Equal(t, DriverFile, cfg.StorageConfig.Driver)
	assert.Equal(t, "data/submissions.json", cfg.StorageConfig.FilePath)
	assert.Equal(t, "public", cfg.PostgresConfig.Schema)
	assert.Equal(t, "contact:submissions", cfg.RedisConfig.Key)
	assert.Equal(t, 24*time.Hour, cfg.JwtConfig.TokenTTL)
	assert.Empty(t, cfg.JwtConfig.Secret)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "http://localhost:3000/api/contact", cfg.ClientEndpoint)
}

func TestLoadFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(file, []byte("http:\n  port: 8081\nstorage:\n  driver: sqlite\n"), 0o644))
	t.Setenv("SITE_HTTP_PORT", "9090")
	t.Setenv("SITE_ADMIN_JWT_SECRET", "topsecret")

	v := viper.New()
	require.NoError(t, Load(v, file))

	cfg := NewSystemConfig(v)
	assert.Equal(t, 9090, cfg.HTTPConfig.Port)
	assert.Equal(t, DriverSQLite, cfg.StorageConfig.Driver)
	assert.Equal(t, "topsecret", cfg.JwtConfig.Secret)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	v := viper.New()
	assert.Error(t, Load(v, filepath.Join(t.TempDir(), "nope.yaml")))
}

func TestCheckConfigValidityInvalid(t *testing.T) {
	v := viper.New()
	applyDefaults(v)
	v.Set("http.port", 0)
	v.Set("storage.driver", "mongo")
	v.Set("admin.token_ttl", "soon")
	v.Set("client.endpoint", "not a url")
	v.Set("log.level", "loud")

	err := CheckConfigValidity(v)
	require.Error(t, err)
	for _, want := range []string{
		"http.port must be between 1 and 65535",
		`storage.driver "mongo" is not one of`,
		"admin.token_ttl must be a non-negative duration",
		"client.endpoint is not a valid url",
		"log.level must be one of",
	} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestCheckConfigValidityDriverSpecific(t *testing.T) {
	v := viper.New()
	applyDefaults(v)
	v.Set("storage.driver", "file")
	v.Set("storage.file_path", " ")
	assert.ErrorContains(t, CheckConfigValidity(v), "storage.file_path is required")

	v.Set("storage.driver", "redis")
	v.Set("storage.redis_addr", "")
	assert.ErrorContains(t, CheckConfigValidity(v), "storage.redis_addr is required")
}
