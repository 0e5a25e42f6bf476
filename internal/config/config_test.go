package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8085

[database]
host = "db"
user = "smc"
password = "secret"
dbname = "availability"

[redis]
enabled = true
addr = "redis:6379"
ttl = 60

[company]
timezone = "Europe/Moscow"

[logs]
level = "debug"

[metrics]
enabled = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8085, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, "host=db port=5432 user=smc password=secret dbname=availability sslmode=disable", cfg.Database.DSN())
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, time.Minute, cfg.Redis.CacheTTL())
	assert.Equal(t, "Europe/Moscow", cfg.Company.Location().String())
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "availability-service", cfg.Metrics.ServiceName)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "db"
dbname = "availability"
`)
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load("does-not-exist.toml")
	require.NoError(t, err)
	assert.Equal(t, "UTC", cfg.Company.Location().String())
	assert.False(t, cfg.Redis.Enabled)
}

func TestLoad_Invalid(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 0

[company]
timezone = "Mars/Olympus"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.http_port")
	assert.Contains(t, err.Error(), "database.host is required")
	assert.Contains(t, err.Error(), "company.timezone")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
