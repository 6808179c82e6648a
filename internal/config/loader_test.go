package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigclaw/backend/internal/config"
)

const sampleConfig = `
server:
  host: "0.0.0.0"
  port: 8080
  read_timeout: 10s
  write_timeout: 10s

database:
  host: "localhost"
  port: 5432
  user: "gigclaw"
  password: "secret"
  name: "gigclaw"
  sslmode: "disable"

logger:
  level: "info"
  encoding: "json"

auth:
  admin_api_key: "hunter2"
  allowed_origins:
    - "http://localhost:3000"

features:
  enable_locks: true
  enable_faucet: true
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Address())
	assert.Equal(t,
		"host=localhost port=5432 user=gigclaw password=secret dbname=gigclaw sslmode=disable",
		cfg.Database.DSN())
	assert.Equal(t, "hunter2", cfg.Auth.AdminAPIKey)
	assert.True(t, cfg.Features.EnableLocks)
	assert.True(t, cfg.Features.EnableFaucet)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
