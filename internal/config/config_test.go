package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[server]
http_port = 9090

[logs]
level = "debug"

[storage]
driver = "postgres"

[storage.postgres]
host = "db"
dbname = "festum"
user = "festum"
password = "secret"

[designer]
default_template = "jardin"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ReadTimeout, "defaults are kept for missing keys")
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.Equal(t, "host=db port=5432 user=festum password=secret dbname=festum sslmode=disable", cfg.Storage.Postgres.DSN())
	assert.Equal(t, "jardin", cfg.Designer.DefaultTemplate)
	assert.Equal(t, 1800, cfg.Designer.SessionIdleTimeout)
	assert.Equal(t, 60, cfg.Designer.EvictInterval)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "unknown driver", data: "[storage]\ndriver = \"mongo\""},
		{name: "bad port", data: "[server]\nhttp_port = 70000"},
		{name: "no sessions", data: "[designer]\nmax_sessions = -1"},
		{name: "empty sqlite path", data: "[storage]\nsqlite_path = \"\""},
		{name: "negative idle timeout", data: "[designer]\nsession_idle_timeout = -5"},
		{name: "idle timeout without evict interval", data: "[designer]\nevict_interval = 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse("[server")
	assert.Error(t, err)
}
