package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vasiliy-maslov/canteen-service/internal/config"
)

var envKeys = []string{
	"APP_PORT", "APP_ENV", "LOG_LEVEL",
	"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
	"DB_MAX_CONNS", "DB_MIN_CONNS", "DB_MAX_CONN_LIFETIME",
}

func clearEnv(t *testing.T) {
	t.Helper()
	// t.Setenv регистрирует восстановление, Unsetenv нужен чтобы godotenv мог выставить значения.
	for _, k := range envKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_EnvOnlyWithDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_NAME", "canteen")

	cfg, err := config.Load("", "")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "disable", cfg.Postgres.SSLMode)
	assert.Equal(t, int32(10), cfg.Postgres.MaxConns)
	assert.Equal(t, int32(2), cfg.Postgres.MinConns)
	assert.Equal(t, 30*time.Minute, cfg.Postgres.MaxConnLifetime)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_YAMLThenEnvOverride(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "config.yaml")
	content := `
app:
  port: "9000"
  env: production
postgres:
  host: db.internal
  port: "5433"
  user: canteen
  dbname: canteen
  max_conns: 20
  max_conn_lifetime: 1h
`
	require.NoError(t, os.WriteFile(yamlPath, []byte(content), 0o600))

	t.Setenv("DB_HOST", "override-host")
	t.Setenv("DB_MIN_CONNS", "4")

	cfg, err := config.Load(yamlPath, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.App.Port)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "override-host", cfg.Postgres.Host)
	assert.Equal(t, "5433", cfg.Postgres.Port)
	assert.Equal(t, int32(20), cfg.Postgres.MaxConns)
	assert.Equal(t, int32(4), cfg.Postgres.MinConns)
	assert.Equal(t, time.Hour, cfg.Postgres.MaxConnLifetime)
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("DB_HOST=from-dotenv\nDB_PORT=5432\nDB_USER=u\nDB_NAME=n\n"), 0o600))

	cfg, err := config.Load("", envPath)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.Postgres.Host)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "missing_host",
			env:     map[string]string{"DB_PORT": "5432", "DB_USER": "u", "DB_NAME": "n"},
			wantErr: "DB_HOST is required",
		},
		{
			name:    "bad_max_conns",
			env:     map[string]string{"DB_HOST": "h", "DB_PORT": "5432", "DB_USER": "u", "DB_NAME": "n", "DB_MAX_CONNS": "many"},
			wantErr: "invalid DB_MAX_CONNS",
		},
		{
			name:    "min_exceeds_max",
			env:     map[string]string{"DB_HOST": "h", "DB_PORT": "5432", "DB_USER": "u", "DB_NAME": "n", "DB_MAX_CONNS": "2", "DB_MIN_CONNS": "5"},
			wantErr: "cannot exceed",
		},
		{
			name:    "bad_lifetime",
			env:     map[string]string{"DB_HOST": "h", "DB_PORT": "5432", "DB_USER": "u", "DB_NAME": "n", "DB_MAX_CONN_LIFETIME": "forever"},
			wantErr: "invalid DB_MAX_CONN_LIFETIME",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := config.Load("", "")
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
