package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careconnect/careconnect/internal/logger"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"STORAGE_BACKEND", "REDIS_HOST", "DB_NAME", "SQLITE_PATH", "LOG_LEVEL", "LOG_OUTPUT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, "localhost", cfg.Storage.Redis.Host)
	assert.Equal(t, "careconnect", cfg.Storage.Postgres.DBName)
	assert.Equal(t, "careconnect.db", cfg.Storage.SQLitePath)
	assert.Equal(t, logger.LevelInfo, cfg.Logger.Level)
	assert.Equal(t, "stdout", cfg.Logger.OutputPath)
}

func TestLoadBackendOverride(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/care.db")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "/tmp/care.db", cfg.Storage.SQLitePath)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "floppy")

	_, err := Load()
	assert.Error(t, err)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  logger.LogLevel
	}{
		{"debug", logger.LevelDebug},
		{"info", logger.LevelInfo},
		{"warn", logger.LevelWarn},
		{"WARNING", logger.LevelWarn},
		{"error", logger.LevelError},
		{"nonsense", logger.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLogLevel(tt.input), tt.input)
	}
}
