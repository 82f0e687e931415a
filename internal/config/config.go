package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/careconnect/careconnect/internal/logger"
)

// Storage backends the gateway can be built on.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

type Config struct {
	Storage StorageConfig
	Logger  LoggerConfig
}

type StorageConfig struct {
	Backend    string
	Redis      RedisConfig
	Postgres   DBConfig
	SQLitePath string
}

type RedisConfig struct {
	Host string
	Port string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type LoggerConfig struct {
	Level      logger.LogLevel
	OutputPath string
	Format     string
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.LevelDebug
	case "info":
		return logger.LevelInfo
	case "warn", "warning":
		return logger.LevelWarn
	case "error":
		return logger.LevelError
	default:
		return logger.LevelInfo
	}
}

func Load() (*Config, error) {
	cfg := &Config{
		Storage: StorageConfig{
			Backend: strings.ToLower(getEnvOrDefault("STORAGE_BACKEND", BackendMemory)),
			Redis: RedisConfig{
				Host: getEnvOrDefault("REDIS_HOST", "localhost"),
				Port: getEnvOrDefault("REDIS_PORT", "6379"),
			},
			Postgres: DBConfig{
				Host:     getEnvOrDefault("DB_HOST", "localhost"),
				Port:     getEnvOrDefault("DB_PORT", "5432"),
				User:     getEnvOrDefault("DB_USER", "postgres"),
				Password: getEnvOrDefault("DB_PASSWORD", "postgres"),
				DBName:   getEnvOrDefault("DB_NAME", "careconnect"),
			},
			SQLitePath: getEnvOrDefault("SQLITE_PATH", "careconnect.db"),
		},
		Logger: LoggerConfig{
			Level:      parseLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
			OutputPath: getEnvOrDefault("LOG_OUTPUT", "stdout"),
			Format:     getEnvOrDefault("LOG_FORMAT", "text"),
		},
	}

	switch cfg.Storage.Backend {
	case BackendMemory, BackendRedis, BackendPostgres, BackendSQLite:
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	return cfg, nil
}
