package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/careconnect/careconnect/internal/config"
)

func main() {
	fmt.Println("🔍 Validating configuration...")

	if err := godotenv.Load(); err != nil {
		fmt.Printf("⚠️  .env file not found: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("❌ Configuration invalid:\n%v\n", err)
		os.Exit(1)
	}

	fmt.Println("✅ Configuration valid!")
	fmt.Printf("📋 Details:\n")
	fmt.Printf("  - Storage Backend: %s\n", cfg.Storage.Backend)
	switch cfg.Storage.Backend {
	case config.BackendRedis:
		fmt.Printf("  - Redis: %s:%s\n", cfg.Storage.Redis.Host, cfg.Storage.Redis.Port)
	case config.BackendPostgres:
		fmt.Printf("  - DB Host: %s\n", cfg.Storage.Postgres.Host)
		fmt.Printf("  - DB Port: %s\n", cfg.Storage.Postgres.Port)
		fmt.Printf("  - DB User: %s\n", cfg.Storage.Postgres.User)
		fmt.Printf("  - DB Password: %s\n", maskSecret(cfg.Storage.Postgres.Password))
		fmt.Printf("  - DB Name: %s\n", cfg.Storage.Postgres.DBName)
	case config.BackendSQLite:
		fmt.Printf("  - SQLite Path: %s\n", cfg.Storage.SQLitePath)
	}
	fmt.Printf("  - Log Level: %v\n", cfg.Logger.Level)
	fmt.Printf("  - Log Output: %s\n", cfg.Logger.OutputPath)
	fmt.Printf("  - Log Format: %s\n", cfg.Logger.Format)
}

func maskSecret(secret string) string {
	if secret == "" {
		return "<not set>"
	}
	if len(secret) <= 8 {
		return "***"
	}
	return secret[:4] + "..." + secret[len(secret)-4:]
}
