package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/careconnect/careconnect/internal/config"
	"github.com/careconnect/careconnect/internal/logger"
	"github.com/careconnect/careconnect/internal/storage"
	"github.com/careconnect/careconnect/internal/store"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting CareConnect core...")

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.InitWithConfig(logger.Config{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	}); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}

	gateway, err := openGateway(cfg.Storage)
	if err != nil {
		logger.Fatal("Failed to open persistence gateway", "backend", cfg.Storage.Backend, "error", err)
	}
	logger.Info("Persistence gateway ready", "backend", cfg.Storage.Backend)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	appStore := store.New(gateway)
	if err := appStore.Load(ctx); err != nil {
		logger.Fatal("Failed to load store", "error", err)
	}
	logger.Info("Store loaded, accepting mutations")

	<-ctx.Done()
	logger.Info("Shutting down")
	if err := appStore.Close(context.Background()); err != nil {
		logger.Error("Failed to close store", "error", err)
	}
}

func openGateway(cfg config.StorageConfig) (storage.Gateway, error) {
	switch cfg.Backend {
	case config.BackendRedis:
		return storage.NewRedisGateway(cfg.Redis)
	case config.BackendPostgres:
		return storage.NewPostgresGateway(cfg.Postgres)
	case config.BackendSQLite:
		return storage.OpenSQLite(cfg.SQLitePath)
	default:
		return storage.NewMemoryGateway(), nil
	}
}
