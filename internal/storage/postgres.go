package storage

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/careconnect/careconnect/internal/config"
)

// kvEntry is the single table backing the Postgres gateway. The store
// persists whole collections as JSON text, so one key/value row per
// collection is the entire schema.
type kvEntry struct {
	Key       string `gorm:"primaryKey;column:key"`
	Value     string `gorm:"column:value;not null"`
	UpdatedAt time.Time
}

func (kvEntry) TableName() string {
	return "kv_entries"
}

// PostgresGateway persists the state snapshot in PostgreSQL via GORM.
type PostgresGateway struct {
	db *gorm.DB
}

// NewPostgresGateway connects to PostgreSQL and migrates the kv table.
func NewPostgresGateway(cfg config.DBConfig) (*PostgresGateway, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &PostgresGateway{db: db}, nil
}

// BulkRead fetches all requested keys in one query.
func (g *PostgresGateway) BulkRead(ctx context.Context, keys []string) (map[string]string, error) {
	var rows []kvEntry
	if err := g.db.WithContext(ctx).Where("key IN ?", keys).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to read keys: %w", err)
	}
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		if row.Value != "" {
			out[row.Key] = row.Value
		}
	}
	return out, nil
}

// BulkWrite upserts all pairs.
func (g *PostgresGateway) BulkWrite(ctx context.Context, pairs map[string]string) error {
	rows := make([]kvEntry, 0, len(pairs))
	for key, value := range pairs {
		rows = append(rows, kvEntry{Key: key, Value: value})
	}
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rows).Error
	if err != nil {
		return fmt.Errorf("failed to write keys: %w", err)
	}
	return nil
}

// Clear removes this app's keys.
func (g *PostgresGateway) Clear(ctx context.Context) error {
	if err := g.db.WithContext(ctx).Where("key IN ?", AllKeys()).Delete(&kvEntry{}).Error; err != nil {
		return fmt.Errorf("failed to clear keys: %w", err)
	}
	return nil
}

// Close closes the underlying connection pool.
func (g *PostgresGateway) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
