package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteTimeLayout = time.RFC3339Nano

// SQLiteGateway persists the state snapshot in a local SQLite file. This is
// the natural backend for a single-device deployment.
type SQLiteGateway struct {
	db *sql.DB
}

// NewSQLiteGateway wraps an existing connection and creates the kv table.
func NewSQLiteGateway(db *sql.DB) (*SQLiteGateway, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS kv_entries (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`)
	if err != nil {
		return nil, fmt.Errorf("create kv table: %w", err)
	}
	return &SQLiteGateway{db: db}, nil
}

// OpenSQLite opens (or creates) the store file at path.
func OpenSQLite(path string) (*SQLiteGateway, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	gw, err := NewSQLiteGateway(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return gw, nil
}

// BulkRead fetches all requested keys in one query.
func (g *SQLiteGateway) BulkRead(ctx context.Context, keys []string) (map[string]string, error) {
	if len(keys) == 0 {
		return map[string]string{}, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(keys)), ", ")
	args := make([]any, len(keys))
	for i, key := range keys {
		args[i] = key
	}

	rows, err := g.db.QueryContext(ctx,
		`SELECT key, value FROM kv_entries WHERE key IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, fmt.Errorf("read keys: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string, len(keys))
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		if value != "" {
			out[key] = value
		}
	}
	return out, rows.Err()
}

// BulkWrite upserts all pairs in one transaction.
func (g *SQLiteGateway) BulkWrite(ctx context.Context, pairs map[string]string) error {
	tx, err := g.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin write: %w", err)
	}
	now := time.Now().Format(sqliteTimeLayout)
	for key, value := range pairs {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO kv_entries (key, value, updated_at) VALUES (?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
			key, value, now)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("write key %q: %w", key, err)
		}
	}
	return tx.Commit()
}

// Clear removes all stored keys.
func (g *SQLiteGateway) Clear(ctx context.Context) error {
	if _, err := g.db.ExecContext(ctx, `DELETE FROM kv_entries`); err != nil {
		return fmt.Errorf("clear keys: %w", err)
	}
	return nil
}

// Close closes the database file.
func (g *SQLiteGateway) Close() error {
	return g.db.Close()
}
