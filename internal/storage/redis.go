package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/careconnect/careconnect/internal/config"
)

// RedisGateway persists the state snapshot in Redis.
type RedisGateway struct {
	client *redis.Client
}

// NewRedisGateway connects to Redis and verifies the connection.
func NewRedisGateway(cfg config.RedisConfig) (*RedisGateway, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisGateway{client: client}, nil
}

// BulkRead fetches all requested keys in a single MGET.
func (g *RedisGateway) BulkRead(ctx context.Context, keys []string) (map[string]string, error) {
	values, err := g.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read keys: %w", err)
	}
	out := make(map[string]string, len(keys))
	for i, value := range values {
		if s, ok := value.(string); ok && s != "" {
			out[keys[i]] = s
		}
	}
	return out, nil
}

// BulkWrite stores all pairs in one pipelined round trip.
func (g *RedisGateway) BulkWrite(ctx context.Context, pairs map[string]string) error {
	pipe := g.client.Pipeline()
	for key, value := range pairs {
		pipe.Set(ctx, key, value, 0)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to write keys: %w", err)
	}
	return nil
}

// Clear deletes only this app's keys, not the whole database.
func (g *RedisGateway) Clear(ctx context.Context) error {
	if err := g.client.Del(ctx, AllKeys()...).Err(); err != nil {
		return fmt.Errorf("failed to clear keys: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (g *RedisGateway) Close() error {
	return g.client.Close()
}
