package storage

import (
	"context"
	"sync"
)

// MemoryGateway is a mutex-guarded in-process gateway. It is the default
// backend and the test double for the store.
type MemoryGateway struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryGateway creates an empty in-memory gateway.
func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{
		data: make(map[string]string),
	}
}

// BulkRead returns the stored values for the requested keys.
func (g *MemoryGateway) BulkRead(ctx context.Context, keys []string) (map[string]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make(map[string]string, len(keys))
	for _, key := range keys {
		if value, exists := g.data[key]; exists {
			out[key] = value
		}
	}
	return out, nil
}

// BulkWrite stores all pairs.
func (g *MemoryGateway) BulkWrite(ctx context.Context, pairs map[string]string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	for key, value := range pairs {
		g.data[key] = value
	}
	return nil
}

// Clear removes everything.
func (g *MemoryGateway) Clear(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.data = make(map[string]string)
	return nil
}

// Close is a no-op for the in-memory backend.
func (g *MemoryGateway) Close() error {
	return nil
}
