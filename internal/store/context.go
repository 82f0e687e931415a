package store

import (
	"context"

	apperrors "github.com/careconnect/careconnect/internal/errors"
)

type contextKey struct{}

// NewContext attaches a store so collaborators can recover it later.
func NewContext(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the attached store. It fails loudly when no store is
// attached, catching integration mistakes early instead of silently handing
// back defaults.
func FromContext(ctx context.Context) (*Store, error) {
	s, ok := ctx.Value(contextKey{}).(*Store)
	if !ok || s == nil {
		return nil, apperrors.ErrNoStoreInContext
	}
	return s, nil
}
