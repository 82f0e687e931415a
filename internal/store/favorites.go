package store

import (
	"context"

	"github.com/careconnect/careconnect/internal/domain"
	apperrors "github.com/careconnect/careconnect/internal/errors"
)

// Favorites returns a copy of the favorite paths, in stored order.
func (s *Store) Favorites() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, apperrors.ErrStoreClosed
	}
	return domain.CloneStrings(s.favorites), nil
}

// ToggleFavorite adds the path if absent and removes it if present. The
// order of the remaining items is preserved, so toggling twice restores
// the original sequence.
func (s *Store) ToggleFavorite(ctx context.Context, path string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return apperrors.ErrStoreClosed
	}
	next := make([]string, 0, len(s.favorites)+1)
	removed := false
	for _, p := range s.favorites {
		if p == path {
			removed = true
			continue
		}
		next = append(next, p)
	}
	if !removed {
		next = append(next, path)
	}
	s.favorites = next
	s.mu.Unlock()
	s.commit(ctx)
	return nil
}
