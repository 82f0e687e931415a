package store

import (
	"context"

	"github.com/careconnect/careconnect/internal/domain"
	apperrors "github.com/careconnect/careconnect/internal/errors"
	"github.com/careconnect/careconnect/internal/utils"
)

// WellnessEntries returns a copy of the wellness log. Entries are
// append-only; there is no update or delete operation.
func (s *Store) WellnessEntries() ([]domain.WellnessEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, apperrors.ErrStoreClosed
	}
	return domain.CloneWellnessEntries(s.wellnessEntries), nil
}

// AddWellnessEntry appends a check-in with a fresh id.
func (s *Store) AddWellnessEntry(ctx context.Context, entry domain.WellnessEntry) (domain.WellnessEntry, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.WellnessEntry{}, apperrors.ErrStoreClosed
	}
	entry.ID = utils.NewID()
	s.wellnessEntries = append(s.wellnessEntries, entry)
	s.mu.Unlock()
	s.commit(ctx)
	return entry, nil
}
