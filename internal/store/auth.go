package store

import (
	"context"

	apperrors "github.com/careconnect/careconnect/internal/errors"
)

// Login sets the auth flag. Credential checking belongs to the calling UI.
func (s *Store) Login(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return apperrors.ErrStoreClosed
	}
	s.authenticated = true
	s.mu.Unlock()
	s.commit(ctx)
	return nil
}

// Logout clears the auth flag.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return apperrors.ErrStoreClosed
	}
	s.authenticated = false
	s.mu.Unlock()
	s.commit(ctx)
	return nil
}

// IsAuthenticated reports the auth flag.
func (s *Store) IsAuthenticated() (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return false, apperrors.ErrStoreClosed
	}
	return s.authenticated, nil
}
