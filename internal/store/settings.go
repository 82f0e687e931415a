package store

import (
	"context"

	"github.com/careconnect/careconnect/internal/domain"
	apperrors "github.com/careconnect/careconnect/internal/errors"
)

// Settings returns the current preferences.
func (s *Store) Settings() (domain.AppSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return domain.AppSettings{}, apperrors.ErrStoreClosed
	}
	return s.settings, nil
}

// UpdateSettings shallow-merges the supplied fields; nil fields keep their
// previous values.
func (s *Store) UpdateSettings(ctx context.Context, patch domain.SettingsPatch) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return apperrors.ErrStoreClosed
	}
	if patch.LeftHandMode != nil {
		s.settings.LeftHandMode = *patch.LeftHandMode
	}
	if patch.BiometricEnabled != nil {
		s.settings.BiometricEnabled = *patch.BiometricEnabled
	}
	if patch.NotificationLeadTime != nil {
		s.settings.NotificationLeadTime = *patch.NotificationLeadTime
	}
	if patch.SessionTimeout != nil {
		s.settings.SessionTimeout = *patch.SessionTimeout
	}
	if patch.TextSize != nil {
		s.settings.TextSize = *patch.TextSize
	}
	if patch.HighContrast != nil {
		s.settings.HighContrast = *patch.HighContrast
	}
	s.mu.Unlock()
	s.commit(ctx)
	return nil
}

// HasCompletedOnboarding reports the onboarding flag.
func (s *Store) HasCompletedOnboarding() (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return false, apperrors.ErrStoreClosed
	}
	return s.onboarded, nil
}

// CompleteOnboarding flips the one-way onboarding flag. There is no reset.
func (s *Store) CompleteOnboarding(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return apperrors.ErrStoreClosed
	}
	s.onboarded = true
	s.mu.Unlock()
	s.commit(ctx)
	return nil
}
