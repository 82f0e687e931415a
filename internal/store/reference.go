package store

import "github.com/careconnect/careconnect/internal/domain"

// Static reference data. Not persisted and not mutable through the store.

// Contacts returns the care-team directory.
func (s *Store) Contacts() []domain.Contact {
	return domain.Contacts()
}

// MessageTemplates returns the canned caregiver messages.
func (s *Store) MessageTemplates() []domain.MessageTemplate {
	return domain.MessageTemplates()
}
