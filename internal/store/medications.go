package store

import (
	"context"
	"time"

	"github.com/careconnect/careconnect/internal/domain"
	apperrors "github.com/careconnect/careconnect/internal/errors"
	"github.com/careconnect/careconnect/internal/utils"
)

// Medications returns a deep copy of the medication collection.
func (s *Store) Medications() ([]domain.Medication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, apperrors.ErrStoreClosed
	}
	return domain.CloneMedications(s.medications), nil
}

// AddMedication creates a medication with a fresh id and empty history,
// regardless of what the input carried in those fields.
func (s *Store) AddMedication(ctx context.Context, med domain.Medication) (domain.Medication, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.Medication{}, apperrors.ErrStoreClosed
	}
	med = med.Clone()
	med.ID = utils.NewID()
	med.History = []domain.HistoryEntry{}
	med.LastTaken = nil
	s.medications = append(s.medications, med)
	s.mu.Unlock()
	s.commit(ctx)
	return med.Clone(), nil
}

// UpdateMedication shallow-merges the supplied fields into the medication
// with the given id. Absent ids are a no-op.
func (s *Store) UpdateMedication(ctx context.Context, id string, patch domain.MedicationPatch) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return apperrors.ErrStoreClosed
	}
	for i := range s.medications {
		if s.medications[i].ID != id {
			continue
		}
		if patch.Name != nil {
			s.medications[i].Name = *patch.Name
		}
		if patch.Dose != nil {
			s.medications[i].Dose = *patch.Dose
		}
		if patch.Frequency != nil {
			s.medications[i].Frequency = *patch.Frequency
		}
		if patch.Times != nil {
			s.medications[i].Times = domain.CloneStrings(*patch.Times)
		}
		if patch.RefillsRemaining != nil {
			s.medications[i].RefillsRemaining = *patch.RefillsRemaining
		}
		if patch.Pharmacy != nil {
			s.medications[i].Pharmacy = *patch.Pharmacy
		}
		break
	}
	s.mu.Unlock()
	s.commit(ctx)
	return nil
}

// DeleteMedication removes the medication with the given id.
func (s *Store) DeleteMedication(ctx context.Context, id string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return apperrors.ErrStoreClosed
	}
	kept := s.medications[:0]
	for _, med := range s.medications {
		if med.ID != id {
			kept = append(kept, med)
		}
	}
	s.medications = kept
	s.mu.Unlock()
	s.commit(ctx)
	return nil
}

// TakeMedication appends a taken entry stamped now and moves the lastTaken
// marker to it.
func (s *Store) TakeMedication(ctx context.Context, id, user string) error {
	return s.recordMedicationAction(ctx, id, user, domain.ActionTaken)
}

// SkipMedication appends a skipped entry. The lastTaken marker keeps
// pointing at the most recent taken dose.
func (s *Store) SkipMedication(ctx context.Context, id, user string) error {
	return s.recordMedicationAction(ctx, id, user, domain.ActionSkipped)
}

func (s *Store) recordMedicationAction(ctx context.Context, id, user string, action domain.HistoryAction) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return apperrors.ErrStoreClosed
	}
	for i := range s.medications {
		if s.medications[i].ID != id {
			continue
		}
		entry := domain.HistoryEntry{
			Timestamp: time.Now(),
			Action:    action,
			User:      user,
		}
		s.medications[i].History = append(s.medications[i].History, entry)
		if action == domain.ActionTaken {
			s.medications[i].LastTaken = deriveLastTaken(s.medications[i].History)
		}
		break
	}
	s.mu.Unlock()
	s.commit(ctx)
	return nil
}

// UndoLastMedicationAction removes the most recent history entry and
// recomputes the lastTaken marker from the new tail. An empty history is a
// no-op.
func (s *Store) UndoLastMedicationAction(ctx context.Context, id string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return apperrors.ErrStoreClosed
	}
	for i := range s.medications {
		if s.medications[i].ID != id {
			continue
		}
		if len(s.medications[i].History) == 0 {
			break
		}
		s.medications[i].History = s.medications[i].History[:len(s.medications[i].History)-1]
		s.medications[i].LastTaken = deriveLastTaken(s.medications[i].History)
		break
	}
	s.mu.Unlock()
	s.commit(ctx)
	return nil
}

// deriveLastTaken recomputes the denormalized marker from the history tail:
// present iff the most recent entry is a taken action.
func deriveLastTaken(history []domain.HistoryEntry) *domain.LastTaken {
	if len(history) == 0 {
		return nil
	}
	last := history[len(history)-1]
	if last.Action != domain.ActionTaken {
		return nil
	}
	return &domain.LastTaken{Timestamp: last.Timestamp, User: last.User}
}
