package store

import (
	"context"

	"github.com/careconnect/careconnect/internal/domain"
	apperrors "github.com/careconnect/careconnect/internal/errors"
	"github.com/careconnect/careconnect/internal/utils"
)

// Appointments returns a copy of the appointment collection.
func (s *Store) Appointments() ([]domain.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, apperrors.ErrStoreClosed
	}
	return domain.CloneAppointments(s.appointments), nil
}

// AddAppointment creates an appointment with a fresh id.
func (s *Store) AddAppointment(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.Appointment{}, apperrors.ErrStoreClosed
	}
	appt.ID = utils.NewID()
	s.appointments = append(s.appointments, appt)
	s.mu.Unlock()
	s.commit(ctx)
	return appt, nil
}

// UpdateAppointment shallow-merges the supplied fields by id. Absent ids
// are a no-op.
func (s *Store) UpdateAppointment(ctx context.Context, id string, patch domain.AppointmentPatch) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return apperrors.ErrStoreClosed
	}
	for i := range s.appointments {
		if s.appointments[i].ID != id {
			continue
		}
		if patch.Title != nil {
			s.appointments[i].Title = *patch.Title
		}
		if patch.Date != nil {
			s.appointments[i].Date = *patch.Date
		}
		if patch.Time != nil {
			s.appointments[i].Time = *patch.Time
		}
		if patch.Location != nil {
			s.appointments[i].Location = *patch.Location
		}
		if patch.Provider != nil {
			s.appointments[i].Provider = *patch.Provider
		}
		break
	}
	s.mu.Unlock()
	s.commit(ctx)
	return nil
}

// DeleteAppointment removes the appointment with the given id.
func (s *Store) DeleteAppointment(ctx context.Context, id string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return apperrors.ErrStoreClosed
	}
	kept := s.appointments[:0]
	for _, appt := range s.appointments {
		if appt.ID != id {
			kept = append(kept, appt)
		}
	}
	s.appointments = kept
	s.mu.Unlock()
	s.commit(ctx)
	return nil
}
