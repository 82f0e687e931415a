package store

import (
	"context"
	"time"

	"github.com/careconnect/careconnect/internal/domain"
	apperrors "github.com/careconnect/careconnect/internal/errors"
	"github.com/careconnect/careconnect/internal/utils"
)

const maxRefillStep = 3

// RefillRequests returns a copy of the refill request collection.
func (s *Store) RefillRequests() ([]domain.RefillRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, apperrors.ErrStoreClosed
	}
	return domain.CloneRefillRequests(s.refillRequests), nil
}

// CreateRefillRequest starts a pending step-1 refill workflow for the given
// medication, snapshotting its name and pharmacy at creation time. An
// unknown medication id leaves the collection untouched.
func (s *Store) CreateRefillRequest(ctx context.Context, medicationID string) (domain.RefillRequest, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.RefillRequest{}, apperrors.ErrStoreClosed
	}
	var med *domain.Medication
	for i := range s.medications {
		if s.medications[i].ID == medicationID {
			med = &s.medications[i]
			break
		}
	}
	if med == nil {
		s.mu.Unlock()
		return domain.RefillRequest{}, apperrors.ErrMedicationNotFound
	}
	req := domain.RefillRequest{
		ID:             utils.NewID(),
		MedicationID:   medicationID,
		MedicationName: med.Name,
		Status:         domain.RefillPending,
		RequestDate:    time.Now(),
		Pharmacy:       med.Pharmacy,
		Step:           1,
	}
	s.refillRequests = append(s.refillRequests, req)
	s.mu.Unlock()
	s.commit(ctx)
	return req, nil
}

// UpdateRefillRequest shallow-merges the supplied fields by id. Absent ids
// are a no-op.
func (s *Store) UpdateRefillRequest(ctx context.Context, id string, patch domain.RefillRequestPatch) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return apperrors.ErrStoreClosed
	}
	for i := range s.refillRequests {
		if s.refillRequests[i].ID != id {
			continue
		}
		if patch.Status != nil {
			s.refillRequests[i].Status = *patch.Status
		}
		if patch.Step != nil {
			s.refillRequests[i].Step = *patch.Step
		}
		break
	}
	s.mu.Unlock()
	s.commit(ctx)
	return nil
}

// AdvanceRefillRequest moves the workflow forward: step 1 -> 2 -> 3, then a
// final advance submits the request and marks it processing.
func (s *Store) AdvanceRefillRequest(ctx context.Context, id string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return apperrors.ErrStoreClosed
	}
	for i := range s.refillRequests {
		if s.refillRequests[i].ID != id {
			continue
		}
		if s.refillRequests[i].Step < maxRefillStep {
			s.refillRequests[i].Step++
		} else {
			s.refillRequests[i].Status = domain.RefillProcessing
		}
		break
	}
	s.mu.Unlock()
	s.commit(ctx)
	return nil
}
