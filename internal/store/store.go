// Package store is the single source of truth for CareConnect state: the
// auth flag, settings, every entity collection, and the load/save lifecycle
// against the persistence gateway. UI screens call its operations and
// re-render from the snapshots it returns; they never mutate state directly.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/careconnect/careconnect/internal/domain"
	apperrors "github.com/careconnect/careconnect/internal/errors"
	"github.com/careconnect/careconnect/internal/logger"
	"github.com/careconnect/careconnect/internal/storage"
)

// Store owns all mutable application state. Every mutation runs
// synchronously against memory and then rewrites the full snapshot to the
// gateway, best-effort. Until Load completes nothing is persisted, so seed
// defaults can never overwrite previously saved data during startup.
type Store struct {
	gateway storage.Gateway
	errs    *apperrors.Handler

	mu              sync.RWMutex
	authenticated   bool
	settings        domain.AppSettings
	medications     []domain.Medication
	appointments    []domain.Appointment
	refillRequests  []domain.RefillRequest
	wellnessEntries []domain.WellnessEntry
	favorites       []string
	onboarded       bool
	loaded          bool
	closed          bool

	subMu       sync.Mutex
	nextSubID   int
	subscribers map[int]func()
}

var _ domain.StateStore = (*Store)(nil)

// New creates a store seeded with the built-in defaults. Call Load before
// expecting persisted data; the seeds let the UI render meaningfully in the
// meantime.
func New(gateway storage.Gateway) *Store {
	return &Store{
		gateway:         gateway,
		errs:            apperrors.NewHandler(logger.GetLogger()),
		settings:        domain.DefaultSettings(),
		medications:     domain.SeedMedications(),
		appointments:    domain.SeedAppointments(),
		refillRequests:  []domain.RefillRequest{},
		wellnessEntries: []domain.WellnessEntry{},
		favorites:       domain.SeedFavorites(),
		subscribers:     make(map[int]func()),
	}
}

// Load performs the one batched read of all persisted keys. Each present,
// non-empty key wholesale-replaces its in-memory collection; absent keys
// leave the seed default in place. Read and decode failures are logged and
// treated as "no persisted data". Only after Load does the store begin
// persisting mutations.
func (s *Store) Load(ctx context.Context) error {
	s.mu.RLock()
	closed := s.closed
	s.mu.RUnlock()
	if closed {
		return apperrors.ErrStoreClosed
	}

	values, err := s.gateway.BulkRead(ctx, storage.AllKeys())
	if err != nil {
		s.errs.Handle(ctx, apperrors.NewStorageError(err).WithContext("op", "load"))
		values = nil
	}

	s.mu.Lock()
	s.applyLocked(ctx, values)
	s.loaded = true
	s.mu.Unlock()
	s.notify()
	return nil
}

// applyLocked replaces in-memory state from decoded gateway values. A value
// that fails to decode is logged and skipped, keeping the seed.
func (s *Store) applyLocked(ctx context.Context, values map[string]string) {
	decode := func(key string, target interface{}) bool {
		raw, ok := values[key]
		if !ok || raw == "" {
			return false
		}
		if err := json.Unmarshal([]byte(raw), target); err != nil {
			s.errs.Handle(ctx, apperrors.NewStorageError(err).WithContext("key", key))
			return false
		}
		return true
	}

	var authenticated bool
	if decode(storage.KeyAuth, &authenticated) {
		s.authenticated = authenticated
	}
	var settings domain.AppSettings
	if decode(storage.KeySettings, &settings) {
		s.settings = settings
	}
	var medications []domain.Medication
	if decode(storage.KeyMedications, &medications) {
		s.medications = medications
	}
	var appointments []domain.Appointment
	if decode(storage.KeyAppointments, &appointments) {
		s.appointments = appointments
	}
	var refills []domain.RefillRequest
	if decode(storage.KeyRefills, &refills) {
		s.refillRequests = refills
	}
	var wellness []domain.WellnessEntry
	if decode(storage.KeyWellness, &wellness) {
		s.wellnessEntries = wellness
	}
	var favorites []string
	if decode(storage.KeyFavorites, &favorites) {
		s.favorites = favorites
	}
	var onboarded bool
	if decode(storage.KeyOnboarding, &onboarded) {
		s.onboarded = onboarded
	}
}

// commit persists the full current snapshot and notifies subscribers.
// Persistence failures are logged and swallowed; in-memory state stays
// authoritative and the next mutation rewrites the whole snapshot, so a
// late or failed save is self-correcting.
func (s *Store) commit(ctx context.Context) {
	s.mu.RLock()
	ready := s.loaded && !s.closed
	var pairs map[string]string
	var encErr error
	if ready {
		pairs, encErr = s.encodeLocked()
	}
	s.mu.RUnlock()

	if ready {
		if encErr != nil {
			s.errs.Handle(ctx, apperrors.NewInternalError(encErr))
		} else if err := s.gateway.BulkWrite(ctx, pairs); err != nil {
			s.errs.Handle(ctx, apperrors.NewStorageError(err).WithContext("op", "save"))
		}
	}
	s.notify()
}

func (s *Store) encodeLocked() (map[string]string, error) {
	state := map[string]interface{}{
		storage.KeyAuth:         s.authenticated,
		storage.KeySettings:     s.settings,
		storage.KeyMedications:  s.medications,
		storage.KeyAppointments: s.appointments,
		storage.KeyRefills:      s.refillRequests,
		storage.KeyWellness:     s.wellnessEntries,
		storage.KeyFavorites:    s.favorites,
		storage.KeyOnboarding:   s.onboarded,
	}
	pairs := make(map[string]string, len(state))
	for key, value := range state {
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", key, err)
		}
		pairs[key] = string(raw)
	}
	return pairs, nil
}

// Subscribe registers a change listener invoked after every committed
// mutation. The returned func unsubscribes.
func (s *Store) Subscribe(fn func()) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subscribers, id)
	}
}

func (s *Store) notify() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// ResetAll wipes the gateway and restores the seed defaults.
func (s *Store) ResetAll(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return apperrors.ErrStoreClosed
	}
	s.authenticated = false
	s.settings = domain.DefaultSettings()
	s.medications = domain.SeedMedications()
	s.appointments = domain.SeedAppointments()
	s.refillRequests = []domain.RefillRequest{}
	s.wellnessEntries = []domain.WellnessEntry{}
	s.favorites = domain.SeedFavorites()
	s.onboarded = false
	s.mu.Unlock()

	if err := s.gateway.Clear(ctx); err != nil {
		s.errs.Handle(ctx, apperrors.NewStorageError(err).WithContext("op", "reset"))
	}
	s.notify()
	return nil
}

// Close flushes a final snapshot and shuts the gateway. Any operation on a
// closed store reports a lifecycle error.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return apperrors.ErrStoreClosed
	}
	var pairs map[string]string
	var encErr error
	if s.loaded {
		pairs, encErr = s.encodeLocked()
	}
	s.closed = true
	s.mu.Unlock()

	if pairs != nil && encErr == nil {
		if err := s.gateway.BulkWrite(ctx, pairs); err != nil {
			s.errs.Handle(ctx, apperrors.NewStorageError(err).WithContext("op", "close"))
		}
	}
	return s.gateway.Close()
}
