package domain

import (
	"context"
)

// StateStore is the single source of truth UI screens talk to. Screens never
// mutate collections directly; every write goes through one of these
// operations and the store persists the full snapshot afterward.
type StateStore interface {
	// Auth
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	IsAuthenticated() (bool, error)

	// Settings
	Settings() (AppSettings, error)
	UpdateSettings(ctx context.Context, patch SettingsPatch) error

	// Medications
	Medications() ([]Medication, error)
	AddMedication(ctx context.Context, med Medication) (Medication, error)
	UpdateMedication(ctx context.Context, id string, patch MedicationPatch) error
	DeleteMedication(ctx context.Context, id string) error
	TakeMedication(ctx context.Context, id, user string) error
	SkipMedication(ctx context.Context, id, user string) error
	UndoLastMedicationAction(ctx context.Context, id string) error

	// Appointments
	Appointments() ([]Appointment, error)
	AddAppointment(ctx context.Context, appt Appointment) (Appointment, error)
	UpdateAppointment(ctx context.Context, id string, patch AppointmentPatch) error
	DeleteAppointment(ctx context.Context, id string) error

	// Refill requests
	RefillRequests() ([]RefillRequest, error)
	CreateRefillRequest(ctx context.Context, medicationID string) (RefillRequest, error)
	UpdateRefillRequest(ctx context.Context, id string, patch RefillRequestPatch) error
	AdvanceRefillRequest(ctx context.Context, id string) error

	// Wellness
	WellnessEntries() ([]WellnessEntry, error)
	AddWellnessEntry(ctx context.Context, entry WellnessEntry) (WellnessEntry, error)

	// Favorites
	Favorites() ([]string, error)
	ToggleFavorite(ctx context.Context, path string) error

	// Onboarding
	HasCompletedOnboarding() (bool, error)
	CompleteOnboarding(ctx context.Context) error

	// Static reference data
	Contacts() []Contact
	MessageTemplates() []MessageTemplate

	// Lifecycle
	Load(ctx context.Context) error
	ResetAll(ctx context.Context) error
	Close(ctx context.Context) error
	Subscribe(fn func()) (unsubscribe func())
}
