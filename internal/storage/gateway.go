package storage

import "context"

// Persisted keys, one per top-level collection or flag.
const (
	KeyAuth         = "careconnect:auth"
	KeySettings     = "careconnect:settings"
	KeyMedications  = "careconnect:medications"
	KeyAppointments = "careconnect:appointments"
	KeyRefills      = "careconnect:refills"
	KeyWellness     = "careconnect:wellness"
	KeyFavorites    = "careconnect:favorites"
	KeyOnboarding   = "careconnect:onboarding"
)

// AllKeys returns every persisted key, in stable order.
func AllKeys() []string {
	return []string{
		KeyAuth,
		KeySettings,
		KeyMedications,
		KeyAppointments,
		KeyRefills,
		KeyWellness,
		KeyFavorites,
		KeyOnboarding,
	}
}

// Gateway is the key-value persistence collaborator the store depends on.
// Values are serialized text; encoding and decoding is the store's job.
// Keys absent from the backend are absent from the BulkRead result.
type Gateway interface {
	BulkRead(ctx context.Context, keys []string) (map[string]string, error)
	BulkWrite(ctx context.Context, pairs map[string]string) error
	Clear(ctx context.Context) error
	Close() error
}
