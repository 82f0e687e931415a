package utils

import "github.com/google/uuid"

// NewID returns a random 128-bit identifier for new entities.
func NewID() string {
	return uuid.NewString()
}
