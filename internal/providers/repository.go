package providers

import (
	"context"
	"errors"
)

// ErrNotFound indicates no row matched the lookup. Callers treat it as
// "no recipient", not as a failure of the overall request.
var ErrNotFound = errors.New("providers: not found")

// Repository resolves notification recipients from the marketplace's read
// tables. All lookups are read-only.
type Repository interface {
	// DoctorEmail returns the email for a doctor row by id.
	DoctorEmail(ctx context.Context, id string) (string, error)
	// NurseEmail returns the email for a nurse row by id.
	NurseEmail(ctx context.Context, id string) (string, error)
	// StoreEmail returns the email for a medical store (pharmacy) row by id.
	StoreEmail(ctx context.Context, id string) (string, error)
	// EmergencyNurseEmails returns every approved, emergency-available nurse.
	EmergencyNurseEmails(ctx context.Context) ([]string, error)
	// UserEmail resolves a profile's email by user id.
	UserEmail(ctx context.Context, userID string) (string, error)
}
