// File: services/availability/interface.go
package availability

import (
	"context"

	"meetcure/models"
)

// AvailabilityService manages per-doctor, per-date open slots.
type AvailabilityService interface {
	// Set replaces the doctor's slots for a date. Identical calls are
	// idempotent: one document exists per (doctor, date) afterwards.
	Set(ctx context.Context, doctorID string, req models.SetAvailabilityRequest) (*models.Availability, error)
	// GetByDoctor returns all availability for a doctor, empty when none.
	GetByDoctor(ctx context.Context, doctorID string) ([]models.Availability, error)
	// DeleteByDate removes the doctor's availability document for a date.
	DeleteByDate(ctx context.Context, doctorID, date string) error
}
