// File: services/patient/interface.go
package patient

import (
	"context"

	"meetcure/models"
)

// PatientService manages patient accounts.
type PatientService interface {
	Register(ctx context.Context, req models.RegisterPatientRequest) (*models.Patient, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	GetByID(ctx context.Context, id string) (*models.Patient, error)
}
