// File: services/doctor/interface.go
package doctor

import (
	"context"

	"meetcure/models"
)

// DoctorService manages doctor accounts.
type DoctorService interface {
	Register(ctx context.Context, req models.RegisterDoctorRequest) (*models.Doctor, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
	GetAll(ctx context.Context) ([]models.Doctor, error)
}
