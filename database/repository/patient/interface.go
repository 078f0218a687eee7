// File: database/repository/patient/interface.go
package patientRepo

import (
	"context"
	"fmt"

	"meetcure/database"
	"meetcure/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// PatientRepository defines methods for patient account data access.
type PatientRepository interface {
	Create(ctx context.Context, p *models.Patient) error
	GetByID(ctx context.Context, id string) (*models.Patient, error)
	// GetByEmail returns (nil, nil) when no account exists for the email.
	GetByEmail(ctx context.Context, email string) (*models.Patient, error)
	SetTokenHash(ctx context.Context, id, tokenHash string) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.Patient, error)
}

type mongoPatientRepo struct {
	coll *mongo.Collection
}

// NewMongoPatientRepo constructs a new MongoDB PatientRepository.
func NewMongoPatientRepo() PatientRepository {
	repo := &mongoPatientRepo{
		coll: database.DB().Collection("patients"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		fmt.Printf("failed to create patient indexes: %v\n", err)
	}
	return repo
}
