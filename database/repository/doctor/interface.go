// File: database/repository/doctor/interface.go
package doctorRepo

import (
	"context"
	"fmt"

	"meetcure/database"
	"meetcure/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// DoctorRepository defines methods for doctor account data access.
type DoctorRepository interface {
	Create(ctx context.Context, doc *models.Doctor) error
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
	// GetByEmail returns (nil, nil) when no account exists for the email.
	GetByEmail(ctx context.Context, email string) (*models.Doctor, error)
	GetAll(ctx context.Context) ([]models.Doctor, error)
	SetTokenHash(ctx context.Context, id, tokenHash string) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.Doctor, error)
}

type mongoDoctorRepo struct {
	coll *mongo.Collection
}

// NewMongoDoctorRepo constructs a new MongoDB DoctorRepository.
func NewMongoDoctorRepo() DoctorRepository {
	repo := &mongoDoctorRepo{
		coll: database.DB().Collection("doctors"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		fmt.Printf("failed to create doctor indexes: %v\n", err)
	}
	return repo
}
