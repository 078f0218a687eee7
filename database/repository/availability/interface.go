// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"
	"fmt"

	"meetcure/database"
	"meetcure/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AvailabilityRepository defines data access for per-doctor, per-date
// availability documents. One document exists per (doctorId, date);
// Upsert replaces the whole document for its key.
type AvailabilityRepository interface {
	Upsert(ctx context.Context, av *models.Availability) (*models.Availability, error)
	GetByDoctor(ctx context.Context, doctorID string) ([]models.Availability, error)
	GetByDoctorAndDate(ctx context.Context, doctorID, date string) (*models.Availability, error)
	DeleteByDoctorAndDate(ctx context.Context, doctorID, date string) error
	RemoveSlot(ctx context.Context, doctorID, date, slot string) error
	AddSlot(ctx context.Context, doctorID, date, slot string) error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	repo := &mongoAvailabilityRepo{
		coll: database.DB().Collection("availability"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		fmt.Printf("failed to create availability indexes: %v\n", err)
	}
	return repo
}
