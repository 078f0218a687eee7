// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"fmt"

	"meetcure/database"
	"meetcure/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AppointmentRepository defines data access for booked appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	GetByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	GetByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	repo := &mongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		fmt.Printf("failed to create appointment indexes: %v\n", err)
	}
	return repo
}
