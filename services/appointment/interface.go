// File: services/appointment/interface.go
package appointment

import (
	"context"
	"time"

	"meetcure/models"
)

// AppointmentService manages the booking lifecycle.
type AppointmentService interface {
	// Book reserves one of the doctor's open slots for the patient and
	// schedules a reminder.
	Book(ctx context.Context, patientID string, req models.BookAppointmentRequest) (*models.Appointment, error)
	// ListForPatient returns the patient's appointments, with confirmed
	// ones whose instant has passed reported as completed.
	ListForPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	// ListForDoctor is the doctor-side view of ListForPatient.
	ListForDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error)
	// Cancel voids the appointment and restores the consumed slot. Only
	// the booking patient or the booked doctor may cancel.
	Cancel(ctx context.Context, requesterID, role, appointmentID string) error
}

// ReminderScheduler enqueues a reminder ahead of the appointment instant.
// Implemented by the cron package's asynq-backed scheduler.
type ReminderScheduler interface {
	Schedule(ctx context.Context, appt *models.Appointment, at time.Time) error
}

// AvailabilityCache drops cached availability snapshots after a slot
// mutation. Implemented by the availability service.
type AvailabilityCache interface {
	Invalidate(ctx context.Context, doctorID string)
}
