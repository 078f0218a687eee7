// File: services/appointment/service.go
package appointment

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"meetcure/calendar"
	appointmentRepo "meetcure/database/repository/appointment"
	availabilityRepo "meetcure/database/repository/availability"
	"meetcure/models"
	"meetcure/utils"
)

// Reminders fire this long before the appointment instant.
const reminderLead = time.Hour

// DefaultAppointmentService is the production AppointmentService.
// Reminders and Cache may be nil; bookings then skip reminder
// scheduling and cache invalidation.
type DefaultAppointmentService struct {
	Repo         appointmentRepo.AppointmentRepository
	Availability availabilityRepo.AvailabilityRepository
	Cache        AvailabilityCache
	Reminders    ReminderScheduler
	// Now is the clock used for classification; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultAppointmentService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultAppointmentService) dropCachedSlots(ctx context.Context, doctorID string) {
	if s.Cache != nil {
		s.Cache.Invalidate(ctx, doctorID)
	}
}

func (s *DefaultAppointmentService) Book(ctx context.Context, patientID string, req models.BookAppointmentRequest) (*models.Appointment, error) {
	if _, err := time.Parse(calendar.DateLayout, req.Date); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}
	at, err := calendar.At(req.Date, req.Time, s.now().Location())
	if err != nil {
		return nil, err
	}
	if at.Before(s.now()) {
		return nil, ErrInPast
	}

	// Consuming the slot first keeps two patients from booking the same
	// (doctor, date, time); the $pull only matches while the slot exists.
	if err := s.Availability.RemoveSlot(ctx, req.DoctorID, req.Date, req.Time); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrSlotUnavailable
		}
		return nil, err
	}
	s.dropCachedSlots(ctx, req.DoctorID)

	appt := &models.Appointment{
		DoctorID:  req.DoctorID,
		PatientID: patientID,
		Date:      req.Date,
		Time:      req.Time,
		Reason:    req.Reason,
		Status:    models.AppointmentConfirmed,
	}
	if err := s.Repo.Create(ctx, appt); err != nil {
		// Put the slot back so a storage failure does not leak it.
		if rbErr := s.Availability.AddSlot(ctx, req.DoctorID, req.Date, req.Time); rbErr != nil {
			utils.GetLogger().Error("failed to restore slot after booking failure",
				zap.String("doctorId", req.DoctorID), zap.Error(rbErr))
		}
		s.dropCachedSlots(ctx, req.DoctorID)
		return nil, fmt.Errorf("failed to book appointment: %w", err)
	}

	if s.Reminders != nil {
		if err := s.Reminders.Schedule(ctx, appt, at.Add(-reminderLead)); err != nil {
			// The booking stands; a missed reminder is not worth failing it.
			utils.GetLogger().Warn("failed to schedule reminder",
				zap.String("appointmentId", appt.ID), zap.Error(err))
		}
	}
	return appt, nil
}

func (s *DefaultAppointmentService) ListForPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	appts, err := s.Repo.GetByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return s.deriveStatuses(appts), nil
}

func (s *DefaultAppointmentService) ListForDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	appts, err := s.Repo.GetByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	return s.deriveStatuses(appts), nil
}

// deriveStatuses reports confirmed appointments whose instant lies in
// the past as completed. The stored status is left untouched; records
// with unparseable date/time keep their stored status rather than being
// silently misclassified.
func (s *DefaultAppointmentService) deriveStatuses(appts []models.Appointment) []models.Appointment {
	now := s.now()
	for i := range appts {
		if appts[i].Status != models.AppointmentConfirmed {
			continue
		}
		status, err := calendar.Classify(appts[i].Date, appts[i].Time, now)
		if err != nil {
			utils.GetLogger().Warn("stored appointment has malformed date/time",
				zap.String("appointmentId", appts[i].ID), zap.Error(err))
			continue
		}
		if status == calendar.StatusPast {
			appts[i].Status = models.AppointmentCompleted
		}
	}
	return appts
}

func (s *DefaultAppointmentService) Cancel(ctx context.Context, requesterID, role, appointmentID string) error {
	appt, err := s.Repo.GetByID(ctx, appointmentID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		return err
	}

	switch role {
	case models.RolePatient:
		if appt.PatientID != requesterID {
			return ErrForbidden
		}
	case models.RoleDoctor:
		if appt.DoctorID != requesterID {
			return ErrForbidden
		}
	default:
		return ErrForbidden
	}

	if appt.Status == models.AppointmentCancelled {
		return ErrAlreadyCancelled
	}

	if err := s.Repo.UpdateStatus(ctx, appointmentID, models.AppointmentCancelled); err != nil {
		return err
	}
	if err := s.Availability.AddSlot(ctx, appt.DoctorID, appt.Date, appt.Time); err != nil {
		utils.GetLogger().Error("failed to restore slot after cancellation",
			zap.String("appointmentId", appointmentID), zap.Error(err))
		return nil
	}
	s.dropCachedSlots(ctx, appt.DoctorID)
	return nil
}
