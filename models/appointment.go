package models

import "time"

// Appointment statuses. Confirmed appointments whose instant has passed
// are reported as completed; the stored status is untouched.
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCancelled = "cancelled"
	AppointmentCompleted = "completed"
)

// Appointment is a booked visit between a patient and a doctor.
type Appointment struct {
	ID        string    `bson:"id" json:"id"`
	DoctorID  string    `bson:"doctorId" json:"doctorId"`
	PatientID string    `bson:"patientId" json:"patientId"`
	Date      string    `bson:"date" json:"date"` // "2006-01-02"
	Time      string    `bson:"time" json:"time"` // "H:MM AM|PM"
	Reason    string    `bson:"reason,omitempty" json:"reason,omitempty"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// BookAppointmentRequest defines the payload for booking a visit.
type BookAppointmentRequest struct {
	DoctorID string `json:"doctorId" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required,clocktime"`
	Reason   string `json:"reason"`
}
