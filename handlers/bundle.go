// File: handlers/bundle.go
package handlers

import (
	doctorRepoPkg "meetcure/database/repository/doctor"
	patientRepoPkg "meetcure/database/repository/patient"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct. Routes
// pull both the handlers and the repositories the auth middleware needs.
type HandlerBundle struct {
	DoctorRepo  doctorRepoPkg.DoctorRepository
	PatientRepo patientRepoPkg.PatientRepository

	// Availability endpoints.
	SetAvailabilityHandler    gin.HandlerFunc
	GetAvailabilityHandler    gin.HandlerFunc
	DeleteAvailabilityHandler gin.HandlerFunc

	// Doctor account endpoints.
	RegisterDoctorHandler gin.HandlerFunc
	LoginDoctorHandler    gin.HandlerFunc
	GetDoctorByIDHandler  gin.HandlerFunc
	ListDoctorsHandler    gin.HandlerFunc

	// Patient account endpoints.
	RegisterPatientHandler gin.HandlerFunc
	LoginPatientHandler    gin.HandlerFunc
	GetPatientHandler      gin.HandlerFunc

	// Appointment endpoints.
	BookAppointmentHandler     gin.HandlerFunc
	PatientAppointmentsHandler gin.HandlerFunc
	DoctorAppointmentsHandler  gin.HandlerFunc
	CancelAppointmentHandler   gin.HandlerFunc

	// Calendar endpoint.
	MonthGridHandler gin.HandlerFunc
}
