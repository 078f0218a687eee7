// File: handlers/appointment.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"meetcure/calendar"
	"meetcure/models"
	"meetcure/services/appointment"
	"meetcure/utils"
)

// AppointmentHandler exposes the appointment service over HTTP.
type AppointmentHandler struct {
	Service appointment.AppointmentService
}

func NewAppointmentHandler(svc appointment.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

// BookAppointmentHandler books a slot for the authenticated patient.
func (h *AppointmentHandler) BookAppointmentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	patientID := c.GetString("accountID")
	if patientID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Patient not authenticated"})
		return
	}

	var req models.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	appt, err := h.Service.Book(c.Request.Context(), patientID, req)
	if err != nil {
		switch {
		case errors.Is(err, appointment.ErrSlotUnavailable):
			c.JSON(http.StatusConflict, gin.H{"error": "That slot is no longer available"})
		case errors.Is(err, appointment.ErrInPast),
			errors.Is(err, appointment.ErrInvalidDate),
			errors.Is(err, calendar.ErrInvalidClock):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to book appointment", zap.String("patientId", patientID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to book appointment"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"appointment": appt})
}

// PatientAppointmentsHandler lists the authenticated patient's
// appointments with derived completion status.
func (h *AppointmentHandler) PatientAppointmentsHandler(c *gin.Context) {
	patientID := c.GetString("accountID")
	if patientID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Patient not authenticated"})
		return
	}

	appts, err := h.Service.ListForPatient(c.Request.Context(), patientID)
	if err != nil {
		utils.GetLogger().Error("Failed to list appointments", zap.String("patientId", patientID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list appointments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// DoctorAppointmentsHandler lists the authenticated doctor's bookings.
func (h *AppointmentHandler) DoctorAppointmentsHandler(c *gin.Context) {
	doctorID := c.GetString("accountID")
	if doctorID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Doctor not authenticated"})
		return
	}

	appts, err := h.Service.ListForDoctor(c.Request.Context(), doctorID)
	if err != nil {
		utils.GetLogger().Error("Failed to list appointments", zap.String("doctorId", doctorID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list appointments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// CancelAppointmentHandler cancels an appointment on behalf of either
// side of the booking.
func (h *AppointmentHandler) CancelAppointmentHandler(c *gin.Context) {
	accountID := c.GetString("accountID")
	role := c.GetString("role")
	if accountID == "" || role == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	appointmentID := c.Param("id")
	if appointmentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing appointment ID in path"})
		return
	}

	if err := h.Service.Cancel(c.Request.Context(), accountID, role, appointmentID); err != nil {
		switch {
		case errors.Is(err, appointment.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		case errors.Is(err, appointment.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to cancel this appointment"})
		case errors.Is(err, appointment.ErrAlreadyCancelled):
			c.JSON(http.StatusConflict, gin.H{"error": "Appointment is already cancelled"})
		default:
			utils.GetLogger().Error("Failed to cancel appointment", zap.String("appointmentId", appointmentID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel appointment"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled"})
}
