// File: handlers/patient.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"meetcure/models"
	"meetcure/services/patient"
	"meetcure/utils"
)

// PatientHandler exposes patient account endpoints.
type PatientHandler struct {
	Service patient.PatientService
}

func NewPatientHandler(svc patient.PatientService) *PatientHandler {
	return &PatientHandler{Service: svc}
}

func (h *PatientHandler) RegisterPatientHandler(c *gin.Context) {
	var req models.RegisterPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	p, err := h.Service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, patient.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email is already registered"})
			return
		}
		utils.GetLogger().Error("Failed to register patient", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register patient"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"patient": p})
}

func (h *PatientHandler) LoginPatientHandler(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	auth, err := h.Service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, patient.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		utils.GetLogger().Error("Failed to log in patient", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, auth)
}

// GetPatientHandler returns the authenticated patient's own profile.
func (h *PatientHandler) GetPatientHandler(c *gin.Context) {
	patientID := c.GetString("accountID")
	if patientID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Patient not authenticated"})
		return
	}

	p, err := h.Service.GetByID(c.Request.Context(), patientID)
	if err != nil {
		if errors.Is(err, patient.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
			return
		}
		utils.GetLogger().Error("Failed to fetch patient", zap.String("id", patientID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch patient"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"patient": p})
}
