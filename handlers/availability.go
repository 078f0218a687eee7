// File: handlers/availability.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"meetcure/models"
	"meetcure/services/availability"
	"meetcure/utils"
)

// AvailabilityHandler exposes the availability service over HTTP.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// SetAvailabilityHandler stores the authenticated doctor's slots for a
// date. Repeating the same request leaves a single document in place.
func (h *AvailabilityHandler) SetAvailabilityHandler(c *gin.Context) {
	logger := utils.GetLogger()

	doctorID := c.GetString("accountID")
	if doctorID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Doctor not authenticated"})
		return
	}

	var req models.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	stored, err := h.Service.Set(c.Request.Context(), doctorID, req)
	if err != nil {
		var vErr *availability.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
			return
		}
		logger.Error("Failed to set availability", zap.String("doctorId", doctorID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set availability"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"availability": stored})
}

// GetAvailabilityHandler is the public read of a doctor's open slots.
func (h *AvailabilityHandler) GetAvailabilityHandler(c *gin.Context) {
	doctorID := c.Param("doctorId")
	if doctorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing doctor ID in path"})
		return
	}

	docs, err := h.Service.GetByDoctor(c.Request.Context(), doctorID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch availability", zap.String("doctorId", doctorID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch availability"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"availability": docs})
}

// DeleteAvailabilityHandler removes the authenticated doctor's
// availability for the date in the path. The route carries the same
// doctor auth as the other write endpoints.
func (h *AvailabilityHandler) DeleteAvailabilityHandler(c *gin.Context) {
	doctorID := c.GetString("accountID")
	if doctorID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Doctor not authenticated"})
		return
	}

	date := c.Param("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing date in path"})
		return
	}

	if err := h.Service.DeleteByDate(c.Request.Context(), doctorID, date); err != nil {
		var vErr *availability.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
		case errors.Is(err, availability.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "No availability for that date"})
		default:
			utils.GetLogger().Error("Failed to delete availability", zap.String("doctorId", doctorID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete availability"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Availability deleted"})
}
