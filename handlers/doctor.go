// File: handlers/doctor.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"meetcure/models"
	"meetcure/services/doctor"
	"meetcure/utils"
)

// DoctorHandler exposes doctor account endpoints.
type DoctorHandler struct {
	Service doctor.DoctorService
}

func NewDoctorHandler(svc doctor.DoctorService) *DoctorHandler {
	return &DoctorHandler{Service: svc}
}

func (h *DoctorHandler) RegisterDoctorHandler(c *gin.Context) {
	var req models.RegisterDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	doc, err := h.Service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, doctor.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email is already registered"})
			return
		}
		utils.GetLogger().Error("Failed to register doctor", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register doctor"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"doctor": doc})
}

func (h *DoctorHandler) LoginDoctorHandler(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	auth, err := h.Service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, doctor.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		utils.GetLogger().Error("Failed to log in doctor", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, auth)
}

func (h *DoctorHandler) GetDoctorByIDHandler(c *gin.Context) {
	id := c.Param("id")
	doc, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, doctor.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
			return
		}
		utils.GetLogger().Error("Failed to fetch doctor", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch doctor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctor": doc})
}

func (h *DoctorHandler) ListDoctorsHandler(c *gin.Context) {
	docs, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list doctors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list doctors"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": docs})
}
