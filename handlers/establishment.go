package handlers

import (
	"net/http"

	"barberbook/models"
	"barberbook/services/establishment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EstablishmentHandler exposes the owner-facing profile, staff and catalog
// management endpoints.
type EstablishmentHandler struct {
	Service establishment.EstablishmentService
}

// Create creates the owner's business profile.
func (h *EstablishmentHandler) Create(c *gin.Context) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.Establishment
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid establishment payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	est, err := h.Service.CreateEstablishment(userID.(string), req)
	if err != nil {
		logger.Error("Establishment creation failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, est)
}

// Update updates the owner's profile.
func (h *EstablishmentHandler) Update(c *gin.Context) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.Establishment
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid establishment payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	est, err := h.Service.UpdateEstablishment(userID.(string), req)
	if err != nil {
		logger.Error("Establishment update failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, est)
}

// Mine returns the authenticated owner's profile.
func (h *EstablishmentHandler) Mine(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	est, err := h.Service.GetByOwner(userID.(string))
	if err != nil {
		getLogger(c).Error("Failed to fetch establishment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve establishment"})
		return
	}
	if est == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Establishment not found"})
		return
	}
	c.JSON(http.StatusOK, est)
}
