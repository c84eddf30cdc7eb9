package handlers

import (
	"net/http"

	"barberbook/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateService adds an offering to the caller's catalog.
func (h *EstablishmentHandler) CreateService(c *gin.Context) {
	logger := getLogger(c)

	estID, ok := establishmentFrom(c)
	if !ok {
		return
	}

	var req models.Service
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid service payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	svc, err := h.Service.CreateService(estID, req)
	if err != nil {
		logger.Error("Service creation failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// UpdateService updates an offering.
func (h *EstablishmentHandler) UpdateService(c *gin.Context) {
	logger := getLogger(c)

	estID, ok := establishmentFrom(c)
	if !ok {
		return
	}

	var req models.Service
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid service payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.ID = c.Param("serviceId")

	svc, err := h.Service.UpdateService(estID, req)
	if err != nil {
		logger.Error("Service update failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// DeleteService removes an offering.
func (h *EstablishmentHandler) DeleteService(c *gin.Context) {
	estID, ok := establishmentFrom(c)
	if !ok {
		return
	}

	if err := h.Service.DeleteService(estID, c.Param("serviceId")); err != nil {
		getLogger(c).Error("Service deletion failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}

// ListServices returns the establishment's catalog.
func (h *EstablishmentHandler) ListServices(c *gin.Context) {
	estID, ok := establishmentFrom(c)
	if !ok {
		return
	}

	svcs, err := h.Service.ListServices(estID)
	if err != nil {
		getLogger(c).Error("Failed to list services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve services"})
		return
	}
	c.JSON(http.StatusOK, svcs)
}
