package handlers

import (
	"net/http"

	"barberbook/models"
	"barberbook/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes weekly-template management for staff.
type AvailabilityHandler struct {
	Booking booking.BookingService
}

// ReplaceTemplate saves an employee's full weekly schedule.
func (h *AvailabilityHandler) ReplaceTemplate(c *gin.Context) {
	logger := getLogger(c)

	estID, ok := establishmentFrom(c)
	if !ok {
		return
	}

	var req struct {
		Days []models.AvailabilityDay `json:"days"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid availability payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	tmpl, err := h.Booking.ReplaceTemplate(estID, c.Param("employeeId"), req.Days)
	if err != nil {
		if booking.CodeOf(err) != "" {
			respondBookingError(c, err)
			return
		}
		logger.Error("Availability update failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tmpl)
}

// GetTemplate returns an employee's stored weekly schedule.
func (h *AvailabilityHandler) GetTemplate(c *gin.Context) {
	if _, ok := establishmentFrom(c); !ok {
		return
	}

	tmpl, err := h.Booking.Template(c.Param("employeeId"))
	if err != nil {
		getLogger(c).Error("Failed to fetch availability", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve availability"})
		return
	}
	if tmpl == nil {
		c.JSON(http.StatusOK, gin.H{"days": []models.AvailabilityDay{}})
		return
	}
	c.JSON(http.StatusOK, tmpl)
}
