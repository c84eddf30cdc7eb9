package handlers

import (
	"net/http"

	"barberbook/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes the staff back office for appointments.
type AppointmentHandler struct {
	Booking booking.BookingService
}

// List returns the establishment's appointments.
func (h *AppointmentHandler) List(c *gin.Context) {
	estID, ok := establishmentFrom(c)
	if !ok {
		return
	}

	appts, err := h.Booking.ListAppointments(estID)
	if err != nil {
		getLogger(c).Error("Failed to list appointments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve appointments"})
		return
	}
	c.JSON(http.StatusOK, appts)
}

// UpdateStatus applies a manual staff transition.
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	logger := getLogger(c)

	estID, ok := establishmentFrom(c)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid status payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	appt, err := h.Booking.UpdateStatus(estID, c.Param("appointmentId"), req.Status)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}
