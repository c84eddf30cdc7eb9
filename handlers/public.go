package handlers

import (
	"net/http"
	"time"

	"barberbook/services/booking"
	"barberbook/services/establishment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PublicHandler exposes the unauthenticated booking surface.
type PublicHandler struct {
	Establishments establishment.EstablishmentService
	Booking        booking.BookingService
}

// Page returns everything a client needs to book: the establishment profile,
// its staff and its catalog.
func (h *PublicHandler) Page(c *gin.Context) {
	estID := c.Param("establishmentId")

	est, err := h.Establishments.GetEstablishment(estID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Establishment not found"})
		return
	}

	emps, err := h.Establishments.ListEmployees(estID)
	if err != nil {
		getLogger(c).Error("Failed to list employees", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load booking page"})
		return
	}
	svcs, err := h.Establishments.ListServices(estID)
	if err != nil {
		getLogger(c).Error("Failed to list services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load booking page"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"establishment": est,
		"employees":     emps,
		"services":      svcs,
	})
}

// AvailableTimes lists bookable starts for an employee on a date. The date
// path segment is "YYYY-MM-DD" in the server's local zone.
func (h *PublicHandler) AvailableTimes(c *gin.Context) {
	date, err := time.ParseInLocation("2006-01-02", c.Param("date"), time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	result, err := h.Booking.AvailableTimes(c.Param("employeeId"), date)
	if err != nil {
		getLogger(c).Error("Failed to compute available times", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute available times"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// InitiatePayment admits a booking attempt and returns the payment redirect.
func (h *PublicHandler) InitiatePayment(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		EstablishmentID string    `json:"establishmentId" binding:"required"`
		EmployeeID      string    `json:"employeeId" binding:"required"`
		ServiceIDs      []string  `json:"serviceIds" binding:"required"`
		ClientName      string    `json:"clientName" binding:"required"`
		ClientPhone     string    `json:"clientPhone" binding:"required"`
		AppointmentDate time.Time `json:"appointmentDate" binding:"required"`
		RedirectBaseURL string    `json:"redirectBaseUrl"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid booking payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	redirectBase := req.RedirectBaseURL
	if redirectBase == "" {
		redirectBase = c.GetHeader("Origin")
	}

	result, err := h.Booking.InitiateBooking(booking.BookingRequest{
		EstablishmentID: req.EstablishmentID,
		EmployeeID:      req.EmployeeID,
		ServiceIDs:      req.ServiceIDs,
		ClientName:      req.ClientName,
		ClientPhone:     req.ClientPhone,
		Start:           req.AppointmentDate,
		RedirectBaseURL: redirectBase,
	})
	if err != nil {
		// A gateway failure still carries the admitted appointment id.
		if booking.CodeOf(err) == booking.CodeGatewayUnavailable && result != nil {
			c.JSON(http.StatusBadGateway, gin.H{
				"error":         "Payment could not be started; please try again",
				"code":          booking.CodeGatewayUnavailable,
				"appointmentId": result.AppointmentID,
			})
			return
		}
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}
