package handlers

import (
	"net/http"

	"barberbook/services/booking"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves a Zap logger from the Gin context or falls back to the
// global one.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}

// bookingErrorStatus maps a coded booking error onto an HTTP status.
func bookingErrorStatus(err error) int {
	switch booking.CodeOf(err) {
	case booking.CodeInvalidReference, booking.CodeInvalidStatus:
		return http.StatusBadRequest
	case booking.CodeOutsideAvailability, booking.CodeSlotConflict:
		return http.StatusConflict
	case booking.CodeGatewayUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondBookingError writes a coded booking failure, or a generic 500 for
// uncoded errors.
func respondBookingError(c *gin.Context, err error) {
	code := booking.CodeOf(err)
	if code == "" {
		getLogger(c).Error("booking operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	body := gin.H{"error": err.Error(), "code": code}
	if be, ok := err.(*booking.Error); ok {
		body["error"] = be.Message
	}
	c.JSON(bookingErrorStatus(err), body)
}

// establishmentFrom reads the authenticated establishment id set by the auth
// middleware.
func establishmentFrom(c *gin.Context) (string, bool) {
	v, exists := c.Get("establishmentID")
	if !exists {
		c.JSON(http.StatusForbidden, gin.H{"error": "No establishment linked to this account"})
		return "", false
	}
	id, ok := v.(string)
	if !ok || id == "" {
		c.JSON(http.StatusForbidden, gin.H{"error": "No establishment linked to this account"})
		return "", false
	}
	return id, true
}
