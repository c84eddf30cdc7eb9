package handlers

import (
	"net/http"

	"barberbook/services/establishment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SubscriptionHandler exposes plan checkout for owners.
type SubscriptionHandler struct {
	Service establishment.EstablishmentService
}

// Initiate opens a recurring checkout for the requested plan cycle.
func (h *SubscriptionHandler) Initiate(c *gin.Context) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		PlanType string `json:"planType" binding:"required"`
		BackURL  string `json:"backUrl"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid subscription payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if req.BackURL == "" {
		req.BackURL = c.GetHeader("Origin")
	}

	redirect, err := h.Service.InitiateSubscription(userID.(string), req.PlanType, req.BackURL)
	if err != nil {
		logger.Error("Subscription initiation failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"paymentRedirectUrl": redirect})
}
