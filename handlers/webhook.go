package handlers

import (
	"net/http"

	"barberbook/models"
	"barberbook/services/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WebhookHandler receives gateway notifications and hands them to the
// reconciler. Recognized and deliberately-ignored events both get a 200 so
// the gateway stops retrying; only transient failures get a 5xx.
type WebhookHandler struct {
	Reconciler *payment.Reconciler
	Secret     string
}

// Receive handles one gateway notification.
func (h *WebhookHandler) Receive(c *gin.Context) {
	logger := getLogger(c)

	var event models.WebhookEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		logger.Warn("Unparseable webhook payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	if err := payment.VerifySignature(h.Secret,
		c.GetHeader("x-signature"), c.GetHeader("x-request-id"), c.Query("data.id")); err != nil {
		logger.Warn("Webhook signature rejected", zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid signature"})
		return
	}

	if err := h.Reconciler.Reconcile(c.Request.Context(), event); err != nil {
		logger.Error("Webhook reconciliation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Reconciliation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
