package handlers

import (
	"errors"
	"log"
	"net/http"

	request "nexupay/internal/adapter/http/dto/request"
	"nexupay/internal/usecase"
	"nexupay/pkg"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives payment-provider notifications.
//
// Mercado Pago retries on any non-2xx, so only transient failures (provider
// lookups, store writes) return 5xx. Notifications that can never succeed
// (unlinked payments, unknown debts) are acknowledged and dropped.

type WebhookHandler struct {
	usecase usecase.IPaymentNotificationUseCase
}

func NewWebhookHandler(uc usecase.IPaymentNotificationUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// PaymentNotification handles POST /v1/webhooks/payments. The payment id may
// arrive in the body or in the data.id/id query parameters.
func (h *WebhookHandler) PaymentNotification(c *gin.Context) {
	var payload request.PaymentNotificationRequest
	_ = c.ShouldBindJSON(&payload)

	if !payload.IsPaymentEvent(c.Query("type")) {
		log.Printf("[webhook][handler] non-payment event ignored type=%s", payload.Type)
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	paymentID := payload.ResolvePaymentID(c.Query("data.id"))
	if paymentID == "" {
		paymentID = c.Query("id")
	}
	log.Printf("[webhook][handler] notification received payment_id=%s", paymentID)

	result, err := h.usecase.ProcessPaymentNotification(c.Request.Context(), paymentID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidNotification):
			appErr := pkg.NewDomainErrorSimple("INVALID_NOTIFICATION", "Invalid payment notification", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		case errors.Is(err, usecase.ErrPaymentNotLinked), errors.Is(err, usecase.ErrDebtNotFound):
			// Retrying will never fix these; ack so the provider stops.
			log.Printf("[webhook][handler] unlinked payment acknowledged payment_id=%s err=%v", paymentID, err)
			c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		default:
			log.Printf("[webhook][handler] notification failed payment_id=%s err=%v", paymentID, err)
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
