package request

import "strings"

// PaymentNotificationRequest is the body Mercado Pago posts to the payment
// webhook. The same payment id may instead arrive as the `data.id` or `id`
// query parameter; ResolvePaymentID prefers the body.
type PaymentNotificationRequest struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

func (r PaymentNotificationRequest) ResolvePaymentID(queryID string) string {
	if v := strings.TrimSpace(r.Data.ID); v != "" {
		return v
	}
	return strings.TrimSpace(queryID)
}

// IsPaymentEvent reports whether the notification refers to a payment.
// Mercado Pago also delivers merchant_order and plan events on the same URL.
func (r PaymentNotificationRequest) IsPaymentEvent(queryType string) bool {
	t := strings.TrimSpace(r.Type)
	if t == "" {
		t = strings.TrimSpace(queryType)
	}
	return t == "" || t == "payment"
}
