package interfaces

import "context"

// ProviderPayment is the slice of a provider payment the webhook flow needs.
type ProviderPayment struct {
	ID                string
	Status            string
	TransactionAmount float64
	ExternalReference string
	PaymentMethodID   string
}

// IPaymentGateway abstracts the external payment provider (Mercado Pago).
//
// The webhook flow receives only a payment id from the provider and loads the
// full payment through this interface before touching platform state.
type IPaymentGateway interface {
	GetPayment(ctx context.Context, paymentID string) (ProviderPayment, error)
}
