package payments

import (
	"context"
	"errors"
	"log"
	"strconv"

	"nexupay/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrInvalidProviderPaymentID = errors.New("invalid provider payment id")

// MercadoPagoGateway loads payments from Mercado Pago. The webhook only
// receives a payment id; the full payment (status, amount, external
// reference linking back to the platform debt) comes from this lookup.
type MercadoPagoGateway struct {
	client payment.Client
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, paymentID string) (interfaces.ProviderPayment, error) {
	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.ProviderPayment{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(paymentID)
	if err != nil {
		log.Printf("[payment][gateway] non-numeric payment id payment_id=%q", paymentID)
		return interfaces.ProviderPayment{}, ErrInvalidProviderPaymentID
	}

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] sdk get failed payment_id=%s err=%v", paymentID, err)
		return interfaces.ProviderPayment{}, err
	}
	log.Printf("[payment][gateway] get success payment_id=%d status=%s external_reference=%s", resp.ID, resp.Status, resp.ExternalReference)

	return interfaces.ProviderPayment{
		ID:                strconv.Itoa(resp.ID),
		Status:            resp.Status,
		TransactionAmount: resp.TransactionAmount,
		ExternalReference: resp.ExternalReference,
		PaymentMethodID:   resp.PaymentMethodID,
	}, nil
}
