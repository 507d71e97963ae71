package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"nexupay/internal/domain/entities"
	"nexupay/internal/infrastructure/metrics"
	"nexupay/internal/usecase/interfaces"
)

var (
	ErrInvalidNotification       = errors.New("invalid payment notification")
	ErrPaymentNotLinked          = errors.New("payment has no debt reference")
	ErrPaymentGatewayUnavailable = errors.New("payment gateway not configured")
)

const notificationRetentionTTL = 72 * time.Hour

// PaymentNotificationResult reports what a provider notification did.
type PaymentNotificationResult struct {
	Duplicate       bool                `json:"duplicate"`
	DebtID          string              `json:"debt_id,omitempty"`
	Status          entities.DebtStatus `json:"status,omitempty"`
	RemainingAmount float64             `json:"remaining_amount"`
	ProviderStatus  string              `json:"provider_status,omitempty"`
}

// IPaymentNotificationUseCase processes payment-provider webhook events.

type IPaymentNotificationUseCase interface {
	ProcessPaymentNotification(ctx context.Context, paymentID string) (PaymentNotificationResult, error)
}

// PaymentNotificationUseCase handles the provider's "payment" notifications:
// load the payment from the provider, settle it against the canonical debt in
// DynamoDB, then mirror the new state into the active CRM.
//
// The provider retries notifications aggressively, so every notification id
// is remembered in the idempotency store before processing; replays are
// acknowledged as no-ops. CRM mirror failures are logged and swallowed; the
// provider must always get a success once the platform state is settled.
type PaymentNotificationUseCase struct {
	debtors     interfaces.IDebtorRepository
	debts       interfaces.IDebtRepository
	gateway     interfaces.IPaymentGateway
	idempotency interfaces.IIdempotencyStore
	crm         ICRMFacade
	metrics     *metrics.Metrics
}

var _ IPaymentNotificationUseCase = (*PaymentNotificationUseCase)(nil)

func NewPaymentNotificationUseCase(
	debtors interfaces.IDebtorRepository,
	debts interfaces.IDebtRepository,
	gateway interfaces.IPaymentGateway,
	idempotency interfaces.IIdempotencyStore,
	crm ICRMFacade,
	m *metrics.Metrics,
) *PaymentNotificationUseCase {
	return &PaymentNotificationUseCase{
		debtors:     debtors,
		debts:       debts,
		gateway:     gateway,
		idempotency: idempotency,
		crm:         crm,
		metrics:     m,
	}
}

func (u *PaymentNotificationUseCase) ProcessPaymentNotification(ctx context.Context, paymentID string) (PaymentNotificationResult, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return PaymentNotificationResult{}, ErrInvalidNotification
	}
	log.Printf("[webhook][usecase] notification start payment_id=%s", paymentID)

	// Checked before the idempotency mark: a notification that arrives while
	// the gateway is misconfigured must stay retryable after ops fix it.
	if u.gateway == nil {
		log.Printf("[webhook][usecase] payment gateway not configured payment_id=%s", paymentID)
		u.countEvent("gateway_missing")
		return PaymentNotificationResult{}, ErrPaymentGatewayUnavailable
	}

	if u.idempotency != nil {
		fresh, err := u.idempotency.MarkProcessed(ctx, "webhook:payment:"+paymentID, notificationRetentionTTL)
		if err != nil {
			// Degraded idempotency is better than dropping the payment.
			log.Printf("[webhook][usecase] idempotency store unavailable payment_id=%s err=%v", paymentID, err)
		} else if !fresh {
			log.Printf("[webhook][usecase] duplicate notification payment_id=%s", paymentID)
			u.countEvent("duplicate")
			return PaymentNotificationResult{Duplicate: true}, nil
		}
	}

	payment, err := u.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		log.Printf("[webhook][usecase] provider lookup failed payment_id=%s err=%v", paymentID, err)
		u.countEvent("provider_error")
		return PaymentNotificationResult{}, err
	}
	if payment.Status != "approved" {
		log.Printf("[webhook][usecase] ignoring non-approved payment payment_id=%s status=%s", paymentID, payment.Status)
		u.countEvent("ignored")
		return PaymentNotificationResult{ProviderStatus: payment.Status}, nil
	}
	if payment.ExternalReference == "" {
		log.Printf("[webhook][usecase] payment without external_reference payment_id=%s", paymentID)
		u.countEvent("unlinked")
		return PaymentNotificationResult{}, ErrPaymentNotLinked
	}

	debt, err := u.debts.GetByID(ctx, payment.ExternalReference)
	if err != nil {
		u.countEvent("repo_error")
		return PaymentNotificationResult{}, err
	}
	if debt.ID == "" {
		log.Printf("[webhook][usecase] debt not found payment_id=%s debt_id=%s", paymentID, payment.ExternalReference)
		u.countEvent("unlinked")
		return PaymentNotificationResult{}, ErrDebtNotFound
	}

	remaining := debt.RemainingAmount
	if remaining == 0 {
		remaining = debt.Amount
	}
	remaining -= payment.TransactionAmount
	status := debt.Status
	if remaining <= 0 {
		remaining = 0
		status = entities.DebtStatusPaid
	}

	updated, err := u.debts.UpdateStatus(ctx, debt.ID, status, remaining)
	if err != nil {
		log.Printf("[webhook][usecase] debt update failed payment_id=%s debt_id=%s err=%v", paymentID, debt.ID, err)
		u.countEvent("repo_error")
		return PaymentNotificationResult{}, err
	}
	log.Printf("[webhook][usecase] debt settled payment_id=%s debt_id=%s status=%s remaining=%.2f", paymentID, updated.ID, updated.Status, updated.RemainingAmount)

	u.mirrorToCRM(ctx, updated, payment)
	u.countEvent("processed")

	return PaymentNotificationResult{
		DebtID:          updated.ID,
		Status:          updated.Status,
		RemainingAmount: updated.RemainingAmount,
		ProviderStatus:  payment.Status,
	}, nil
}

// mirrorToCRM pushes the settled state to the active vendor. Failures are
// caller-invisible: the canonical copy is already consistent.
func (u *PaymentNotificationUseCase) mirrorToCRM(ctx context.Context, debt entities.Debt, payment interfaces.ProviderPayment) {
	now := time.Now().UTC()

	if debt.CRMID != "" {
		res := u.crm.UpdateDebtStatus(ctx, debt.CRMID, entities.DebtStatusUpdate{
			Status:          debt.Status,
			RemainingAmount: debt.RemainingAmount,
			LastPaymentDate: now,
		})
		if !res.Success {
			log.Printf("[webhook][usecase] crm debt mirror failed debt_id=%s crm_id=%s err=%s", debt.ID, debt.CRMID, res.Error)
		}
	}

	debtor, err := u.debtors.GetByID(ctx, debt.DebtorID)
	if err != nil || debtor.CRMID == "" {
		log.Printf("[webhook][usecase] crm payment log skipped debt_id=%s debtor_id=%s err=%v", debt.ID, debt.DebtorID, err)
		return
	}
	res := u.crm.LogPayment(ctx, entities.PaymentLog{
		ContactID: debtor.CRMID,
		DebtID:    debt.CRMID,
		Amount:    payment.TransactionAmount,
		Method:    payment.PaymentMethodID,
		Reference: payment.ID,
		Date:      now,
	})
	if !res.Success {
		log.Printf("[webhook][usecase] crm payment log failed debt_id=%s err=%s", debt.ID, res.Error)
	}
}

func (u *PaymentNotificationUseCase) countEvent(outcome string) {
	if u.metrics == nil {
		return
	}
	u.metrics.WebhookEvents.WithLabelValues(outcome).Inc()
}
