package usecase

import (
	"context"
	"errors"
	"testing"

	"nexupay/internal/domain/entities"
	"nexupay/internal/usecase/interfaces"
	mock_interfaces "nexupay/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func approvedPayment(debtID string, amount float64) interfaces.ProviderPayment {
	return interfaces.ProviderPayment{
		ID:                "mp-1001",
		Status:            "approved",
		TransactionAmount: amount,
		ExternalReference: debtID,
		PaymentMethodID:   "pix",
	}
}

func TestPaymentNotificationUseCase_ProcessPaymentNotification(t *testing.T) {
	ctx := context.Background()
	noCRM := NewCRMFacade(map[entities.CRMType]interfaces.ICRMAdapter{})

	t.Run("empty payment id", func(t *testing.T) {
		uc := NewPaymentNotificationUseCase(nil, nil, nil, nil, noCRM, nil)
		_, err := uc.ProcessPaymentNotification(ctx, "   ")
		if !errors.Is(err, ErrInvalidNotification) {
			t.Fatalf("expected ErrInvalidNotification, got %v", err)
		}
	})

	t.Run("replay is acknowledged without processing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		idem := mock_interfaces.NewMockIIdempotencyStore(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentNotificationUseCase(nil, nil, gateway, idem, noCRM, nil)

		idem.EXPECT().MarkProcessed(gomock.Any(), "webhook:payment:mp-1001", notificationRetentionTTL).Return(false, nil)

		res, err := uc.ProcessPaymentNotification(ctx, "mp-1001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Duplicate {
			t.Fatalf("expected duplicate ack, got %+v", res)
		}
	})

	t.Run("missing gateway fails without panicking", func(t *testing.T) {
		uc := NewPaymentNotificationUseCase(nil, nil, nil, nil, noCRM, nil)
		if _, err := uc.ProcessPaymentNotification(ctx, "12345"); !errors.Is(err, ErrPaymentGatewayUnavailable) {
			t.Fatalf("expected ErrPaymentGatewayUnavailable, got %v", err)
		}
	})

	t.Run("idempotency store failure degrades gracefully", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		idem := mock_interfaces.NewMockIIdempotencyStore(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		debts := mock_interfaces.NewMockIDebtRepository(ctrl)
		debtors := mock_interfaces.NewMockIDebtorRepository(ctrl)
		uc := NewPaymentNotificationUseCase(debtors, debts, gateway, idem, noCRM, nil)

		idem.EXPECT().MarkProcessed(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("redis down"))
		gateway.EXPECT().GetPayment(gomock.Any(), "mp-1001").Return(approvedPayment("debt-1", 50000), nil)
		debts.EXPECT().GetByID(gomock.Any(), "debt-1").Return(entities.Debt{ID: "debt-1", DebtorID: "d-1", Amount: 50000, RemainingAmount: 50000, Status: entities.DebtStatusActive}, nil)
		debts.EXPECT().UpdateStatus(gomock.Any(), "debt-1", entities.DebtStatusPaid, 0.0).Return(entities.Debt{ID: "debt-1", DebtorID: "d-1", Status: entities.DebtStatusPaid}, nil)
		debtors.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Contact{ID: "d-1"}, nil)

		res, err := uc.ProcessPaymentNotification(ctx, "mp-1001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Duplicate || res.Status != entities.DebtStatusPaid {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("non-approved payment is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentNotificationUseCase(nil, nil, gateway, nil, noCRM, nil)

		gateway.EXPECT().GetPayment(gomock.Any(), "mp-1001").Return(interfaces.ProviderPayment{ID: "mp-1001", Status: "pending"}, nil)

		res, err := uc.ProcessPaymentNotification(ctx, "mp-1001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ProviderStatus != "pending" || res.DebtID != "" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("payment without external reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentNotificationUseCase(nil, nil, gateway, nil, noCRM, nil)

		gateway.EXPECT().GetPayment(gomock.Any(), "mp-1001").Return(interfaces.ProviderPayment{ID: "mp-1001", Status: "approved"}, nil)

		if _, err := uc.ProcessPaymentNotification(ctx, "mp-1001"); !errors.Is(err, ErrPaymentNotLinked) {
			t.Fatalf("expected ErrPaymentNotLinked, got %v", err)
		}
	})

	t.Run("unknown debt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		debts := mock_interfaces.NewMockIDebtRepository(ctrl)
		uc := NewPaymentNotificationUseCase(nil, debts, gateway, nil, noCRM, nil)

		gateway.EXPECT().GetPayment(gomock.Any(), "mp-1001").Return(approvedPayment("debt-404", 1000), nil)
		debts.EXPECT().GetByID(gomock.Any(), "debt-404").Return(entities.Debt{}, nil)

		if _, err := uc.ProcessPaymentNotification(ctx, "mp-1001"); !errors.Is(err, ErrDebtNotFound) {
			t.Fatalf("expected ErrDebtNotFound, got %v", err)
		}
	})

	t.Run("partial payment keeps debt open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		debts := mock_interfaces.NewMockIDebtRepository(ctrl)
		debtors := mock_interfaces.NewMockIDebtorRepository(ctrl)
		uc := NewPaymentNotificationUseCase(debtors, debts, gateway, nil, noCRM, nil)

		gateway.EXPECT().GetPayment(gomock.Any(), "mp-1001").Return(approvedPayment("debt-1", 20000), nil)
		debts.EXPECT().GetByID(gomock.Any(), "debt-1").Return(entities.Debt{ID: "debt-1", DebtorID: "d-1", Amount: 50000, RemainingAmount: 50000, Status: entities.DebtStatusActive}, nil)
		debts.EXPECT().UpdateStatus(gomock.Any(), "debt-1", entities.DebtStatusActive, 30000.0).Return(entities.Debt{ID: "debt-1", DebtorID: "d-1", Status: entities.DebtStatusActive, RemainingAmount: 30000}, nil)
		debtors.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Contact{ID: "d-1"}, nil)

		res, err := uc.ProcessPaymentNotification(ctx, "mp-1001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.DebtStatusActive || res.RemainingAmount != 30000 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("full payment settles the debt and mirrors to the crm", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		debts := mock_interfaces.NewMockIDebtRepository(ctrl)
		debtors := mock_interfaces.NewMockIDebtorRepository(ctrl)
		adapter := configuredAdapter(ctrl)
		crm := facadeWith(ctrl, adapter)
		uc := NewPaymentNotificationUseCase(debtors, debts, gateway, nil, crm, nil)

		gateway.EXPECT().GetPayment(gomock.Any(), "mp-1001").Return(approvedPayment("debt-1", 50000), nil)
		debts.EXPECT().GetByID(gomock.Any(), "debt-1").Return(entities.Debt{ID: "debt-1", DebtorID: "d-1", CRMID: "opp-9", Amount: 50000, RemainingAmount: 50000, Status: entities.DebtStatusActive}, nil)
		debts.EXPECT().UpdateStatus(gomock.Any(), "debt-1", entities.DebtStatusPaid, 0.0).Return(entities.Debt{ID: "debt-1", DebtorID: "d-1", CRMID: "opp-9", Status: entities.DebtStatusPaid}, nil)

		adapter.EXPECT().UpdateDebtStatus(gomock.Any(), "opp-9", gomock.Any()).Return(entities.WriteResult{Success: true, ID: "opp-9"})
		debtors.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Contact{ID: "d-1", CRMID: "hs-77"}, nil)
		adapter.EXPECT().LogPayment(gomock.Any(), gomock.AssignableToTypeOf(entities.PaymentLog{})).DoAndReturn(
			func(_ context.Context, p entities.PaymentLog) entities.WriteResult {
				if p.ContactID != "hs-77" || p.Amount != 50000 || p.Reference != "mp-1001" {
					t.Fatalf("unexpected payment log: %+v", p)
				}
				return entities.WriteResult{Success: true}
			},
		)

		res, err := uc.ProcessPaymentNotification(ctx, "mp-1001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.DebtStatusPaid || res.RemainingAmount != 0 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("crm mirror failure stays invisible to the provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		debts := mock_interfaces.NewMockIDebtRepository(ctrl)
		debtors := mock_interfaces.NewMockIDebtorRepository(ctrl)
		adapter := configuredAdapter(ctrl)
		uc := NewPaymentNotificationUseCase(debtors, debts, gateway, nil, facadeWith(ctrl, adapter), nil)

		gateway.EXPECT().GetPayment(gomock.Any(), "mp-1001").Return(approvedPayment("debt-1", 50000), nil)
		debts.EXPECT().GetByID(gomock.Any(), "debt-1").Return(entities.Debt{ID: "debt-1", DebtorID: "d-1", CRMID: "opp-9", Amount: 50000, Status: entities.DebtStatusActive}, nil)
		debts.EXPECT().UpdateStatus(gomock.Any(), "debt-1", entities.DebtStatusPaid, 0.0).Return(entities.Debt{ID: "debt-1", DebtorID: "d-1", CRMID: "opp-9", Status: entities.DebtStatusPaid}, nil)

		adapter.EXPECT().UpdateDebtStatus(gomock.Any(), "opp-9", gomock.Any()).Return(entities.WriteResult{Success: false, Error: "vendor 500"})
		debtors.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Contact{ID: "d-1", CRMID: "hs-77"}, nil)
		adapter.EXPECT().LogPayment(gomock.Any(), gomock.Any()).Return(entities.WriteResult{Success: false, Error: "vendor 500"})

		if _, err := uc.ProcessPaymentNotification(ctx, "mp-1001"); err != nil {
			t.Fatalf("crm mirror failure must not surface: %v", err)
		}
	})
}
