package interfaces

import (
	"context"

	"nexupay/internal/domain/entities"
)

// IDebtRepository abstracts DynamoDB persistence for the platform's canonical
// debt records.

type IDebtRepository interface {
	Create(ctx context.Context, d entities.Debt) (entities.Debt, error)
	GetByID(ctx context.Context, id string) (entities.Debt, error)
	ListByDebtorID(ctx context.Context, debtorID string) ([]entities.Debt, error)
	UpdateStatus(ctx context.Context, id string, status entities.DebtStatus, remainingAmount float64) (entities.Debt, error)
	UpdateCRMRef(ctx context.Context, id string, crmID string, crmType entities.CRMType) (entities.Debt, error)
}
