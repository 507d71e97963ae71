package interfaces

import (
	"context"

	"nexupay/internal/domain/entities"
)

// IDebtorRepository abstracts DynamoDB persistence for the platform's
// canonical debtor records.
//
// The platform owns the canonical copy of every debtor; the CRM only ever
// holds a mirror. UpdateCRMRef stores the vendor-assigned id after the first
// successful sync so later syncs and payment mirrors can address the vendor
// record directly.

type IDebtorRepository interface {
	Create(ctx context.Context, c entities.Contact) (entities.Contact, error)
	GetByID(ctx context.Context, id string) (entities.Contact, error)
	GetByEmail(ctx context.Context, email string) (entities.Contact, error)
	List(ctx context.Context, limit int) ([]entities.Contact, error)
	UpdateCRMRef(ctx context.Context, id string, crmID string, crmType entities.CRMType) (entities.Contact, error)
}
