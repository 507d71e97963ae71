package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"nexupay/internal/domain/entities"
	"nexupay/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrDebtorNotFound      = errors.New("debtor not found")
	ErrDebtorAlreadyExists = errors.New("debtor already exists")
	ErrInvalidDebtorID     = errors.New("invalid debtor id")
	ErrInvalidDebtorEmail  = errors.New("invalid debtor email")
	ErrInvalidDebtorName   = errors.New("invalid debtor name")
	ErrDebtNotFound        = errors.New("debt not found")
	ErrInvalidDebtID       = errors.New("invalid debt id")
	ErrInvalidDebtAmount   = errors.New("invalid debt amount")
)

// IDebtorUseCase exposes the platform-side debtor and debt operations.
//
// The platform store (DynamoDB) holds the canonical copy; the active CRM is a
// secondary mirror kept up to date on a best-effort basis. A CRM failure
// never fails a platform write.

type IDebtorUseCase interface {
	RegisterDebtor(ctx context.Context, debtor entities.Contact) (entities.Contact, error)
	GetDebtor(ctx context.Context, id string) (entities.Contact, error)
	ListDebtors(ctx context.Context, limit int) ([]entities.Contact, error)
	CreateDebt(ctx context.Context, debt entities.Debt) (entities.Debt, error)
	ListDebtorDebts(ctx context.Context, debtorID string) ([]entities.Debt, error)
}

type DebtorUseCase struct {
	debtors interfaces.IDebtorRepository
	debts   interfaces.IDebtRepository
	crm     ICRMFacade
}

var _ IDebtorUseCase = (*DebtorUseCase)(nil)

func NewDebtorUseCase(debtors interfaces.IDebtorRepository, debts interfaces.IDebtRepository, crm ICRMFacade) *DebtorUseCase {
	return &DebtorUseCase{debtors: debtors, debts: debts, crm: crm}
}

func (u *DebtorUseCase) RegisterDebtor(ctx context.Context, debtor entities.Contact) (entities.Contact, error) {
	debtor.Email = strings.TrimSpace(strings.ToLower(debtor.Email))
	debtor.FirstName = strings.TrimSpace(debtor.FirstName)
	debtor.LastName = strings.TrimSpace(debtor.LastName)
	debtor.RUT = strings.TrimSpace(debtor.RUT)

	if debtor.Email == "" || !strings.Contains(debtor.Email, "@") {
		return entities.Contact{}, ErrInvalidDebtorEmail
	}
	if debtor.LastName == "" {
		return entities.Contact{}, ErrInvalidDebtorName
	}

	// Enforce: 1 debtor per email.
	if existing, err := u.debtors.GetByEmail(ctx, debtor.Email); err != nil {
		return entities.Contact{}, err
	} else if existing.ID != "" {
		return entities.Contact{}, ErrDebtorAlreadyExists
	}

	now := time.Now().UTC()
	debtor.ID = uuid.NewString()
	debtor.PlatformUserID = debtor.ID
	debtor.CreatedAt = now
	debtor.UpdatedAt = now

	created, err := u.debtors.Create(ctx, debtor)
	if err != nil {
		log.Printf("[debtor][usecase] register failed email=%s err=%v", debtor.Email, err)
		return entities.Contact{}, err
	}
	log.Printf("[debtor][usecase] register success debtor_id=%s email=%s", created.ID, created.Email)

	// Best-effort CRM mirror; registration already succeeded.
	sync := u.crm.SyncContact(ctx, created)
	if !sync.Success {
		log.Printf("[debtor][usecase] crm mirror failed debtor_id=%s err=%s", created.ID, sync.Error)
		return created, nil
	}
	log.Printf("[debtor][usecase] crm mirror %s debtor_id=%s crm_contact_id=%s", sync.Action, created.ID, sync.ContactID)

	crmType := u.crm.GetAvailableCRMs().Active
	updated, err := u.debtors.UpdateCRMRef(ctx, created.ID, sync.ContactID, crmType)
	if err != nil {
		log.Printf("[debtor][usecase] crm ref store failed debtor_id=%s err=%v", created.ID, err)
		return created, nil
	}
	return updated, nil
}

func (u *DebtorUseCase) GetDebtor(ctx context.Context, id string) (entities.Contact, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Contact{}, ErrInvalidDebtorID
	}

	debtor, err := u.debtors.GetByID(ctx, id)
	if err != nil {
		return entities.Contact{}, err
	}
	if debtor.ID == "" {
		return entities.Contact{}, ErrDebtorNotFound
	}
	return debtor, nil
}

func (u *DebtorUseCase) ListDebtors(ctx context.Context, limit int) ([]entities.Contact, error) {
	return u.debtors.List(ctx, limit)
}

func (u *DebtorUseCase) CreateDebt(ctx context.Context, debt entities.Debt) (entities.Debt, error) {
	debt.DebtorID = strings.TrimSpace(debt.DebtorID)
	if debt.DebtorID == "" {
		return entities.Debt{}, ErrInvalidDebtorID
	}
	if debt.Amount <= 0 {
		return entities.Debt{}, ErrInvalidDebtAmount
	}

	debtor, err := u.debtors.GetByID(ctx, debt.DebtorID)
	if err != nil {
		return entities.Debt{}, err
	}
	if debtor.ID == "" {
		return entities.Debt{}, ErrDebtorNotFound
	}

	now := time.Now().UTC()
	debt.ID = uuid.NewString()
	if debt.Status == "" {
		debt.Status = entities.DebtStatusActive
	}
	if debt.RemainingAmount == 0 {
		debt.RemainingAmount = debt.Amount
	}
	debt.CreatedAt = now
	debt.UpdatedAt = now

	created, err := u.debts.Create(ctx, debt)
	if err != nil {
		log.Printf("[debtor][usecase] debt create failed debtor_id=%s err=%v", debt.DebtorID, err)
		return entities.Debt{}, err
	}
	log.Printf("[debtor][usecase] debt create success debt_id=%s debtor_id=%s amount=%.2f", created.ID, created.DebtorID, created.Amount)
	return created, nil
}

func (u *DebtorUseCase) ListDebtorDebts(ctx context.Context, debtorID string) ([]entities.Debt, error) {
	debtorID = strings.TrimSpace(debtorID)
	if debtorID == "" {
		return nil, ErrInvalidDebtorID
	}
	return u.debts.ListByDebtorID(ctx, debtorID)
}
