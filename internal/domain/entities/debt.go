package entities

import "time"

// DebtStatus is the platform-neutral debt lifecycle.
//
// Each vendor maps these to its own pipeline-stage vocabulary and back. The
// translation is lossy for some vendors: Pipedrive only knows open/won/lost, so
// "negotiating" collapses into the same native status as "active" and cannot be
// recovered on the way back. That asymmetry is part of the contract, not a bug.

type DebtStatus string

const (
	DebtStatusActive      DebtStatus = "active"
	DebtStatusNegotiating DebtStatus = "negotiating"
	DebtStatusPaid        DebtStatus = "paid"
	DebtStatusCancelled   DebtStatus = "cancelled"
)

// Debt is the platform-neutral representation of an outstanding debt, mirrored
// to the vendor's opportunity/deal-equivalent object.
//
// Storage model (DynamoDB, debts table):
//   - PK: id
//   - GSI1 (debtor_id-index): debtor_id

type Debt struct {
	ID               string     `json:"id,omitempty"`
	DebtorID         string     `json:"debtor_id,omitempty"`
	CRMID            string     `json:"crm_id,omitempty"`
	CRMType          CRMType    `json:"crm_type,omitempty"`
	ContactID        string     `json:"contact_id,omitempty"`
	Name             string     `json:"name"`
	Amount           float64    `json:"amount"`
	RemainingAmount  float64    `json:"remaining_amount,omitempty"`
	Status           DebtStatus `json:"status"`
	DueDate          time.Time  `json:"due_date,omitempty"`
	OriginalCreditor string     `json:"original_creditor,omitempty"`
	Description      string     `json:"description,omitempty"`
	CreatedAt        time.Time  `json:"created_at,omitempty"`
	UpdatedAt        time.Time  `json:"updated_at,omitempty"`
}

// DebtStatusUpdate carries the fields a payment event pushes to the CRM.
type DebtStatusUpdate struct {
	Status          DebtStatus `json:"status"`
	RemainingAmount float64    `json:"remaining_amount"`
	LastPaymentDate time.Time  `json:"last_payment_date"`
}

// DebtFilters narrows CRM debt imports.
type DebtFilters struct {
	Status    DebtStatus
	ContactID string
	Limit     int
}
