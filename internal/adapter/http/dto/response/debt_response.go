package response

import (
	"time"

	"nexupay/internal/domain/entities"
)

type DebtResponse struct {
	ID               string     `json:"id"`
	DebtorID         string     `json:"debtor_id,omitempty"`
	CRMID            string     `json:"crm_id,omitempty"`
	CRMType          string     `json:"crm_type,omitempty"`
	ContactID        string     `json:"contact_id,omitempty"`
	Name             string     `json:"name"`
	Amount           float64    `json:"amount"`
	RemainingAmount  float64    `json:"remaining_amount"`
	Status           string     `json:"status"`
	DueDate          *time.Time `json:"due_date,omitempty"`
	OriginalCreditor string     `json:"original_creditor,omitempty"`
	Description      string     `json:"description,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func FromDebt(d entities.Debt) DebtResponse {
	resp := DebtResponse{
		ID:               d.ID,
		DebtorID:         d.DebtorID,
		CRMID:            d.CRMID,
		CRMType:          string(d.CRMType),
		ContactID:        d.ContactID,
		Name:             d.Name,
		Amount:           d.Amount,
		RemainingAmount:  d.RemainingAmount,
		Status:           string(d.Status),
		OriginalCreditor: d.OriginalCreditor,
		Description:      d.Description,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
	if !d.DueDate.IsZero() {
		due := d.DueDate
		resp.DueDate = &due
	}
	return resp
}

func FromDebts(debts []entities.Debt) []DebtResponse {
	out := make([]DebtResponse, 0, len(debts))
	for _, d := range debts {
		out = append(out, FromDebt(d))
	}
	return out
}
