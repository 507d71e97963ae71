package response

import (
	"time"

	"nexupay/internal/domain/entities"
)

type DebtorResponse struct {
	ID        string    `json:"id"`
	CRMID     string    `json:"crm_id,omitempty"`
	CRMType   string    `json:"crm_type,omitempty"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	RUT       string    `json:"rut,omitempty"`
	TotalDebt float64   `json:"total_debt"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromDebtor(c entities.Contact) DebtorResponse {
	return DebtorResponse{
		ID:        c.ID,
		CRMID:     c.CRMID,
		CRMType:   string(c.CRMType),
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		RUT:       c.RUT,
		TotalDebt: c.TotalDebt,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func FromDebtors(contacts []entities.Contact) []DebtorResponse {
	out := make([]DebtorResponse, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, FromDebtor(c))
	}
	return out
}
