package request

import (
	"nexupay/internal/domain/entities"
)

// DebtorRequest is the registration payload for a debtor on the platform.
type DebtorRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name" binding:"required"`
	Email     string  `json:"email" binding:"required"`
	Phone     string  `json:"phone"`
	RUT       string  `json:"rut"`
	TotalDebt float64 `json:"total_debt"`
}

func (r DebtorRequest) ToEntity() entities.Contact {
	return entities.Contact{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		RUT:       r.RUT,
		TotalDebt: r.TotalDebt,
	}
}
