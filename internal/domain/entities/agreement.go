package entities

import "time"

// PaymentAgreement is a negotiated installment plan. Vendors model it as a
// distinct deal/opportunity object with extra fields, so it has its own create
// and update operations instead of riding on the generic debt path.
type PaymentAgreement struct {
	CRMID             string    `json:"crm_id,omitempty"`
	ContactID         string    `json:"contact_id"`
	DebtID            string    `json:"debt_id,omitempty"`
	Name              string    `json:"name"`
	TotalAmount       float64   `json:"total_amount"`
	Installments      int       `json:"installments"`
	Incentive         float64   `json:"incentive,omitempty"`
	ExpectedCloseDate time.Time `json:"expected_close_date,omitempty"`
}
