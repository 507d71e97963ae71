package request

import (
	"errors"
	"strings"
	"time"

	"nexupay/internal/domain/entities"
)

var ErrInvalidDueDate = errors.New("invalid due date")

// DebtRequest creates a debt against a registered debtor.
type DebtRequest struct {
	DebtorID         string  `json:"debtor_id" binding:"required"`
	Name             string  `json:"name"`
	Amount           float64 `json:"amount" binding:"required"`
	Status           string  `json:"status"`
	DueDate          string  `json:"due_date"`
	OriginalCreditor string  `json:"original_creditor"`
	Description      string  `json:"description"`
}

func (r DebtRequest) ToEntity() (entities.Debt, error) {
	debt := entities.Debt{
		DebtorID:         r.DebtorID,
		Name:             r.Name,
		Amount:           r.Amount,
		Status:           entities.DebtStatus(r.Status),
		OriginalCreditor: r.OriginalCreditor,
		Description:      r.Description,
	}
	if v := strings.TrimSpace(r.DueDate); v != "" {
		due, err := parseDate(v)
		if err != nil {
			return entities.Debt{}, ErrInvalidDueDate
		}
		debt.DueDate = due
	}
	return debt, nil
}

func parseDate(v string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("unrecognized date format")
}
