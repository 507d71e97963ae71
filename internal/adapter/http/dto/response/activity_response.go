package response

import (
	"time"

	"nexupay/internal/domain/entities"
)

type ActivityResponse struct {
	ContactID   string    `json:"contact_id,omitempty"`
	Subject     string    `json:"subject"`
	Description string    `json:"description,omitempty"`
	Type        string    `json:"type"`
	Date        time.Time `json:"date"`
}

func FromActivity(a entities.Activity) ActivityResponse {
	return ActivityResponse{
		ContactID:   a.ContactID,
		Subject:     a.Subject,
		Description: a.Description,
		Type:        string(a.Type),
		Date:        a.Date,
	}
}

func FromActivities(activities []entities.Activity) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, FromActivity(a))
	}
	return out
}
