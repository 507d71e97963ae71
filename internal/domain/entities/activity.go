package entities

import "time"

// ActivityType is the platform-neutral activity vocabulary. Each vendor maps it
// to its native task/activity/note type.

type ActivityType string

const (
	ActivityCall     ActivityType = "call"
	ActivityMeeting  ActivityType = "meeting"
	ActivityEmail    ActivityType = "email"
	ActivityPayment  ActivityType = "payment"
	ActivityFollowUp ActivityType = "follow_up"
	ActivityOther    ActivityType = "other"
)

// Activity is a one-way audit entry written to the active CRM. Activities are
// created, never updated; reads only come back through the raw history paths.
type Activity struct {
	ContactID   string       `json:"contact_id"`
	Subject     string       `json:"subject"`
	Description string       `json:"description,omitempty"`
	Type        ActivityType `json:"type"`
	Date        time.Time    `json:"date"`
}

// PaymentLog is the payment-specific convenience input for LogPayment. Adapters
// format it into a payment activity; vendors differentiate activity types from
// notes, so the extra layer is intentional.
type PaymentLog struct {
	ContactID string    `json:"contact_id"`
	DebtID    string    `json:"debt_id,omitempty"`
	Amount    float64   `json:"amount"`
	Method    string    `json:"method,omitempty"`
	Reference string    `json:"reference,omitempty"`
	Date      time.Time `json:"date"`
}

// ActivityFilters narrows CRM activity reads.
type ActivityFilters struct {
	ContactID string
	Since     time.Time
	Limit     int
}
