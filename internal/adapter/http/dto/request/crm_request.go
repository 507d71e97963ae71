package request

import (
	"errors"
	"strings"
	"time"

	"nexupay/internal/domain/entities"
)

var (
	ErrInvalidSince             = errors.New("invalid since timestamp")
	ErrInvalidExpectedCloseDate = errors.New("invalid expected close date")
	ErrInvalidActivityDate      = errors.New("invalid activity date")
)

// SetActiveCRMRequest switches the facade to a specific vendor.
type SetActiveCRMRequest struct {
	CRM string `json:"crm" binding:"required"`
}

// CRMContactRequest is a contact pushed to the active vendor, either alone or
// as part of a batch. The platform id is what the vendor dedups on.
type CRMContactRequest struct {
	ID        string  `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name" binding:"required"`
	Email     string  `json:"email" binding:"required"`
	Phone     string  `json:"phone"`
	RUT       string  `json:"rut"`
	TotalDebt float64 `json:"total_debt"`
}

func (r CRMContactRequest) ToEntity() entities.Contact {
	return entities.Contact{
		ID:             r.ID,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Phone:          r.Phone,
		RUT:            r.RUT,
		TotalDebt:      r.TotalDebt,
		PlatformUserID: r.ID,
	}
}

// ContactBatchSyncRequest pushes a set of contacts in one call.
type ContactBatchSyncRequest struct {
	Contacts []CRMContactRequest `json:"contacts" binding:"required"`
}

func (r ContactBatchSyncRequest) ToEntities() []entities.Contact {
	contacts := make([]entities.Contact, 0, len(r.Contacts))
	for _, c := range r.Contacts {
		contacts = append(contacts, c.ToEntity())
	}
	return contacts
}

// AgreementRequest creates or updates a payment agreement (a vendor deal).
type AgreementRequest struct {
	ContactID         string  `json:"contact_id" binding:"required"`
	DebtID            string  `json:"debt_id"`
	Name              string  `json:"name"`
	TotalAmount       float64 `json:"total_amount" binding:"required"`
	Installments      int     `json:"installments"`
	Incentive         float64 `json:"incentive"`
	ExpectedCloseDate string  `json:"expected_close_date"`
}

func (r AgreementRequest) ToEntity() (entities.PaymentAgreement, error) {
	agreement := entities.PaymentAgreement{
		ContactID:    r.ContactID,
		DebtID:       r.DebtID,
		Name:         r.Name,
		TotalAmount:  r.TotalAmount,
		Installments: r.Installments,
		Incentive:    r.Incentive,
	}
	if v := strings.TrimSpace(r.ExpectedCloseDate); v != "" {
		date, err := parseDate(v)
		if err != nil {
			return entities.PaymentAgreement{}, ErrInvalidExpectedCloseDate
		}
		agreement.ExpectedCloseDate = date
	}
	return agreement, nil
}

// ActivityRequest logs a collection activity against a vendor contact.
type ActivityRequest struct {
	ContactID   string `json:"contact_id" binding:"required"`
	Subject     string `json:"subject" binding:"required"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Date        string `json:"date"`
}

func (r ActivityRequest) ToEntity() (entities.Activity, error) {
	activity := entities.Activity{
		ContactID:   r.ContactID,
		Subject:     r.Subject,
		Description: r.Description,
		Type:        entities.ActivityType(r.Type),
		Date:        time.Now().UTC(),
	}
	if activity.Type == "" {
		activity.Type = entities.ActivityOther
	}
	if v := strings.TrimSpace(r.Date); v != "" {
		date, err := parseDate(v)
		if err != nil {
			return entities.Activity{}, ErrInvalidActivityDate
		}
		activity.Date = date
	}
	return activity, nil
}

// FullSyncRequest tunes a full pull from the active vendor.
type FullSyncRequest struct {
	IncludeHistory bool `json:"include_history"`
}

// IncrementalSyncRequest asks for vendor changes after a timestamp. The
// platform keeps no cursor: the caller supplies `since` on every call.
type IncrementalSyncRequest struct {
	Since string `json:"since" binding:"required"`
}

func (r IncrementalSyncRequest) ResolveSince() (time.Time, error) {
	since, err := parseDate(strings.TrimSpace(r.Since))
	if err != nil {
		return time.Time{}, ErrInvalidSince
	}
	return since, nil
}
