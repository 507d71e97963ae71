package entities

import (
	"strings"
	"time"
)

// CRMType identifies which vendor a mirrored record came from.

type CRMType string

const (
	CRMSalesforce CRMType = "salesforce"
	CRMHubSpot    CRMType = "hubspot"
	CRMZoho       CRMType = "zoho"
	CRMPipedrive  CRMType = "pipedrive"
	CRMUpnify     CRMType = "upnify"
)

// Contact is the platform-neutral debtor record mirrored into the active CRM.
//
// Domain notes:
//   - The platform (DynamoDB) is the source of truth; the CRM copy is a secondary,
//     eventually-consistent mirror.
//   - CRMID is vendor-assigned and only present after the first sync.
//   - RUT is the Chilean tax id, used as a secondary natural key for de-duplication.
//   - PlatformUserID is the join key back to the platform's own user record.
//
// Storage model (DynamoDB, debtors table):
//   - PK: id
//   - GSI1 (email-index): email

type Contact struct {
	ID             string    `json:"id,omitempty"`
	CRMID          string    `json:"crm_id,omitempty"`
	CRMType        CRMType   `json:"crm_type,omitempty"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	RUT            string    `json:"rut,omitempty"`
	TotalDebt      float64   `json:"total_debt"`
	PlatformUserID string    `json:"platform_user_id,omitempty"`
	CreatedAt      time.Time `json:"created_at,omitempty"`
	UpdatedAt      time.Time `json:"updated_at,omitempty"`
}

// Name returns the display name derived from first/last name.
func (c Contact) Name() string {
	return strings.TrimSpace(strings.TrimSpace(c.FirstName) + " " + strings.TrimSpace(c.LastName))
}

// ContactFilters narrows CRM contact reads.
type ContactFilters struct {
	Email string
	RUT   string
	Limit int
}
