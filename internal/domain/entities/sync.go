package entities

import "time"

// ConfigStatus reports whether a vendor adapter holds usable credentials.
// Produced synchronously from locally-held configuration; never a network call.
type ConfigStatus struct {
	Configured bool   `json:"configured"`
	Message    string `json:"message"`
}

// ContactSyncResult is the settlement of a single create-or-update contact sync.
//
// Action is "created" when no existing vendor record matched the natural key
// (email or RUT, vendor-dependent) and "updated" when one did.
type ContactSyncResult struct {
	Success   bool   `json:"success"`
	Action    string `json:"action,omitempty"`
	ContactID string `json:"contact_id,omitempty"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
}

const (
	SyncActionCreated = "created"
	SyncActionUpdated = "updated"
)

// BatchSyncResult aggregates per-item settlements of a contact batch. One
// item's failure never aborts the rest of the batch.
type BatchSyncResult struct {
	Total      int                 `json:"total"`
	Successful int                 `json:"successful"`
	Failed     int                 `json:"failed"`
	Results    []ContactSyncResult `json:"results"`
}

// WriteResult is the outcome of a single CRM write (debt status, activity,
// agreement). Adapters absorb transport errors and report them here instead of
// returning a Go error, so callers only ever inspect the fields.
type WriteResult struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
}

// RecentChanges is the incremental-sync payload: everything the vendor reports
// as modified since the caller-supplied timestamp. Filtering happens
// server-side in the vendor; the facade does no date math of its own.
type RecentChanges struct {
	Debtors    []Contact  `json:"debtors"`
	Debts      []Debt     `json:"debts"`
	Activities []Activity `json:"activities"`
}

// FullSyncOptions controls the optional parts of a full sync.
type FullSyncOptions struct {
	IncludeHistory bool
	Contacts       ContactFilters
	Debts          DebtFilters
}

// FullSyncSummary counts what a full sync pulled.
type FullSyncSummary struct {
	Debtors    int `json:"debtors"`
	Debts      int `json:"debts"`
	Activities int `json:"activities"`
}

// FullSyncData carries the pulled records. Contacts and debts are related only
// by ContactID; the facade performs no cross-entity join.
type FullSyncData struct {
	Debtors    []Contact  `json:"debtors"`
	Debts      []Debt     `json:"debts"`
	Activities []Activity `json:"activities,omitempty"`
}

// FullSyncResult is all-or-nothing: any failed step fails the whole sync and no
// partial data is returned.
type FullSyncResult struct {
	Success bool            `json:"success"`
	Summary FullSyncSummary `json:"summary,omitempty"`
	Data    FullSyncData    `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// IncrementalSyncSummary counts what changed since the supplied timestamp.
type IncrementalSyncSummary struct {
	UpdatedDebtors int `json:"updated_debtors"`
	UpdatedDebts   int `json:"updated_debts"`
	NewActivities  int `json:"new_activities"`
}

// IncrementalSyncResult wraps the adapter's recent-changes read. The platform
// stores no sync cursor; the caller owns `since` and supplies it on every call.
type IncrementalSyncResult struct {
	Success bool                   `json:"success"`
	Since   time.Time              `json:"since"`
	Summary IncrementalSyncSummary `json:"summary,omitempty"`
	Data    RecentChanges          `json:"data,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

// CRMInfo is the per-vendor entry of GetAvailableCRMs. Diagnostics only.
type CRMInfo struct {
	Name       CRMType `json:"name"`
	Configured bool    `json:"configured"`
	Message    string  `json:"message"`
	Active     bool    `json:"active"`
}

// CRMAvailability reports every registered vendor plus which one is active.
type CRMAvailability struct {
	Active CRMType   `json:"active,omitempty"`
	CRMs   []CRMInfo `json:"crms"`
}
