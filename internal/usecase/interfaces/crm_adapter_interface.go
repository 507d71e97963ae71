package interfaces

import (
	"context"
	"time"

	"nexupay/internal/domain/entities"
)

// ICRMAdapter is the common operation set every CRM vendor adapter implements.
// This interface is the single polymorphism point of the integration layer:
// the facade only ever talks to it, and every vendor quirk (auth mechanism,
// field names, status vocabulary, batch limits) stays inside the adapter.
//
// Error contract:
//   - No method panics, ever. Write-style operations absorb transport errors
//     and report them in the result struct's Success/Error fields. Read/list
//     operations return a plain Go error, which is how orchestration (full
//     sync) detects a failed step.
//   - IsConfigured is pure and synchronous; it inspects only locally-held
//     credentials and performs no network I/O.
//
// Known limitation: SyncContact is search-then-write and not transactional.
// Two concurrent syncs of the same natural key can race into a duplicate
// vendor record; callers that care must serialize per contact.

type ICRMAdapter interface {
	// Name returns the vendor tag this adapter writes into mirrored records.
	Name() entities.CRMType

	// IsConfigured reports whether the adapter holds usable credentials.
	IsConfigured() entities.ConfigStatus

	// SyncContact creates or updates the vendor record for a contact,
	// deduplicating by the vendor's natural key (email or RUT).
	SyncContact(ctx context.Context, contact entities.Contact) entities.ContactSyncResult

	// SyncContacts syncs a batch concurrently with settle-all semantics:
	// every item is attempted and settled regardless of other items' failures.
	SyncContacts(ctx context.Context, contacts []entities.Contact) entities.BatchSyncResult

	GetContacts(ctx context.Context, filters entities.ContactFilters) ([]entities.Contact, error)
	GetContact(ctx context.Context, id string) (*entities.Contact, error)

	// SearchContacts returns vendor-native records, not mapped Contacts. The
	// asymmetry is deliberate: sync internals and diagnostics need the raw
	// shape (native ids, raw field names) that mapping would discard.
	SearchContacts(ctx context.Context, term string) ([]map[string]interface{}, error)

	ImportDebts(ctx context.Context, filters entities.DebtFilters) ([]entities.Debt, error)
	UpdateDebtStatus(ctx context.Context, id string, update entities.DebtStatusUpdate) entities.WriteResult

	LogActivity(ctx context.Context, activity entities.Activity) entities.WriteResult
	LogPayment(ctx context.Context, payment entities.PaymentLog) entities.WriteResult

	CreatePaymentAgreement(ctx context.Context, agreement entities.PaymentAgreement) entities.WriteResult
	UpdatePaymentAgreement(ctx context.Context, id string, agreement entities.PaymentAgreement) entities.WriteResult

	GetContactHistory(ctx context.Context, contactID string) ([]entities.Activity, error)
	GetActivities(ctx context.Context, filters entities.ActivityFilters) ([]entities.Activity, error)

	// GetRecentChanges filters server-side by the vendor's native
	// last-modified field. The adapter passes `since` through untouched.
	GetRecentChanges(ctx context.Context, since time.Time) (entities.RecentChanges, error)
}
