package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"nexupay/internal/domain/entities"
	"nexupay/internal/infrastructure/metrics"
	"nexupay/internal/usecase/interfaces"
)

var (
	ErrNoCRMConfigured = errors.New("no crm configured")
	ErrUnknownCRM      = errors.New("unknown crm")
)

// crmDetectionOrder is the fixed order active-vendor detection walks through.
var crmDetectionOrder = []entities.CRMType{
	entities.CRMSalesforce,
	entities.CRMHubSpot,
	entities.CRMZoho,
	entities.CRMPipedrive,
	entities.CRMUpnify,
}

// ICRMFacade is the single stable interface application code uses to reach
// the active CRM. It hides which vendor is configured and adds the two
// orchestration operations (full and incremental sync) no single adapter
// provides on its own.

type ICRMFacade interface {
	GetAvailableCRMs() entities.CRMAvailability
	SetActiveCRM(name string) error

	SyncContact(ctx context.Context, contact entities.Contact) entities.ContactSyncResult
	SyncContacts(ctx context.Context, contacts []entities.Contact) entities.BatchSyncResult
	GetContacts(ctx context.Context, filters entities.ContactFilters) ([]entities.Contact, error)
	GetContact(ctx context.Context, id string) (*entities.Contact, error)
	SearchContacts(ctx context.Context, term string) ([]map[string]interface{}, error)

	ImportDebts(ctx context.Context, filters entities.DebtFilters) ([]entities.Debt, error)
	UpdateDebtStatus(ctx context.Context, id string, update entities.DebtStatusUpdate) entities.WriteResult

	LogActivity(ctx context.Context, activity entities.Activity) entities.WriteResult
	LogPayment(ctx context.Context, payment entities.PaymentLog) entities.WriteResult

	CreatePaymentAgreement(ctx context.Context, agreement entities.PaymentAgreement) entities.WriteResult
	UpdatePaymentAgreement(ctx context.Context, id string, agreement entities.PaymentAgreement) entities.WriteResult

	GetContactHistory(ctx context.Context, contactID string) ([]entities.Activity, error)
	GetActivities(ctx context.Context, filters entities.ActivityFilters) ([]entities.Activity, error)

	FullSync(ctx context.Context, options entities.FullSyncOptions) entities.FullSyncResult
	IncrementalSync(ctx context.Context, since time.Time) entities.IncrementalSyncResult
}

// CRMFacade forwards unified calls to the active vendor adapter. Adapters are
// injected as a map so tests can swap in doubles; nothing here is global.
//
// The only mutable state is the active vendor, set once at construction (or
// explicitly via SetActiveCRM). It is not guarded against concurrent
// mutation: switching vendors while syncs from the previous vendor are in
// flight is caller discipline, not something this layer enforces.
type CRMFacade struct {
	adapters map[entities.CRMType]interfaces.ICRMAdapter
	active   entities.CRMType
	metrics  *metrics.Metrics
}

var _ ICRMFacade = (*CRMFacade)(nil)

// NewCRMFacade builds the facade and detects the active vendor: the first
// adapter in the fixed detection order whose IsConfigured reports true. With
// none configured the facade stays in the "no CRM" state and every forwarded
// call fails fast with ErrNoCRMConfigured.
func NewCRMFacade(adapters map[entities.CRMType]interfaces.ICRMAdapter) *CRMFacade {
	f := &CRMFacade{adapters: adapters}
	f.detectActiveCRM()
	return f
}

// Instrument attaches the prometheus registry so full/incremental sync runs
// are counted. Optional; an uninstrumented facade skips the counters.
func (f *CRMFacade) Instrument(m *metrics.Metrics) *CRMFacade {
	f.metrics = m
	return f
}

func (f *CRMFacade) countSync(kind, status string) {
	if f.metrics == nil {
		return
	}
	f.metrics.SyncOperations.WithLabelValues(kind, status).Inc()
}

func (f *CRMFacade) detectActiveCRM() {
	for _, name := range crmDetectionOrder {
		adapter, ok := f.adapters[name]
		if !ok {
			continue
		}
		if adapter.IsConfigured().Configured {
			f.active = name
			log.Printf("[crm][facade] active crm detected crm=%s", name)
			return
		}
	}
	log.Printf("[crm][facade] no crm configured")
}

// SetActiveCRM overrides the detected vendor. Unknown names are rejected.
func (f *CRMFacade) SetActiveCRM(name string) error {
	crmType := entities.CRMType(name)
	if _, ok := f.adapters[crmType]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCRM, name)
	}
	f.active = crmType
	log.Printf("[crm][facade] active crm set crm=%s", name)
	return nil
}

// GetAvailableCRMs reports every registered vendor's configuration status
// plus which one is active. Diagnostics only; never used for routing logic.
func (f *CRMFacade) GetAvailableCRMs() entities.CRMAvailability {
	out := entities.CRMAvailability{Active: f.active}
	for _, name := range crmDetectionOrder {
		adapter, ok := f.adapters[name]
		if !ok {
			continue
		}
		status := adapter.IsConfigured()
		out.CRMs = append(out.CRMs, entities.CRMInfo{
			Name:       name,
			Configured: status.Configured,
			Message:    status.Message,
			Active:     name == f.active,
		})
	}
	return out
}

func (f *CRMFacade) activeAdapter() (interfaces.ICRMAdapter, error) {
	if f.active == "" {
		return nil, ErrNoCRMConfigured
	}
	adapter, ok := f.adapters[f.active]
	if !ok {
		return nil, ErrNoCRMConfigured
	}
	return adapter, nil
}

// Forwarding operations. No re-mapping happens at this layer: the generic
// shape is already vendor-neutral when it leaves the adapter, and the
// adapter's result passes through unchanged.

func (f *CRMFacade) SyncContact(ctx context.Context, contact entities.Contact) entities.ContactSyncResult {
	adapter, err := f.activeAdapter()
	if err != nil {
		return entities.ContactSyncResult{Success: false, Error: err.Error()}
	}
	return adapter.SyncContact(ctx, contact)
}

func (f *CRMFacade) SyncContacts(ctx context.Context, contacts []entities.Contact) entities.BatchSyncResult {
	adapter, err := f.activeAdapter()
	if err != nil {
		results := make([]entities.ContactSyncResult, len(contacts))
		for i := range results {
			results[i] = entities.ContactSyncResult{Success: false, Error: err.Error()}
		}
		return entities.BatchSyncResult{Total: len(contacts), Failed: len(contacts), Results: results}
	}
	return adapter.SyncContacts(ctx, contacts)
}

func (f *CRMFacade) GetContacts(ctx context.Context, filters entities.ContactFilters) ([]entities.Contact, error) {
	adapter, err := f.activeAdapter()
	if err != nil {
		return nil, err
	}
	return adapter.GetContacts(ctx, filters)
}

func (f *CRMFacade) GetContact(ctx context.Context, id string) (*entities.Contact, error) {
	adapter, err := f.activeAdapter()
	if err != nil {
		return nil, err
	}
	return adapter.GetContact(ctx, id)
}

func (f *CRMFacade) SearchContacts(ctx context.Context, term string) ([]map[string]interface{}, error) {
	adapter, err := f.activeAdapter()
	if err != nil {
		return nil, err
	}
	return adapter.SearchContacts(ctx, term)
}

func (f *CRMFacade) ImportDebts(ctx context.Context, filters entities.DebtFilters) ([]entities.Debt, error) {
	adapter, err := f.activeAdapter()
	if err != nil {
		return nil, err
	}
	return adapter.ImportDebts(ctx, filters)
}

func (f *CRMFacade) UpdateDebtStatus(ctx context.Context, id string, update entities.DebtStatusUpdate) entities.WriteResult {
	adapter, err := f.activeAdapter()
	if err != nil {
		return entities.WriteResult{Success: false, Error: err.Error()}
	}
	return adapter.UpdateDebtStatus(ctx, id, update)
}

func (f *CRMFacade) LogActivity(ctx context.Context, activity entities.Activity) entities.WriteResult {
	adapter, err := f.activeAdapter()
	if err != nil {
		return entities.WriteResult{Success: false, Error: err.Error()}
	}
	return adapter.LogActivity(ctx, activity)
}

func (f *CRMFacade) LogPayment(ctx context.Context, payment entities.PaymentLog) entities.WriteResult {
	adapter, err := f.activeAdapter()
	if err != nil {
		return entities.WriteResult{Success: false, Error: err.Error()}
	}
	return adapter.LogPayment(ctx, payment)
}

func (f *CRMFacade) CreatePaymentAgreement(ctx context.Context, agreement entities.PaymentAgreement) entities.WriteResult {
	adapter, err := f.activeAdapter()
	if err != nil {
		return entities.WriteResult{Success: false, Error: err.Error()}
	}
	return adapter.CreatePaymentAgreement(ctx, agreement)
}

func (f *CRMFacade) UpdatePaymentAgreement(ctx context.Context, id string, agreement entities.PaymentAgreement) entities.WriteResult {
	adapter, err := f.activeAdapter()
	if err != nil {
		return entities.WriteResult{Success: false, Error: err.Error()}
	}
	return adapter.UpdatePaymentAgreement(ctx, id, agreement)
}

func (f *CRMFacade) GetContactHistory(ctx context.Context, contactID string) ([]entities.Activity, error) {
	adapter, err := f.activeAdapter()
	if err != nil {
		return nil, err
	}
	return adapter.GetContactHistory(ctx, contactID)
}

func (f *CRMFacade) GetActivities(ctx context.Context, filters entities.ActivityFilters) ([]entities.Activity, error) {
	adapter, err := f.activeAdapter()
	if err != nil {
		return nil, err
	}
	return adapter.GetActivities(ctx, filters)
}

// FullSync pulls contacts, debts and (optionally) activities from the active
// vendor. The three reads are independent; contacts and debts relate only via
// ContactID and the caller owns any join. All-or-nothing: a failed step fails
// the whole sync and no partial data is returned.
func (f *CRMFacade) FullSync(ctx context.Context, options entities.FullSyncOptions) entities.FullSyncResult {
	adapter, err := f.activeAdapter()
	if err != nil {
		f.countSync("full", "failure")
		return entities.FullSyncResult{Success: false, Error: err.Error()}
	}
	log.Printf("[crm][facade] full-sync start crm=%s include_history=%t", f.active, options.IncludeHistory)

	contacts, err := adapter.GetContacts(ctx, options.Contacts)
	if err != nil {
		log.Printf("[crm][facade] full-sync contacts step failed crm=%s err=%v", f.active, err)
		f.countSync("full", "failure")
		return entities.FullSyncResult{Success: false, Error: err.Error()}
	}
	debts, err := adapter.ImportDebts(ctx, options.Debts)
	if err != nil {
		log.Printf("[crm][facade] full-sync debts step failed crm=%s err=%v", f.active, err)
		f.countSync("full", "failure")
		return entities.FullSyncResult{Success: false, Error: err.Error()}
	}

	var activities []entities.Activity
	if options.IncludeHistory {
		activities, err = adapter.GetActivities(ctx, entities.ActivityFilters{})
		if err != nil {
			log.Printf("[crm][facade] full-sync activities step failed crm=%s err=%v", f.active, err)
			f.countSync("full", "failure")
			return entities.FullSyncResult{Success: false, Error: err.Error()}
		}
	}

	log.Printf("[crm][facade] full-sync success crm=%s debtors=%d debts=%d activities=%d", f.active, len(contacts), len(debts), len(activities))
	f.countSync("full", "success")
	return entities.FullSyncResult{
		Success: true,
		Summary: entities.FullSyncSummary{
			Debtors:    len(contacts),
			Debts:      len(debts),
			Activities: len(activities),
		},
		Data: entities.FullSyncData{
			Debtors:    contacts,
			Debts:      debts,
			Activities: activities,
		},
	}
}

// IncrementalSync delegates to the active adapter's recent-changes read with
// the caller-supplied timestamp, untouched. No cursor is kept anywhere in
// this layer: persisting `since` between calls is the caller's job.
func (f *CRMFacade) IncrementalSync(ctx context.Context, since time.Time) entities.IncrementalSyncResult {
	adapter, err := f.activeAdapter()
	if err != nil {
		f.countSync("incremental", "failure")
		return entities.IncrementalSyncResult{Success: false, Since: since, Error: err.Error()}
	}
	log.Printf("[crm][facade] incremental-sync start crm=%s since=%s", f.active, since.UTC().Format(time.RFC3339))

	changes, err := adapter.GetRecentChanges(ctx, since)
	if err != nil {
		log.Printf("[crm][facade] incremental-sync failed crm=%s err=%v", f.active, err)
		f.countSync("incremental", "failure")
		return entities.IncrementalSyncResult{Success: false, Since: since, Error: err.Error()}
	}

	f.countSync("incremental", "success")
	return entities.IncrementalSyncResult{
		Success: true,
		Since:   since,
		Summary: entities.IncrementalSyncSummary{
			UpdatedDebtors: len(changes.Debtors),
			UpdatedDebts:   len(changes.Debts),
			NewActivities:  len(changes.Activities),
		},
		Data: changes,
	}
}
