package crm

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"nexupay/internal/domain/entities"
	"nexupay/internal/infrastructure/metrics"
	"nexupay/internal/usecase/interfaces"
)

const (
	upnifyBaseURL = "https://api.upnify.com/v1"

	// Every record written by the platform carries this origin tag so Upnify
	// users can tell platform-created records from manually entered ones.
	upnifyOriginTag = "nexupay"
)

// Upnify sales-phase vocabulary; distinct phase per platform status.
var upnifyPhaseByStatus = map[entities.DebtStatus]string{
	entities.DebtStatusActive:      "pendiente",
	entities.DebtStatusNegotiating: "negociacion",
	entities.DebtStatusPaid:        "ganada",
	entities.DebtStatusCancelled:   "perdida",
}

var upnifyStatusByPhase = map[string]entities.DebtStatus{
	"pendiente":   entities.DebtStatusActive,
	"negociacion": entities.DebtStatusNegotiating,
	"ganada":      entities.DebtStatusPaid,
	"perdida":     entities.DebtStatusCancelled,
}

// UpnifyConfig holds the integration token.
type UpnifyConfig struct {
	AccessToken string
	BaseURL     string
	Timeout     time.Duration
}

// UpnifyAdapter talks to the Upnify API. Upnify serves the Chilean market
// this platform collects in, so contact de-duplication keys on RUT first and
// falls back to email only when the contact has no RUT.
type UpnifyAdapter struct {
	cfg     UpnifyConfig
	base    string
	rest    *restClient
	metrics *metrics.Metrics
}

var _ interfaces.ICRMAdapter = (*UpnifyAdapter)(nil)

func NewUpnifyAdapter(cfg UpnifyConfig, m *metrics.Metrics) *UpnifyAdapter {
	base := cfg.BaseURL
	if base == "" {
		base = upnifyBaseURL
	}
	return &UpnifyAdapter{
		cfg:     cfg,
		base:    base,
		rest:    newRESTClient(entities.CRMUpnify, cfg.Timeout, m),
		metrics: m,
	}
}

func (a *UpnifyAdapter) Name() entities.CRMType {
	return entities.CRMUpnify
}

func (a *UpnifyAdapter) IsConfigured() entities.ConfigStatus {
	if a.cfg.AccessToken == "" {
		return entities.ConfigStatus{Configured: false, Message: notConfiguredMessage(entities.CRMUpnify)}
	}
	return entities.ConfigStatus{Configured: true, Message: "upnify is configured"}
}

func (a *UpnifyAdapter) request(ctx context.Context, method, path string, payload interface{}, params url.Values) RequestResult {
	if !a.IsConfigured().Configured {
		return RequestResult{Error: notConfiguredMessage(entities.CRMUpnify)}
	}
	headers := map[string]string{"Authorization": "Bearer " + a.cfg.AccessToken}
	return a.rest.do(ctx, method, a.base+path, headers, params, payload)
}

func (a *UpnifyAdapter) list(res RequestResult, operation string) ([]map[string]interface{}, error) {
	if !res.Success {
		return nil, fmt.Errorf("upnify %s: %s", operation, res.Error)
	}
	if len(res.Data) == 0 {
		return nil, nil
	}
	var records []map[string]interface{}
	if err := json.Unmarshal(res.Data, &records); err != nil {
		return nil, fmt.Errorf("upnify %s decode: %w", operation, err)
	}
	return records, nil
}

func (a *UpnifyAdapter) prospectFields(contact entities.Contact) map[string]interface{} {
	return map[string]interface{}{
		"nombre":           contact.FirstName,
		"apellidos":        contact.LastName,
		"correo":           contact.Email,
		"telefono":         contact.Phone,
		"rut":              contact.RUT,
		"deuda_total":      contact.TotalDebt,
		"platform_user_id": contact.PlatformUserID,
		"etiquetas":        []string{upnifyOriginTag},
	}
}

func (a *UpnifyAdapter) SyncContact(ctx context.Context, contact entities.Contact) entities.ContactSyncResult {
	if !a.IsConfigured().Configured {
		return syncFailure(notConfiguredMessage(entities.CRMUpnify))
	}

	// RUT is the primary natural key here; email is only a fallback.
	term := contact.RUT
	if term == "" {
		term = contact.Email
	}
	existing, err := a.SearchContacts(ctx, term)
	if err != nil {
		res := syncFailure(err.Error())
		recordSyncSettlement(a.metrics, entities.CRMUpnify, res)
		return res
	}

	var result entities.ContactSyncResult
	if len(existing) > 0 {
		id := getString(existing[0], "id")
		res := a.request(ctx, http.MethodPut, "/prospects/"+id, a.prospectFields(contact), nil)
		if !res.Success {
			result = syncFailure(res.Error)
		} else {
			result = entities.ContactSyncResult{
				Success:   true,
				Action:    entities.SyncActionUpdated,
				ContactID: id,
				Message:   "prospect updated in upnify",
			}
		}
	} else {
		res := a.request(ctx, http.MethodPost, "/prospects", a.prospectFields(contact), nil)
		if !res.Success {
			result = syncFailure(res.Error)
		} else {
			var created struct {
				ID string `json:"id"`
			}
			if err := json.Unmarshal(res.Data, &created); err != nil {
				result = syncFailure(fmt.Sprintf("upnify create decode: %v", err))
			} else {
				result = entities.ContactSyncResult{
					Success:   true,
					Action:    entities.SyncActionCreated,
					ContactID: created.ID,
					Message:   "prospect created in upnify",
				}
			}
		}
	}
	recordSyncSettlement(a.metrics, entities.CRMUpnify, result)
	return result
}

func (a *UpnifyAdapter) SyncContacts(ctx context.Context, contacts []entities.Contact) entities.BatchSyncResult {
	return syncContactsConcurrently(ctx, contacts, a.SyncContact)
}

func (a *UpnifyAdapter) GetContacts(ctx context.Context, filters entities.ContactFilters) ([]entities.Contact, error) {
	if filters.RUT != "" || filters.Email != "" {
		term := filters.RUT
		if term == "" {
			term = filters.Email
		}
		records, err := a.SearchContacts(ctx, term)
		if err != nil {
			return nil, err
		}
		return a.mapProspects(records), nil
	}

	params := url.Values{}
	if filters.Limit > 0 {
		params.Set("cantidad", strconv.Itoa(filters.Limit))
	}
	records, err := a.list(a.request(ctx, http.MethodGet, "/prospects", nil, params), "list prospects")
	if err != nil {
		return nil, err
	}
	return a.mapProspects(records), nil
}

func (a *UpnifyAdapter) GetContact(ctx context.Context, id string) (*entities.Contact, error) {
	res := a.request(ctx, http.MethodGet, "/prospects/"+id, nil, nil)
	if res.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if !res.Success {
		return nil, fmt.Errorf("upnify get prospect: %s", res.Error)
	}
	var rec map[string]interface{}
	if err := json.Unmarshal(res.Data, &rec); err != nil {
		return nil, fmt.Errorf("upnify get prospect decode: %w", err)
	}
	contact := a.mapProspect(rec)
	return &contact, nil
}

// SearchContacts queries /prospects/search and returns raw Upnify records.
func (a *UpnifyAdapter) SearchContacts(ctx context.Context, term string) ([]map[string]interface{}, error) {
	params := url.Values{}
	params.Set("buscar", term)
	return a.list(a.request(ctx, http.MethodGet, "/prospects/search", nil, params), "search prospects")
}

func (a *UpnifyAdapter) ImportDebts(ctx context.Context, filters entities.DebtFilters) ([]entities.Debt, error) {
	params := url.Values{}
	if filters.Status != "" {
		if phase, ok := upnifyPhaseByStatus[filters.Status]; ok {
			params.Set("fase", phase)
		}
	}
	if filters.ContactID != "" {
		params.Set("prospecto", filters.ContactID)
	}
	if filters.Limit > 0 {
		params.Set("cantidad", strconv.Itoa(filters.Limit))
	}
	records, err := a.list(a.request(ctx, http.MethodGet, "/opportunities", nil, params), "list opportunities")
	if err != nil {
		return nil, err
	}

	debts := make([]entities.Debt, 0, len(records))
	for _, rec := range records {
		debts = append(debts, a.mapOpportunity(rec))
	}
	return debts, nil
}

func (a *UpnifyAdapter) UpdateDebtStatus(ctx context.Context, id string, update entities.DebtStatusUpdate) entities.WriteResult {
	phase, ok := upnifyPhaseByStatus[update.Status]
	if !ok {
		return writeFailure(fmt.Sprintf("unknown debt status %q", update.Status))
	}
	payload := map[string]interface{}{
		"fase":        phase,
		"monto_saldo": update.RemainingAmount,
		"fecha_pago":  update.LastPaymentDate.UTC().Format("2006-01-02"),
		"etiquetas":   []string{upnifyOriginTag},
	}
	res := a.request(ctx, http.MethodPut, "/opportunities/"+id, payload, nil)
	if !res.Success {
		return writeFailure(res.Error)
	}
	return entities.WriteResult{Success: true, ID: id}
}

func (a *UpnifyAdapter) LogActivity(ctx context.Context, activity entities.Activity) entities.WriteResult {
	payload := map[string]interface{}{
		"prospecto":   activity.ContactID,
		"asunto":      activity.Subject,
		"descripcion": activity.Description,
		"tipo":        string(activity.Type),
		"fecha":       activity.Date.UTC().Format(time.RFC3339),
		"etiquetas":   []string{upnifyOriginTag},
	}
	res := a.request(ctx, http.MethodPost, "/activities", payload, nil)
	if !res.Success {
		return writeFailure(res.Error)
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(res.Data, &created); err != nil {
		return writeFailure(fmt.Sprintf("upnify activity decode: %v", err))
	}
	return entities.WriteResult{Success: true, ID: created.ID}
}

func (a *UpnifyAdapter) LogPayment(ctx context.Context, payment entities.PaymentLog) entities.WriteResult {
	return a.LogActivity(ctx, paymentActivity(payment))
}

func (a *UpnifyAdapter) CreatePaymentAgreement(ctx context.Context, agreement entities.PaymentAgreement) entities.WriteResult {
	res := a.request(ctx, http.MethodPost, "/opportunities", a.agreementFields(agreement), nil)
	if !res.Success {
		return writeFailure(res.Error)
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(res.Data, &created); err != nil {
		return writeFailure(fmt.Sprintf("upnify agreement decode: %v", err))
	}
	return entities.WriteResult{Success: true, ID: created.ID}
}

func (a *UpnifyAdapter) UpdatePaymentAgreement(ctx context.Context, id string, agreement entities.PaymentAgreement) entities.WriteResult {
	res := a.request(ctx, http.MethodPut, "/opportunities/"+id, a.agreementFields(agreement), nil)
	if !res.Success {
		return writeFailure(res.Error)
	}
	return entities.WriteResult{Success: true, ID: id}
}

func (a *UpnifyAdapter) agreementFields(agreement entities.PaymentAgreement) map[string]interface{} {
	fields := map[string]interface{}{
		"concepto":  agreement.Name,
		"monto":     agreement.TotalAmount,
		"fase":      upnifyPhaseByStatus[entities.DebtStatusNegotiating],
		"prospecto": agreement.ContactID,
		"cuotas":    agreement.Installments,
		"incentivo": agreement.Incentive,
		"etiquetas": []string{upnifyOriginTag},
	}
	if !agreement.ExpectedCloseDate.IsZero() {
		fields["fecha_cierre"] = agreement.ExpectedCloseDate.UTC().Format("2006-01-02")
	}
	return fields
}

func (a *UpnifyAdapter) GetContactHistory(ctx context.Context, contactID string) ([]entities.Activity, error) {
	params := url.Values{}
	params.Set("prospecto", contactID)
	records, err := a.list(a.request(ctx, http.MethodGet, "/activities", nil, params), "contact history")
	if err != nil {
		return nil, err
	}
	return a.mapActivities(records), nil
}

func (a *UpnifyAdapter) GetActivities(ctx context.Context, filters entities.ActivityFilters) ([]entities.Activity, error) {
	params := url.Values{}
	if filters.ContactID != "" {
		params.Set("prospecto", filters.ContactID)
	}
	if filters.Limit > 0 {
		params.Set("cantidad", strconv.Itoa(filters.Limit))
	}
	records, err := a.list(a.request(ctx, http.MethodGet, "/activities", nil, params), "list activities")
	if err != nil {
		return nil, err
	}
	return a.mapActivities(records), nil
}

// GetRecentChanges passes `since` through as an ISO query parameter; Upnify
// filters on its own modification timestamp server-side.
func (a *UpnifyAdapter) GetRecentChanges(ctx context.Context, since time.Time) (entities.RecentChanges, error) {
	cutoff := since.UTC().Format(time.RFC3339)
	params := url.Values{}
	params.Set("since", cutoff)

	prospectRecords, err := a.list(a.request(ctx, http.MethodGet, "/prospects", nil, params), "recent prospects")
	if err != nil {
		return entities.RecentChanges{}, err
	}
	opportunityRecords, err := a.list(a.request(ctx, http.MethodGet, "/opportunities", nil, params), "recent opportunities")
	if err != nil {
		return entities.RecentChanges{}, err
	}
	activityRecords, err := a.list(a.request(ctx, http.MethodGet, "/activities", nil, params), "recent activities")
	if err != nil {
		return entities.RecentChanges{}, err
	}

	changes := entities.RecentChanges{
		Debtors:    a.mapProspects(prospectRecords),
		Activities: a.mapActivities(activityRecords),
	}
	for _, rec := range opportunityRecords {
		changes.Debts = append(changes.Debts, a.mapOpportunity(rec))
	}
	log.Printf("[crm][upnify] recent-changes since=%s debtors=%d debts=%d activities=%d", cutoff, len(changes.Debtors), len(changes.Debts), len(changes.Activities))
	return changes, nil
}

func (a *UpnifyAdapter) mapProspect(rec map[string]interface{}) entities.Contact {
	return entities.Contact{
		CRMID:          getString(rec, "id"),
		CRMType:        entities.CRMUpnify,
		FirstName:      getString(rec, "nombre"),
		LastName:       getString(rec, "apellidos"),
		Email:          getString(rec, "correo"),
		Phone:          getString(rec, "telefono"),
		RUT:            getString(rec, "rut"),
		TotalDebt:      getFloat(rec, "deuda_total"),
		PlatformUserID: getString(rec, "platform_user_id"),
	}
}

func (a *UpnifyAdapter) mapProspects(records []map[string]interface{}) []entities.Contact {
	contacts := make([]entities.Contact, 0, len(records))
	for _, rec := range records {
		contacts = append(contacts, a.mapProspect(rec))
	}
	return contacts
}

func (a *UpnifyAdapter) mapOpportunity(rec map[string]interface{}) entities.Debt {
	status, ok := upnifyStatusByPhase[getString(rec, "fase")]
	if !ok {
		status = entities.DebtStatusActive
	}
	return entities.Debt{
		CRMID:            getString(rec, "id"),
		CRMType:          entities.CRMUpnify,
		ContactID:        getString(rec, "prospecto"),
		Name:             getString(rec, "concepto"),
		Amount:           getFloat(rec, "monto"),
		Status:           status,
		DueDate:          parseVendorTime(getString(rec, "fecha_cierre")),
		OriginalCreditor: getString(rec, "acreedor_original"),
		Description:      getString(rec, "descripcion"),
	}
}

func (a *UpnifyAdapter) mapActivities(records []map[string]interface{}) []entities.Activity {
	activities := make([]entities.Activity, 0, len(records))
	for _, rec := range records {
		activityType := entities.ActivityType(getString(rec, "tipo"))
		switch activityType {
		case entities.ActivityCall, entities.ActivityMeeting, entities.ActivityEmail,
			entities.ActivityPayment, entities.ActivityFollowUp:
		default:
			activityType = entities.ActivityOther
		}
		activities = append(activities, entities.Activity{
			ContactID:   getString(rec, "prospecto"),
			Subject:     getString(rec, "asunto"),
			Description: getString(rec, "descripcion"),
			Type:        activityType,
			Date:        parseVendorTime(getString(rec, "fecha")),
		})
	}
	return activities
}
