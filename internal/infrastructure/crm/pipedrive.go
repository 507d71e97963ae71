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

const pipedriveBaseURL = "https://api.pipedrive.com/v1"

// Pipedrive deals only know open/won/lost, so `negotiating` collapses into
// the same native status as `active`. The reverse mapping resolves `open` to
// `active`; the distinction is lost by design and documented as such.
var pipedriveStatusByDebtStatus = map[entities.DebtStatus]string{
	entities.DebtStatusActive:      "open",
	entities.DebtStatusNegotiating: "open",
	entities.DebtStatusPaid:        "won",
	entities.DebtStatusCancelled:   "lost",
}

var pipedriveDebtStatusByStatus = map[string]entities.DebtStatus{
	"open": entities.DebtStatusActive,
	"won":  entities.DebtStatusPaid,
	"lost": entities.DebtStatusCancelled,
}

var pipedriveActivityTypeByActivity = map[entities.ActivityType]string{
	entities.ActivityCall:     "call",
	entities.ActivityMeeting:  "meeting",
	entities.ActivityEmail:    "email",
	entities.ActivityPayment:  "task",
	entities.ActivityFollowUp: "task",
	entities.ActivityOther:    "task",
}

// PipedriveConfig holds the account API token.
type PipedriveConfig struct {
	APIToken string
	BaseURL  string
	Timeout  time.Duration
}

// PipedriveAdapter talks to the Pipedrive v1 API. Auth travels as an
// `api_token` query parameter on every request, not as a header; every
// response is wrapped in a `{success, data, error}` envelope.
type PipedriveAdapter struct {
	cfg     PipedriveConfig
	base    string
	rest    *restClient
	metrics *metrics.Metrics
}

var _ interfaces.ICRMAdapter = (*PipedriveAdapter)(nil)

func NewPipedriveAdapter(cfg PipedriveConfig, m *metrics.Metrics) *PipedriveAdapter {
	base := cfg.BaseURL
	if base == "" {
		base = pipedriveBaseURL
	}
	return &PipedriveAdapter{
		cfg:     cfg,
		base:    base,
		rest:    newRESTClient(entities.CRMPipedrive, cfg.Timeout, m),
		metrics: m,
	}
}

func (a *PipedriveAdapter) Name() entities.CRMType {
	return entities.CRMPipedrive
}

func (a *PipedriveAdapter) IsConfigured() entities.ConfigStatus {
	if a.cfg.APIToken == "" {
		return entities.ConfigStatus{Configured: false, Message: notConfiguredMessage(entities.CRMPipedrive)}
	}
	return entities.ConfigStatus{Configured: true, Message: "pipedrive is configured"}
}

func (a *PipedriveAdapter) request(ctx context.Context, method, path string, payload interface{}, params url.Values) RequestResult {
	if !a.IsConfigured().Configured {
		return RequestResult{Error: notConfiguredMessage(entities.CRMPipedrive)}
	}
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_token", a.cfg.APIToken)
	return a.rest.do(ctx, method, a.base+path, nil, params, payload)
}

// unwrap validates the Pipedrive response envelope and returns the raw data.
func (a *PipedriveAdapter) unwrap(res RequestResult, operation string) (json.RawMessage, error) {
	if !res.Success {
		return nil, fmt.Errorf("pipedrive %s: %s", operation, res.Error)
	}
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   string          `json:"error"`
	}
	if err := json.Unmarshal(res.Data, &envelope); err != nil {
		return nil, fmt.Errorf("pipedrive %s decode: %w", operation, err)
	}
	if !envelope.Success {
		return nil, fmt.Errorf("pipedrive %s: %s", operation, envelope.Error)
	}
	return envelope.Data, nil
}

func (a *PipedriveAdapter) unwrapRecord(res RequestResult, operation string) (map[string]interface{}, error) {
	data, err := a.unwrap(res, operation)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var rec map[string]interface{}
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("pipedrive %s decode: %w", operation, err)
	}
	return rec, nil
}

func (a *PipedriveAdapter) unwrapRecords(res RequestResult, operation string) ([]map[string]interface{}, error) {
	data, err := a.unwrap(res, operation)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var records []map[string]interface{}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("pipedrive %s decode: %w", operation, err)
	}
	return records, nil
}

func (a *PipedriveAdapter) personFields(contact entities.Contact) map[string]interface{} {
	return map[string]interface{}{
		"name":             contact.Name(),
		"email":            []map[string]interface{}{{"value": contact.Email, "primary": true}},
		"phone":            []map[string]interface{}{{"value": contact.Phone, "primary": true}},
		"rut":              contact.RUT,
		"total_debt":       contact.TotalDebt,
		"platform_user_id": contact.PlatformUserID,
	}
}

func (a *PipedriveAdapter) SyncContact(ctx context.Context, contact entities.Contact) entities.ContactSyncResult {
	if !a.IsConfigured().Configured {
		return syncFailure(notConfiguredMessage(entities.CRMPipedrive))
	}

	existing, err := a.SearchContacts(ctx, contact.Email)
	if err != nil {
		res := syncFailure(err.Error())
		recordSyncSettlement(a.metrics, entities.CRMPipedrive, res)
		return res
	}

	var result entities.ContactSyncResult
	if len(existing) > 0 {
		id := getString(existing[0], "id")
		if _, err := a.unwrapRecord(a.request(ctx, http.MethodPut, "/persons/"+id, a.personFields(contact), nil), "update person"); err != nil {
			result = syncFailure(err.Error())
		} else {
			result = entities.ContactSyncResult{
				Success:   true,
				Action:    entities.SyncActionUpdated,
				ContactID: id,
				Message:   "person updated in pipedrive",
			}
		}
	} else {
		rec, err := a.unwrapRecord(a.request(ctx, http.MethodPost, "/persons", a.personFields(contact), nil), "create person")
		if err != nil {
			result = syncFailure(err.Error())
		} else {
			result = entities.ContactSyncResult{
				Success:   true,
				Action:    entities.SyncActionCreated,
				ContactID: getString(rec, "id"),
				Message:   "person created in pipedrive",
			}
		}
	}
	recordSyncSettlement(a.metrics, entities.CRMPipedrive, result)
	return result
}

func (a *PipedriveAdapter) SyncContacts(ctx context.Context, contacts []entities.Contact) entities.BatchSyncResult {
	return syncContactsConcurrently(ctx, contacts, a.SyncContact)
}

func (a *PipedriveAdapter) GetContacts(ctx context.Context, filters entities.ContactFilters) ([]entities.Contact, error) {
	if filters.Email != "" {
		records, err := a.SearchContacts(ctx, filters.Email)
		if err != nil {
			return nil, err
		}
		return a.mapPersons(records), nil
	}

	params := url.Values{}
	if filters.Limit > 0 {
		params.Set("limit", strconv.Itoa(filters.Limit))
	}
	records, err := a.unwrapRecords(a.request(ctx, http.MethodGet, "/persons", nil, params), "list persons")
	if err != nil {
		return nil, err
	}
	return a.mapPersons(records), nil
}

func (a *PipedriveAdapter) GetContact(ctx context.Context, id string) (*entities.Contact, error) {
	res := a.request(ctx, http.MethodGet, "/persons/"+id, nil, nil)
	if res.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	rec, err := a.unwrapRecord(res, "get person")
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	contact := a.mapPerson(rec)
	return &contact, nil
}

// SearchContacts uses /persons/search restricted to the email field and
// returns the raw matched items.
func (a *PipedriveAdapter) SearchContacts(ctx context.Context, term string) ([]map[string]interface{}, error) {
	params := url.Values{}
	params.Set("term", term)
	params.Set("fields", "email")
	params.Set("exact_match", "true")
	data, err := a.unwrap(a.request(ctx, http.MethodGet, "/persons/search", nil, params), "search persons")
	if err != nil {
		return nil, err
	}
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var out struct {
		Items []struct {
			Item map[string]interface{} `json:"item"`
		} `json:"items"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("pipedrive search decode: %w", err)
	}
	records := make([]map[string]interface{}, 0, len(out.Items))
	for _, item := range out.Items {
		records = append(records, item.Item)
	}
	return records, nil
}

func (a *PipedriveAdapter) ImportDebts(ctx context.Context, filters entities.DebtFilters) ([]entities.Debt, error) {
	params := url.Values{}
	if filters.Status != "" {
		if native, ok := pipedriveStatusByDebtStatus[filters.Status]; ok {
			params.Set("status", native)
		}
	}
	if filters.Limit > 0 {
		params.Set("limit", strconv.Itoa(filters.Limit))
	}
	records, err := a.unwrapRecords(a.request(ctx, http.MethodGet, "/deals", nil, params), "list deals")
	if err != nil {
		return nil, err
	}

	debts := make([]entities.Debt, 0, len(records))
	for _, rec := range records {
		debt := a.mapDeal(rec)
		if filters.ContactID != "" && debt.ContactID != filters.ContactID {
			continue
		}
		debts = append(debts, debt)
	}
	return debts, nil
}

func (a *PipedriveAdapter) UpdateDebtStatus(ctx context.Context, id string, update entities.DebtStatusUpdate) entities.WriteResult {
	native, ok := pipedriveStatusByDebtStatus[update.Status]
	if !ok {
		return writeFailure(fmt.Sprintf("unknown debt status %q", update.Status))
	}
	payload := map[string]interface{}{
		"status":            native,
		"remaining_amount":  update.RemainingAmount,
		"last_payment_date": update.LastPaymentDate.UTC().Format("2006-01-02"),
	}
	if _, err := a.unwrapRecord(a.request(ctx, http.MethodPut, "/deals/"+id, payload, nil), "update deal"); err != nil {
		return writeFailure(err.Error())
	}
	return entities.WriteResult{Success: true, ID: id}
}

func (a *PipedriveAdapter) LogActivity(ctx context.Context, activity entities.Activity) entities.WriteResult {
	activityType, ok := pipedriveActivityTypeByActivity[activity.Type]
	if !ok {
		activityType = "task"
	}
	payload := map[string]interface{}{
		"subject":   activity.Subject,
		"note":      activity.Description,
		"type":      activityType,
		"done":      1,
		"due_date":  activity.Date.UTC().Format("2006-01-02"),
		"person_id": activity.ContactID,
	}
	rec, err := a.unwrapRecord(a.request(ctx, http.MethodPost, "/activities", payload, nil), "create activity")
	if err != nil {
		return writeFailure(err.Error())
	}
	return entities.WriteResult{Success: true, ID: getString(rec, "id")}
}

func (a *PipedriveAdapter) LogPayment(ctx context.Context, payment entities.PaymentLog) entities.WriteResult {
	return a.LogActivity(ctx, paymentActivity(payment))
}

func (a *PipedriveAdapter) CreatePaymentAgreement(ctx context.Context, agreement entities.PaymentAgreement) entities.WriteResult {
	rec, err := a.unwrapRecord(a.request(ctx, http.MethodPost, "/deals", a.agreementFields(agreement, true), nil), "create agreement")
	if err != nil {
		return writeFailure(err.Error())
	}
	return entities.WriteResult{Success: true, ID: getString(rec, "id")}
}

func (a *PipedriveAdapter) UpdatePaymentAgreement(ctx context.Context, id string, agreement entities.PaymentAgreement) entities.WriteResult {
	if _, err := a.unwrapRecord(a.request(ctx, http.MethodPut, "/deals/"+id, a.agreementFields(agreement, false), nil), "update agreement"); err != nil {
		return writeFailure(err.Error())
	}
	return entities.WriteResult{Success: true, ID: id}
}

func (a *PipedriveAdapter) agreementFields(agreement entities.PaymentAgreement, create bool) map[string]interface{} {
	fields := map[string]interface{}{
		"title":        agreement.Name,
		"value":        agreement.TotalAmount,
		"installments": agreement.Installments,
		"incentive":    agreement.Incentive,
	}
	if create {
		fields["status"] = "open"
		fields["person_id"] = agreement.ContactID
	}
	if !agreement.ExpectedCloseDate.IsZero() {
		fields["expected_close_date"] = agreement.ExpectedCloseDate.UTC().Format("2006-01-02")
	}
	return fields
}

func (a *PipedriveAdapter) GetContactHistory(ctx context.Context, contactID string) ([]entities.Activity, error) {
	records, err := a.unwrapRecords(a.request(ctx, http.MethodGet, "/persons/"+contactID+"/activities", nil, nil), "person activities")
	if err != nil {
		return nil, err
	}
	return a.mapActivities(records), nil
}

func (a *PipedriveAdapter) GetActivities(ctx context.Context, filters entities.ActivityFilters) ([]entities.Activity, error) {
	if filters.ContactID != "" {
		return a.GetContactHistory(ctx, filters.ContactID)
	}
	params := url.Values{}
	if filters.Limit > 0 {
		params.Set("limit", strconv.Itoa(filters.Limit))
	}
	records, err := a.unwrapRecords(a.request(ctx, http.MethodGet, "/activities", nil, params), "list activities")
	if err != nil {
		return nil, err
	}
	return a.mapActivities(records), nil
}

// GetRecentChanges uses /recents, which filters server-side on
// `since_timestamp` ("2006-01-02 15:04:05", UTC) and returns a mixed stream
// of item kinds.
func (a *PipedriveAdapter) GetRecentChanges(ctx context.Context, since time.Time) (entities.RecentChanges, error) {
	params := url.Values{}
	params.Set("since_timestamp", since.UTC().Format("2006-01-02 15:04:05"))
	records, err := a.unwrapRecords(a.request(ctx, http.MethodGet, "/recents", nil, params), "recents")
	if err != nil {
		return entities.RecentChanges{}, err
	}

	var changes entities.RecentChanges
	for _, rec := range records {
		data, ok := rec["data"].(map[string]interface{})
		if !ok {
			continue
		}
		switch getString(rec, "item") {
		case "person":
			changes.Debtors = append(changes.Debtors, a.mapPerson(data))
		case "deal":
			changes.Debts = append(changes.Debts, a.mapDeal(data))
		case "activity":
			changes.Activities = append(changes.Activities, a.mapActivity(data))
		}
	}
	log.Printf("[crm][pipedrive] recent-changes since=%s debtors=%d debts=%d activities=%d", params.Get("since_timestamp"), len(changes.Debtors), len(changes.Debts), len(changes.Activities))
	return changes, nil
}

func (a *PipedriveAdapter) mapPerson(rec map[string]interface{}) entities.Contact {
	first, last := splitName(getString(rec, "name"))
	return entities.Contact{
		CRMID:          getString(rec, "id"),
		CRMType:        entities.CRMPipedrive,
		FirstName:      first,
		LastName:       last,
		Email:          pipedrivePrimaryValue(rec, "email"),
		Phone:          pipedrivePrimaryValue(rec, "phone"),
		RUT:            getString(rec, "rut"),
		TotalDebt:      getFloat(rec, "total_debt"),
		PlatformUserID: getString(rec, "platform_user_id"),
	}
}

func (a *PipedriveAdapter) mapPersons(records []map[string]interface{}) []entities.Contact {
	contacts := make([]entities.Contact, 0, len(records))
	for _, rec := range records {
		contacts = append(contacts, a.mapPerson(rec))
	}
	return contacts
}

func (a *PipedriveAdapter) mapDeal(rec map[string]interface{}) entities.Debt {
	status, ok := pipedriveDebtStatusByStatus[getString(rec, "status")]
	if !ok {
		status = entities.DebtStatusActive
	}
	return entities.Debt{
		CRMID:            getString(rec, "id"),
		CRMType:          entities.CRMPipedrive,
		ContactID:        pipedrivePersonRef(rec),
		Name:             getString(rec, "title"),
		Amount:           getFloat(rec, "value"),
		Status:           status,
		DueDate:          parseVendorTime(getString(rec, "expected_close_date")),
		OriginalCreditor: getString(rec, "original_creditor"),
		Description:      getString(rec, "description"),
	}
}

func (a *PipedriveAdapter) mapActivity(rec map[string]interface{}) entities.Activity {
	activityType := entities.ActivityOther
	switch getString(rec, "type") {
	case "call":
		activityType = entities.ActivityCall
	case "meeting":
		activityType = entities.ActivityMeeting
	case "email":
		activityType = entities.ActivityEmail
	}
	return entities.Activity{
		ContactID:   pipedrivePersonRef(rec),
		Subject:     getString(rec, "subject"),
		Description: getString(rec, "note"),
		Type:        activityType,
		Date:        parseVendorTime(getString(rec, "due_date")),
	}
}

func (a *PipedriveAdapter) mapActivities(records []map[string]interface{}) []entities.Activity {
	activities := make([]entities.Activity, 0, len(records))
	for _, rec := range records {
		activities = append(activities, a.mapActivity(rec))
	}
	return activities
}

// pipedrivePrimaryValue reads the primary entry of a [{value, primary}]
// multi-value field, tolerating the flat string form search results use.
func pipedrivePrimaryValue(rec map[string]interface{}, field string) string {
	v, ok := rec[field]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	entries, ok := v.([]interface{})
	if !ok {
		return ""
	}
	for _, raw := range entries {
		entry, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		if primary, _ := entry["primary"].(bool); primary {
			return getString(entry, "value")
		}
	}
	if len(entries) > 0 {
		if entry, ok := entries[0].(map[string]interface{}); ok {
			return getString(entry, "value")
		}
	}
	return ""
}

// pipedrivePersonRef handles both the expanded `person_id` object of detail
// responses and the bare numeric id of list responses.
func pipedrivePersonRef(rec map[string]interface{}) string {
	v, ok := rec["person_id"]
	if !ok || v == nil {
		return ""
	}
	if obj, ok := v.(map[string]interface{}); ok {
		return getString(obj, "id")
	}
	return getString(rec, "person_id")
}
