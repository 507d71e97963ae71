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
	hubspotBaseURL = "https://api.hubapi.com"

	// HubSpot-defined association type ids.
	hubspotAssocDealToContact = 3
	hubspotAssocTaskToContact = 204
)

// HubSpot default sales-pipeline stage ids. Every platform status maps to a
// distinct stage, so the translation round-trips cleanly.
var hubspotStageByStatus = map[entities.DebtStatus]string{
	entities.DebtStatusActive:      "appointmentscheduled",
	entities.DebtStatusNegotiating: "contractsent",
	entities.DebtStatusPaid:        "closedwon",
	entities.DebtStatusCancelled:   "closedlost",
}

var hubspotStatusByStage = map[string]entities.DebtStatus{
	"appointmentscheduled": entities.DebtStatusActive,
	"contractsent":         entities.DebtStatusNegotiating,
	"closedwon":            entities.DebtStatusPaid,
	"closedlost":           entities.DebtStatusCancelled,
}

var hubspotTaskTypeByActivity = map[entities.ActivityType]string{
	entities.ActivityCall:     "CALL",
	entities.ActivityMeeting:  "TODO",
	entities.ActivityEmail:    "EMAIL",
	entities.ActivityPayment:  "TODO",
	entities.ActivityFollowUp: "TODO",
	entities.ActivityOther:    "TODO",
}

// HubSpotConfig holds the private-app access token.
type HubSpotConfig struct {
	AccessToken string
	BaseURL     string
	Timeout     time.Duration
}

// HubSpotAdapter talks to the HubSpot CRM v3 objects API. Everything is
// property-based payloads; relations are typed association objects; searches
// go through the per-object /search endpoint with filter groups.
type HubSpotAdapter struct {
	cfg     HubSpotConfig
	base    string
	rest    *restClient
	metrics *metrics.Metrics
}

var _ interfaces.ICRMAdapter = (*HubSpotAdapter)(nil)

func NewHubSpotAdapter(cfg HubSpotConfig, m *metrics.Metrics) *HubSpotAdapter {
	base := cfg.BaseURL
	if base == "" {
		base = hubspotBaseURL
	}
	return &HubSpotAdapter{
		cfg:     cfg,
		base:    base,
		rest:    newRESTClient(entities.CRMHubSpot, cfg.Timeout, m),
		metrics: m,
	}
}

func (a *HubSpotAdapter) Name() entities.CRMType {
	return entities.CRMHubSpot
}

func (a *HubSpotAdapter) IsConfigured() entities.ConfigStatus {
	if a.cfg.AccessToken == "" {
		return entities.ConfigStatus{Configured: false, Message: notConfiguredMessage(entities.CRMHubSpot)}
	}
	return entities.ConfigStatus{Configured: true, Message: "hubspot is configured"}
}

func (a *HubSpotAdapter) request(ctx context.Context, method, path string, payload interface{}, params url.Values) RequestResult {
	if !a.IsConfigured().Configured {
		return RequestResult{Error: notConfiguredMessage(entities.CRMHubSpot)}
	}
	headers := map[string]string{"Authorization": "Bearer " + a.cfg.AccessToken}
	return a.rest.do(ctx, method, a.base+path, headers, params, payload)
}

// search runs a filtered search against one object type and returns the raw
// result records.
func (a *HubSpotAdapter) search(ctx context.Context, objectType string, body map[string]interface{}) ([]map[string]interface{}, error) {
	res := a.request(ctx, http.MethodPost, "/crm/v3/objects/"+objectType+"/search", body, nil)
	if !res.Success {
		return nil, fmt.Errorf("hubspot search %s: %s", objectType, res.Error)
	}
	var out struct {
		Results []map[string]interface{} `json:"results"`
	}
	if err := json.Unmarshal(res.Data, &out); err != nil {
		return nil, fmt.Errorf("hubspot search decode: %w", err)
	}
	return out.Results, nil
}

var hubspotContactProperties = []string{"firstname", "lastname", "email", "phone", "rut", "total_debt", "platform_user_id"}

func (a *HubSpotAdapter) SyncContact(ctx context.Context, contact entities.Contact) entities.ContactSyncResult {
	if !a.IsConfigured().Configured {
		return syncFailure(notConfiguredMessage(entities.CRMHubSpot))
	}

	existing, err := a.SearchContacts(ctx, contact.Email)
	if err != nil {
		res := syncFailure(err.Error())
		recordSyncSettlement(a.metrics, entities.CRMHubSpot, res)
		return res
	}

	payload := map[string]interface{}{
		"properties": map[string]interface{}{
			"firstname":        contact.FirstName,
			"lastname":         contact.LastName,
			"email":            contact.Email,
			"phone":            contact.Phone,
			"rut":              contact.RUT,
			"total_debt":       strconv.FormatFloat(contact.TotalDebt, 'f', -1, 64),
			"platform_user_id": contact.PlatformUserID,
		},
	}

	var result entities.ContactSyncResult
	if len(existing) > 0 {
		id := getString(existing[0], "id")
		res := a.request(ctx, http.MethodPatch, "/crm/v3/objects/contacts/"+id, payload, nil)
		if !res.Success {
			result = syncFailure(res.Error)
		} else {
			result = entities.ContactSyncResult{
				Success:   true,
				Action:    entities.SyncActionUpdated,
				ContactID: id,
				Message:   "contact updated in hubspot",
			}
		}
	} else {
		res := a.request(ctx, http.MethodPost, "/crm/v3/objects/contacts", payload, nil)
		if !res.Success {
			result = syncFailure(res.Error)
		} else {
			var created struct {
				ID string `json:"id"`
			}
			if err := json.Unmarshal(res.Data, &created); err != nil {
				result = syncFailure(fmt.Sprintf("hubspot create decode: %v", err))
			} else {
				result = entities.ContactSyncResult{
					Success:   true,
					Action:    entities.SyncActionCreated,
					ContactID: created.ID,
					Message:   "contact created in hubspot",
				}
			}
		}
	}
	recordSyncSettlement(a.metrics, entities.CRMHubSpot, result)
	return result
}

func (a *HubSpotAdapter) SyncContacts(ctx context.Context, contacts []entities.Contact) entities.BatchSyncResult {
	return syncContactsConcurrently(ctx, contacts, a.SyncContact)
}

func (a *HubSpotAdapter) GetContacts(ctx context.Context, filters entities.ContactFilters) ([]entities.Contact, error) {
	if filters.Email != "" {
		records, err := a.SearchContacts(ctx, filters.Email)
		if err != nil {
			return nil, err
		}
		return a.mapContacts(records), nil
	}

	params := url.Values{}
	for _, p := range hubspotContactProperties {
		params.Add("properties", p)
	}
	if filters.Limit > 0 {
		params.Set("limit", strconv.Itoa(filters.Limit))
	}
	res := a.request(ctx, http.MethodGet, "/crm/v3/objects/contacts", nil, params)
	if !res.Success {
		return nil, fmt.Errorf("hubspot list contacts: %s", res.Error)
	}
	var out struct {
		Results []map[string]interface{} `json:"results"`
	}
	if err := json.Unmarshal(res.Data, &out); err != nil {
		return nil, fmt.Errorf("hubspot list decode: %w", err)
	}
	return a.mapContacts(out.Results), nil
}

func (a *HubSpotAdapter) GetContact(ctx context.Context, id string) (*entities.Contact, error) {
	params := url.Values{}
	for _, p := range hubspotContactProperties {
		params.Add("properties", p)
	}
	res := a.request(ctx, http.MethodGet, "/crm/v3/objects/contacts/"+id, nil, params)
	if res.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if !res.Success {
		return nil, fmt.Errorf("hubspot get contact: %s", res.Error)
	}
	var rec map[string]interface{}
	if err := json.Unmarshal(res.Data, &rec); err != nil {
		return nil, fmt.Errorf("hubspot get contact decode: %w", err)
	}
	contact := a.mapContact(rec)
	return &contact, nil
}

// SearchContacts returns raw HubSpot search results for an email term.
func (a *HubSpotAdapter) SearchContacts(ctx context.Context, term string) ([]map[string]interface{}, error) {
	body := map[string]interface{}{
		"filterGroups": []map[string]interface{}{
			{
				"filters": []map[string]interface{}{
					{"propertyName": "email", "operator": "EQ", "value": term},
				},
			},
		},
		"properties": hubspotContactProperties,
	}
	return a.search(ctx, "contacts", body)
}

var hubspotDealProperties = []string{"dealname", "amount", "dealstage", "closedate", "original_creditor", "description"}

func (a *HubSpotAdapter) ImportDebts(ctx context.Context, filters entities.DebtFilters) ([]entities.Debt, error) {
	params := url.Values{}
	for _, p := range hubspotDealProperties {
		params.Add("properties", p)
	}
	params.Add("associations", "contacts")
	if filters.Limit > 0 {
		params.Set("limit", strconv.Itoa(filters.Limit))
	}
	res := a.request(ctx, http.MethodGet, "/crm/v3/objects/deals", nil, params)
	if !res.Success {
		return nil, fmt.Errorf("hubspot list deals: %s", res.Error)
	}
	var out struct {
		Results []map[string]interface{} `json:"results"`
	}
	if err := json.Unmarshal(res.Data, &out); err != nil {
		return nil, fmt.Errorf("hubspot deals decode: %w", err)
	}

	debts := make([]entities.Debt, 0, len(out.Results))
	for _, rec := range out.Results {
		debt := a.mapDebt(rec)
		if filters.Status != "" && debt.Status != filters.Status {
			continue
		}
		if filters.ContactID != "" && debt.ContactID != filters.ContactID {
			continue
		}
		debts = append(debts, debt)
	}
	return debts, nil
}

func (a *HubSpotAdapter) UpdateDebtStatus(ctx context.Context, id string, update entities.DebtStatusUpdate) entities.WriteResult {
	stage, ok := hubspotStageByStatus[update.Status]
	if !ok {
		return writeFailure(fmt.Sprintf("unknown debt status %q", update.Status))
	}
	payload := map[string]interface{}{
		"properties": map[string]interface{}{
			"dealstage":         stage,
			"remaining_amount":  strconv.FormatFloat(update.RemainingAmount, 'f', -1, 64),
			"last_payment_date": update.LastPaymentDate.UTC().Format("2006-01-02"),
		},
	}
	res := a.request(ctx, http.MethodPatch, "/crm/v3/objects/deals/"+id, payload, nil)
	if !res.Success {
		return writeFailure(res.Error)
	}
	return entities.WriteResult{Success: true, ID: id}
}

func (a *HubSpotAdapter) LogActivity(ctx context.Context, activity entities.Activity) entities.WriteResult {
	taskType, ok := hubspotTaskTypeByActivity[activity.Type]
	if !ok {
		taskType = "TODO"
	}
	payload := map[string]interface{}{
		"properties": map[string]interface{}{
			"hs_task_subject": activity.Subject,
			"hs_task_body":    activity.Description,
			"hs_task_type":    taskType,
			"hs_task_status":  "COMPLETED",
			"hs_timestamp":    activity.Date.UTC().Format(time.RFC3339),
		},
		"associations": []map[string]interface{}{
			{
				"to": map[string]interface{}{"id": activity.ContactID},
				"types": []map[string]interface{}{
					{"associationCategory": "HUBSPOT_DEFINED", "associationTypeId": hubspotAssocTaskToContact},
				},
			},
		},
	}
	res := a.request(ctx, http.MethodPost, "/crm/v3/objects/tasks", payload, nil)
	if !res.Success {
		return writeFailure(res.Error)
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(res.Data, &created); err != nil {
		return writeFailure(fmt.Sprintf("hubspot task decode: %v", err))
	}
	return entities.WriteResult{Success: true, ID: created.ID}
}

func (a *HubSpotAdapter) LogPayment(ctx context.Context, payment entities.PaymentLog) entities.WriteResult {
	return a.LogActivity(ctx, paymentActivity(payment))
}

func (a *HubSpotAdapter) CreatePaymentAgreement(ctx context.Context, agreement entities.PaymentAgreement) entities.WriteResult {
	payload := map[string]interface{}{
		"properties": a.agreementProperties(agreement),
		"associations": []map[string]interface{}{
			{
				"to": map[string]interface{}{"id": agreement.ContactID},
				"types": []map[string]interface{}{
					{"associationCategory": "HUBSPOT_DEFINED", "associationTypeId": hubspotAssocDealToContact},
				},
			},
		},
	}
	res := a.request(ctx, http.MethodPost, "/crm/v3/objects/deals", payload, nil)
	if !res.Success {
		return writeFailure(res.Error)
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(res.Data, &created); err != nil {
		return writeFailure(fmt.Sprintf("hubspot agreement decode: %v", err))
	}
	return entities.WriteResult{Success: true, ID: created.ID}
}

func (a *HubSpotAdapter) UpdatePaymentAgreement(ctx context.Context, id string, agreement entities.PaymentAgreement) entities.WriteResult {
	payload := map[string]interface{}{"properties": a.agreementProperties(agreement)}
	res := a.request(ctx, http.MethodPatch, "/crm/v3/objects/deals/"+id, payload, nil)
	if !res.Success {
		return writeFailure(res.Error)
	}
	return entities.WriteResult{Success: true, ID: id}
}

func (a *HubSpotAdapter) agreementProperties(agreement entities.PaymentAgreement) map[string]interface{} {
	props := map[string]interface{}{
		"dealname":     agreement.Name,
		"amount":       strconv.FormatFloat(agreement.TotalAmount, 'f', -1, 64),
		"dealstage":    hubspotStageByStatus[entities.DebtStatusNegotiating],
		"installments": strconv.Itoa(agreement.Installments),
		"incentive":    strconv.FormatFloat(agreement.Incentive, 'f', -1, 64),
	}
	if !agreement.ExpectedCloseDate.IsZero() {
		props["closedate"] = agreement.ExpectedCloseDate.UTC().Format(time.RFC3339)
	}
	return props
}

func (a *HubSpotAdapter) GetContactHistory(ctx context.Context, contactID string) ([]entities.Activity, error) {
	body := map[string]interface{}{
		"filterGroups": []map[string]interface{}{
			{
				"filters": []map[string]interface{}{
					{"propertyName": "associations.contact", "operator": "EQ", "value": contactID},
				},
			},
		},
		"properties": []string{"hs_task_subject", "hs_task_body", "hs_task_type", "hs_timestamp"},
	}
	records, err := a.search(ctx, "tasks", body)
	if err != nil {
		return nil, err
	}
	return a.mapActivities(records, contactID), nil
}

func (a *HubSpotAdapter) GetActivities(ctx context.Context, filters entities.ActivityFilters) ([]entities.Activity, error) {
	if filters.ContactID != "" {
		return a.GetContactHistory(ctx, filters.ContactID)
	}

	params := url.Values{}
	for _, p := range []string{"hs_task_subject", "hs_task_body", "hs_task_type", "hs_timestamp"} {
		params.Add("properties", p)
	}
	if filters.Limit > 0 {
		params.Set("limit", strconv.Itoa(filters.Limit))
	}
	res := a.request(ctx, http.MethodGet, "/crm/v3/objects/tasks", nil, params)
	if !res.Success {
		return nil, fmt.Errorf("hubspot list tasks: %s", res.Error)
	}
	var out struct {
		Results []map[string]interface{} `json:"results"`
	}
	if err := json.Unmarshal(res.Data, &out); err != nil {
		return nil, fmt.Errorf("hubspot tasks decode: %w", err)
	}
	return a.mapActivities(out.Results, ""), nil
}

// GetRecentChanges filters server-side with a millisecond-epoch
// last-modified filter in the search body. The contact object exposes the
// field as `lastmodifieddate`; deals and tasks use `hs_lastmodifieddate`.
func (a *HubSpotAdapter) GetRecentChanges(ctx context.Context, since time.Time) (entities.RecentChanges, error) {
	cutoff := strconv.FormatInt(since.UTC().UnixMilli(), 10)

	modifiedSince := func(property string, properties []string) map[string]interface{} {
		return map[string]interface{}{
			"filterGroups": []map[string]interface{}{
				{
					"filters": []map[string]interface{}{
						{"propertyName": property, "operator": "GTE", "value": cutoff},
					},
				},
			},
			"properties": properties,
		}
	}

	contactRecords, err := a.search(ctx, "contacts", modifiedSince("lastmodifieddate", hubspotContactProperties))
	if err != nil {
		return entities.RecentChanges{}, err
	}
	dealRecords, err := a.search(ctx, "deals", modifiedSince("hs_lastmodifieddate", hubspotDealProperties))
	if err != nil {
		return entities.RecentChanges{}, err
	}
	taskRecords, err := a.search(ctx, "tasks", modifiedSince("hs_lastmodifieddate", []string{"hs_task_subject", "hs_task_body", "hs_task_type", "hs_timestamp"}))
	if err != nil {
		return entities.RecentChanges{}, err
	}

	changes := entities.RecentChanges{
		Debtors:    a.mapContacts(contactRecords),
		Activities: a.mapActivities(taskRecords, ""),
	}
	for _, rec := range dealRecords {
		changes.Debts = append(changes.Debts, a.mapDebt(rec))
	}
	log.Printf("[crm][hubspot] recent-changes since_ms=%s debtors=%d debts=%d activities=%d", cutoff, len(changes.Debtors), len(changes.Debts), len(changes.Activities))
	return changes, nil
}

func hubspotProperties(rec map[string]interface{}) map[string]interface{} {
	if props, ok := rec["properties"].(map[string]interface{}); ok {
		return props
	}
	return map[string]interface{}{}
}

func (a *HubSpotAdapter) mapContact(rec map[string]interface{}) entities.Contact {
	props := hubspotProperties(rec)
	return entities.Contact{
		CRMID:          getString(rec, "id"),
		CRMType:        entities.CRMHubSpot,
		FirstName:      getString(props, "firstname"),
		LastName:       getString(props, "lastname"),
		Email:          getString(props, "email"),
		Phone:          getString(props, "phone"),
		RUT:            getString(props, "rut"),
		TotalDebt:      getFloat(props, "total_debt"),
		PlatformUserID: getString(props, "platform_user_id"),
	}
}

func (a *HubSpotAdapter) mapContacts(records []map[string]interface{}) []entities.Contact {
	contacts := make([]entities.Contact, 0, len(records))
	for _, rec := range records {
		contacts = append(contacts, a.mapContact(rec))
	}
	return contacts
}

func (a *HubSpotAdapter) mapDebt(rec map[string]interface{}) entities.Debt {
	props := hubspotProperties(rec)
	status, ok := hubspotStatusByStage[getString(props, "dealstage")]
	if !ok {
		status = entities.DebtStatusActive
	}
	return entities.Debt{
		CRMID:            getString(rec, "id"),
		CRMType:          entities.CRMHubSpot,
		ContactID:        hubspotFirstAssociatedContact(rec),
		Name:             getString(props, "dealname"),
		Amount:           getFloat(props, "amount"),
		Status:           status,
		DueDate:          parseVendorTime(getString(props, "closedate")),
		OriginalCreditor: getString(props, "original_creditor"),
		Description:      getString(props, "description"),
	}
}

func hubspotFirstAssociatedContact(rec map[string]interface{}) string {
	assocs, ok := rec["associations"].(map[string]interface{})
	if !ok {
		return ""
	}
	contacts, ok := assocs["contacts"].(map[string]interface{})
	if !ok {
		return ""
	}
	results, ok := contacts["results"].([]interface{})
	if !ok || len(results) == 0 {
		return ""
	}
	first, ok := results[0].(map[string]interface{})
	if !ok {
		return ""
	}
	return getString(first, "id")
}

func (a *HubSpotAdapter) mapActivities(records []map[string]interface{}, contactID string) []entities.Activity {
	activities := make([]entities.Activity, 0, len(records))
	for _, rec := range records {
		props := hubspotProperties(rec)
		activityType := entities.ActivityOther
		switch getString(props, "hs_task_type") {
		case "CALL":
			activityType = entities.ActivityCall
		case "EMAIL":
			activityType = entities.ActivityEmail
		}
		activities = append(activities, entities.Activity{
			ContactID:   contactID,
			Subject:     getString(props, "hs_task_subject"),
			Description: getString(props, "hs_task_body"),
			Type:        activityType,
			Date:        parseVendorTime(getString(props, "hs_timestamp")),
		})
	}
	return activities
}
