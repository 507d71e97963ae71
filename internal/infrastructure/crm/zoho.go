package crm

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"nexupay/internal/domain/entities"
	"nexupay/internal/infrastructure/metrics"
	"nexupay/internal/usecase/interfaces"
)

// Zoho pipeline-stage vocabulary; distinct stage per platform status.
var zohoStageByStatus = map[entities.DebtStatus]string{
	entities.DebtStatusActive:      "Qualification",
	entities.DebtStatusNegotiating: "Negotiation/Review",
	entities.DebtStatusPaid:        "Closed Won",
	entities.DebtStatusCancelled:   "Closed Lost",
}

var zohoStatusByStage = map[string]entities.DebtStatus{
	"Qualification":      entities.DebtStatusActive,
	"Negotiation/Review": entities.DebtStatusNegotiating,
	"Closed Won":         entities.DebtStatusPaid,
	"Closed Lost":        entities.DebtStatusCancelled,
}

// ZohoConfig holds the OAuth token and the data-center API domain (Zoho
// routes accounts to region-specific domains, e.g. https://www.zohoapis.com).
type ZohoConfig struct {
	AccessToken string
	APIDomain   string
	Timeout     time.Duration
}

// ZohoAdapter talks to the Zoho CRM v3 API. The auth scheme is
// `Zoho-oauthtoken`, not plain Bearer; every write is wrapped in a top-level
// `data` array (Zoho caps it at 100 records per request; single-record
// writes here stay far under that).
type ZohoAdapter struct {
	cfg     ZohoConfig
	rest    *restClient
	metrics *metrics.Metrics
}

var _ interfaces.ICRMAdapter = (*ZohoAdapter)(nil)

func NewZohoAdapter(cfg ZohoConfig, m *metrics.Metrics) *ZohoAdapter {
	cfg.APIDomain = strings.TrimRight(cfg.APIDomain, "/")
	return &ZohoAdapter{
		cfg:     cfg,
		rest:    newRESTClient(entities.CRMZoho, cfg.Timeout, m),
		metrics: m,
	}
}

func (a *ZohoAdapter) Name() entities.CRMType {
	return entities.CRMZoho
}

func (a *ZohoAdapter) IsConfigured() entities.ConfigStatus {
	if a.cfg.AccessToken == "" || a.cfg.APIDomain == "" {
		return entities.ConfigStatus{Configured: false, Message: notConfiguredMessage(entities.CRMZoho)}
	}
	return entities.ConfigStatus{Configured: true, Message: "zoho is configured"}
}

// request addresses a CRM module path under /crm/v3 with the Zoho-oauthtoken
// scheme attached.
func (a *ZohoAdapter) request(ctx context.Context, method, path string, payload interface{}, params url.Values) RequestResult {
	if !a.IsConfigured().Configured {
		return RequestResult{Error: notConfiguredMessage(entities.CRMZoho)}
	}
	headers := map[string]string{"Authorization": "Zoho-oauthtoken " + a.cfg.AccessToken}
	return a.rest.do(ctx, method, a.cfg.APIDomain+"/crm/v3"+path, headers, params, payload)
}

// records unwraps the `data` array of a module read. Zoho answers empty
// searches with 204 and no body, which counts as zero records.
func (a *ZohoAdapter) records(res RequestResult, operation string) ([]map[string]interface{}, error) {
	if !res.Success {
		return nil, fmt.Errorf("zoho %s: %s", operation, res.Error)
	}
	if res.StatusCode == http.StatusNoContent || len(res.Data) == 0 {
		return nil, nil
	}
	var out struct {
		Data []map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(res.Data, &out); err != nil {
		return nil, fmt.Errorf("zoho %s decode: %w", operation, err)
	}
	return out.Data, nil
}

// writeResult unwraps the per-record settlement of a `data`-wrapped write.
func (a *ZohoAdapter) writeResult(res RequestResult, operation string) entities.WriteResult {
	if !res.Success {
		return writeFailure(res.Error)
	}
	var out struct {
		Data []struct {
			Code    string `json:"code"`
			Status  string `json:"status"`
			Message string `json:"message"`
			Details struct {
				ID string `json:"id"`
			} `json:"details"`
		} `json:"data"`
	}
	if err := json.Unmarshal(res.Data, &out); err != nil {
		return writeFailure(fmt.Sprintf("zoho %s decode: %v", operation, err))
	}
	if len(out.Data) == 0 {
		return writeFailure(fmt.Sprintf("zoho %s: empty response", operation))
	}
	first := out.Data[0]
	if !strings.EqualFold(first.Status, "success") {
		return writeFailure(fmt.Sprintf("zoho %s: %s %s", operation, first.Code, first.Message))
	}
	return entities.WriteResult{Success: true, ID: first.Details.ID}
}

func (a *ZohoAdapter) SyncContact(ctx context.Context, contact entities.Contact) entities.ContactSyncResult {
	if !a.IsConfigured().Configured {
		return syncFailure(notConfiguredMessage(entities.CRMZoho))
	}

	existing, err := a.SearchContacts(ctx, contact.Email)
	if err != nil {
		res := syncFailure(err.Error())
		recordSyncSettlement(a.metrics, entities.CRMZoho, res)
		return res
	}

	record := map[string]interface{}{
		"First_Name":       contact.FirstName,
		"Last_Name":        contact.LastName,
		"Email":            contact.Email,
		"Phone":            contact.Phone,
		"RUT":              contact.RUT,
		"Total_Debt":       contact.TotalDebt,
		"Platform_User_Id": contact.PlatformUserID,
	}
	payload := map[string]interface{}{"data": []map[string]interface{}{record}}

	var result entities.ContactSyncResult
	if len(existing) > 0 {
		id := getString(existing[0], "id")
		wr := a.writeResult(a.request(ctx, http.MethodPut, "/Contacts/"+id, payload, nil), "update contact")
		if !wr.Success {
			result = syncFailure(wr.Error)
		} else {
			result = entities.ContactSyncResult{
				Success:   true,
				Action:    entities.SyncActionUpdated,
				ContactID: id,
				Message:   "contact updated in zoho",
			}
		}
	} else {
		wr := a.writeResult(a.request(ctx, http.MethodPost, "/Contacts", payload, nil), "create contact")
		if !wr.Success {
			result = syncFailure(wr.Error)
		} else {
			result = entities.ContactSyncResult{
				Success:   true,
				Action:    entities.SyncActionCreated,
				ContactID: wr.ID,
				Message:   "contact created in zoho",
			}
		}
	}
	recordSyncSettlement(a.metrics, entities.CRMZoho, result)
	return result
}

func (a *ZohoAdapter) SyncContacts(ctx context.Context, contacts []entities.Contact) entities.BatchSyncResult {
	return syncContactsConcurrently(ctx, contacts, a.SyncContact)
}

func (a *ZohoAdapter) GetContacts(ctx context.Context, filters entities.ContactFilters) ([]entities.Contact, error) {
	if filters.Email != "" {
		records, err := a.SearchContacts(ctx, filters.Email)
		if err != nil {
			return nil, err
		}
		return a.mapContacts(records), nil
	}

	params := url.Values{}
	params.Set("fields", "First_Name,Last_Name,Email,Phone,RUT,Total_Debt,Platform_User_Id")
	if filters.Limit > 0 {
		params.Set("per_page", strconv.Itoa(filters.Limit))
	}
	records, err := a.records(a.request(ctx, http.MethodGet, "/Contacts", nil, params), "list contacts")
	if err != nil {
		return nil, err
	}
	return a.mapContacts(records), nil
}

func (a *ZohoAdapter) GetContact(ctx context.Context, id string) (*entities.Contact, error) {
	res := a.request(ctx, http.MethodGet, "/Contacts/"+id, nil, nil)
	if res.StatusCode == http.StatusNotFound || res.StatusCode == http.StatusNoContent {
		return nil, nil
	}
	records, err := a.records(res, "get contact")
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	contact := a.mapContact(records[0])
	return &contact, nil
}

// SearchContacts queries /Contacts/search with an email criteria and returns
// raw Zoho records.
func (a *ZohoAdapter) SearchContacts(ctx context.Context, term string) ([]map[string]interface{}, error) {
	params := url.Values{}
	params.Set("email", term)
	return a.records(a.request(ctx, http.MethodGet, "/Contacts/search", nil, params), "search contacts")
}

func (a *ZohoAdapter) ImportDebts(ctx context.Context, filters entities.DebtFilters) ([]entities.Debt, error) {
	params := url.Values{}
	params.Set("fields", "Deal_Name,Amount,Stage,Closing_Date,Contact_Name,Original_Creditor,Description")
	if filters.Limit > 0 {
		params.Set("per_page", strconv.Itoa(filters.Limit))
	}
	records, err := a.records(a.request(ctx, http.MethodGet, "/Deals", nil, params), "list deals")
	if err != nil {
		return nil, err
	}

	debts := make([]entities.Debt, 0, len(records))
	for _, rec := range records {
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

func (a *ZohoAdapter) UpdateDebtStatus(ctx context.Context, id string, update entities.DebtStatusUpdate) entities.WriteResult {
	stage, ok := zohoStageByStatus[update.Status]
	if !ok {
		return writeFailure(fmt.Sprintf("unknown debt status %q", update.Status))
	}
	record := map[string]interface{}{
		"Stage":             stage,
		"Remaining_Amount":  update.RemainingAmount,
		"Last_Payment_Date": update.LastPaymentDate.UTC().Format("2006-01-02"),
	}
	payload := map[string]interface{}{"data": []map[string]interface{}{record}}
	return a.writeResult(a.request(ctx, http.MethodPut, "/Deals/"+id, payload, nil), "update deal")
}

func (a *ZohoAdapter) LogActivity(ctx context.Context, activity entities.Activity) entities.WriteResult {
	record := map[string]interface{}{
		"Subject":       activity.Subject,
		"Description":   activity.Description,
		"Status":        "Completed",
		"Activity_Type": string(activity.Type),
		"Due_Date":      activity.Date.UTC().Format("2006-01-02"),
		"Who_Id":        map[string]interface{}{"id": activity.ContactID},
	}
	payload := map[string]interface{}{"data": []map[string]interface{}{record}}
	return a.writeResult(a.request(ctx, http.MethodPost, "/Tasks", payload, nil), "create task")
}

func (a *ZohoAdapter) LogPayment(ctx context.Context, payment entities.PaymentLog) entities.WriteResult {
	return a.LogActivity(ctx, paymentActivity(payment))
}

func (a *ZohoAdapter) CreatePaymentAgreement(ctx context.Context, agreement entities.PaymentAgreement) entities.WriteResult {
	payload := map[string]interface{}{"data": []map[string]interface{}{a.agreementRecord(agreement)}}
	return a.writeResult(a.request(ctx, http.MethodPost, "/Deals", payload, nil), "create agreement")
}

func (a *ZohoAdapter) UpdatePaymentAgreement(ctx context.Context, id string, agreement entities.PaymentAgreement) entities.WriteResult {
	payload := map[string]interface{}{"data": []map[string]interface{}{a.agreementRecord(agreement)}}
	return a.writeResult(a.request(ctx, http.MethodPut, "/Deals/"+id, payload, nil), "update agreement")
}

func (a *ZohoAdapter) agreementRecord(agreement entities.PaymentAgreement) map[string]interface{} {
	record := map[string]interface{}{
		"Deal_Name":    agreement.Name,
		"Amount":       agreement.TotalAmount,
		"Stage":        zohoStageByStatus[entities.DebtStatusNegotiating],
		"Contact_Name": map[string]interface{}{"id": agreement.ContactID},
		"Installments": agreement.Installments,
		"Incentive":    agreement.Incentive,
	}
	if !agreement.ExpectedCloseDate.IsZero() {
		record["Closing_Date"] = agreement.ExpectedCloseDate.UTC().Format("2006-01-02")
	}
	return record
}

func (a *ZohoAdapter) GetContactHistory(ctx context.Context, contactID string) ([]entities.Activity, error) {
	params := url.Values{}
	params.Set("criteria", fmt.Sprintf("(Who_Id:equals:%s)", contactID))
	records, err := a.records(a.request(ctx, http.MethodGet, "/Tasks/search", nil, params), "contact history")
	if err != nil {
		return nil, err
	}
	return a.mapActivities(records), nil
}

func (a *ZohoAdapter) GetActivities(ctx context.Context, filters entities.ActivityFilters) ([]entities.Activity, error) {
	if filters.ContactID != "" {
		return a.GetContactHistory(ctx, filters.ContactID)
	}
	params := url.Values{}
	params.Set("fields", "Subject,Description,Activity_Type,Due_Date,Who_Id")
	if filters.Limit > 0 {
		params.Set("per_page", strconv.Itoa(filters.Limit))
	}
	records, err := a.records(a.request(ctx, http.MethodGet, "/Tasks", nil, params), "list tasks")
	if err != nil {
		return nil, err
	}
	return a.mapActivities(records), nil
}

// GetRecentChanges filters server-side with a Modified_Time search criteria.
// Zoho expects the cutoff as an ISO-8601 string in the query parameter.
func (a *ZohoAdapter) GetRecentChanges(ctx context.Context, since time.Time) (entities.RecentChanges, error) {
	cutoff := since.UTC().Format("2006-01-02T15:04:05-07:00")

	modifiedSince := func(module string) ([]map[string]interface{}, error) {
		params := url.Values{}
		params.Set("criteria", fmt.Sprintf("(Modified_Time:greater_than:%s)", cutoff))
		return a.records(a.request(ctx, http.MethodGet, "/"+module+"/search", nil, params), "recent "+module)
	}

	contactRecords, err := modifiedSince("Contacts")
	if err != nil {
		return entities.RecentChanges{}, err
	}
	dealRecords, err := modifiedSince("Deals")
	if err != nil {
		return entities.RecentChanges{}, err
	}
	taskRecords, err := modifiedSince("Tasks")
	if err != nil {
		return entities.RecentChanges{}, err
	}

	changes := entities.RecentChanges{
		Debtors:    a.mapContacts(contactRecords),
		Activities: a.mapActivities(taskRecords),
	}
	for _, rec := range dealRecords {
		changes.Debts = append(changes.Debts, a.mapDebt(rec))
	}
	log.Printf("[crm][zoho] recent-changes since=%s debtors=%d debts=%d activities=%d", cutoff, len(changes.Debtors), len(changes.Debts), len(changes.Activities))
	return changes, nil
}

func (a *ZohoAdapter) mapContact(rec map[string]interface{}) entities.Contact {
	return entities.Contact{
		CRMID:          getString(rec, "id"),
		CRMType:        entities.CRMZoho,
		FirstName:      getString(rec, "First_Name"),
		LastName:       getString(rec, "Last_Name"),
		Email:          getString(rec, "Email"),
		Phone:          getString(rec, "Phone"),
		RUT:            getString(rec, "RUT"),
		TotalDebt:      getFloat(rec, "Total_Debt"),
		PlatformUserID: getString(rec, "Platform_User_Id"),
	}
}

func (a *ZohoAdapter) mapContacts(records []map[string]interface{}) []entities.Contact {
	contacts := make([]entities.Contact, 0, len(records))
	for _, rec := range records {
		contacts = append(contacts, a.mapContact(rec))
	}
	return contacts
}

func (a *ZohoAdapter) mapDebt(rec map[string]interface{}) entities.Debt {
	status, ok := zohoStatusByStage[getString(rec, "Stage")]
	if !ok {
		status = entities.DebtStatusActive
	}
	return entities.Debt{
		CRMID:            getString(rec, "id"),
		CRMType:          entities.CRMZoho,
		ContactID:        zohoLookupID(rec, "Contact_Name"),
		Name:             getString(rec, "Deal_Name"),
		Amount:           getFloat(rec, "Amount"),
		Status:           status,
		DueDate:          parseVendorTime(getString(rec, "Closing_Date")),
		OriginalCreditor: getString(rec, "Original_Creditor"),
		Description:      getString(rec, "Description"),
	}
}

func (a *ZohoAdapter) mapActivities(records []map[string]interface{}) []entities.Activity {
	activities := make([]entities.Activity, 0, len(records))
	for _, rec := range records {
		activityType := entities.ActivityType(getString(rec, "Activity_Type"))
		switch activityType {
		case entities.ActivityCall, entities.ActivityMeeting, entities.ActivityEmail,
			entities.ActivityPayment, entities.ActivityFollowUp:
		default:
			activityType = entities.ActivityOther
		}
		activities = append(activities, entities.Activity{
			ContactID:   zohoLookupID(rec, "Who_Id"),
			Subject:     getString(rec, "Subject"),
			Description: getString(rec, "Description"),
			Type:        activityType,
			Date:        parseVendorTime(getString(rec, "Due_Date")),
		})
	}
	return activities
}

// zohoLookupID extracts the id of a lookup field ({"id": "...", "name": ...}).
func zohoLookupID(rec map[string]interface{}, field string) string {
	v, ok := rec[field]
	if !ok || v == nil {
		return ""
	}
	lookup, ok := v.(map[string]interface{})
	if !ok {
		return ""
	}
	return getString(lookup, "id")
}
