package crm

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"nexupay/internal/domain/entities"
	"nexupay/internal/infrastructure/metrics"
	"nexupay/internal/usecase/interfaces"
)

const salesforceAPIPath = "/services/data/v58.0"

// Salesforce pipeline-stage vocabulary. All four platform statuses map to
// distinct stages, so round-tripping is identity-preserving for this vendor.
var salesforceStageByStatus = map[entities.DebtStatus]string{
	entities.DebtStatusActive:      "Prospecting",
	entities.DebtStatusNegotiating: "Negotiation/Review",
	entities.DebtStatusPaid:        "Closed Won",
	entities.DebtStatusCancelled:   "Closed Lost",
}

var salesforceStatusByStage = map[string]entities.DebtStatus{
	"Prospecting":        entities.DebtStatusActive,
	"Negotiation/Review": entities.DebtStatusNegotiating,
	"Closed Won":         entities.DebtStatusPaid,
	"Closed Lost":        entities.DebtStatusCancelled,
}

var salesforceTaskSubtypeByActivity = map[entities.ActivityType]string{
	entities.ActivityCall:     "Call",
	entities.ActivityMeeting:  "Task",
	entities.ActivityEmail:    "Email",
	entities.ActivityPayment:  "Task",
	entities.ActivityFollowUp: "Task",
	entities.ActivityOther:    "Task",
}

// SalesforceConfig holds the static credentials supplied at construction.
// Token refresh is out of scope; a missing credential only makes
// IsConfigured report false.
type SalesforceConfig struct {
	AccessToken string
	InstanceURL string
	Timeout     time.Duration
}

// SalesforceAdapter talks to the Salesforce REST API. Reads go through SOQL
// passed as a URL-encoded `q` parameter; platform-specific fields live on
// custom fields suffixed `__c`; debts and agreements are Opportunities.
type SalesforceAdapter struct {
	cfg     SalesforceConfig
	rest    *restClient
	metrics *metrics.Metrics
}

var _ interfaces.ICRMAdapter = (*SalesforceAdapter)(nil)

func NewSalesforceAdapter(cfg SalesforceConfig, m *metrics.Metrics) *SalesforceAdapter {
	cfg.InstanceURL = strings.TrimRight(cfg.InstanceURL, "/")
	return &SalesforceAdapter{
		cfg:     cfg,
		rest:    newRESTClient(entities.CRMSalesforce, cfg.Timeout, m),
		metrics: m,
	}
}

func (a *SalesforceAdapter) Name() entities.CRMType {
	return entities.CRMSalesforce
}

func (a *SalesforceAdapter) IsConfigured() entities.ConfigStatus {
	if a.cfg.AccessToken == "" || a.cfg.InstanceURL == "" {
		return entities.ConfigStatus{Configured: false, Message: notConfiguredMessage(entities.CRMSalesforce)}
	}
	return entities.ConfigStatus{Configured: true, Message: "salesforce is configured"}
}

// request is the single point where the bearer token is attached.
func (a *SalesforceAdapter) request(ctx context.Context, method, path string, payload interface{}, params url.Values) RequestResult {
	if !a.IsConfigured().Configured {
		return RequestResult{Error: notConfiguredMessage(entities.CRMSalesforce)}
	}
	headers := map[string]string{"Authorization": "Bearer " + a.cfg.AccessToken}
	return a.rest.do(ctx, method, a.cfg.InstanceURL+salesforceAPIPath+path, headers, params, payload)
}

// query runs a SOQL statement through the /query endpoint and returns the
// records array.
func (a *SalesforceAdapter) query(ctx context.Context, soql string) ([]map[string]interface{}, error) {
	params := url.Values{}
	params.Set("q", soql)
	res := a.request(ctx, http.MethodGet, "/query", nil, params)
	if !res.Success {
		return nil, fmt.Errorf("salesforce query: %s", res.Error)
	}
	var out struct {
		Records []map[string]interface{} `json:"records"`
	}
	if err := json.Unmarshal(res.Data, &out); err != nil {
		return nil, fmt.Errorf("salesforce query decode: %w", err)
	}
	return out.Records, nil
}

func (a *SalesforceAdapter) SyncContact(ctx context.Context, contact entities.Contact) entities.ContactSyncResult {
	if !a.IsConfigured().Configured {
		return syncFailure(notConfiguredMessage(entities.CRMSalesforce))
	}

	existing, err := a.SearchContacts(ctx, contact.Email)
	if err != nil {
		res := syncFailure(err.Error())
		recordSyncSettlement(a.metrics, entities.CRMSalesforce, res)
		return res
	}

	fields := map[string]interface{}{
		"FirstName":           contact.FirstName,
		"LastName":            contact.LastName,
		"Email":               contact.Email,
		"Phone":               contact.Phone,
		"RUT__c":              contact.RUT,
		"Total_Debt__c":       contact.TotalDebt,
		"Platform_User_Id__c": contact.PlatformUserID,
	}

	var result entities.ContactSyncResult
	if len(existing) > 0 {
		id := getString(existing[0], "Id")
		res := a.request(ctx, http.MethodPatch, "/sobjects/Contact/"+id, fields, nil)
		if !res.Success {
			result = syncFailure(res.Error)
		} else {
			result = entities.ContactSyncResult{
				Success:   true,
				Action:    entities.SyncActionUpdated,
				ContactID: id,
				Message:   "contact updated in salesforce",
			}
		}
	} else {
		res := a.request(ctx, http.MethodPost, "/sobjects/Contact", fields, nil)
		if !res.Success {
			result = syncFailure(res.Error)
		} else {
			var created struct {
				ID string `json:"id"`
			}
			if err := json.Unmarshal(res.Data, &created); err != nil {
				result = syncFailure(fmt.Sprintf("salesforce create decode: %v", err))
			} else {
				result = entities.ContactSyncResult{
					Success:   true,
					Action:    entities.SyncActionCreated,
					ContactID: created.ID,
					Message:   "contact created in salesforce",
				}
			}
		}
	}
	recordSyncSettlement(a.metrics, entities.CRMSalesforce, result)
	return result
}

func (a *SalesforceAdapter) SyncContacts(ctx context.Context, contacts []entities.Contact) entities.BatchSyncResult {
	return syncContactsConcurrently(ctx, contacts, a.SyncContact)
}

const salesforceContactFields = "Id, FirstName, LastName, Email, Phone, RUT__c, Total_Debt__c, Platform_User_Id__c"

func (a *SalesforceAdapter) GetContacts(ctx context.Context, filters entities.ContactFilters) ([]entities.Contact, error) {
	soql := "SELECT " + salesforceContactFields + " FROM Contact"
	var where []string
	if filters.Email != "" {
		where = append(where, fmt.Sprintf("Email = '%s'", soqlEscape(filters.Email)))
	}
	if filters.RUT != "" {
		where = append(where, fmt.Sprintf("RUT__c = '%s'", soqlEscape(filters.RUT)))
	}
	if len(where) > 0 {
		soql += " WHERE " + strings.Join(where, " AND ")
	}
	if filters.Limit > 0 {
		soql += fmt.Sprintf(" LIMIT %d", filters.Limit)
	}

	records, err := a.query(ctx, soql)
	if err != nil {
		return nil, err
	}
	contacts := make([]entities.Contact, 0, len(records))
	for _, rec := range records {
		contacts = append(contacts, a.mapContact(rec))
	}
	return contacts, nil
}

func (a *SalesforceAdapter) GetContact(ctx context.Context, id string) (*entities.Contact, error) {
	res := a.request(ctx, http.MethodGet, "/sobjects/Contact/"+id, nil, nil)
	if res.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if !res.Success {
		return nil, fmt.Errorf("salesforce get contact: %s", res.Error)
	}
	var rec map[string]interface{}
	if err := json.Unmarshal(res.Data, &rec); err != nil {
		return nil, fmt.Errorf("salesforce get contact decode: %w", err)
	}
	contact := a.mapContact(rec)
	return &contact, nil
}

// SearchContacts returns raw Salesforce records (native field names, Id
// included) for the given email term.
func (a *SalesforceAdapter) SearchContacts(ctx context.Context, term string) ([]map[string]interface{}, error) {
	soql := fmt.Sprintf("SELECT %s FROM Contact WHERE Email = '%s'", salesforceContactFields, soqlEscape(term))
	return a.query(ctx, soql)
}

func (a *SalesforceAdapter) ImportDebts(ctx context.Context, filters entities.DebtFilters) ([]entities.Debt, error) {
	soql := "SELECT Id, Name, Amount, StageName, CloseDate, Contact__c, Original_Creditor__c, Description FROM Opportunity"
	var where []string
	if filters.Status != "" {
		if stage, ok := salesforceStageByStatus[filters.Status]; ok {
			where = append(where, fmt.Sprintf("StageName = '%s'", stage))
		}
	}
	if filters.ContactID != "" {
		where = append(where, fmt.Sprintf("Contact__c = '%s'", soqlEscape(filters.ContactID)))
	}
	if len(where) > 0 {
		soql += " WHERE " + strings.Join(where, " AND ")
	}
	if filters.Limit > 0 {
		soql += fmt.Sprintf(" LIMIT %d", filters.Limit)
	}

	records, err := a.query(ctx, soql)
	if err != nil {
		return nil, err
	}
	debts := make([]entities.Debt, 0, len(records))
	for _, rec := range records {
		debts = append(debts, a.mapDebt(rec))
	}
	return debts, nil
}

func (a *SalesforceAdapter) UpdateDebtStatus(ctx context.Context, id string, update entities.DebtStatusUpdate) entities.WriteResult {
	stage, ok := salesforceStageByStatus[update.Status]
	if !ok {
		return writeFailure(fmt.Sprintf("unknown debt status %q", update.Status))
	}
	fields := map[string]interface{}{
		"StageName":            stage,
		"Remaining_Amount__c":  update.RemainingAmount,
		"Last_Payment_Date__c": update.LastPaymentDate.UTC().Format("2006-01-02"),
	}
	res := a.request(ctx, http.MethodPatch, "/sobjects/Opportunity/"+id, fields, nil)
	if !res.Success {
		return writeFailure(res.Error)
	}
	return entities.WriteResult{Success: true, ID: id}
}

func (a *SalesforceAdapter) LogActivity(ctx context.Context, activity entities.Activity) entities.WriteResult {
	subtype, ok := salesforceTaskSubtypeByActivity[activity.Type]
	if !ok {
		subtype = "Task"
	}
	fields := map[string]interface{}{
		"Subject":      activity.Subject,
		"Description":  activity.Description,
		"TaskSubtype":  subtype,
		"Status":       "Completed",
		"ActivityDate": activity.Date.UTC().Format("2006-01-02"),
		"WhoId":        activity.ContactID,
	}
	res := a.request(ctx, http.MethodPost, "/sobjects/Task", fields, nil)
	if !res.Success {
		return writeFailure(res.Error)
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(res.Data, &created); err != nil {
		return writeFailure(fmt.Sprintf("salesforce task decode: %v", err))
	}
	return entities.WriteResult{Success: true, ID: created.ID}
}

func (a *SalesforceAdapter) LogPayment(ctx context.Context, payment entities.PaymentLog) entities.WriteResult {
	return a.LogActivity(ctx, paymentActivity(payment))
}

func (a *SalesforceAdapter) CreatePaymentAgreement(ctx context.Context, agreement entities.PaymentAgreement) entities.WriteResult {
	res := a.request(ctx, http.MethodPost, "/sobjects/Opportunity", a.agreementFields(agreement), nil)
	if !res.Success {
		return writeFailure(res.Error)
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(res.Data, &created); err != nil {
		return writeFailure(fmt.Sprintf("salesforce agreement decode: %v", err))
	}
	return entities.WriteResult{Success: true, ID: created.ID}
}

func (a *SalesforceAdapter) UpdatePaymentAgreement(ctx context.Context, id string, agreement entities.PaymentAgreement) entities.WriteResult {
	res := a.request(ctx, http.MethodPatch, "/sobjects/Opportunity/"+id, a.agreementFields(agreement), nil)
	if !res.Success {
		return writeFailure(res.Error)
	}
	return entities.WriteResult{Success: true, ID: id}
}

func (a *SalesforceAdapter) agreementFields(agreement entities.PaymentAgreement) map[string]interface{} {
	fields := map[string]interface{}{
		"Name":            agreement.Name,
		"Amount":          agreement.TotalAmount,
		"StageName":       salesforceStageByStatus[entities.DebtStatusNegotiating],
		"Contact__c":      agreement.ContactID,
		"Installments__c": agreement.Installments,
		"Incentive__c":    agreement.Incentive,
	}
	if !agreement.ExpectedCloseDate.IsZero() {
		fields["CloseDate"] = agreement.ExpectedCloseDate.UTC().Format("2006-01-02")
	}
	return fields
}

func (a *SalesforceAdapter) GetContactHistory(ctx context.Context, contactID string) ([]entities.Activity, error) {
	soql := fmt.Sprintf("SELECT Id, Subject, Description, TaskSubtype, ActivityDate, WhoId FROM Task WHERE WhoId = '%s' ORDER BY ActivityDate DESC", soqlEscape(contactID))
	records, err := a.query(ctx, soql)
	if err != nil {
		return nil, err
	}
	return a.mapActivities(records), nil
}

func (a *SalesforceAdapter) GetActivities(ctx context.Context, filters entities.ActivityFilters) ([]entities.Activity, error) {
	soql := "SELECT Id, Subject, Description, TaskSubtype, ActivityDate, WhoId FROM Task"
	var where []string
	if filters.ContactID != "" {
		where = append(where, fmt.Sprintf("WhoId = '%s'", soqlEscape(filters.ContactID)))
	}
	if !filters.Since.IsZero() {
		where = append(where, "LastModifiedDate >= "+filters.Since.UTC().Format("2006-01-02T15:04:05Z"))
	}
	if len(where) > 0 {
		soql += " WHERE " + strings.Join(where, " AND ")
	}
	if filters.Limit > 0 {
		soql += fmt.Sprintf(" LIMIT %d", filters.Limit)
	}
	records, err := a.query(ctx, soql)
	if err != nil {
		return nil, err
	}
	return a.mapActivities(records), nil
}

// GetRecentChanges filters server-side on LastModifiedDate. SOQL datetime
// literals are unquoted ISO strings.
func (a *SalesforceAdapter) GetRecentChanges(ctx context.Context, since time.Time) (entities.RecentChanges, error) {
	cutoff := since.UTC().Format("2006-01-02T15:04:05Z")

	contactRecords, err := a.query(ctx, fmt.Sprintf("SELECT %s FROM Contact WHERE LastModifiedDate >= %s", salesforceContactFields, cutoff))
	if err != nil {
		return entities.RecentChanges{}, err
	}
	debtRecords, err := a.query(ctx, "SELECT Id, Name, Amount, StageName, CloseDate, Contact__c, Original_Creditor__c, Description FROM Opportunity WHERE LastModifiedDate >= "+cutoff)
	if err != nil {
		return entities.RecentChanges{}, err
	}
	taskRecords, err := a.query(ctx, "SELECT Id, Subject, Description, TaskSubtype, ActivityDate, WhoId FROM Task WHERE LastModifiedDate >= "+cutoff)
	if err != nil {
		return entities.RecentChanges{}, err
	}

	changes := entities.RecentChanges{Activities: a.mapActivities(taskRecords)}
	for _, rec := range contactRecords {
		changes.Debtors = append(changes.Debtors, a.mapContact(rec))
	}
	for _, rec := range debtRecords {
		changes.Debts = append(changes.Debts, a.mapDebt(rec))
	}
	log.Printf("[crm][salesforce] recent-changes since=%s debtors=%d debts=%d activities=%d", cutoff, len(changes.Debtors), len(changes.Debts), len(changes.Activities))
	return changes, nil
}

func (a *SalesforceAdapter) mapContact(rec map[string]interface{}) entities.Contact {
	return entities.Contact{
		CRMID:          getString(rec, "Id"),
		CRMType:        entities.CRMSalesforce,
		FirstName:      getString(rec, "FirstName"),
		LastName:       getString(rec, "LastName"),
		Email:          getString(rec, "Email"),
		Phone:          getString(rec, "Phone"),
		RUT:            getString(rec, "RUT__c"),
		TotalDebt:      getFloat(rec, "Total_Debt__c"),
		PlatformUserID: getString(rec, "Platform_User_Id__c"),
	}
}

func (a *SalesforceAdapter) mapDebt(rec map[string]interface{}) entities.Debt {
	status, ok := salesforceStatusByStage[getString(rec, "StageName")]
	if !ok {
		status = entities.DebtStatusActive
	}
	return entities.Debt{
		CRMID:            getString(rec, "Id"),
		CRMType:          entities.CRMSalesforce,
		ContactID:        getString(rec, "Contact__c"),
		Name:             getString(rec, "Name"),
		Amount:           getFloat(rec, "Amount"),
		Status:           status,
		DueDate:          parseVendorTime(getString(rec, "CloseDate")),
		OriginalCreditor: getString(rec, "Original_Creditor__c"),
		Description:      getString(rec, "Description"),
	}
}

func (a *SalesforceAdapter) mapActivities(records []map[string]interface{}) []entities.Activity {
	activities := make([]entities.Activity, 0, len(records))
	for _, rec := range records {
		activityType := entities.ActivityOther
		switch getString(rec, "TaskSubtype") {
		case "Call":
			activityType = entities.ActivityCall
		case "Email":
			activityType = entities.ActivityEmail
		}
		activities = append(activities, entities.Activity{
			ContactID:   getString(rec, "WhoId"),
			Subject:     getString(rec, "Subject"),
			Description: getString(rec, "Description"),
			Type:        activityType,
			Date:        parseVendorTime(getString(rec, "ActivityDate")),
		})
	}
	return activities
}

func soqlEscape(s string) string {
	return strings.ReplaceAll(s, "'", "\\'")
}
