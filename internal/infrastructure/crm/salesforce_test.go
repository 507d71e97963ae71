package crm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nexupay/internal/domain/entities"
)

func newSalesforceServer(t *testing.T, handler http.HandlerFunc) (*SalesforceAdapter, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	adapter := NewSalesforceAdapter(SalesforceConfig{
		AccessToken: "sf-token",
		InstanceURL: srv.URL,
	}, nil)
	return adapter, srv
}

func TestSalesforceAdapter_IsConfigured(t *testing.T) {
	if NewSalesforceAdapter(SalesforceConfig{}, nil).IsConfigured().Configured {
		t.Fatal("expected unconfigured without credentials")
	}
	if !NewSalesforceAdapter(SalesforceConfig{AccessToken: "x", InstanceURL: "https://acme.my.salesforce.com"}, nil).IsConfigured().Configured {
		t.Fatal("expected configured with credentials")
	}
}

func TestSalesforceAdapter_SyncContact(t *testing.T) {
	ctx := context.Background()

	t.Run("create when no match", func(t *testing.T) {
		adapter, _ := newSalesforceServer(t, func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("Authorization"); got != "Bearer sf-token" {
				t.Errorf("unexpected auth header %q", got)
			}
			switch {
			case strings.HasPrefix(r.URL.Path, salesforceAPIPath+"/query"):
				soql := r.URL.Query().Get("q")
				if !strings.Contains(soql, "FROM Contact WHERE Email = 'maria@test.cl'") {
					t.Errorf("unexpected soql %q", soql)
				}
				w.Write([]byte(`{"records":[]}`))
			case r.Method == http.MethodPost && r.URL.Path == salesforceAPIPath+"/sobjects/Contact":
				var fields map[string]interface{}
				if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
					t.Errorf("decode payload: %v", err)
				}
				if fields["RUT__c"] != "12.345.678-9" || fields["LastName"] != "Soto" {
					t.Errorf("unexpected fields: %+v", fields)
				}
				w.WriteHeader(http.StatusCreated)
				w.Write([]byte(`{"id":"003XX0001","success":true}`))
			default:
				t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
				w.WriteHeader(http.StatusNotFound)
			}
		})

		res := adapter.SyncContact(ctx, entities.Contact{
			FirstName: "Maria", LastName: "Soto", Email: "maria@test.cl", RUT: "12.345.678-9",
		})
		if !res.Success || res.Action != entities.SyncActionCreated || res.ContactID != "003XX0001" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("update when email matches", func(t *testing.T) {
		adapter, _ := newSalesforceServer(t, func(w http.ResponseWriter, r *http.Request) {
			switch {
			case strings.HasPrefix(r.URL.Path, salesforceAPIPath+"/query"):
				w.Write([]byte(`{"records":[{"Id":"003XX0002","Email":"maria@test.cl"}]}`))
			case r.Method == http.MethodPatch && r.URL.Path == salesforceAPIPath+"/sobjects/Contact/003XX0002":
				w.WriteHeader(http.StatusNoContent)
			default:
				t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
				w.WriteHeader(http.StatusNotFound)
			}
		})

		res := adapter.SyncContact(ctx, entities.Contact{LastName: "Soto", Email: "maria@test.cl"})
		if !res.Success || res.Action != entities.SyncActionUpdated || res.ContactID != "003XX0002" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("vendor rejection settles", func(t *testing.T) {
		adapter, _ := newSalesforceServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`[{"errorCode":"INVALID_SESSION_ID"}]`))
		})

		res := adapter.SyncContact(ctx, entities.Contact{LastName: "Soto", Email: "maria@test.cl"})
		if res.Success || res.Error == "" {
			t.Fatalf("expected settled failure, got %+v", res)
		}
	})

	t.Run("unconfigured fails without a request", func(t *testing.T) {
		adapter := NewSalesforceAdapter(SalesforceConfig{}, nil)
		res := adapter.SyncContact(ctx, entities.Contact{Email: "maria@test.cl"})
		if res.Success || res.Error != "salesforce is not configured" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestSalesforceAdapter_GetContact(t *testing.T) {
	ctx := context.Background()

	t.Run("missing contact is nil without error", func(t *testing.T) {
		adapter, _ := newSalesforceServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`[{"errorCode":"NOT_FOUND"}]`))
		})

		contact, err := adapter.GetContact(ctx, "003XX0404")
		if err != nil || contact != nil {
			t.Fatalf("expected nil,nil for 404, got %+v err=%v", contact, err)
		}
	})

	t.Run("found contact maps custom fields", func(t *testing.T) {
		adapter, _ := newSalesforceServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"Id":"003XX0001","FirstName":"Maria","LastName":"Soto","Email":"maria@test.cl","RUT__c":"12.345.678-9","Total_Debt__c":150000,"Platform_User_Id__c":"d-1"}`))
		})

		contact, err := adapter.GetContact(ctx, "003XX0001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if contact.CRMID != "003XX0001" || contact.CRMType != entities.CRMSalesforce {
			t.Fatalf("unexpected identity: %+v", contact)
		}
		if contact.RUT != "12.345.678-9" || contact.TotalDebt != 150000 || contact.PlatformUserID != "d-1" {
			t.Fatalf("unexpected custom fields: %+v", contact)
		}
	})
}

func TestSalesforceAdapter_ImportDebts(t *testing.T) {
	adapter, _ := newSalesforceServer(t, func(w http.ResponseWriter, r *http.Request) {
		soql := r.URL.Query().Get("q")
		if !strings.Contains(soql, "FROM Opportunity") || !strings.Contains(soql, "StageName = 'Closed Won'") {
			t.Errorf("unexpected soql %q", soql)
		}
		w.Write([]byte(`{"records":[{"Id":"006XX0001","Name":"Credito consumo","Amount":150000,"StageName":"Closed Won","CloseDate":"2026-06-30","Contact__c":"003XX0001"}]}`))
	})

	debts, err := adapter.ImportDebts(context.Background(), entities.DebtFilters{Status: entities.DebtStatusPaid})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(debts) != 1 {
		t.Fatalf("expected 1 debt, got %d", len(debts))
	}
	if debts[0].Status != entities.DebtStatusPaid || debts[0].ContactID != "003XX0001" || debts[0].Amount != 150000 {
		t.Fatalf("unexpected debt: %+v", debts[0])
	}
	if debts[0].DueDate.IsZero() {
		t.Fatalf("expected parsed close date: %+v", debts[0])
	}
}

func TestSalesforceAdapter_UpdateDebtStatus(t *testing.T) {
	t.Run("unknown status rejected locally", func(t *testing.T) {
		adapter := NewSalesforceAdapter(SalesforceConfig{AccessToken: "x", InstanceURL: "https://acme.my.salesforce.com"}, nil)
		res := adapter.UpdateDebtStatus(context.Background(), "006XX0001", entities.DebtStatusUpdate{Status: "vanished"})
		if res.Success || !strings.Contains(res.Error, "unknown debt status") {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("maps status to stage", func(t *testing.T) {
		adapter, _ := newSalesforceServer(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPatch || r.URL.Path != salesforceAPIPath+"/sobjects/Opportunity/006XX0001" {
				t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			}
			var fields map[string]interface{}
			json.NewDecoder(r.Body).Decode(&fields)
			if fields["StageName"] != "Closed Won" {
				t.Errorf("unexpected stage %v", fields["StageName"])
			}
			w.WriteHeader(http.StatusNoContent)
		})

		res := adapter.UpdateDebtStatus(context.Background(), "006XX0001", entities.DebtStatusUpdate{
			Status: entities.DebtStatusPaid, LastPaymentDate: time.Now(),
		})
		if !res.Success || res.ID != "006XX0001" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestSalesforceAdapter_LogActivity(t *testing.T) {
	adapter, _ := newSalesforceServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != salesforceAPIPath+"/sobjects/Task" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var fields map[string]interface{}
		json.NewDecoder(r.Body).Decode(&fields)
		if fields["TaskSubtype"] != "Call" || fields["Status"] != "Completed" || fields["WhoId"] != "003XX0001" {
			t.Errorf("unexpected fields: %+v", fields)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"00TXX0001","success":true}`))
	})

	res := adapter.LogActivity(context.Background(), entities.Activity{
		ContactID: "003XX0001",
		Subject:   "llamada de cobranza",
		Type:      entities.ActivityCall,
		Date:      time.Now(),
	})
	if !res.Success || res.ID != "00TXX0001" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestSalesforceAdapter_GetRecentChanges(t *testing.T) {
	since := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	var queries []string
	adapter, _ := newSalesforceServer(t, func(w http.ResponseWriter, r *http.Request) {
		soql := r.URL.Query().Get("q")
		queries = append(queries, soql)
		switch {
		case strings.Contains(soql, "FROM Contact"):
			w.Write([]byte(`{"records":[{"Id":"003XX0001","LastName":"Soto"}]}`))
		case strings.Contains(soql, "FROM Opportunity"):
			w.Write([]byte(`{"records":[{"Id":"006XX0001","StageName":"Prospecting"}]}`))
		case strings.Contains(soql, "FROM Task"):
			w.Write([]byte(`{"records":[{"Id":"00TXX0001","Subject":"llamada","TaskSubtype":"Call"}]}`))
		default:
			t.Errorf("unexpected soql %q", soql)
			w.Write([]byte(`{"records":[]}`))
		}
	})

	changes, err := adapter.GetRecentChanges(context.Background(), since)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(changes.Debtors) != 1 || len(changes.Debts) != 1 || len(changes.Activities) != 1 {
		t.Fatalf("unexpected changes: %+v", changes)
	}
	if changes.Activities[0].Type != entities.ActivityCall {
		t.Fatalf("unexpected activity mapping: %+v", changes.Activities[0])
	}
	for _, soql := range queries {
		// SOQL datetime literals are unquoted.
		if !strings.Contains(soql, "LastModifiedDate >= 2026-03-10T12:00:00Z") {
			t.Fatalf("expected unquoted cutoff in %q", soql)
		}
	}
}

func TestSOQLEscape(t *testing.T) {
	if got := soqlEscape("o'brien@test.cl"); got != `o\'brien@test.cl` {
		t.Fatalf("unexpected escape: %q", got)
	}
}
