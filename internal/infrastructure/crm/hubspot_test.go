package crm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"nexupay/internal/domain/entities"
)

func newHubSpotServer(t *testing.T, handler http.HandlerFunc) *HubSpotAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHubSpotAdapter(HubSpotConfig{AccessToken: "hs-token", BaseURL: srv.URL}, nil)
}

func TestHubSpotAdapter_SyncContact(t *testing.T) {
	ctx := context.Background()

	t.Run("create when search is empty", func(t *testing.T) {
		adapter := newHubSpotServer(t, func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("Authorization"); got != "Bearer hs-token" {
				t.Errorf("unexpected auth header %q", got)
			}
			switch {
			case r.Method == http.MethodPost && r.URL.Path == "/crm/v3/objects/contacts/search":
				var body map[string]interface{}
				json.NewDecoder(r.Body).Decode(&body)
				groups, _ := body["filterGroups"].([]interface{})
				if len(groups) != 1 {
					t.Errorf("expected one filter group, got %+v", body)
				}
				w.Write([]byte(`{"results":[]}`))
			case r.Method == http.MethodPost && r.URL.Path == "/crm/v3/objects/contacts":
				var body struct {
					Properties map[string]interface{} `json:"properties"`
				}
				json.NewDecoder(r.Body).Decode(&body)
				// HubSpot custom number properties travel as strings.
				if body.Properties["total_debt"] != "150000" {
					t.Errorf("unexpected total_debt %v", body.Properties["total_debt"])
				}
				w.WriteHeader(http.StatusCreated)
				w.Write([]byte(`{"id":"hs-1"}`))
			default:
				t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
				w.WriteHeader(http.StatusNotFound)
			}
		})

		res := adapter.SyncContact(ctx, entities.Contact{LastName: "Soto", Email: "maria@test.cl", TotalDebt: 150000})
		if !res.Success || res.Action != entities.SyncActionCreated || res.ContactID != "hs-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("update when search matches", func(t *testing.T) {
		adapter := newHubSpotServer(t, func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.URL.Path == "/crm/v3/objects/contacts/search":
				w.Write([]byte(`{"results":[{"id":"hs-2","properties":{"email":"maria@test.cl"}}]}`))
			case r.Method == http.MethodPatch && r.URL.Path == "/crm/v3/objects/contacts/hs-2":
				w.Write([]byte(`{"id":"hs-2"}`))
			default:
				t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
				w.WriteHeader(http.StatusNotFound)
			}
		})

		res := adapter.SyncContact(ctx, entities.Contact{LastName: "Soto", Email: "maria@test.cl"})
		if !res.Success || res.Action != entities.SyncActionUpdated || res.ContactID != "hs-2" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestHubSpotAdapter_GetContact(t *testing.T) {
	t.Run("404 is nil without error", func(t *testing.T) {
		adapter := newHubSpotServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		contact, err := adapter.GetContact(context.Background(), "hs-404")
		if err != nil || contact != nil {
			t.Fatalf("expected nil,nil, got %+v err=%v", contact, err)
		}
	})

	t.Run("properties are unwrapped", func(t *testing.T) {
		adapter := newHubSpotServer(t, func(w http.ResponseWriter, r *http.Request) {
			if !strings.Contains(r.URL.RawQuery, "properties=") {
				t.Errorf("expected properties in query, got %q", r.URL.RawQuery)
			}
			w.Write([]byte(`{"id":"hs-1","properties":{"firstname":"Maria","lastname":"Soto","email":"maria@test.cl","total_debt":"150000"}}`))
		})
		contact, err := adapter.GetContact(context.Background(), "hs-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if contact.CRMID != "hs-1" || contact.LastName != "Soto" || contact.TotalDebt != 150000 {
			t.Fatalf("unexpected contact: %+v", contact)
		}
	})
}

func TestHubSpotAdapter_ImportDebts(t *testing.T) {
	adapter := newHubSpotServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/crm/v3/objects/deals" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"results":[
			{"id":"deal-1","properties":{"dealname":"Credito","amount":"150000","dealstage":"closedwon"},"associations":{"contacts":{"results":[{"id":"hs-1"}]}}},
			{"id":"deal-2","properties":{"dealname":"Tarjeta","amount":"80000","dealstage":"appointmentscheduled"}}
		]}`))
	})

	debts, err := adapter.ImportDebts(context.Background(), entities.DebtFilters{Status: entities.DebtStatusPaid})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Client-side status filtering drops the open deal.
	if len(debts) != 1 {
		t.Fatalf("expected 1 debt after filtering, got %d", len(debts))
	}
	if debts[0].Status != entities.DebtStatusPaid || debts[0].ContactID != "hs-1" {
		t.Fatalf("unexpected debt: %+v", debts[0])
	}
}

func TestHubSpotAdapter_UpdateDebtStatus(t *testing.T) {
	adapter := newHubSpotServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/crm/v3/objects/deals/deal-1" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body struct {
			Properties map[string]interface{} `json:"properties"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if body.Properties["dealstage"] != "closedwon" {
			t.Errorf("unexpected stage %v", body.Properties["dealstage"])
		}
		w.Write([]byte(`{"id":"deal-1"}`))
	})

	res := adapter.UpdateDebtStatus(context.Background(), "deal-1", entities.DebtStatusUpdate{
		Status: entities.DebtStatusPaid, LastPaymentDate: time.Now(),
	})
	if !res.Success || res.ID != "deal-1" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestHubSpotAdapter_GetRecentChanges(t *testing.T) {
	since := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	wantCutoff := strconv.FormatInt(since.UnixMilli(), 10)

	adapter := newHubSpotServer(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		raw, _ := json.Marshal(body)
		if !strings.Contains(string(raw), wantCutoff) {
			t.Errorf("expected epoch-ms cutoff %s in search body %s", wantCutoff, raw)
		}
		switch r.URL.Path {
		case "/crm/v3/objects/contacts/search":
			w.Write([]byte(`{"results":[{"id":"hs-1","properties":{"lastname":"Soto"}}]}`))
		case "/crm/v3/objects/deals/search":
			w.Write([]byte(`{"results":[]}`))
		case "/crm/v3/objects/tasks/search":
			w.Write([]byte(`{"results":[{"id":"task-1","properties":{"hs_task_subject":"llamada","hs_task_type":"CALL"}}]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.Write([]byte(`{"results":[]}`))
		}
	})

	changes, err := adapter.GetRecentChanges(context.Background(), since)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(changes.Debtors) != 1 || len(changes.Debts) != 0 || len(changes.Activities) != 1 {
		t.Fatalf("unexpected changes: %+v", changes)
	}
	if changes.Activities[0].Type != entities.ActivityCall {
		t.Fatalf("unexpected activity type: %+v", changes.Activities[0])
	}
}
