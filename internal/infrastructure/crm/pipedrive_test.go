package crm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nexupay/internal/domain/entities"
)

func newPipedriveServer(t *testing.T, handler http.HandlerFunc) *PipedriveAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewPipedriveAdapter(PipedriveConfig{APIToken: "pd-token", BaseURL: srv.URL}, nil)
}

func TestPipedriveAdapter_SyncContact(t *testing.T) {
	ctx := context.Background()

	t.Run("auth travels as a query parameter", func(t *testing.T) {
		adapter := newPipedriveServer(t, func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("api_token"); got != "pd-token" {
				t.Errorf("expected api_token query param, got %q", got)
			}
			switch {
			case r.URL.Path == "/persons/search":
				if r.URL.Query().Get("exact_match") != "true" {
					t.Errorf("expected exact_match search, got %q", r.URL.RawQuery)
				}
				w.Write([]byte(`{"success":true,"data":{"items":[]}}`))
			case r.Method == http.MethodPost && r.URL.Path == "/persons":
				var fields map[string]interface{}
				json.NewDecoder(r.Body).Decode(&fields)
				if fields["name"] != "Maria Soto" {
					t.Errorf("unexpected name %v", fields["name"])
				}
				w.Write([]byte(`{"success":true,"data":{"id":101,"name":"Maria Soto"}}`))
			default:
				t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
				w.WriteHeader(http.StatusNotFound)
			}
		})

		res := adapter.SyncContact(ctx, entities.Contact{FirstName: "Maria", LastName: "Soto", Email: "maria@test.cl"})
		if !res.Success || res.Action != entities.SyncActionCreated {
			t.Fatalf("unexpected result: %+v", res)
		}
		// Numeric vendor ids come back as strings.
		if res.ContactID != "101" {
			t.Fatalf("unexpected contact id: %q", res.ContactID)
		}
	})

	t.Run("envelope failure settles even on http 200", func(t *testing.T) {
		adapter := newPipedriveServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":false,"error":"API token is invalid"}`))
		})

		res := adapter.SyncContact(ctx, entities.Contact{LastName: "Soto", Email: "maria@test.cl"})
		if res.Success || res.Error == "" {
			t.Fatalf("expected settled envelope failure, got %+v", res)
		}
	})
}

func TestPipedriveAdapter_GetContact(t *testing.T) {
	t.Run("404 is nil without error", func(t *testing.T) {
		adapter := newPipedriveServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success":false,"error":"Person not found"}`))
		})
		contact, err := adapter.GetContact(context.Background(), "404")
		if err != nil || contact != nil {
			t.Fatalf("expected nil,nil, got %+v err=%v", contact, err)
		}
	})

	t.Run("multi-value email resolves to the primary entry", func(t *testing.T) {
		adapter := newPipedriveServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":true,"data":{"id":101,"name":"Maria Soto","email":[{"value":"old@test.cl","primary":false},{"value":"maria@test.cl","primary":true}]}}`))
		})
		contact, err := adapter.GetContact(context.Background(), "101")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if contact.Email != "maria@test.cl" {
			t.Fatalf("expected primary email, got %q", contact.Email)
		}
		if contact.FirstName != "Maria" || contact.LastName != "Soto" {
			t.Fatalf("expected split name, got %+v", contact)
		}
	})
}

func TestPipedriveAdapter_ImportDebts(t *testing.T) {
	adapter := newPipedriveServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/deals" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		// negotiating collapses into open on this vendor.
		if got := r.URL.Query().Get("status"); got != "open" {
			t.Errorf("expected native status open, got %q", got)
		}
		w.Write([]byte(`{"success":true,"data":[{"id":55,"title":"Credito","value":150000,"status":"open","person_id":{"id":101}}]}`))
	})

	debts, err := adapter.ImportDebts(context.Background(), entities.DebtFilters{Status: entities.DebtStatusNegotiating})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(debts) != 1 {
		t.Fatalf("expected 1 debt, got %d", len(debts))
	}
	// The reverse mapping resolves open to active; negotiating is lossy here.
	if debts[0].Status != entities.DebtStatusActive || debts[0].ContactID != "101" {
		t.Fatalf("unexpected debt: %+v", debts[0])
	}
}

func TestPipedriveAdapter_LogActivity(t *testing.T) {
	adapter := newPipedriveServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/activities" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var fields map[string]interface{}
		json.NewDecoder(r.Body).Decode(&fields)
		if fields["type"] != "call" || fields["done"] != float64(1) {
			t.Errorf("unexpected fields: %+v", fields)
		}
		w.Write([]byte(`{"success":true,"data":{"id":900}}`))
	})

	res := adapter.LogActivity(context.Background(), entities.Activity{
		ContactID: "101", Subject: "llamada de cobranza", Type: entities.ActivityCall, Date: time.Now(),
	})
	if !res.Success || res.ID != "900" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestPipedriveAdapter_GetRecentChanges(t *testing.T) {
	since := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	adapter := newPipedriveServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/recents" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("since_timestamp"); got != "2026-03-10 12:00:00" {
			t.Errorf("unexpected since_timestamp %q", got)
		}
		w.Write([]byte(`{"success":true,"data":[
			{"item":"person","data":{"id":101,"name":"Maria Soto"}},
			{"item":"deal","data":{"id":55,"title":"Credito","status":"won"}},
			{"item":"activity","data":{"id":900,"subject":"llamada","type":"call"}},
			{"item":"note","data":{"id":1}}
		]}`))
	})

	changes, err := adapter.GetRecentChanges(context.Background(), since)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(changes.Debtors) != 1 || len(changes.Debts) != 1 || len(changes.Activities) != 1 {
		t.Fatalf("unexpected changes: %+v", changes)
	}
	if changes.Debts[0].Status != entities.DebtStatusPaid {
		t.Fatalf("unexpected debt status: %+v", changes.Debts[0])
	}
}

func TestPipedrivePrimaryValue(t *testing.T) {
	t.Run("flat string form", func(t *testing.T) {
		rec := map[string]interface{}{"email": "maria@test.cl"}
		if got := pipedrivePrimaryValue(rec, "email"); got != "maria@test.cl" {
			t.Fatalf("unexpected value %q", got)
		}
	})

	t.Run("no primary falls back to first entry", func(t *testing.T) {
		rec := map[string]interface{}{
			"email": []interface{}{
				map[string]interface{}{"value": "first@test.cl", "primary": false},
				map[string]interface{}{"value": "second@test.cl", "primary": false},
			},
		}
		if got := pipedrivePrimaryValue(rec, "email"); got != "first@test.cl" {
			t.Fatalf("unexpected value %q", got)
		}
	})

	t.Run("missing field is empty", func(t *testing.T) {
		if got := pipedrivePrimaryValue(map[string]interface{}{}, "email"); got != "" {
			t.Fatalf("unexpected value %q", got)
		}
	})
}
