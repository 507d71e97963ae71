package crm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"nexupay/internal/domain/entities"
)

func TestRESTClientDo(t *testing.T) {
	ctx := context.Background()

	t.Run("success carries the raw body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Accept") != "application/json" {
				t.Errorf("missing accept header")
			}
			if r.Header.Get("X-Custom") != "yes" {
				t.Errorf("missing custom header")
			}
			if r.URL.Query().Get("limit") != "5" {
				t.Errorf("missing merged query param, got %q", r.URL.RawQuery)
			}
			w.Write([]byte(`{"id":"rec-1"}`))
		}))
		defer srv.Close()

		c := newRESTClient(entities.CRMHubSpot, 0, nil)
		params := url.Values{}
		params.Set("limit", "5")
		res := c.do(ctx, http.MethodGet, srv.URL+"/things", map[string]string{"X-Custom": "yes"}, params, nil)

		if !res.Success || res.StatusCode != http.StatusOK {
			t.Fatalf("unexpected result: %+v", res)
		}
		if string(res.Data) != `{"id":"rec-1"}` {
			t.Fatalf("unexpected body: %s", res.Data)
		}
	})

	t.Run("payload is sent as json", func(t *testing.T) {
		var gotContentType atomic.Value
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotContentType.Store(r.Header.Get("Content-Type"))
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":"rec-2"}`))
		}))
		defer srv.Close()

		c := newRESTClient(entities.CRMZoho, 0, nil)
		res := c.do(ctx, http.MethodPost, srv.URL+"/things", nil, nil, map[string]string{"name": "x"})

		if !res.Success || res.StatusCode != http.StatusCreated {
			t.Fatalf("unexpected result: %+v", res)
		}
		if gotContentType.Load() != "application/json" {
			t.Fatalf("expected json content type, got %v", gotContentType.Load())
		}
	})

	t.Run("non-2xx preserves the vendor error body without a go error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"message":"rate limited"}`))
		}))
		defer srv.Close()

		c := newRESTClient(entities.CRMSalesforce, 0, nil)
		res := c.do(ctx, http.MethodGet, srv.URL+"/things", nil, nil, nil)

		if res.Success {
			t.Fatalf("expected failure, got %+v", res)
		}
		if res.StatusCode != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", res.StatusCode)
		}
		if string(res.Data) != `{"message":"rate limited"}` {
			t.Fatalf("expected raw vendor body preserved, got %s", res.Data)
		}
		if res.Error == "" {
			t.Fatal("expected an error message")
		}
	})

	t.Run("transport failure settles in the result", func(t *testing.T) {
		c := newRESTClient(entities.CRMUpnify, 0, nil)
		res := c.do(ctx, http.MethodGet, "http://127.0.0.1:1/unreachable", nil, nil, nil)

		if res.Success || res.Error == "" {
			t.Fatalf("expected settled transport failure, got %+v", res)
		}
	})
}

func TestSyncContactsConcurrently(t *testing.T) {
	contacts := []entities.Contact{
		{Email: "a@test.cl"},
		{Email: "fail@test.cl"},
		{Email: "c@test.cl"},
	}

	var calls int32
	syncFn := func(_ context.Context, c entities.Contact) entities.ContactSyncResult {
		atomic.AddInt32(&calls, 1)
		if c.Email == "fail@test.cl" {
			return syncFailure("vendor rejected")
		}
		return entities.ContactSyncResult{Success: true, Action: entities.SyncActionCreated, ContactID: c.Email}
	}

	res := syncContactsConcurrently(context.Background(), contacts, syncFn)

	if calls != 3 {
		t.Fatalf("expected every contact attempted, got %d calls", calls)
	}
	if res.Total != 3 || res.Successful != 2 || res.Failed != 1 {
		t.Fatalf("unexpected counts: %+v", res)
	}
	// Outcomes land in their input slots regardless of completion order.
	if res.Results[0].ContactID != "a@test.cl" || res.Results[2].ContactID != "c@test.cl" {
		t.Fatalf("results out of order: %+v", res.Results)
	}
	if res.Results[1].Success || res.Results[1].Error != "vendor rejected" {
		t.Fatalf("expected failure in slot 1: %+v", res.Results[1])
	}
}

func TestSyncContactsConcurrentlyEmpty(t *testing.T) {
	res := syncContactsConcurrently(context.Background(), nil, func(context.Context, entities.Contact) entities.ContactSyncResult {
		return entities.ContactSyncResult{}
	})
	if res.Total != 0 || len(res.Results) != 0 {
		t.Fatalf("unexpected result for empty batch: %+v", res)
	}
}
