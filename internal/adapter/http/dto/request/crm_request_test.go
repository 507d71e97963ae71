package request

import (
	"errors"
	"testing"
	"time"

	"nexupay/internal/domain/entities"
)

func TestIncrementalSyncRequestResolveSince(t *testing.T) {
	t.Run("rfc3339", func(t *testing.T) {
		since, err := IncrementalSyncRequest{Since: "2026-03-10T12:00:00Z"}.ResolveSince()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !since.Equal(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected since: %s", since)
		}
	})

	t.Run("date only", func(t *testing.T) {
		since, err := IncrementalSyncRequest{Since: "2026-03-10"}.ResolveSince()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !since.Equal(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected since: %s", since)
		}
	})

	t.Run("unparseable", func(t *testing.T) {
		if _, err := (IncrementalSyncRequest{Since: "yesterday"}).ResolveSince(); !errors.Is(err, ErrInvalidSince) {
			t.Fatalf("expected ErrInvalidSince, got %v", err)
		}
	})
}

func TestCRMContactRequestToEntity(t *testing.T) {
	contact := CRMContactRequest{
		ID: "d-1", FirstName: "Maria", LastName: "Soto", Email: "maria@test.cl", TotalDebt: 150000,
	}.ToEntity()

	if contact.PlatformUserID != "d-1" {
		t.Fatalf("expected platform user id mirrored from id, got %+v", contact)
	}
	if contact.LastName != "Soto" || contact.TotalDebt != 150000 {
		t.Fatalf("unexpected contact: %+v", contact)
	}
}

func TestContactBatchSyncRequestToEntities(t *testing.T) {
	batch := ContactBatchSyncRequest{Contacts: []CRMContactRequest{
		{LastName: "Soto", Email: "a@test.cl"},
		{LastName: "Rojas", Email: "b@test.cl"},
	}}
	contacts := batch.ToEntities()
	if len(contacts) != 2 || contacts[1].LastName != "Rojas" {
		t.Fatalf("unexpected entities: %+v", contacts)
	}
}

func TestAgreementRequestToEntity(t *testing.T) {
	t.Run("close date parsed", func(t *testing.T) {
		agreement, err := AgreementRequest{
			ContactID: "hs-1", Name: "Convenio", TotalAmount: 90000, Installments: 3,
			ExpectedCloseDate: "2026-06-30",
		}.ToEntity()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if agreement.ExpectedCloseDate.IsZero() || agreement.Installments != 3 {
			t.Fatalf("unexpected agreement: %+v", agreement)
		}
	})

	t.Run("missing close date is allowed", func(t *testing.T) {
		agreement, err := AgreementRequest{ContactID: "hs-1", TotalAmount: 90000}.ToEntity()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !agreement.ExpectedCloseDate.IsZero() {
			t.Fatalf("expected zero close date, got %+v", agreement)
		}
	})

	t.Run("invalid close date", func(t *testing.T) {
		if _, err := (AgreementRequest{ContactID: "hs-1", TotalAmount: 90000, ExpectedCloseDate: "soon"}).ToEntity(); !errors.Is(err, ErrInvalidExpectedCloseDate) {
			t.Fatalf("expected ErrInvalidExpectedCloseDate, got %v", err)
		}
	})
}

func TestActivityRequestToEntity(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		activity, err := ActivityRequest{ContactID: "hs-1", Subject: "llamada"}.ToEntity()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if activity.Type != entities.ActivityOther {
			t.Fatalf("expected default type, got %+v", activity)
		}
		if activity.Date.IsZero() {
			t.Fatal("expected a default date")
		}
	})

	t.Run("explicit type and date", func(t *testing.T) {
		activity, err := ActivityRequest{
			ContactID: "hs-1", Subject: "llamada", Type: "call", Date: "2026-03-10T12:00:00Z",
		}.ToEntity()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if activity.Type != entities.ActivityCall || !activity.Date.Equal(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected activity: %+v", activity)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		if _, err := (ActivityRequest{ContactID: "hs-1", Subject: "llamada", Date: "mañana"}).ToEntity(); !errors.Is(err, ErrInvalidActivityDate) {
			t.Fatalf("expected ErrInvalidActivityDate, got %v", err)
		}
	})
}

func TestDebtRequestToEntity(t *testing.T) {
	t.Run("due date layouts", func(t *testing.T) {
		for _, input := range []string{"2026-09-30", "2026-09-30T00:00:00Z"} {
			debt, err := DebtRequest{DebtorID: "d-1", Amount: 1000, DueDate: input}.ToEntity()
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", input, err)
			}
			if debt.DueDate.IsZero() {
				t.Fatalf("expected parsed due date for %q", input)
			}
		}
	})

	t.Run("invalid due date", func(t *testing.T) {
		if _, err := (DebtRequest{DebtorID: "d-1", Amount: 1000, DueDate: "30/09/2026"}).ToEntity(); !errors.Is(err, ErrInvalidDueDate) {
			t.Fatalf("expected ErrInvalidDueDate, got %v", err)
		}
	})

	t.Run("status passes through", func(t *testing.T) {
		debt, err := DebtRequest{DebtorID: "d-1", Amount: 1000, Status: "negotiating"}.ToEntity()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if debt.Status != entities.DebtStatusNegotiating {
			t.Fatalf("unexpected status: %+v", debt)
		}
	})
}

func TestPaymentNotificationRequest(t *testing.T) {
	t.Run("body id wins over query", func(t *testing.T) {
		req := PaymentNotificationRequest{Type: "payment"}
		req.Data.ID = "mp-1001"
		if got := req.ResolvePaymentID("mp-query"); got != "mp-1001" {
			t.Fatalf("expected body id, got %q", got)
		}
	})

	t.Run("query id fallback", func(t *testing.T) {
		req := PaymentNotificationRequest{}
		if got := req.ResolvePaymentID("mp-query"); got != "mp-query" {
			t.Fatalf("expected query id, got %q", got)
		}
	})

	t.Run("event classification", func(t *testing.T) {
		if !(PaymentNotificationRequest{}).IsPaymentEvent("") {
			t.Fatal("empty type should count as a payment event")
		}
		if !(PaymentNotificationRequest{Type: "payment"}).IsPaymentEvent("") {
			t.Fatal("payment type should count as a payment event")
		}
		if (PaymentNotificationRequest{Type: "plan"}).IsPaymentEvent("") {
			t.Fatal("plan type should not count as a payment event")
		}
		if (PaymentNotificationRequest{}).IsPaymentEvent("plan") {
			t.Fatal("plan query type should not count as a payment event")
		}
	})
}
