package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"nexupay/internal/domain/entities"
)

func TestFromDebt(t *testing.T) {
	t.Run("zero due date is omitted from json", func(t *testing.T) {
		resp := FromDebt(entities.Debt{ID: "debt-1", Status: entities.DebtStatusActive})
		if resp.DueDate != nil {
			t.Fatalf("expected nil due date, got %v", resp.DueDate)
		}
		raw, err := json.Marshal(resp)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if strings.Contains(string(raw), "due_date") {
			t.Fatalf("expected due_date omitted: %s", raw)
		}
	})

	t.Run("set due date survives", func(t *testing.T) {
		due := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
		resp := FromDebt(entities.Debt{ID: "debt-1", DueDate: due})
		if resp.DueDate == nil || !resp.DueDate.Equal(due) {
			t.Fatalf("unexpected due date: %v", resp.DueDate)
		}
	})

	t.Run("fields map through", func(t *testing.T) {
		resp := FromDebt(entities.Debt{
			ID: "debt-1", DebtorID: "d-1", CRMID: "opp-9", CRMType: entities.CRMSalesforce,
			Amount: 150000, RemainingAmount: 30000, Status: entities.DebtStatusNegotiating,
		})
		if resp.CRMType != "salesforce" || resp.Status != "negotiating" || resp.RemainingAmount != 30000 {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})
}

func TestFromDebts(t *testing.T) {
	out := FromDebts([]entities.Debt{{ID: "a"}, {ID: "b"}})
	if len(out) != 2 || out[0].ID != "a" || out[1].ID != "b" {
		t.Fatalf("unexpected output: %+v", out)
	}
	if FromDebts(nil) == nil {
		t.Fatal("expected empty slice for nil input")
	}
}
