package crm

import (
	"testing"

	"nexupay/internal/domain/entities"
)

func TestDebtStatusMappingRoundTrip(t *testing.T) {
	vendors := []struct {
		name          string
		stageByStatus map[entities.DebtStatus]string
		statusByStage map[string]entities.DebtStatus
	}{
		{"salesforce", salesforceStageByStatus, salesforceStatusByStage},
		{"hubspot", hubspotStageByStatus, hubspotStatusByStage},
		{"zoho", zohoStageByStatus, zohoStatusByStage},
		{"pipedrive", pipedriveStatusByDebtStatus, pipedriveDebtStatusByStatus},
		{"upnify", upnifyPhaseByStatus, upnifyStatusByPhase},
	}

	stable := []entities.DebtStatus{
		entities.DebtStatusActive,
		entities.DebtStatusPaid,
		entities.DebtStatusCancelled,
	}

	for _, vendor := range vendors {
		t.Run(vendor.name, func(t *testing.T) {
			for _, status := range stable {
				native, ok := vendor.stageByStatus[status]
				if !ok {
					t.Fatalf("no native stage for %s", status)
				}
				if got := vendor.statusByStage[native]; got != status {
					t.Fatalf("%s -> %q -> %s, want identity", status, native, got)
				}
			}
		})
	}

	// Pipedrive deals only know open/won/lost, so negotiating collapses to
	// open and reads back as active. Every other vendor round-trips it.
	t.Run("negotiating", func(t *testing.T) {
		for _, vendor := range vendors {
			native, ok := vendor.stageByStatus[entities.DebtStatusNegotiating]
			if !ok {
				t.Fatalf("%s has no native stage for negotiating", vendor.name)
			}
			got := vendor.statusByStage[native]
			if vendor.name == "pipedrive" {
				if native != "open" || got != entities.DebtStatusActive {
					t.Fatalf("pipedrive negotiating -> %q -> %s, want open -> active", native, got)
				}
				continue
			}
			if got != entities.DebtStatusNegotiating {
				t.Fatalf("%s negotiating -> %q -> %s, want identity", vendor.name, native, got)
			}
		}
	})
}
