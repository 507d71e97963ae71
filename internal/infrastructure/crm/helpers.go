package crm

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"nexupay/internal/domain/entities"
)

// getString reads a string field from a vendor-native record, tolerating
// absent keys and nulls.
func getString(m map[string]interface{}, key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", s)
	}
}

// getFloat reads a numeric field; vendors are split between JSON numbers and
// stringified numbers, so both are accepted.
func getFloat(m map[string]interface{}, key string) float64 {
	v, ok := m[key]
	if !ok || v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case string:
		f, _ := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f
	default:
		return 0
	}
}

// parseVendorTime tries the timestamp layouts seen across the five vendors.
func parseVendorTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05.000-0700",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// paymentActivity formats a payment log into the activity every vendor
// receives. Keeping the wording here means all five mirrors read the same.
func paymentActivity(p entities.PaymentLog) entities.Activity {
	subject := fmt.Sprintf("Pago recibido: $%.0f", p.Amount)
	desc := fmt.Sprintf("Pago de $%.0f registrado via NexuPay.", p.Amount)
	if p.Method != "" {
		desc += fmt.Sprintf(" Metodo: %s.", p.Method)
	}
	if p.Reference != "" {
		desc += fmt.Sprintf(" Referencia: %s.", p.Reference)
	}
	if p.DebtID != "" {
		desc += fmt.Sprintf(" Deuda: %s.", p.DebtID)
	}
	date := p.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}
	return entities.Activity{
		ContactID:   p.ContactID,
		Subject:     subject,
		Description: desc,
		Type:        entities.ActivityPayment,
		Date:        date,
	}
}

// splitName breaks a display name into first/last on the first space.
func splitName(name string) (string, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ""
	}
	parts := strings.SplitN(name, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func notConfiguredMessage(vendor entities.CRMType) string {
	return fmt.Sprintf("%s is not configured", vendor)
}

func syncFailure(err string) entities.ContactSyncResult {
	return entities.ContactSyncResult{Success: false, Error: err}
}

func writeFailure(err string) entities.WriteResult {
	return entities.WriteResult{Success: false, Error: err}
}
