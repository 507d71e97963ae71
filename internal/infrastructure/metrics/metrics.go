package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics stores Prometheus collectors used across the service.
type Metrics struct {
	CRMRequests    *prometheus.CounterVec
	CRMLatency     *prometheus.HistogramVec
	ContactSyncs   *prometheus.CounterVec
	WebhookEvents  *prometheus.CounterVec
	SyncOperations *prometheus.CounterVec
}

var (
	regOnce         sync.Once
	metricsInstance *Metrics
)

// Registry builds and registers the metrics singleton with optional namespace.
func Registry(namespace string) *Metrics {
	regOnce.Do(func() {
		metricsInstance = &Metrics{
			CRMRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "crm_requests_total",
				Help:      "Total CRM vendor API requests by vendor and outcome.",
			}, []string{"vendor", "status"}),
			CRMLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "crm_request_duration_seconds",
				Help:      "Latency distribution for CRM vendor API requests.",
				Buckets:   prometheus.DefBuckets,
			}, []string{"vendor", "status"}),
			ContactSyncs: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "crm_contact_syncs_total",
				Help:      "Total contact sync settlements by vendor, action and outcome.",
			}, []string{"vendor", "action", "status"}),
			WebhookEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "payment_webhook_events_total",
				Help:      "Total payment provider notifications by outcome.",
			}, []string{"outcome"}),
			SyncOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "crm_sync_operations_total",
				Help:      "Total full/incremental sync runs by kind and outcome.",
			}, []string{"kind", "status"}),
		}

		prometheus.MustRegister(
			metricsInstance.CRMRequests,
			metricsInstance.CRMLatency,
			metricsInstance.ContactSyncs,
			metricsInstance.WebhookEvents,
			metricsInstance.SyncOperations,
		)
	})
	return metricsInstance
}
