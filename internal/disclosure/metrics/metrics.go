package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for the disclosure pipeline.
type Metrics struct {
	MessagesProcessed  *prometheus.CounterVec
	ProcessingDuration *prometheus.HistogramVec
	NotificationsSent  prometheus.Counter
}

// New creates and registers the pipeline metrics.
func New() *Metrics {
	return &Metrics{
		MessagesProcessed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "credit_lines_messages_processed_total",
			Help: "Inbound credit-line messages by type and outcome.",
		}, []string{"message_type", "outcome"}),
		ProcessingDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "credit_lines_processing_duration_seconds",
			Help:    "Time spent reconciling one inbound message.",
			Buckets: prometheus.DefBuckets,
		}, []string{"message_type"}),
		NotificationsSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "credit_lines_notifications_sent_total",
			Help: "Outbound notifications handed to the sender.",
		}),
	}
}

// RecordMessage tracks one processed message. Nil-safe so components can run
// without metrics in tests.
func (m *Metrics) RecordMessage(messageType, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.MessagesProcessed.WithLabelValues(messageType, outcome).Inc()
	m.ProcessingDuration.WithLabelValues(messageType).Observe(elapsed.Seconds())
}

// RecordNotification tracks one outbound notification. Nil-safe.
func (m *Metrics) RecordNotification() {
	if m == nil {
		return
	}
	m.NotificationsSent.Inc()
}
