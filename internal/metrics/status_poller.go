package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	statusPollerOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "status_poller",
		Name:      "operations_total",
		Help:      "Count of transaction status lookups and polls.",
	}, []string{"operation", "status"})
	statusPollerOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "status_poller",
		Name:      "operation_duration_seconds",
		Help:      "Duration of transaction status lookups and polls.",
		Buckets:   []float64{.05, .1, .5, 1, 5, 15, 30, 60, 120, 180, 300},
	}, []string{"operation", "status"})
)

// StatusPoller tracks metrics for transaction status polling.
type StatusPoller struct{}

func NewStatusPoller() *StatusPoller {
	return &StatusPoller{}
}

// Observe records a status lookup or a whole poll. A poll that ends without
// confirmation is reported as an error.
func (StatusPoller) Observe(operation string, err error, started time.Time) {
	status := statusLabel(err)
	statusPollerOperationsTotal.WithLabelValues(operation, status).Inc()
	statusPollerOperationDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
