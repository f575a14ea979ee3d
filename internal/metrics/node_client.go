package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	nodeClientRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "node_client",
		Name:      "operations_total",
		Help:      "Count of node REST operations.",
	}, []string{"operation", "network", "status"})
	nodeClientRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "node_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of node REST operations including retries.",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 30, 60},
	}, []string{"operation", "network", "status"})
	nodeClientRetriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "node_client",
		Name:      "retries_total",
		Help:      "Count of retried node REST attempts.",
	}, []string{"network"})
)

// NodeClient tracks metrics for REST calls to a Symbol node.
type NodeClient struct {
	network string
}

// NewNodeClient constructs a metrics collector for REST calls.
func NewNodeClient(network string) *NodeClient {
	return &NodeClient{network: orUnknown(network)}
}

// Observe records a single REST call outcome and duration.
func (m NodeClient) Observe(operation string, err error, started time.Time) {
	status := statusLabel(err)
	nodeClientRequestsTotal.WithLabelValues(operation, m.network, status).Inc()
	nodeClientRequestDuration.WithLabelValues(operation, m.network, status).Observe(time.Since(started).Seconds())
}

// ObserveRetry counts a retried attempt. Its signature matches network.RetryObserver.
func (m NodeClient) ObserveRetry(_ int, _ error, _ time.Duration) {
	nodeClientRetriesTotal.WithLabelValues(m.network).Inc()
}
