package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	streamOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "stream",
		Name:      "operations_total",
		Help:      "Count of websocket dial and subscribe operations.",
	}, []string{"operation", "status"})
	streamOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "stream",
		Name:      "operation_duration_seconds",
		Help:      "Duration of websocket dial and subscribe operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
	streamNotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "stream",
		Name:      "notifications_total",
		Help:      "Count of notifications received per channel.",
	}, []string{"channel"})
	streamReconnectsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "stream",
		Name:      "reconnects_total",
		Help:      "Count of scheduled reconnects.",
	})
	streamReconnectDelay = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "stream",
		Name:      "reconnect_delay_seconds",
		Help:      "Delay before each scheduled reconnect.",
		Buckets:   []float64{1, 5, 10, 20, 40, 60, 120},
	})
	streamConnected = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "stream",
		Name:      "connected",
		Help:      "1 while the websocket handshake is complete.",
	})
)

// Stream tracks metrics for the node event stream.
type Stream struct{}

func NewStream() *Stream {
	return &Stream{}
}

// Observe records a dial or subscribe outcome and duration.
func (Stream) Observe(operation string, err error, started time.Time) {
	status := statusLabel(err)
	streamOperationsTotal.WithLabelValues(operation, status).Inc()
	streamOperationDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}

func (Stream) ObserveNotification(channel string) {
	streamNotificationsTotal.WithLabelValues(channel).Inc()
}

func (Stream) ObserveReconnect(delay time.Duration) {
	streamReconnectsTotal.Inc()
	streamReconnectDelay.Observe(delay.Seconds())
}

func (Stream) SetConnected(connected bool) {
	if connected {
		streamConnected.Set(1)
		return
	}
	streamConnected.Set(0)
}
