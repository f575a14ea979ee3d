package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	monitorRefreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "monitor",
		Name:      "fallback_refresh_total",
		Help:      "Count of fallback partial transaction refreshes.",
	}, []string{"network", "status"})

	monitorRefreshDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "monitor",
		Name:      "fallback_refresh_duration_seconds",
		Help:      "Duration of a fallback refresh across all watched addresses.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	monitorRefreshAddresses = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "monitor",
		Name:      "fallback_refresh_addresses",
		Help:      "Number of addresses polled per fallback refresh.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"network"})

	monitorFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "monitor",
		Name:      "journal_flush_total",
		Help:      "Count of notification batches written to the journal.",
	}, []string{"network", "status"})

	monitorFlushSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "monitor",
		Name:      "journal_flush_size",
		Help:      "Number of notifications per journal batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"network"})

	monitorJournalDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "monitor",
		Name:      "journal_dropped_total",
		Help:      "Count of notifications dropped because the journal queue was full.",
	}, []string{"network", "channel"})

	monitorPartialsDiscovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "monitor",
		Name:      "partials_discovered_total",
		Help:      "Count of partial transactions first seen, by source.",
	}, []string{"network", "source"})
)

// Monitor tracks metrics for the monitor daemon.
type Monitor struct {
	network string
}

// NewMonitor constructs a Monitor with defaults.
func NewMonitor(network string) *Monitor {
	return &Monitor{network: orUnknown(network)}
}

// ObserveRefresh records one fallback refresh over addresses.
func (m Monitor) ObserveRefresh(err error, addresses int, started time.Time) {
	status := statusLabel(err)
	monitorRefreshTotal.WithLabelValues(m.network, status).Inc()
	monitorRefreshDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
	monitorRefreshAddresses.WithLabelValues(m.network).Observe(float64(addresses))
}

// ObserveFlush records a journal batch write.
func (m Monitor) ObserveFlush(err error, size int) {
	monitorFlushTotal.WithLabelValues(m.network, statusLabel(err)).Inc()
	monitorFlushSize.WithLabelValues(m.network).Observe(float64(size))
}

// ObserveDropped counts a notification the journal had no room for.
func (m Monitor) ObserveDropped(channel string) {
	monitorJournalDropped.WithLabelValues(m.network, channel).Inc()
}

// ObservePartialDiscovered counts a partial transaction seen for the first time.
func (m Monitor) ObservePartialDiscovered(source string) {
	monitorPartialsDiscovered.WithLabelValues(m.network, source).Inc()
}
