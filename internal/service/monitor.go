package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/cosign-orchestrator/internal/clock"
	"github.com/goodnatureofminers/cosign-orchestrator/internal/journal"
	"github.com/goodnatureofminers/cosign-orchestrator/internal/ledger"
	"github.com/goodnatureofminers/cosign-orchestrator/internal/stream"
	"github.com/goodnatureofminers/cosign-orchestrator/pkg/workerpool"
)

const (
	sourceStream = "stream"
	sourcePoll   = "poll"
)

var journaledChannels = []stream.Channel{
	stream.ChannelBlock,
	stream.ChannelFinalizedBlock,
	stream.ChannelConfirmedAdded,
	stream.ChannelUnconfirmedAdded,
	stream.ChannelUnconfirmedRemoved,
	stream.ChannelPartialAdded,
	stream.ChannelPartialRemoved,
	stream.ChannelCosignature,
	stream.ChannelModifyMultisigAccount,
	stream.ChannelStatus,
}

// MonitorConfig tunes the fallback polling used while the stream is down.
type MonitorConfig struct {
	FallbackInterval time.Duration
	FallbackWorkers  int
}

func (c MonitorConfig) withDefaults() MonitorConfig {
	if c.FallbackInterval <= 0 {
		c.FallbackInterval = defaultFallbackInterval
	}
	if c.FallbackWorkers <= 0 {
		c.FallbackWorkers = defaultFallbackWorkers
	}
	return c
}

// Status is a point-in-time view of the monitor.
type Status struct {
	Connected        bool      `json:"connected"`
	Addresses        []string  `json:"addresses"`
	KnownPartials    int       `json:"knownPartials"`
	LastRefresh      time.Time `json:"lastRefresh,omitzero"`
	LastRefreshError string    `json:"lastRefreshError,omitempty"`
}

// Monitor watches addresses over the event stream, journals what it receives
// and polls partial transactions whenever the stream is disconnected.
type Monitor struct {
	logger   *zap.Logger
	stream   Stream
	partials PartialFetcher
	writer   NotificationWriter
	metrics  MonitorMetrics
	watch    []WatchEntry
	cfg      MonitorConfig
	sleep    clock.SleepFunc
	now      func() time.Time

	mu          sync.Mutex
	baseCtx     context.Context
	known       map[string]string
	lastRefresh time.Time
	refreshErr  error
}

// NewMonitor builds a Monitor. A nil writer disables journaling.
func NewMonitor(
	s Stream,
	partials PartialFetcher,
	writer NotificationWriter,
	metrics MonitorMetrics,
	watch []WatchEntry,
	cfg MonitorConfig,
	logger *zap.Logger,
) (*Monitor, error) {
	if s == nil {
		return nil, errors.New("stream is required")
	}
	if partials == nil {
		return nil, errors.New("partial fetcher is required")
	}
	if metrics == nil {
		return nil, errors.New("monitor metrics is required")
	}
	if writer == nil {
		writer = discardWriter{}
	}

	return &Monitor{
		logger:   logger.Named("monitor"),
		stream:   s,
		partials: partials,
		writer:   writer,
		metrics:  metrics,
		watch:    MergeWatchList(watch),
		cfg:      cfg.withDefaults(),
		sleep:    clock.SleepWithContext,
		now:      time.Now,
		baseCtx:  context.Background(),
		known:    make(map[string]string),
	}, nil
}

// Run subscribes every watched address and blocks until ctx is done.
func (m *Monitor) Run(ctx context.Context) error {
	m.mu.Lock()
	m.baseCtx = ctx
	m.mu.Unlock()

	for _, ch := range journaledChannels {
		m.stream.AddCallback(ch, m.handle)
	}
	m.subscribe()

	m.writer.Start(ctx)
	defer m.writer.Stop()

	if err := m.stream.Start(ctx); err != nil {
		return fmt.Errorf("start stream: %w", err)
	}
	defer m.stream.Stop()

	m.logger.Info("monitor started",
		zap.Int("addresses", len(m.watch)),
		zap.Duration("fallbackInterval", m.cfg.FallbackInterval),
	)

	if err := m.Refresh(ctx); err != nil {
		m.logger.Warn("initial partial refresh failed", zap.Error(err))
	}

	for {
		if err := m.sleep(ctx, m.cfg.FallbackInterval); err != nil {
			return err
		}
		if m.stream.IsConnected() {
			continue
		}
		m.logger.Debug("stream disconnected, polling partial transactions")
		if err := m.Refresh(ctx); err != nil {
			m.logger.Warn("fallback refresh failed", zap.Error(err))
		}
	}
}

// subscribe registers topics before the stream starts; they are sent on the handshake.
func (m *Monitor) subscribe() {
	ignore := func(err error) bool {
		return err == nil || errors.Is(err, stream.ErrNotConnected)
	}
	if err := m.stream.SubscribeBlock(); !ignore(err) {
		m.logger.Warn("subscribe block failed", zap.Error(err))
	}
	if err := m.stream.SubscribeFinalizedBlock(); !ignore(err) {
		m.logger.Warn("subscribe finalized block failed", zap.Error(err))
	}
	for _, e := range m.watch {
		if err := m.stream.SubscribeAddress(e.Address, e.Options); !ignore(err) {
			m.logger.Warn("subscribe address failed", zap.String("address", e.Address), zap.Error(err))
		}
	}
}

// Refresh polls partial transactions for every address watching the partial channel.
func (m *Monitor) Refresh(ctx context.Context) error {
	started := time.Now()
	addresses := m.partialAddresses()

	err := workerpool.ProcessAll(ctx, m.cfg.FallbackWorkers, addresses, m.refreshAddress)
	m.metrics.ObserveRefresh(err, len(addresses), started)

	m.mu.Lock()
	m.lastRefresh = m.now()
	m.refreshErr = err
	m.mu.Unlock()
	return err
}

func (m *Monitor) refreshAddress(ctx context.Context, address string) error {
	partials, err := m.partials.FetchPartialTransactions(ctx, address)
	if err != nil {
		return fmt.Errorf("fetch partials for %s: %w", address, err)
	}
	for _, p := range partials {
		m.track(address, p.Hash, sourcePoll)
	}
	return nil
}

func (m *Monitor) partialAddresses() []string {
	out := make([]string, 0, len(m.watch))
	for _, e := range m.watch {
		if e.Options.Partial {
			out = append(out, e.Address)
		}
	}
	return out
}

func (m *Monitor) handle(n stream.Notification) {
	switch v := n.(type) {
	case stream.TransactionNotification:
		switch v.Topic {
		case stream.ChannelPartialAdded:
			m.track(v.Address, v.Hash(), sourceStream)
		case stream.ChannelConfirmedAdded:
			m.forget(v.Hash())
		}
	case stream.RemovalNotification:
		if v.Topic == stream.ChannelPartialRemoved {
			m.forget(v.Hash)
		}
	}

	row, ok := journal.FromStream(n, m.now())
	if !ok {
		return
	}
	m.mu.Lock()
	ctx := m.baseCtx
	m.mu.Unlock()
	if err := m.writer.Write(ctx, row); err != nil {
		m.logger.Warn("journal write failed", zap.String("channel", row.Channel), zap.Error(err))
	}
}

func (m *Monitor) track(address, hash, source string) {
	hash = ledger.NormalizeHash(hash)
	if hash == "" {
		return
	}
	m.mu.Lock()
	_, seen := m.known[hash]
	if !seen {
		m.known[hash] = ledger.NormalizeAddress(address)
	}
	m.mu.Unlock()
	if seen {
		return
	}

	m.metrics.ObservePartialDiscovered(source)
	m.logger.Info("partial transaction discovered",
		zap.String("hash", hash),
		zap.String("address", address),
		zap.String("source", source),
	)
}

func (m *Monitor) forget(hash string) {
	hash = ledger.NormalizeHash(hash)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.known, hash)
}

// KnownPartials returns the tracked partial hashes, sorted, optionally for one address.
func (m *Monitor) KnownPartials(address string) []string {
	address = ledger.NormalizeAddress(address)
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.known))
	for hash, owner := range m.known {
		if address == "" || owner == address {
			out = append(out, hash)
		}
	}
	slices.Sort(out)
	return out
}

func (m *Monitor) Status() Status {
	addresses := make([]string, 0, len(m.watch))
	for _, e := range m.watch {
		addresses = append(addresses, e.Address)
	}
	connected := m.stream.IsConnected()

	m.mu.Lock()
	defer m.mu.Unlock()
	st := Status{
		Connected:     connected,
		Addresses:     addresses,
		KnownPartials: len(m.known),
		LastRefresh:   m.lastRefresh,
	}
	if m.refreshErr != nil {
		st.LastRefreshError = m.refreshErr.Error()
	}
	return st
}
