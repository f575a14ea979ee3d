package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/cosign-orchestrator/internal/journal"
	"github.com/goodnatureofminers/cosign-orchestrator/pkg/batcher"
)

// ErrJournalFull is returned by Write when the journal cannot keep up and the row was dropped.
var ErrJournalFull = errors.New("journal queue is full")

type journalWriter struct {
	repo         JournalRepository
	metrics      MonitorMetrics
	logger       *zap.Logger
	batcher      *batcher.Batcher[journal.Notification]
	flushTimeout time.Duration
}

// NewJournalWriter buffers notifications and writes them to repo in batches.
// Write never waits on the repository, so it is safe to call from stream callbacks.
func NewJournalWriter(repo JournalRepository, metrics MonitorMetrics, logger *zap.Logger) (NotificationWriter, error) {
	return newJournalWriter(repo, metrics, logger, journalBatcherCapacity, journalBatcherFlushInterval, journalFlushTimeout)
}

func newJournalWriter(
	repo JournalRepository,
	metrics MonitorMetrics,
	logger *zap.Logger,
	capacity int,
	flushInterval time.Duration,
	flushTimeout time.Duration,
) (*journalWriter, error) {
	if repo == nil {
		return nil, errors.New("journal repository is required")
	}
	w := &journalWriter{
		repo:         repo,
		metrics:      metrics,
		logger:       logger,
		flushTimeout: flushTimeout,
	}

	w.batcher = batcher.New[journal.Notification](
		logger.Named("journalBatcher"),
		w.flush,
		capacity,
		flushInterval,
		journalBatcherFlushRPS,
	)
	if metrics != nil {
		w.batcher.OnFlush(func(size int, err error) {
			metrics.ObserveFlush(err, size)
		})
	}
	return w, nil
}

func (w *journalWriter) Start(ctx context.Context) {
	w.batcher.Start(ctx)
}

func (w *journalWriter) Stop() {
	w.batcher.Stop()
}

func (w *journalWriter) Write(ctx context.Context, n journal.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := w.batcher.TryAdd(n)
	if errors.Is(err, batcher.ErrFull) {
		if w.metrics != nil {
			w.metrics.ObserveDropped(n.Channel)
		}
		return ErrJournalFull
	}
	return err
}

func (w *journalWriter) flush(ctx context.Context, notifications []journal.Notification) error {
	// the batcher reuses its buffer after flush returns
	rows := make([]journal.Notification, len(notifications))
	copy(rows, notifications)

	ctx, cancel := context.WithTimeout(ctx, w.flushTimeout)
	defer cancel()
	return w.repo.InsertNotifications(ctx, rows)
}

type discardWriter struct{}

func (discardWriter) Start(context.Context) {}

func (discardWriter) Stop() {}

func (discardWriter) Write(context.Context, journal.Notification) error { return nil }
