package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/cosign-orchestrator/internal/aggregate"
	"github.com/goodnatureofminers/cosign-orchestrator/internal/journal"
	"github.com/goodnatureofminers/cosign-orchestrator/internal/stream"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Stream interface {
		Start(ctx context.Context) error
		Stop()
		IsConnected() bool
		SubscribeBlock() error
		SubscribeFinalizedBlock() error
		SubscribeAddress(address string, opts stream.AddressOptions) error
		AddCallback(channel stream.Channel, fn func(stream.Notification)) stream.CallbackID
	}
	PartialFetcher interface {
		FetchPartialTransactions(ctx context.Context, address string) ([]aggregate.PartialTransaction, error)
	}
	JournalRepository interface {
		InsertNotifications(ctx context.Context, notifications []journal.Notification) error
	}
	NotificationWriter interface {
		Start(ctx context.Context)
		Stop()
		Write(ctx context.Context, n journal.Notification) error
	}
	MonitorMetrics interface {
		ObserveRefresh(err error, addresses int, started time.Time)
		ObserveFlush(err error, size int)
		ObserveDropped(channel string)
		ObservePartialDiscovered(source string)
	}
)
