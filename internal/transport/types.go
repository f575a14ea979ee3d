package transport

import (
	"context"

	"github.com/goodnatureofminers/cosign-orchestrator/internal/aggregate"
	"github.com/goodnatureofminers/cosign-orchestrator/internal/journal"
	"github.com/goodnatureofminers/cosign-orchestrator/internal/lock"
	"github.com/goodnatureofminers/cosign-orchestrator/internal/network"
	"github.com/goodnatureofminers/cosign-orchestrator/internal/service"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	PartialService interface {
		FetchPartialTransactions(ctx context.Context, address string) ([]aggregate.PartialTransaction, error)
		FetchPartialByHash(ctx context.Context, hash string) (*aggregate.PartialTransaction, error)
	}
	LockService interface {
		FetchSecretLocks(ctx context.Context, address string) ([]lock.SecretLockInfo, error)
		FetchHashLocks(ctx context.Context, address string) ([]lock.HashLockInfo, error)
	}
	NotificationStore interface {
		RecentNotifications(ctx context.Context, address string, limit int) ([]journal.Notification, error)
	}
	MonitorStatus interface {
		Status() service.Status
	}
	NodeProber interface {
		TestConnection(ctx context.Context) (network.Health, error)
	}
)
