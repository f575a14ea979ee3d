package aggregate

import (
	"context"
	"encoding/json"

	"github.com/goodnatureofminers/cosign-orchestrator/internal/ledger"
	"github.com/goodnatureofminers/cosign-orchestrator/internal/status"
	"github.com/goodnatureofminers/cosign-orchestrator/pkg/symbol"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Wallet interface {
		ledger.Wallet
	}
	NodeClient interface {
		Get(ctx context.Context, endpoint, label string) (json.RawMessage, error)
		GetOptional(ctx context.Context, endpoint, label string) (json.RawMessage, error)
		Put(ctx context.Context, endpoint, label string, body any) (json.RawMessage, error)
	}
	StatusPoller interface {
		WaitForConfirmation(ctx context.Context, hash string, opts status.Options) error
		Poll(ctx context.Context, hash string, opts status.Options, onUpdate status.UpdateFunc) (status.Result, error)
	}
	HashLocker interface {
		CreateHashLock(ctx context.Context, aggregate *symbol.Transaction, lockAmount, duration, feeMultiplier uint64) (*symbol.Transaction, error)
	}
)
