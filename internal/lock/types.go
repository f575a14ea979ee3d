package lock

import (
	"context"
	"encoding/json"

	"github.com/goodnatureofminers/cosign-orchestrator/internal/ledger"
	"github.com/goodnatureofminers/cosign-orchestrator/internal/status"
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
	}
)
