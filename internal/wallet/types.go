package wallet

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	NodeClient interface {
		NodeURL() string
		Get(ctx context.Context, endpoint, label string) (json.RawMessage, error)
		GetOptional(ctx context.Context, endpoint, label string) (json.RawMessage, error)
	}
)
