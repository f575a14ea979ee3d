package status

import (
	"context"
	"encoding/json"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	NodeClient interface {
		Post(ctx context.Context, endpoint, label string, body any) (json.RawMessage, error)
	}
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
