package network

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goodnatureofminers/cosign-orchestrator/internal/ledger"
	"go.uber.org/zap"
)

// Health summarizes the node probe.
type Health struct {
	Healthy       bool
	APINode       string
	DBNode        string
	NetworkHeight uint64
	URL           string
}

// TestConnection probes /node/health and /node/info.
func (c *Client) TestConnection(ctx context.Context) (Health, error) {
	rawHealth, err := c.Get(ctx, "/node/health", "Node health check")
	if err != nil {
		return Health{}, err
	}
	rawInfo, err := c.Get(ctx, "/node/info", "Node info fetch")
	if err != nil {
		return Health{}, err
	}

	var health struct {
		Status struct {
			APINode string `json:"apiNode"`
			DBNode  string `json:"dbNode"`
		} `json:"status"`
	}
	if err := json.Unmarshal(rawHealth, &health); err != nil {
		return Health{}, fmt.Errorf("decode node health: %w", err)
	}
	var info struct {
		NetworkHeight ledger.Uint64 `json:"networkHeight"`
	}
	if err := json.Unmarshal(rawInfo, &info); err != nil {
		return Health{}, fmt.Errorf("decode node info: %w", err)
	}

	out := Health{
		APINode:       orDown(health.Status.APINode),
		DBNode:        orDown(health.Status.DBNode),
		NetworkHeight: uint64(info.NetworkHeight),
		URL:           c.nodeURL,
	}
	out.Healthy = out.APINode == "up"

	c.logger.Info("node connection tested",
		zap.Bool("healthy", out.Healthy),
		zap.Uint64("network_height", out.NetworkHeight),
	)
	return out, nil
}

func orDown(s string) string {
	if s == "" {
		return "down"
	}
	return s
}
