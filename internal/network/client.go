// Package network talks to a Symbol node over REST with bounded timeouts and retries.
package network

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/goodnatureofminers/cosign-orchestrator/internal/clock"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Client issues JSON requests against one node. It is safe for concurrent use.
type Client struct {
	nodeURL    string
	httpClient *http.Client
	retry      RetryConfig
	onRetry    RetryObserver
	limiter    ratelimit.Limiter
	metrics    Metrics
	logger     *zap.Logger
	sleep      clock.SleepFunc
}

// NewClient builds a Client for nodeURL.
func NewClient(nodeURL string, cfg Config, metrics Metrics, logger *zap.Logger) (*Client, error) {
	nodeURL = strings.TrimRight(strings.TrimSpace(nodeURL), "/")
	if nodeURL == "" {
		return nil, errors.New("node url is required")
	}
	if metrics == nil {
		return nil, errors.New("network client metrics is required")
	}

	limiter := ratelimit.NewUnlimited()
	if cfg.RateLimit > 0 {
		limiter = ratelimit.New(cfg.RateLimit)
	}

	return &Client{
		nodeURL:    nodeURL,
		httpClient: newHTTPClient(cfg.Timeouts),
		retry:      cfg.Retry,
		onRetry:    cfg.OnRetry,
		limiter:    limiter,
		metrics:    metrics,
		logger:     logger.With(zap.String("node", nodeURL)),
		sleep:      clock.SleepWithContext,
	}, nil
}

func newHTTPClient(t TimeoutConfig) *http.Client {
	dialer := &net.Dialer{Timeout: t.Connect, KeepAlive: 30 * time.Second}
	return &http.Client{
		Transport: &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			DialContext:           dialer.DialContext,
			TLSHandshakeTimeout:   t.Connect,
			ResponseHeaderTimeout: t.Read,
			MaxIdleConnsPerHost:   8,
			IdleConnTimeout:       90 * time.Second,
		},
	}
}

// NodeURL returns the base URL without a trailing slash.
func (c *Client) NodeURL() string { return c.nodeURL }

// Get fetches endpoint. A 404 is an error.
func (c *Client) Get(ctx context.Context, endpoint, label string) (json.RawMessage, error) {
	return c.execute(ctx, "get", http.MethodGet, endpoint, label, nil, decodeJSON)
}

// GetOptional fetches endpoint and returns nil without error on 404.
func (c *Client) GetOptional(ctx context.Context, endpoint, label string) (json.RawMessage, error) {
	return c.execute(ctx, "get_optional", http.MethodGet, endpoint, label, nil, decodeJSON)
}

// Put sends body and tolerates empty or non-JSON replies, wrapping them as {"message": text}.
func (c *Client) Put(ctx context.Context, endpoint, label string, body any) (json.RawMessage, error) {
	payload, err := encodeBody(body)
	if err != nil {
		return nil, newError(err, c.nodeURL, label)
	}
	return c.execute(ctx, "put", http.MethodPut, endpoint, label, payload, decodeMessage)
}

// Post sends body as JSON and expects a JSON reply.
func (c *Client) Post(ctx context.Context, endpoint, label string, body any) (json.RawMessage, error) {
	payload, err := encodeBody(body)
	if err != nil {
		return nil, newError(err, c.nodeURL, label)
	}
	return c.execute(ctx, "post", http.MethodPost, endpoint, label, payload, decodeJSON)
}

func (c *Client) execute(
	ctx context.Context,
	operation, method, endpoint, label string,
	payload []byte,
	decode func([]byte) (json.RawMessage, error),
) (out json.RawMessage, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(operation, err, started)
	}()

	optional := operation == "get_optional"
	schedule := c.retry.newBackOff()
	for attempt := 0; ; attempt++ {
		var callErr error
		out, callErr = c.once(ctx, method, endpoint, payload, optional, decode)
		if callErr == nil {
			return out, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, newError(ctxErr, c.nodeURL, label)
		}
		if attempt >= c.retry.MaxRetries || !c.shouldRetry(callErr) {
			return nil, newError(callErr, c.nodeURL, label)
		}

		delay := schedule.NextBackOff()
		c.logger.Warn("node call failed, retrying",
			zap.String("endpoint", endpoint),
			zap.Int("attempt", attempt+1),
			zap.Int("max_attempts", c.retry.MaxRetries+1),
			zap.Duration("delay", delay),
			zap.Error(callErr),
		)
		if c.onRetry != nil {
			c.onRetry(attempt+1, callErr, delay)
		}
		if sleepErr := c.sleep(ctx, delay); sleepErr != nil {
			return nil, newError(sleepErr, c.nodeURL, label)
		}
	}
}

func (c *Client) once(
	ctx context.Context,
	method, endpoint string,
	payload []byte,
	optional bool,
	decode func([]byte) (json.RawMessage, error),
) (json.RawMessage, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.nodeURL+endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.limiter.Take()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &transportError{err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &transportError{err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode == http.StatusNotFound && optional {
		return nil, nil
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &statusError{code: resp.StatusCode, body: string(body)}
	}
	return decode(body)
}

func (c *Client) shouldRetry(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return c.retry.retryableStatus(se.code)
	}
	kind := classify(err)
	return kind == KindTimeout || kind == KindConnection
}

func encodeBody(body any) ([]byte, error) {
	switch v := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case json.RawMessage:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		payload, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		return payload, nil
	}
}

func decodeJSON(body []byte) (json.RawMessage, error) {
	body = bytes.TrimSpace(body)
	if !json.Valid(body) {
		return nil, fmt.Errorf("decode response: invalid JSON %q", truncate(string(body), 64))
	}
	return json.RawMessage(body), nil
}

func decodeMessage(body []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return json.RawMessage(`{"message":""}`), nil
	}
	if json.Valid(trimmed) {
		return json.RawMessage(trimmed), nil
	}
	wrapped, err := json.Marshal(map[string]string{"message": string(body)})
	if err != nil {
		return nil, fmt.Errorf("wrap response: %w", err)
	}
	return wrapped, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// Message extracts the "message" field of a node acknowledgement, if any.
func Message(raw json.RawMessage) string {
	var ack struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &ack); err != nil {
		return ""
	}
	return ack.Message
}
