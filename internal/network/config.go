package network

import (
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/goodnatureofminers/cosign-orchestrator/internal/clock"
)

// TimeoutConfig bounds a single HTTP attempt.
type TimeoutConfig struct {
	Connect time.Duration
	Read    time.Duration
}

// DefaultTimeoutConfig returns 5s connect and 15s read timeouts.
func DefaultTimeoutConfig() TimeoutConfig {
	return TimeoutConfig{Connect: 5 * time.Second, Read: 15 * time.Second}
}

// RetryConfig controls how many times and how far apart failed calls are retried.
type RetryConfig struct {
	MaxRetries      int
	BaseDelay       time.Duration
	MaxDelay        time.Duration
	Multiplier      float64
	RetryableStatus map[int]struct{}
}

// DefaultRetryConfig retries three times with delays of 1s, 2s and 4s, capped at 30s.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: 3,
		BaseDelay:  time.Second,
		MaxDelay:   30 * time.Second,
		Multiplier: 2,
		RetryableStatus: map[int]struct{}{
			http.StatusRequestTimeout:      {},
			http.StatusTooManyRequests:     {},
			http.StatusInternalServerError: {},
			http.StatusBadGateway:          {},
			http.StatusServiceUnavailable:  {},
			http.StatusGatewayTimeout:      {},
		},
	}
}

// Config groups the client settings.
type Config struct {
	Timeouts TimeoutConfig
	Retry    RetryConfig
	// RateLimit caps outgoing requests per second. Zero disables limiting.
	RateLimit int
	OnRetry   RetryObserver
}

// DefaultConfig returns the default timeouts and retry policy without rate limiting.
func DefaultConfig() Config {
	return Config{Timeouts: DefaultTimeoutConfig(), Retry: DefaultRetryConfig()}
}

func (c RetryConfig) newBackOff() backoff.BackOff {
	return clock.Schedule(c.BaseDelay, c.MaxDelay, c.Multiplier)
}

func (c RetryConfig) retryableStatus(code int) bool {
	_, ok := c.RetryableStatus[code]
	return ok
}
