package stream

import (
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/goodnatureofminers/cosign-orchestrator/internal/clock"
)

// Config tunes connection handling.
type Config struct {
	AutoReconnect     bool
	ReconnectDelay    time.Duration
	MaxReconnectDelay time.Duration
	KeepAliveInterval time.Duration
	HandshakeTimeout  time.Duration
	WriteTimeout      time.Duration
}

// DefaultConfig reconnects after 5s doubling up to 60s and keeps idle connections alive every 30s.
func DefaultConfig() Config {
	return Config{
		AutoReconnect:     true,
		ReconnectDelay:    5 * time.Second,
		MaxReconnectDelay: 60 * time.Second,
		KeepAliveInterval: 30 * time.Second,
		HandshakeTimeout:  10 * time.Second,
		WriteTimeout:      10 * time.Second,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.ReconnectDelay <= 0 {
		c.ReconnectDelay = d.ReconnectDelay
	}
	if c.MaxReconnectDelay < c.ReconnectDelay {
		c.MaxReconnectDelay = max(d.MaxReconnectDelay, c.ReconnectDelay)
	}
	if c.KeepAliveInterval <= 0 {
		c.KeepAliveInterval = d.KeepAliveInterval
	}
	if c.HandshakeTimeout <= 0 {
		c.HandshakeTimeout = d.HandshakeTimeout
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = d.WriteTimeout
	}
	return c
}

// newBackOff yields ReconnectDelay, doubling per call up to MaxReconnectDelay, without jitter.
func (c Config) newBackOff() *backoff.ExponentialBackOff {
	return clock.Schedule(c.ReconnectDelay, c.MaxReconnectDelay, 2)
}
