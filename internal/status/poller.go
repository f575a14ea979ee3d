// Package status polls the node for the lifecycle group of announced transactions.
package status

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/cosign-orchestrator/internal/clock"
	"github.com/goodnatureofminers/cosign-orchestrator/internal/ledger"
	"go.uber.org/zap"
)

const (
	GroupConfirmed   = "confirmed"
	GroupUnconfirmed = "unconfirmed"
	GroupPartial     = "partial"
	GroupFailed      = "failed"

	// CodePastDeadline marks a transaction the ledger dropped because its deadline passed.
	CodePastDeadline = "Failure_Core_Past_Deadline"
)

var (
	ErrTimeout = errors.New("transaction not confirmed within timeout")
	ErrExpired = errors.New("transaction expired")
)

// FailedError reports a transaction the ledger rejected.
type FailedError struct {
	Hash string
	Code string
}

func (e *FailedError) Error() string {
	return fmt.Sprintf("transaction %s failed: %s", e.Hash, e.Code)
}

// Outcome is the terminal result of a poll.
type Outcome int

const (
	OutcomeTimedOut Outcome = iota
	OutcomeConfirmed
	OutcomeFailed
	OutcomeExpired
)

func (o Outcome) String() string {
	switch o {
	case OutcomeConfirmed:
		return "confirmed"
	case OutcomeFailed:
		return "failed"
	case OutcomeExpired:
		return "expired"
	default:
		return "timed_out"
	}
}

// Status is one entry of the /transactionStatus response.
type Status struct {
	Hash     string
	Group    string
	Code     string
	Height   uint64
	Deadline uint64
}

// Result is what Poll returns once it stops.
type Result struct {
	Outcome  Outcome
	Last     Status
	Attempts int
}

// Err converts the outcome to the error WaitForConfirmation would return.
func (r Result) Err(hash string, timeout time.Duration) error {
	switch r.Outcome {
	case OutcomeConfirmed:
		return nil
	case OutcomeFailed:
		return &FailedError{Hash: hash, Code: r.Last.Code}
	case OutcomeExpired:
		return fmt.Errorf("%w: %s", ErrExpired, hash)
	default:
		return fmt.Errorf("%w: %s after %s", ErrTimeout, hash, timeout)
	}
}

// Options sets the overall budget and the pause between requests.
type Options struct {
	Timeout  time.Duration
	Interval time.Duration
}

// DefaultWaitOptions waits up to 120s, checking every 5s.
func DefaultWaitOptions() Options {
	return Options{Timeout: 120 * time.Second, Interval: 5 * time.Second}
}

// DefaultPollOptions waits up to 180s, checking every 3s.
func DefaultPollOptions() Options {
	return Options{Timeout: 180 * time.Second, Interval: 3 * time.Second}
}

// UpdateFunc observes group or code changes during a poll.
type UpdateFunc func(Status)

// Poller queries transaction status until a terminal group is seen.
type Poller struct {
	client  NodeClient
	metrics Metrics
	logger  *zap.Logger
	sleep   func(context.Context, time.Duration) error
	now     func() time.Time
}

// NewPoller builds a Poller on top of a node client.
func NewPoller(client NodeClient, metrics Metrics, logger *zap.Logger) (*Poller, error) {
	if client == nil {
		return nil, errors.New("status poller node client is required")
	}
	if metrics == nil {
		return nil, errors.New("status poller metrics is required")
	}
	return &Poller{
		client:  client,
		metrics: metrics,
		logger:  logger.Named("status"),
		sleep:   clock.SleepWithContext,
		now:     time.Now,
	}, nil
}

// Status fetches the current status of hash. found is false when the node does not know the hash.
func (p *Poller) Status(ctx context.Context, hash string) (st Status, found bool, err error) {
	started := time.Now()
	defer func() {
		p.metrics.Observe("status", err, started)
	}()

	hash = ledger.NormalizeHash(hash)
	raw, err := p.client.Post(ctx, "/transactionStatus", "Check transaction status", map[string][]string{
		"hashes": {hash},
	})
	if err != nil {
		return Status{}, false, err
	}

	var entries []struct {
		Hash     string        `json:"hash"`
		Group    string        `json:"group"`
		Code     string        `json:"code"`
		Height   ledger.Uint64 `json:"height"`
		Deadline ledger.Uint64 `json:"deadline"`
	}
	if err := json.Unmarshal(raw, &entries); err != nil {
		return Status{}, false, fmt.Errorf("decode transaction status: %w", err)
	}
	if len(entries) == 0 {
		return Status{Hash: hash}, false, nil
	}
	e := entries[0]
	if e.Hash == "" {
		e.Hash = hash
	}
	return Status{
		Hash:     e.Hash,
		Group:    e.Group,
		Code:     e.Code,
		Height:   uint64(e.Height),
		Deadline: uint64(e.Deadline),
	}, true, nil
}

// Poll checks hash every opts.Interval until it is confirmed or failed, or opts.Timeout elapses.
// Request failures are logged and polling continues. onUpdate fires only when group or code change.
// The returned error is non-nil only if ctx is done.
func (p *Poller) Poll(ctx context.Context, hash string, opts Options, onUpdate UpdateFunc) (res Result, err error) {
	started := time.Now()
	defer func() {
		outcomeErr := err
		if outcomeErr == nil && res.Outcome != OutcomeConfirmed {
			outcomeErr = errors.New(res.Outcome.String())
		}
		p.metrics.Observe("poll", outcomeErr, started)
	}()

	hash = ledger.NormalizeHash(hash)
	deadline := p.now().Add(opts.Timeout)
	var last Status
	seen := false

	for {
		if err := ctx.Err(); err != nil {
			return Result{Outcome: OutcomeTimedOut, Last: last, Attempts: res.Attempts}, err
		}
		res.Attempts++

		st, found, statusErr := p.Status(ctx, hash)
		switch {
		case statusErr != nil:
			if ctxErr := ctx.Err(); ctxErr != nil {
				return Result{Outcome: OutcomeTimedOut, Last: last, Attempts: res.Attempts}, ctxErr
			}
			p.logger.Warn("status check failed",
				zap.String("hash", hash),
				zap.Int("attempt", res.Attempts),
				zap.Error(statusErr),
			)
		case found:
			if !seen || st.Group != last.Group || st.Code != last.Code {
				p.logger.Debug("status changed",
					zap.String("hash", hash),
					zap.String("group", st.Group),
					zap.String("code", st.Code),
				)
				if onUpdate != nil {
					onUpdate(st)
				}
			}
			seen = true
			last = st

			switch st.Group {
			case GroupConfirmed:
				return Result{Outcome: OutcomeConfirmed, Last: st, Attempts: res.Attempts}, nil
			case GroupFailed:
				outcome := OutcomeFailed
				if st.Code == CodePastDeadline {
					outcome = OutcomeExpired
				}
				return Result{Outcome: outcome, Last: st, Attempts: res.Attempts}, nil
			}
		}

		if !p.now().Before(deadline) {
			return Result{Outcome: OutcomeTimedOut, Last: last, Attempts: res.Attempts}, nil
		}
		if err := p.sleep(ctx, opts.Interval); err != nil {
			return Result{Outcome: OutcomeTimedOut, Last: last, Attempts: res.Attempts}, err
		}
	}
}

// WaitForConfirmation blocks until hash is confirmed. It returns *FailedError, ErrExpired or
// ErrTimeout for the other outcomes, and ctx.Err() if ctx is done first.
func (p *Poller) WaitForConfirmation(ctx context.Context, hash string, opts Options) error {
	res, err := p.Poll(ctx, hash, opts, nil)
	if err != nil {
		return err
	}
	if res.Outcome == OutcomeConfirmed {
		p.logger.Info("transaction confirmed", zap.String("hash", ledger.NormalizeHash(hash)))
	}
	return res.Err(ledger.NormalizeHash(hash), opts.Timeout)
}
