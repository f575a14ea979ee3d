package aggregate

import "github.com/goodnatureofminers/cosign-orchestrator/internal/status"

// Stage is the client-observed state of a bonded aggregate.
//
//	Building -> HashLockAnnounced -> HashLockConfirmed -> AggregatePending -> Confirmed | Expired | Failed
type Stage int

const (
	StageBuilding Stage = iota
	StageHashLockAnnounced
	StageHashLockConfirmed
	StageAggregatePending
	StageConfirmed
	StageExpired
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StageBuilding:
		return "building"
	case StageHashLockAnnounced:
		return "hash_lock_announced"
	case StageHashLockConfirmed:
		return "hash_lock_confirmed"
	case StageAggregatePending:
		return "aggregate_pending"
	case StageConfirmed:
		return "confirmed"
	case StageExpired:
		return "expired"
	case StageFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition can happen.
func (s Stage) Terminal() bool {
	return s == StageConfirmed || s == StageExpired || s == StageFailed
}

// Advance moves a pending aggregate to the stage matching a poll outcome.
// A timed out poll leaves the stage unchanged.
func (s Stage) Advance(outcome status.Outcome) Stage {
	if s.Terminal() {
		return s
	}
	switch outcome {
	case status.OutcomeConfirmed:
		return StageConfirmed
	case status.OutcomeExpired:
		return StageExpired
	case status.OutcomeFailed:
		return StageFailed
	default:
		return s
	}
}
