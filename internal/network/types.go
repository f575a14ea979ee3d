package network

import "time"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// RetryObserver is told about every retry before the client sleeps.
type RetryObserver func(attempt int, err error, delay time.Duration)
