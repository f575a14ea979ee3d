package stream

import "time"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
		ObserveNotification(channel string)
		ObserveReconnect(delay time.Duration)
		SetConnected(connected bool)
	}
)
