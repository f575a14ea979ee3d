package service

import "time"

const (
	defaultFallbackInterval = 30 * time.Second
	defaultFallbackWorkers  = 4

	journalBatcherCapacity      = 500
	journalBatcherFlushInterval = 2 * time.Second
	journalBatcherFlushRPS      = 10
	journalFlushTimeout         = 10 * time.Second
)
