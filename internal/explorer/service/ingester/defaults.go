package ingester

import "time"

const (
	defaultWorkerCount   = 8
	defaultBatchSize     = 500
	defaultFlushInterval = 2 * time.Second
)
