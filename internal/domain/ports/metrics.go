package ports

import "time"

// Metrics records lookup outcomes and upstream reachability.
type Metrics interface {
	ObserveLookup(operation, outcome string, elapsed time.Duration)
	SetUpstreamUp(up bool)
}
