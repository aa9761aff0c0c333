package model

import "time"

// ProbeState is the last known reachability of the upstream API.
type ProbeState string

const (
	ProbeUnknown   ProbeState = "unknown"
	ProbeHealthy   ProbeState = "healthy"
	ProbeUnhealthy ProbeState = "unhealthy"
)

// ProbeStatus is the outcome of the most recent upstream probe.
type ProbeStatus struct {
	State     ProbeState
	CheckedAt time.Time
	Err       string
}
