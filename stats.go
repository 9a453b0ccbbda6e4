package kstar

import "github.com/kstar-go/kstar/internal/telemetry"

// Stats is the counter set an Engine run updates; see internal/telemetry
// for the Prometheus wiring itself.
type Stats = telemetry.Metrics

// NewStats creates a Stats with its own private Prometheus registry.
func NewStats() *Stats {
	return telemetry.New()
}
