package kstar

import "time"

// RunConfig collects the run-time options recognized by Engine (spec §6).
type RunConfig struct {
	K                 int
	ReopenClosed      bool
	SimplePlansOnly   bool
	DumpPlans         bool
	MaxTime           time.Duration
	Verbosity         Verbosity
	DeduplicateByPlan bool // default false: count every distinct Dijkstra pop
	MaxStates         int  // 0: unlimited
}

// Option mutates a RunConfig; functional options in the same shape as the
// teacher's astar.Option/WithWorkers.
type Option func(*RunConfig)

// WithK sets the number of plans to enumerate. Must be positive.
func WithK(k int) Option {
	return func(c *RunConfig) { c.K = k }
}

// WithReopenClosed controls whether A* re-parents a closed state when a
// shorter path is later discovered.
func WithReopenClosed(reopen bool) Option {
	return func(c *RunConfig) { c.ReopenClosed = reopen }
}

// WithSimplePlansOnly filters out plans whose state sequence repeats a
// state.
func WithSimplePlansOnly(simpleOnly bool) Option {
	return func(c *RunConfig) { c.SimplePlansOnly = simpleOnly }
}

// WithDumpPlans enables persisting emitted plans via the configured
// PlanSink.
func WithDumpPlans(dump bool) Option {
	return func(c *RunConfig) { c.DumpPlans = dump }
}

// WithMaxTime sets the wall-clock budget for the run.
func WithMaxTime(d time.Duration) Option {
	return func(c *RunConfig) { c.MaxTime = d }
}

// WithVerbosity sets the logging verbosity.
func WithVerbosity(v Verbosity) Option {
	return func(c *RunConfig) { c.Verbosity = v }
}

// WithDeduplicateByPlan switches de-duplication policy from "count every
// distinct Dijkstra node" (the default) to "count distinct action
// sequences", per spec §4.5's deferred-to-configuration policy.
func WithDeduplicateByPlan(byPlan bool) Option {
	return func(c *RunConfig) { c.DeduplicateByPlan = byPlan }
}

// WithMaxStates caps the number of distinct states the shortest-path tree
// may register before Run aborts with ErrResourceExhausted. Zero (the
// default) means unlimited. Must be non-negative.
func WithMaxStates(n int) Option {
	if n < 0 {
		panic("kstar: WithMaxStates requires n >= 0")
	}
	return func(c *RunConfig) { c.MaxStates = n }
}

func defaultRunConfig() RunConfig {
	return RunConfig{
		K:               1,
		ReopenClosed:    true,
		SimplePlansOnly: false,
		DumpPlans:       false,
		MaxTime:         30 * time.Second,
		Verbosity:       Normal,
		MaxStates:       0,
	}
}
