package kstar

import (
	"errors"
	"fmt"
)

// Sentinel errors forming the error taxonomy of spec §7. Individual step
// failures surface as status codes (see AStarStatus in astar.go); these values
// are reserved for conditions that terminate a run.
var (
	// ErrTaskInvalid marks a malformed task: a negative-cost action found
	// by Run's startup sweep of the reachable state space (validate.go).
	// Fatal, reported once before the search begins. A goal that is simply
	// unreachable is not a TaskError: that is Scenario E, ErrUnsolvable.
	ErrTaskInvalid = errors.New("kstar: invalid task")

	// ErrResourceExhausted marks the state-registry limit set by
	// WithMaxStates reached mid-run. Fatal to the current run; plans
	// already emitted are kept.
	ErrResourceExhausted = errors.New("kstar: resource exhausted")

	// ErrUnsolvable is not a failure: A* exhausted its open list without
	// ever closing a goal state. Callers should treat a Result with this
	// error and zero plans as a normal "no solution" outcome.
	ErrUnsolvable = errors.New("kstar: task has no solution")

	// ErrInternalInvariant marks a condition the algorithm's correctness
	// proof rules out (a negative δ, a heap child smaller than its
	// parent, ...). Encountering it means a bug, not a normal run outcome.
	ErrInternalInvariant = errors.New("kstar: internal invariant violated")
)

// invariantf wraps ErrInternalInvariant with a formatted detail message.
func invariantf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInternalInvariant, fmt.Sprintf(format, args...))
}
