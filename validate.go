package kstar

import "fmt"

// taskValidationLimit caps the startup validation's state-space sweep so a
// large or effectively unbounded task doesn't pay for a second full
// traversal before the real search begins. Only actions leaving the first
// states reached by the sweep (about this many) are checked; a
// negative-cost action beyond the bound is not detected, since relax does
// not check action costs.
const taskValidationLimit = 100_000

// validateTask implements spec §7's TaskError: a negative-cost action is
// rejected once, before the search starts, instead of surfacing later as
// an internal invariant violation mid-run. This is the same "upfront scan,
// fail fast" shape as lvlath's dijkstra package validating edge weights
// before the main loop, adapted to Task's exploratory interface: since
// Task exposes no direct edge list, the scan walks the reachable state
// space via ApplicableActions/Apply instead of iterating a materialized
// edge set.
func validateTask(task Task) error {
	start := task.InitialState()
	visited := map[StateID]bool{start: true}
	queue := []StateID{start}

	for len(queue) > 0 && len(visited) <= taskValidationLimit {
		s := queue[0]
		queue = queue[1:]
		for _, a := range task.ApplicableActions(s) {
			if a.Cost < 0 {
				return fmt.Errorf("%w: action %q from state %d has negative cost %d", ErrTaskInvalid, a.Name, s, a.Cost)
			}
			to := task.Apply(s, a)
			if !visited[to] {
				visited[to] = true
				queue = append(queue, to)
			}
		}
	}
	return nil
}
