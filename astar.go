package kstar

import (
	"fmt"
	"log/slog"
)

// AStarStatus is the result of one AStarDriver.Step call (spec §4.1).
type AStarStatus int

const (
	InProgress AStarStatus = iota
	Solved
	Interrupted
	TimedOut
	Exhausted
)

func (s AStarStatus) String() string {
	switch s {
	case InProgress:
		return "in-progress"
	case Solved:
		return "solved"
	case Interrupted:
		return "interrupted"
	case TimedOut:
		return "timeout"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// AStarDriver is the forward search of spec §4.1: an explicit step()-based
// state machine, modeled on the teacher's Stepper (stepper.go) but
// single-threaded per spec §5 — no worker pool, no channels, because the
// interrupt/resume protocol requires A* and the path-graph Dijkstra search
// to observe a consistent snapshot of the shared heap forest between steps.
type AStarDriver struct {
	task      Task
	heuristic Heuristic
	open      OpenList
	tree      *TreeStore
	hin       *HinStore
	treeHeap  *TreeHeapStore
	arena     *sapArena
	log       *slog.Logger
	stats     *Stats

	reopenClosed bool
	maxStates    int

	hasSolution bool
	goalState   StateID
	cStar       int64

	expansions int
}

// NewAStarDriver wires a fresh A* search over task, seeded at its initial
// state, sharing the tree/incoming-heap/tree-heap stores with the rest of
// the engine.
func NewAStarDriver(
	task Task,
	heuristic Heuristic,
	open OpenList,
	tree *TreeStore,
	hin *HinStore,
	treeHeap *TreeHeapStore,
	arena *sapArena,
	reopenClosed bool,
	maxStates int,
	log *slog.Logger,
	stats *Stats,
) *AStarDriver {
	d := &AStarDriver{
		task: task, heuristic: heuristic, open: open,
		tree: tree, hin: hin, treeHeap: treeHeap, arena: arena,
		reopenClosed: reopenClosed, maxStates: maxStates, log: log, stats: stats,
	}
	start := task.InitialState()
	tree.InsertRoot(start)
	open.Insert(start, heuristic.H(start))
	return d
}

// FU returns f_u, the minimum f-value currently in the open list, and
// whether the open list is non-empty.
func (d *AStarDriver) FU() (int64, bool) {
	return d.open.MinKey()
}

// COptimal returns C*, the cost of the first closed goal state, and
// whether a solution has been found yet.
func (d *AStarDriver) COptimal() (int64, bool) {
	return d.cStar, d.hasSolution
}

// GoalState returns the first goal state A* closed.
func (d *AStarDriver) GoalState() StateID {
	return d.goalState
}

// shouldInterrupt implements the canonical K* interrupt gate (spec §4.1,
// §9; confirmed by original_source's SearchControl.check_interrupt):
// f_u >= C* + d, i.e. no unexpanded A* node could produce a plan cheaper
// than what Dijkstra's frontier already promises.
func (d *AStarDriver) shouldInterrupt(dijkstraD int64) bool {
	if !d.hasSolution {
		return false
	}
	fu, hasOpen := d.FU()
	if !hasOpen {
		return false
	}
	return d.cStar+dijkstraD <= fu
}

// Step advances the search by at most one expansion. dijkstraD is the
// orchestrator's current Dijkstra frontier minimum (d in spec notation);
// pass a very large value before the first solution is found, since the
// interrupt gate is inert until hasSolution.
func (d *AStarDriver) Step(dijkstraD int64) (AStarStatus, error) {
	if d.shouldInterrupt(dijkstraD) {
		return Interrupted, nil
	}
	if d.open.Len() == 0 {
		return Exhausted, nil
	}

	cur, ok := d.open.PopMin()
	if !ok {
		return Exhausted, nil
	}
	node, ok := d.tree.Get(cur)
	if !ok {
		return InProgress, invariantf("popped state %d has no tree node", cur)
	}
	node.Status = Closed
	d.expansions++
	if d.stats != nil {
		d.stats.Expansions.Inc()
	}

	firstGoalClosure := false
	if d.task.IsGoal(cur) && !d.hasSolution {
		d.hasSolution = true
		d.goalState = cur
		d.cStar = node.G
		firstGoalClosure = true
	}

	for _, action := range d.task.ApplicableActions(cur) {
		if err := d.relax(cur, node.G, action); err != nil {
			return InProgress, err
		}
	}

	if firstGoalClosure {
		return Solved, nil
	}
	return InProgress, nil
}

// relax applies one relaxation (spec §4.1 rules 1-3) for the edge
// from--action-->to.
func (d *AStarDriver) relax(from StateID, fromG int64, action Action) error {
	to := d.task.Apply(from, action)
	tentativeG := fromG + action.Cost

	existing, seen := d.tree.Get(to)
	if !seen {
		d.tree.Insert(to, from, action, tentativeG, OpenStatus)
		if d.maxStates > 0 && d.tree.Len() > d.maxStates {
			return fmt.Errorf("%w: tree exceeded %d states", ErrResourceExhausted, d.maxStates)
		}
		d.open.Insert(to, tentativeG+d.heuristic.H(to))
		return nil
	}

	if tentativeG < existing.G {
		if existing.Status == Closed && !d.reopenClosed {
			// Reopening disallowed: the tree keeps its existing (now
			// known-suboptimal) edge; the cheaper edge just discovered
			// becomes the sidetrack instead. The textual formula in
			// spec §4.1 (δ = g' - g(t)) is negative here by
			// construction — an acknowledged spec ambiguity (§9) that
			// the original implementation never exercises, since
			// kstar.cc's option parser hardcodes reopen_closed=true.
			// We clamp to zero rather than raise an invariant
			// violation; see DESIGN.md.
			delta := tentativeG - existing.G
			if delta < 0 {
				if d.log != nil {
					d.log.Debug("clamping negative sidetrack delta under reopen_closed=false",
						"state", int64(to), "raw_delta", delta)
				}
				delta = 0
			}
			return d.recordSidetrack(from, action, to, delta)
		}

		wasClosed := existing.Status == Closed
		oldParent, oldAction, oldG, hadParent := d.tree.Reparent(to, from, action, tentativeG, d.reopenClosed)
		d.treeHeap.Invalidate(to)
		if hadParent {
			delta := oldG - tentativeG
			if delta < 0 {
				return invariantf("reparent of state %d produced negative delta %d", to, delta)
			}
			if err := d.recordSidetrack(oldParent, oldAction, to, delta); err != nil {
				return err
			}
		}
		if !wasClosed {
			d.open.Remove(to)
		}
		d.open.Insert(to, tentativeG+d.heuristic.H(to))
		return nil
	}

	delta := tentativeG - existing.G
	if delta < 0 {
		return invariantf("sidetrack from %d to %d has negative delta %d", from, to, delta)
	}
	return d.recordSidetrack(from, action, to, delta)
}

// recordSidetrack mints a SAP, inserts it into H_in(to), and invalidates
// any cached H_T depending on to — every H_in insertion changes H_T(to)
// even when to's tree parent does not change (spec §4.2).
func (d *AStarDriver) recordSidetrack(from StateID, action Action, to StateID, delta int64) error {
	sap := d.arena.new(from, action, to, delta)
	d.hin.Insert(to, sap.ID, delta)
	d.treeHeap.Invalidate(to)
	if d.stats != nil {
		d.stats.SidetracksRecorded.Inc()
	}
	return nil
}

// Expansions reports how many states this driver has closed so far.
func (d *AStarDriver) Expansions() int {
	return d.expansions
}
