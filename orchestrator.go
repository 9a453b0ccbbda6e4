package kstar

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/kstar-go/kstar/leftist"
	"github.com/kstar-go/kstar/pathgraph"
	"github.com/kstar-go/kstar/reconstruct"
)

// RunStatus is the terminal condition of an Engine.Run call.
type RunStatus int

const (
	// RunComplete means K plans were emitted.
	RunComplete RunStatus = iota
	// RunExhausted means fewer than K plans exist; every one was found.
	RunExhausted
	// RunTimedOut means MaxTime elapsed before K plans were emitted.
	RunTimedOut
)

func (s RunStatus) String() string {
	switch s {
	case RunComplete:
		return "complete"
	case RunExhausted:
		return "exhausted"
	case RunTimedOut:
		return "timed-out"
	default:
		return "unknown"
	}
}

// Result is what Engine.Run returns: the plans found, in emission order,
// and why the run stopped.
type Result struct {
	Plans  []Plan
	Status RunStatus
}

// Engine drives the coupled A* / path-graph Dijkstra search of spec §4.5,
// alternating AStarDriver.Step and pathgraph.Dijkstra.Pop under the
// f_u >= C*+d interrupt gate until K plans are emitted, the search space is
// exhausted, or the time budget runs out.
type Engine struct {
	task      Task
	heuristic Heuristic
	sink      PlanSink
	cfg       RunConfig
	log       *slog.Logger
	stats     *Stats

	tree     *TreeStore
	hin      *HinStore
	treeHeap *TreeHeapStore
	arena    *sapArena
	astar    *AStarDriver

	dijkstra      *pathgraph.Dijkstra
	reconstructor *reconstruct.Reconstructor[StateID, Action]

	seenPlans map[string]bool
}

// NewEngine wires a fresh Engine over task and heuristic, applying opts on
// top of defaultRunConfig.
func NewEngine(task Task, heuristic Heuristic, sink PlanSink, opts ...Option) *Engine {
	cfg := defaultRunConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: verbosityLevel(cfg.Verbosity)}))

	tree := NewTreeStore()
	hin := NewHinStore()
	treeHeap := NewTreeHeapStore(tree, hin)
	arena := newSapArena()
	open := NewDefaultOpenList()

	stats := NewStats()
	astar := NewAStarDriver(task, heuristic, open, tree, hin, treeHeap, arena, cfg.ReopenClosed, cfg.MaxStates, log, stats)

	return &Engine{
		task: task, heuristic: heuristic, sink: sink, cfg: cfg, log: log, stats: stats,
		tree: tree, hin: hin, treeHeap: treeHeap, arena: arena, astar: astar,
		seenPlans: make(map[string]bool),
	}
}

func verbosityLevel(v Verbosity) slog.Level {
	switch v {
	case Silent:
		return slog.LevelError + 4
	case Verbose:
		return slog.LevelInfo
	case Debug:
		return slog.LevelDebug
	default:
		return slog.LevelWarn
	}
}

// Stats exposes the run's Prometheus counters, e.g. for mounting
// promhttp.HandlerFor(engine.Stats().Registry(), ...) in a long-running
// service.
func (e *Engine) Stats() *Stats {
	return e.stats
}

// checkpointInterval is how often Run logs a progress checkpoint at Debug
// verbosity, grounded on top_k_eager_search.h's reward_progress /
// print_checkpoint_line periodic logging.
const checkpointInterval = 1000

// Run enumerates up to cfg.K plans, in non-decreasing cost order.
func (e *Engine) Run() (Result, error) {
	var result Result
	if err := validateTask(e.task); err != nil {
		return result, err
	}

	start := time.Now()
	lastCheckpoint := 0

	for len(result.Plans) < e.cfg.K {
		if e.cfg.MaxTime > 0 && time.Since(start) > e.cfg.MaxTime {
			result.Status = RunTimedOut
			e.log.Warn("run timed out", "plans_found", len(result.Plans), "expansions", e.astar.Expansions())
			e.stats.Report(e.log)
			return result, nil
		}

		if exp := e.astar.Expansions(); exp-lastCheckpoint >= checkpointInterval {
			lastCheckpoint = exp
			e.log.Debug("checkpoint", "expansions", exp, "plans_found", len(result.Plans), "elapsed", time.Since(start))
		}

		if e.dijkstra == nil {
			status, err := e.astar.Step(CostInfinite)
			if err != nil {
				return result, err
			}
			switch status {
			case Solved:
				e.setupDijkstra()
				e.stats.SolutionsFirst.Inc()
			case Exhausted:
				if len(result.Plans) == 0 {
					return result, ErrUnsolvable
				}
				result.Status = RunExhausted
				e.stats.Report(e.log)
				return result, nil
			}
			continue
		}

		dMin, hasFrontier := e.dijkstra.MinKey()
		if !hasFrontier {
			result.Status = RunExhausted
			e.stats.Report(e.log)
			return result, nil
		}

		status, err := e.astar.Step(dMin)
		if err != nil {
			return result, err
		}

		switch status {
		case Interrupted, Exhausted:
			node, ok := e.dijkstra.Pop()
			if !ok {
				result.Status = RunExhausted
				e.stats.Report(e.log)
				return result, nil
			}
			e.stats.DijkstraPops.Inc()
			if err := e.emit(node, &result); err != nil {
				return result, err
			}
		}
	}

	result.Status = RunComplete
	e.stats.Report(e.log)
	return result, nil
}

func (e *Engine) setupDijkstra() {
	goal := e.astar.GoalState()
	sapTarget := func(sapID int64) int64 { return int64(e.arena.get(sapID).To) }
	treeHeapOf := func(state int64) *leftist.Node { return e.treeHeap.Get(StateID(state)) }
	e.dijkstra = pathgraph.NewDijkstra(int64(goal), sapTarget, treeHeapOf)

	sapInfo := func(sapID int64) reconstruct.SapInfo[StateID, Action] {
		s := e.arena.get(sapID)
		return reconstruct.SapInfo[StateID, Action]{From: s.From, Action: s.Action, To: s.To}
	}
	e.reconstructor = reconstruct.New[StateID, Action](e.task.InitialState(), goal, sapInfo, e.tree.TreePath)
}

func (e *Engine) emit(node *pathgraph.Node, result *Result) error {
	actions, states := e.reconstructor.Reconstruct(node)

	if e.cfg.SimplePlansOnly && !reconstruct.IsSimple(states) {
		e.log.Debug("skipping non-simple plan", "sap", node.SapID, "g_pg", node.GPG)
		return nil
	}

	cStar, _ := e.astar.COptimal()
	plan := Plan{
		Index:   len(result.Plans) + 1,
		Cost:    cStar + node.GPG,
		Actions: actions,
		States:  states,
	}

	if e.cfg.DeduplicateByPlan {
		key := planKey(actions)
		if e.seenPlans[key] {
			return nil
		}
		e.seenPlans[key] = true
	}

	result.Plans = append(result.Plans, plan)
	e.stats.PlansEmitted.Inc()
	e.log.Info("plan emitted", "index", plan.Index, "cost", plan.Cost, "length", len(plan.Actions))

	if e.cfg.DumpPlans && e.sink != nil {
		if err := e.sink.OnPlan(plan); err != nil {
			return fmt.Errorf("kstar: plan sink rejected plan %d: %w", plan.Index, err)
		}
	}
	return nil
}

func planKey(actions []Action) string {
	var b strings.Builder
	for _, a := range actions {
		fmt.Fprintf(&b, "%d,", a.ID)
	}
	return b.String()
}
