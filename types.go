package kstar

// StateID is an opaque, dense integer handle for a state, minted by the
// state registry the Task implementation owns. The core never inspects a
// StateID beyond equality and uses it as a map key.
type StateID int64

// NoState is the zero value used where a StateID is not yet known.
const NoState StateID = -1

// Action is a single operator application. Cost must be non-negative;
// negative-cost actions violate the sidetrack invariant (δ >= 0) and are
// rejected by Run's startup validation (see ErrTaskInvalid) before the
// search begins.
type Action struct {
	ID   int64
	Name string
	Cost int64
}

// Task is the external collaborator that supplies the transition system.
// Implementations are expected to own state deduplication (two calls to
// Apply that reach "the same" state must return the same StateID).
type Task interface {
	InitialState() StateID
	IsGoal(s StateID) bool
	ApplicableActions(s StateID) []Action
	Apply(s StateID, a Action) StateID
}

// Heuristic is the external collaborator that estimates distance to the
// goal. CostInfinite signals a proven dead end.
type Heuristic interface {
	H(s StateID) int64
	IsDeadEnd(s StateID) bool
}

// CostInfinite represents an infinite heuristic estimate (dead end).
const CostInfinite int64 = 1<<63 - 1

// OpenList is the external collaborator selecting which open state A*
// expands next. The core ships DefaultOpenList (openlist.go) as a concrete
// binary-heap implementation, but any priority-queue policy can be plugged
// in by implementing this interface.
type OpenList interface {
	Insert(s StateID, key int64)
	PopMin() (StateID, bool)
	Remove(s StateID)
	MinKey() (int64, bool)
	Len() int
}

// Plan is one fully reconstructed solution: an ordered action sequence and
// the state sequence it visits, starting at the task's initial state and
// ending in a goal state.
type Plan struct {
	Index  int        // 1-based emission index
	Cost   int64      // total cost, == sum of Actions[i].Cost
	Actions []Action
	States  []StateID
}

// PlanSink is the external collaborator that receives accepted plans, in
// emission order. The core ships JSONFileSink (sink.go) as a default.
type PlanSink interface {
	OnPlan(p Plan) error
}

// Verbosity controls how much the Engine logs via slog during a run.
type Verbosity int

const (
	Silent Verbosity = iota
	Normal
	Verbose
	Debug
)

func (v Verbosity) String() string {
	switch v {
	case Silent:
		return "silent"
	case Normal:
		return "normal"
	case Verbose:
		return "verbose"
	case Debug:
		return "debug"
	default:
		return "unknown"
	}
}
