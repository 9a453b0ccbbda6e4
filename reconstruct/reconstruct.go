// Package reconstruct implements the plan reconstructor of spec §4.4: it
// turns a terminal pathgraph.Node into the actual action and state
// sequence of a plan.
//
// It is generic over the state type S and action type A exactly the way
// the teacher's astar package is generic over node type (api.go's
// Graph[NodeType]) — the reconstructor never inspects S or A beyond
// equality on S, so it stays reusable independent of the parent module's
// concrete StateID/Action types.
package reconstruct

import "github.com/kstar-go/kstar/pathgraph"

// SapInfo is everything the reconstructor needs to know about one SAP: the
// state the detour departs from, the action taken, and the state it lands
// in.
type SapInfo[S comparable, A any] struct {
	From   S
	Action A
	To     S
}

// SapLookup resolves a SAP id (pathgraph.Node.SapID) to its SapInfo.
type SapLookup[S comparable, A any] func(sapID int64) SapInfo[S, A]

// TreePathLookup returns the shortest-path-tree walk from the task's
// initial state down to target, inclusive of both ends: len(states) ==
// len(actions)+1, states[0] == the initial state, states[len-1] == target.
type TreePathLookup[S comparable, A any] func(target S) (actions []A, states []S)

// Reconstructor rebuilds plans from Dijkstra nodes (spec §4.4).
type Reconstructor[S comparable, A any] struct {
	sapInfo  SapLookup[S, A]
	treePath TreePathLookup[S, A]
	initial  S
	goal     S
}

// New creates a reconstructor for a task with the given initial and goal
// states.
func New[S comparable, A any](initial, goal S, sapInfo SapLookup[S, A], treePath TreePathLookup[S, A]) *Reconstructor[S, A] {
	return &Reconstructor[S, A]{sapInfo: sapInfo, treePath: treePath, initial: initial, goal: goal}
}

// CrossSaps performs the Dijkstra traceback (spec §4.4 "Dijkstra
// traceback") and extracts the ordered list of actually-committed SAP ids,
// from goal-side to root-side: element 0 is the last sidetrack taken along
// the path graph from the synthetic root R (nearest the goal), the final
// element is the first one taken (nearest the tree root).
//
// A heap-structural run within one H_T is a sequence of alternative
// sidetrack candidates at that state; the candidate actually committed is
// the one the run stops at, not the one it starts from. That is: cur's SAP
// is committed when cur is the terminal node n itself (the detour the plan
// ends on), or when the node one step closer to n — the node cur's own
// cross edge led to — shows the run continuing into a different H_T
// (child.CrossEdge == true, i.e. cur is the source of that cross edge).
func (r *Reconstructor[S, A]) CrossSaps(n *pathgraph.Node) []int64 {
	var saps []int64
	var child *pathgraph.Node
	for cur := n; cur != nil && !cur.IsRoot; cur = cur.ParentNode {
		if cur == n || (child != nil && child.CrossEdge) {
			saps = append(saps, cur.SapID)
		}
		child = cur
	}
	return saps
}

// Reconstruct materializes the action and state sequence for a terminal
// Dijkstra node (spec §4.4 "Action sequence materialization").
func (r *Reconstructor[S, A]) Reconstruct(n *pathgraph.Node) (actions []A, states []S) {
	crossSaps := r.CrossSaps(n)

	states = append(states, r.initial)
	cur := r.initial

	for i := len(crossSaps) - 1; i >= 0; i-- {
		info := r.sapInfo(crossSaps[i])
		segActions, segStates := r.treePath(info.From)
		j := indexOf(segStates, cur)
		actions = append(actions, segActions[j:]...)
		states = append(states, segStates[j+1:]...)

		actions = append(actions, info.Action)
		states = append(states, info.To)
		cur = info.To
	}

	segActions, segStates := r.treePath(r.goal)
	j := indexOf(segStates, cur)
	actions = append(actions, segActions[j:]...)
	states = append(states, segStates[j+1:]...)

	return actions, states
}

// IsSimple reports whether a state sequence visits no state twice (spec
// §4.4 "Simplicity check").
func IsSimple[S comparable](states []S) bool {
	seen := make(map[S]struct{}, len(states))
	for _, s := range states {
		if _, dup := seen[s]; dup {
			return false
		}
		seen[s] = struct{}{}
	}
	return true
}

func indexOf[S comparable](haystack []S, needle S) int {
	for i, s := range haystack {
		if s == needle {
			return i
		}
	}
	return 0
}
