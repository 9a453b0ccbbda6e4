package kstar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kstar "github.com/kstar-go/kstar"
	"github.com/kstar-go/kstar/examples/toytask"
)

func newDriver(task kstar.Task, heuristic kstar.Heuristic, reopen bool) (*kstar.AStarDriver, *kstar.HinStore, *kstar.TreeStore) {
	tree := kstar.NewTreeStore()
	hin := kstar.NewHinStore()
	treeHeap := kstar.NewTreeHeapStore(tree, hin)
	arena := kstar.NewSapArenaForTest()
	open := kstar.NewDefaultOpenList()
	d := kstar.NewAStarDriver(task, heuristic, open, tree, hin, treeHeap, arena, reopen, 0, nil, kstar.NewStats())
	return d, hin, tree
}

func TestStepClosesRootFirst(t *testing.T) {
	task := toytask.Chain()
	d, _, tree := newDriver(task, toytask.ZeroHeuristic{}, true)

	status, err := d.Step(kstar.CostInfinite)
	require.NoError(t, err)
	assert.Equal(t, kstar.InProgress, status)
	n, ok := tree.Get(task.InitialState())
	require.True(t, ok)
	assert.Equal(t, kstar.Closed, n.Status)
}

func TestStepReturnsSolvedOnFirstGoalClosure(t *testing.T) {
	task := toytask.Chain()
	d, _, _ := newDriver(task, toytask.ZeroHeuristic{}, true)

	var status kstar.AStarStatus
	var err error
	for i := 0; i < 10; i++ {
		status, err = d.Step(kstar.CostInfinite)
		require.NoError(t, err)
		if status == kstar.Solved {
			break
		}
	}
	assert.Equal(t, kstar.Solved, status)
	cStar, hasSolution := d.COptimal()
	assert.True(t, hasSolution)
	assert.Equal(t, int64(3), cStar)
}

func TestParallelEdgeRecordsSidetrack(t *testing.T) {
	task := toytask.ParallelEdges()
	d, hin, _ := newDriver(task, toytask.ZeroHeuristic{}, true)

	for i := 0; i < 5; i++ {
		status, err := d.Step(kstar.CostInfinite)
		require.NoError(t, err)
		if status == kstar.Solved {
			break
		}
	}

	goal := task.Apply(task.InitialState(), task.ApplicableActions(task.InitialState())[0])
	h := hin.Get(goal)
	require.NotNil(t, h)
	assert.Equal(t, 1, h.Len())
}

func TestExhaustedWhenOpenListEmpties(t *testing.T) {
	task := toytask.Unsolvable()
	d, _, _ := newDriver(task, toytask.ZeroHeuristic{}, true)

	var status kstar.AStarStatus
	var err error
	for i := 0; i < 10 && status != kstar.Exhausted; i++ {
		status, err = d.Step(kstar.CostInfinite)
		require.NoError(t, err)
	}
	assert.Equal(t, kstar.Exhausted, status)
	_, hasSolution := d.COptimal()
	assert.False(t, hasSolution)
}

func TestInterruptGateInertBeforeSolution(t *testing.T) {
	task := toytask.Chain()
	d, _, _ := newDriver(task, toytask.ZeroHeuristic{}, true)
	assert.False(t, d.ShouldInterruptForTest(0))
}
