package reconstruct

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kstar-go/kstar/pathgraph"
)

// fixture: tree s0 -a-> s1 -b-> s2 -c-> s3(goal). One sidetrack SAP(0):
// from s0, action "shortcut", to s2, i.e. skip straight from s0 to s2.
func fixture() *Reconstructor[string, string] {
	treePath := func(target string) ([]string, []string) {
		full := map[string]struct {
			actions []string
			states  []string
		}{
			"s0": {nil, []string{"s0"}},
			"s1": {[]string{"a"}, []string{"s0", "s1"}},
			"s2": {[]string{"a", "b"}, []string{"s0", "s1", "s2"}},
			"s3": {[]string{"a", "b", "c"}, []string{"s0", "s1", "s2", "s3"}},
		}
		e := full[target]
		return e.actions, e.states
	}
	sapInfo := func(sapID int64) SapInfo[string, string] {
		return SapInfo[string, string]{From: "s0", Action: "shortcut", To: "s2"}
	}
	return New[string, string]("s0", "s3", sapInfo, treePath)
}

func TestReconstructTreePathOnly(t *testing.T) {
	r := fixture()
	// A node with no cross edges at all: root of the path graph itself.
	root := &pathgraph.Node{IsRoot: true}

	actions, states := r.Reconstruct(root)
	assert.Equal(t, []string{"a", "b", "c"}, actions)
	assert.Equal(t, []string{"s0", "s1", "s2", "s3"}, states)
}

func TestReconstructWithOneSidetrack(t *testing.T) {
	r := fixture()
	root := &pathgraph.Node{IsRoot: true}
	n := &pathgraph.Node{SapID: 0, CrossEdge: true, ParentNode: root}

	actions, states := r.Reconstruct(n)
	// walk s0->from(sap)=s0 (empty), take shortcut to s2, then walk s2->s3.
	assert.Equal(t, []string{"shortcut", "c"}, actions)
	assert.Equal(t, []string{"s0", "s2", "s3"}, states)
}

func TestCrossSapsOrderGoalToRoot(t *testing.T) {
	root := &pathgraph.Node{IsRoot: true}
	n1 := &pathgraph.Node{SapID: 5, CrossEdge: true, ParentNode: root}
	n2 := &pathgraph.Node{SapID: 9, CrossEdge: false, ParentNode: n1}
	n3 := &pathgraph.Node{SapID: 2, CrossEdge: true, ParentNode: n2}

	// n3 is the terminal: its own SAP(2) is committed. n3's incoming edge
	// is a cross edge, so n2 (the source of that cross edge) also commits
	// its SAP(9) — the heap-structural run from n1 to n2 within the same
	// H_T stops at n2, not at its starting point n1, so n1's SAP(5) is a
	// superseded candidate and must not appear.
	r := fixture()
	saps := r.CrossSaps(n3)
	require.Equal(t, []int64{2, 9}, saps)
}

func TestIsSimple(t *testing.T) {
	assert.True(t, IsSimple([]string{"a", "b", "c"}))
	assert.False(t, IsSimple([]string{"a", "b", "a"}))
	assert.True(t, IsSimple([]string{}))
}
