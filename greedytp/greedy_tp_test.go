package greedytp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vexflow/fusionopt/fnmodel"
	"github.com/vexflow/fusionopt/greedytp"
)

func chainApp(t *testing.T, maxLatency int64, hop int64) *fnmodel.Application {
	t.Helper()
	a := fnmodel.NewFunction("A", 256, 100)
	b := fnmodel.NewFunction("B", 256, 100)
	c := fnmodel.NewFunction("C", 256, 100)
	a.AddChild(b, 1<<30)
	b.AddChild(c, 1<<30)
	app, err := fnmodel.NewApplication("s1", []*fnmodel.Function{a, b, c}, []string{"A", "B", "C"}, 1024, maxLatency, hop)
	require.NoError(t, err)
	return app
}

func memberIDs(g *fnmodel.CompositeGroup) map[string]bool {
	set := make(map[string]bool, len(g.Members))
	for _, f := range g.Members {
		set[f.ID] = true
	}
	return set
}

// TestGreedyTP_FullFusionWhenOnlyFullMergeFits mirrors S1: the chain's base
// latency (300) plus any cut hop pushes past max_latency_ms (310) except
// when every critical-path edge is merged (k=2, zero cut edges, 300<=310).
func TestGreedyTP_FullFusionWhenOnlyFullMergeFits(t *testing.T) {
	app := chainApp(t, 310, 20)
	res := greedytp.GreedyTreePartitioning(app)

	require.True(t, res.Feasible)
	require.Len(t, res.Groups, 1)
	assert.Equal(t, map[string]bool{"A": true, "B": true, "C": true}, memberIDs(res.Groups[0]))
}

// TestGreedyTP_FourChainCutsCheapestPrefix mirrors S4's shape: A->B->C->D,
// runtime 50 each, hop=20, max_latency=230. base_latency=200; k=2 (merge
// AB,BC) is the first feasible k (200+20=220<=230), leaving CD cut.
func TestGreedyTP_FourChainCutsCheapestPrefix(t *testing.T) {
	a := fnmodel.NewFunction("A", 256, 50)
	b := fnmodel.NewFunction("B", 256, 50)
	c := fnmodel.NewFunction("C", 256, 50)
	d := fnmodel.NewFunction("D", 256, 50)
	a.AddChild(b, 1<<27)
	b.AddChild(c, 5<<30)
	c.AddChild(d, 1<<27)
	app, err := fnmodel.NewApplication("s4", []*fnmodel.Function{a, b, c, d}, []string{"A", "B", "C", "D"}, 1024, 230, 20)
	require.NoError(t, err)

	res := greedytp.GreedyTreePartitioning(app)
	require.True(t, res.Feasible)
	require.Len(t, res.Groups, 2)

	sets := make([]map[string]bool, len(res.Groups))
	for i, g := range res.Groups {
		sets[i] = memberIDs(g)
	}
	assert.Contains(t, sets, map[string]bool{"A": true, "B": true, "C": true})
	assert.Contains(t, sets, map[string]bool{"D": true})
}

// TestGreedyTP_InfeasibleWhenChainExceedsLatencyEvenFused mirrors S5: the
// chain's own runtime total already exceeds max_latency_ms, so phase A
// cannot find any feasible k and the algorithm returns infeasible directly.
func TestGreedyTP_InfeasibleWhenChainExceedsLatencyEvenFused(t *testing.T) {
	app := chainApp(t, 50, 5) // base_latency=300 > max_latency=50
	res := greedytp.GreedyTreePartitioning(app)

	assert.False(t, res.Feasible)
	assert.Nil(t, res.Groups)
	assert.NotEmpty(t, res.Error)
}
