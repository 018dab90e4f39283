package minwcut

import (
	"time"

	"github.com/vexflow/fusionopt/fnmodel"
	"github.com/vexflow/fusionopt/fusionresult"
	"github.com/vexflow/fusionopt/metrics"
)

// Name is the Result.Name this algorithm reports.
const Name = "MinWCutHeuristic"

// MinWCutHeuristic starts from NoFusion (one group per function) and
// greedily merges the heaviest-weight edges first, so long as the memory
// constraint on the two merging groups is respected. Latency is ignored
// during merging; it is judged post-hoc by the metrics package.
func MinWCutHeuristic(app *fnmodel.Application) fusionresult.Result {
	start := time.Now()

	initial := make([][]*fnmodel.Function, len(app.Functions))
	for i, f := range app.Functions {
		initial[i] = []*fnmodel.Function{f}
	}
	gs := NewGroupSet(initial)

	edges := CollectEdges(app)
	SortDescending(edges)
	MergeByDescendingWeight(gs, edges, app.MaxMemoryMB)

	groupsOfFuncs := gs.Groups()
	m := metrics.Evaluate(groupsOfFuncs, app)

	groups := make([]*fnmodel.CompositeGroup, len(groupsOfFuncs))
	for i, members := range groupsOfFuncs {
		groups[i] = fnmodel.NewCompositeGroup(members)
	}

	return fusionresult.Result{
		Name:      Name,
		Groups:    groups,
		Cost:      m.Cost,
		Latency:   m.Latency,
		Feasible:  m.Feasible,
		RuntimeMS: fusionresult.ElapsedMS(start),
	}
}
