package greedytp

import (
	"time"

	"github.com/vexflow/fusionopt/fnmodel"
	"github.com/vexflow/fusionopt/fusionresult"
	"github.com/vexflow/fusionopt/metrics"
	"github.com/vexflow/fusionopt/minwcut"
)

// Name is the Result.Name this algorithm reports.
const Name = "GreedyTreePartitioning"

// GreedyTreePartitioning seeds groups from the first feasible critical-path
// cut set phase A finds (fewest merged edges, lexicographically first choice;
// edge weights are not consulted), assigns every other function to its dominating
// barrier (phase B), then runs MinWCutHeuristic's merge loop over the
// remaining edges — those not already in the initial cut set — under the
// same memory rule.
func GreedyTreePartitioning(app *fnmodel.Application) fusionresult.Result {
	start := time.Now()

	cutSet, ok := seedCut(app)
	if !ok {
		return fusionresult.Infeasible(Name, fusionresult.ElapsedMS(start), "critical path exceeds max_latency_ms even fully fused")
	}

	seeded := seedGroups(app, cutSet)
	gs := minwcut.NewGroupSet(seeded)

	cut := make(map[[2]string]bool, len(cutSet))
	for _, e := range cutSet {
		cut[[2]string{e.Parent.ID, e.Child.ID}] = true
	}

	edges := minwcut.CollectEdges(app)
	mergeable := edges[:0:0]
	for _, e := range edges {
		if cut[[2]string{e.Parent.ID, e.Child.ID}] {
			continue
		}
		mergeable = append(mergeable, e)
	}
	minwcut.SortDescending(mergeable)
	minwcut.MergeByDescendingWeight(gs, mergeable, app.MaxMemoryMB)

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
