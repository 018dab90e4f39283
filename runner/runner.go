package runner

import (
	"context"
	"fmt"
	"sort"

	"github.com/vexflow/fusionopt/costlesscsp"
	"github.com/vexflow/fusionopt/fnmodel"
	"github.com/vexflow/fusionopt/fusionresult"
	"github.com/vexflow/fusionopt/greedytp"
	"github.com/vexflow/fusionopt/milp"
	"github.com/vexflow/fusionopt/minwcut"
	"github.com/vexflow/fusionopt/mtxilp"
	"github.com/vexflow/fusionopt/nofusion"
)

// Run invokes every fusion algorithm on app in the fixed order NoFusion,
// Singleton, MinWCutHeuristic, GreedyTreePartitioning, CostlessCSP, MtxILP,
// guarding each call so a panic is recovered into a category-4 infeasible
// result rather than escaping. Results are returned sorted by
// (¬feasible, cost ascending); solver is the milp.Solver capability MtxILP
// is built on.
func Run(ctx context.Context, app *fnmodel.Application, solver milp.Solver) []fusionresult.Result {
	steps := []struct {
		name string
		run  func() fusionresult.Result
	}{
		{nofusion.Name, func() fusionresult.Result { return nofusion.NoFusion(app) }},
		{nofusion.SingletonName, func() fusionresult.Result { return nofusion.Singleton(app) }},
		{minwcut.Name, func() fusionresult.Result { return minwcut.MinWCutHeuristic(app) }},
		{greedytp.Name, func() fusionresult.Result { return greedytp.GreedyTreePartitioning(app) }},
		{costlesscsp.Name, func() fusionresult.Result { return costlesscsp.CostlessCSP(app) }},
		{mtxilp.Name, func() fusionresult.Result { return mtxilp.MtxILP(ctx, app, solver) }},
	}

	results := make([]fusionresult.Result, len(steps))
	for i, step := range steps {
		results[i] = runSafely(step.name, step.run)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Feasible != results[j].Feasible {
			return results[i].Feasible
		}
		return results[i].Cost < results[j].Cost
	})

	return results
}

// runSafely invokes fn and recovers any panic into a category-4 infeasible
// Result carrying the panic value as its error message, per §4.8/§7.4.
func runSafely(name string, fn func() fusionresult.Result) (result fusionresult.Result) {
	defer func() {
		if r := recover(); r != nil {
			result = fusionresult.Infeasible(name, 0, fmt.Sprintf("algorithm fault: %v", r))
		}
	}()
	return fn()
}
