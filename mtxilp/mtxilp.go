package mtxilp

import (
	"context"
	"fmt"
	"time"

	"github.com/vexflow/fusionopt/fnmodel"
	"github.com/vexflow/fusionopt/fusionresult"
	"github.com/vexflow/fusionopt/metrics"
	"github.com/vexflow/fusionopt/milp"
)

// Name is the Result.Name this algorithm reports.
const Name = "MtxILP"

// SolveTimeout is the wall-clock budget given to the solver (§4.7).
const SolveTimeout = 60 * time.Second

// MtxILP formulates the exact binary integer program for app and solves it
// with solver under a 60-second wall-clock budget derived from ctx. On any
// status other than Optimal, it returns an infeasible Result carrying the
// status as its error string.
func MtxILP(ctx context.Context, app *fnmodel.Application, solver milp.Solver) fusionresult.Result {
	start := time.Now()

	solveCtx, cancel := context.WithTimeout(ctx, SolveTimeout)
	defer cancel()

	problem, form := buildProblem(app)
	sol, err := solver.Solve(solveCtx, problem)
	if err != nil {
		return fusionresult.Infeasible(Name, fusionresult.ElapsedMS(start), fmt.Sprintf("solver error: %v", err))
	}
	if sol.Status != milp.StatusOptimal {
		return fusionresult.Infeasible(Name, fusionresult.ElapsedMS(start), sol.Status.String())
	}

	groupsOfFuncs := decodeGroups(form, sol)
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

// decodeGroups scans every potential root b with x[b,b]=1 and collects every
// f with x[b,f]=1, in original function order, reproducing the §4.7
// materialization step.
func decodeGroups(f *formulation, sol milp.Solution) [][]*fnmodel.Function {
	var groups [][]*fnmodel.Function
	for b := 0; b < f.n; b++ {
		if sol.Values[xVar(f, b, b)] != 1 {
			continue
		}
		members := make([]*fnmodel.Function, 0, f.n)
		for fn := 0; fn < f.n; fn++ {
			if sol.Values[xVar(f, b, fn)] == 1 {
				members = append(members, f.funcs[fn])
			}
		}
		groups = append(groups, members)
	}
	return groups
}
