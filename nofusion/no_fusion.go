package nofusion

import (
	"time"

	"github.com/vexflow/fusionopt/fnmodel"
	"github.com/vexflow/fusionopt/fusionresult"
	"github.com/vexflow/fusionopt/metrics"
)

// Name is the Result.Name this algorithm reports.
const Name = "NoFusion"

// NoFusion returns one singleton group per function — the zero-fusion
// baseline. It is always complete; feasibility is whatever the judge says.
func NoFusion(app *fnmodel.Application) fusionresult.Result {
	start := time.Now()

	groupsOfFuncs := make([][]*fnmodel.Function, len(app.Functions))
	for i, f := range app.Functions {
		groupsOfFuncs[i] = []*fnmodel.Function{f}
	}

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
