// Package fusionresult defines the Result record produced by every fusion
// algorithm and consumed by the Runner. It is split into its own package so
// that runner and the algorithm packages can both depend on it without an
// import cycle.
package fusionresult

import (
	"math"
	"time"

	"github.com/vexflow/fusionopt/fnmodel"
)

// Result is the external-interface record (§6) each algorithm returns:
// name, the chosen partitioning, its judged cost/latency/feasibility, the
// algorithm's own wall-clock runtime, and an optional error string for
// infeasible/failed outcomes.
type Result struct {
	Name string

	// Groups is nil for results built by Infeasible. A partitioning that the
	// metrics judge marks infeasible keeps its groups.
	Groups []*fnmodel.CompositeGroup

	Cost      float64
	Latency   float64
	Feasible  bool
	RuntimeMS float64
	Error     string
}

// ElapsedMS converts the wall-clock duration since start into the
// fractional-millisecond float64 every algorithm reports as RuntimeMS. The
// clock starts on algorithm entry and stops just before return, including
// the metrics re-judgement step, per §5.
func ElapsedMS(start time.Time) float64 {
	return float64(time.Since(start).Nanoseconds()) / 1e6
}

// Infeasible builds a category-2/3/4 result (§7): no groups, cost and
// latency at +Inf, feasible=false, carrying a descriptive error and the
// algorithm's elapsed wall-clock runtime.
func Infeasible(name string, runtimeMS float64, errMsg string) Result {
	return Result{
		Name:      name,
		Cost:      math.Inf(1),
		Latency:   math.Inf(1),
		Feasible:  false,
		RuntimeMS: runtimeMS,
		Error:     errMsg,
	}
}
