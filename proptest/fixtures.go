package proptest

import (
	"fmt"

	"github.com/vexflow/fusionopt/fnmodel"
)

// ChainSpec is the randomized shape a property test generator produces: a
// linear chain of n functions, each with its own memory/runtime, connected
// by edges of the given weight, judged against the given constraints.
type ChainSpec struct {
	MemoryMB          []int
	RuntimeMS         []int64
	EdgeBytes         []int64
	MaxMemoryMB       int
	MaxLatencyMS      int64
	NetworkHopDelayMS int64
}

// BuildChain constructs a linear-chain Application f0->f1->...->f(n-1) from
// a ChainSpec. len(MemoryMB) and len(RuntimeMS) must equal n;
// len(EdgeBytes) must equal n-1.
func BuildChain(name string, spec ChainSpec) (*fnmodel.Application, error) {
	n := len(spec.MemoryMB)
	if n == 0 || len(spec.RuntimeMS) != n || len(spec.EdgeBytes) != n-1 {
		return nil, fmt.Errorf("proptest: malformed chain spec (n=%d)", n)
	}

	functions := make([]*fnmodel.Function, n)
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("f%d", i)
		ids[i] = id
		functions[i] = fnmodel.NewFunction(id, spec.MemoryMB[i], spec.RuntimeMS[i])
	}
	for i := 0; i < n-1; i++ {
		functions[i].AddChild(functions[i+1], spec.EdgeBytes[i])
	}

	return fnmodel.NewApplication(name, functions, ids, spec.MaxMemoryMB, spec.MaxLatencyMS, spec.NetworkHopDelayMS)
}

// ScaleLoadFactor multiplies every function's LoadFactor by alpha, covering
// P6's "loaded" variant of an Application built from the same ChainSpec.
func ScaleLoadFactor(app *fnmodel.Application, alpha float64) {
	for _, f := range app.Functions {
		f.LoadFactor *= alpha
	}
}
