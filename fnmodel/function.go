package fnmodel

import "math"

// bytesPerGiB is the binary gibibyte used for egress pricing (2^30 bytes).
const bytesPerGiB = 1024 * 1024 * 1024

// egressPricePerGiB is the contractual USD cost per GiB of inter-function
// data transfer.
const egressPricePerGiB = 0.01

// gbSecondPrice is the contractual USD price per GB-second of provisioned
// execution.
const gbSecondPrice = 0.00001667

// Function is an atomic serverless unit: a node in the application's call
// tree with memory, a load-adjusted runtime, and outgoing data edges to its
// children.
//
// Identity is the ID alone: two functions with equal IDs are the same
// function. Parent is a back-reference, not an owning pointer — Children is
// the sole ownership path used by traversal and Application construction.
type Function struct {
	ID                string
	MemoryMB          int
	BaselineRuntimeMS int64
	LoadFactor        float64 // default 1.0

	// OutEdges maps child id to data_bytes transferred on that edge.
	OutEdges map[string]int64

	// Children is insertion-ordered and stable; order is observable in the
	// BFS sequencing of Singleton and in CompositeGroup member order.
	Children []*Function

	// Parent is nil for the root function.
	Parent *Function
}

// NewFunction returns a Function with LoadFactor defaulted to 1.0 and an
// initialized OutEdges map.
func NewFunction(id string, memoryMB int, baselineRuntimeMS int64) *Function {
	return &Function{
		ID:                id,
		MemoryMB:          memoryMB,
		BaselineRuntimeMS: baselineRuntimeMS,
		LoadFactor:        1.0,
		OutEdges:          make(map[string]int64),
	}
}

// RuntimeMS is the load-adjusted runtime: round(baseline_runtime_ms * load_factor).
func (f *Function) RuntimeMS() int64 {
	factor := f.LoadFactor
	if factor == 0 {
		factor = 1.0
	}
	return int64(math.Round(float64(f.BaselineRuntimeMS) * factor))
}

// DataTransferCost is the USD egress cost of sending data from f to the
// named child over f's out edge, or 0 if no such edge exists.
func (f *Function) DataTransferCost(childID string) float64 {
	bytesOut := f.OutEdges[childID]
	return (float64(bytesOut) / bytesPerGiB) * egressPricePerGiB
}

// ExecutionCost is the USD cost of one invocation of f alone, billed in
// GB-seconds at the load-adjusted runtime.
func (f *Function) ExecutionCost() float64 {
	gbSeconds := (float64(f.MemoryMB) / 1024) * (float64(f.RuntimeMS()) / 1000)
	return gbSecondPrice * gbSeconds
}

// AddChild wires f→child as parent/child and records the data_bytes
// transferred on that edge. It is the sole way to build tree edges; callers
// must not set Parent/Children directly.
func (f *Function) AddChild(child *Function, dataBytes int64) {
	f.Children = append(f.Children, child)
	child.Parent = f
	if f.OutEdges == nil {
		f.OutEdges = make(map[string]int64)
	}
	f.OutEdges[child.ID] = dataBytes
}
