package fnmodel

import "fmt"

// defaultNetworkHopDelayMS is the model-level default hop delay. NewApplication
// does not apply it: a networkHopDelayMS of 0 is kept as 0. The builder
// package applies its own constraint default (builder.DefaultNetworkHopDelayMS,
// 20ms) before calling NewApplication.
const defaultNetworkHopDelayMS = 10

// Application is the immutable-after-construction container for a fusion
// problem instance: every function, the chain that determines end-to-end
// latency, and the memory/latency/network constraints the judge enforces.
//
// Application may be Enriched once (see the builder package), which
// replaces BaselineRuntimeMS/MemoryMB on existing functions; after that it
// is logically frozen. No algorithm mutates an Application.
type Application struct {
	Name              string
	Functions         []*Function
	CriticalPathIDs   []string
	MaxMemoryMB       int
	MaxLatencyMS      int64
	NetworkHopDelayMS int64

	functionsByID         map[string]*Function
	root                  *Function
	criticalPathFunctions []*Function
}

// NewApplication validates and constructs an Application. It enforces:
//   - at least one function, all ids unique;
//   - exactly one root (a function with nil Parent);
//   - every function reachable from the root (single tree, no orphans);
//   - no cycles in the parent/child graph;
//   - every critical-path id resolves to a function, and consecutive ids
//     are connected by a parent→child edge (the critical path is a path in
//     the graph).
//
// networkHopDelayMS of 0 is taken literally (a caller who wants a non-zero
// default must pass it explicitly; builder.Build resolves an omitted value to
// builder.DefaultNetworkHopDelayMS).
func NewApplication(name string, functions []*Function, criticalPathIDs []string, maxMemoryMB int, maxLatencyMS int64, networkHopDelayMS int64) (*Application, error) {
	if len(functions) == 0 {
		return nil, ErrNoFunctions
	}

	byID := make(map[string]*Function, len(functions))
	for _, f := range functions {
		if _, dup := byID[f.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateFunctionID, f.ID)
		}
		byID[f.ID] = f
	}

	root, err := findRoot(functions)
	if err != nil {
		return nil, err
	}

	if err := checkAcyclicAndReachable(root, byID); err != nil {
		return nil, err
	}

	criticalPathFuncs := make([]*Function, 0, len(criticalPathIDs))
	for _, id := range criticalPathIDs {
		f, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCriticalPathID, id)
		}
		criticalPathFuncs = append(criticalPathFuncs, f)
	}
	for i := 0; i+1 < len(criticalPathFuncs); i++ {
		parent, child := criticalPathFuncs[i], criticalPathFuncs[i+1]
		if _, isEdge := parent.OutEdges[child.ID]; !isEdge || child.Parent != parent {
			return nil, fmt.Errorf("%w: %q -> %q", ErrCriticalPathNotChain, parent.ID, child.ID)
		}
	}

	return &Application{
		Name:                  name,
		Functions:             functions,
		CriticalPathIDs:       criticalPathIDs,
		MaxMemoryMB:           maxMemoryMB,
		MaxLatencyMS:          maxLatencyMS,
		NetworkHopDelayMS:     networkHopDelayMS,
		functionsByID:         byID,
		root:                  root,
		criticalPathFunctions: criticalPathFuncs,
	}, nil
}

// FunctionsMap returns the id→function index derived at construction time.
func (a *Application) FunctionsMap() map[string]*Function {
	return a.functionsByID
}

// RootFunction returns the unique function with no parent.
func (a *Application) RootFunction() *Function {
	return a.root
}

// CriticalPathFunctions returns the resolved critical-path chain in order.
func (a *Application) CriticalPathFunctions() []*Function {
	return a.criticalPathFunctions
}

func findRoot(functions []*Function) (*Function, error) {
	var root *Function
	for _, f := range functions {
		if f.Parent == nil {
			if root != nil {
				return nil, fmt.Errorf("%w: %q and %q", ErrMultipleRoots, root.ID, f.ID)
			}
			root = f
		}
	}
	if root == nil {
		return nil, ErrNoRoot
	}
	return root, nil
}

// checkAcyclicAndReachable walks the tree from root via Children, detecting
// revisits (cycle) and confirming full coverage of byID (reachability).
func checkAcyclicAndReachable(root *Function, byID map[string]*Function) error {
	visited := make(map[string]bool, len(byID))
	stack := []*Function{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[n.ID] {
			return fmt.Errorf("%w: %q", ErrCycleDetected, n.ID)
		}
		visited[n.ID] = true
		stack = append(stack, n.Children...)
	}
	for id := range byID {
		if !visited[id] {
			return fmt.Errorf("%w: %q", ErrUnreachableFunction, id)
		}
	}
	return nil
}
