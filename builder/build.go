package builder

import (
	"fmt"
	"sort"

	"github.com/vexflow/fusionopt/fnmodel"
)

// Build performs §4.9's two-pass construction: first every function is
// created from its own spec (falling back through provider defaults to the
// platform fallback), then topology wires parent→child edges. Iteration
// order over the config's maps is not itself meaningful, so ids are sorted
// lexicographically before use — the only way to get the teacher's
// determinism policy ("same inputs ⇒ identical graphs") out of an
// unordered-map source format.
func Build(name string, cfg Config) (*fnmodel.Application, error) {
	if len(cfg.Functions) == 0 {
		return nil, ErrNoFunctionsConfigured
	}

	ids := make([]string, 0, len(cfg.Functions))
	for id := range cfg.Functions {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	functions := make([]*fnmodel.Function, 0, len(ids))
	byID := make(map[string]*fnmodel.Function, len(ids))
	for _, id := range ids {
		spec := cfg.Functions[id]
		f := fnmodel.NewFunction(id, resolvedMemoryMB(spec, cfg.ProviderDefaults), resolvedBaselineRuntimeMS(spec, cfg.ProviderDefaults))
		functions = append(functions, f)
		byID[id] = f
	}

	parentIDs := make([]string, 0, len(cfg.Topology))
	for id := range cfg.Topology {
		parentIDs = append(parentIDs, id)
	}
	sort.Strings(parentIDs)

	for _, parentID := range parentIDs {
		parent, ok := byID[parentID]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTopologyParent, parentID)
		}
		childIDs := make([]string, 0, len(cfg.Topology[parentID].Children))
		for childID := range cfg.Topology[parentID].Children {
			childIDs = append(childIDs, childID)
		}
		sort.Strings(childIDs)
		for _, childID := range childIDs {
			child, ok := byID[childID]
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownTopologyChild, childID)
			}
			parent.AddChild(child, cfg.Topology[parentID].Children[childID])
		}
	}

	constraints := cfg.Constraints.resolved()
	return fnmodel.NewApplication(name, functions, cfg.CriticalPath, constraints.MaxMemoryMB, constraints.MaxLatencyMS, constraints.NetworkHopDelayMS)
}
