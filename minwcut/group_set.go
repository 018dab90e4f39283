package minwcut

import "github.com/vexflow/fusionopt/fnmodel"

// GroupSet is a mutable partition of functions into ordered groups, used by
// both MinWCutHeuristic and (via its exported Merge helpers) by
// GreedyTreePartitioning's phase B. It tracks each function's current group
// index so that membership lookups during the merge loop are O(1) rather
// than the original source's per-edge O(n) rebuild.
type GroupSet struct {
	groups  [][]*fnmodel.Function
	indexOf map[string]int
}

// NewGroupSet wraps initial groups (e.g. one singleton group per function,
// or GreedyTreePartitioning's barrier-seeded groups) as a GroupSet.
func NewGroupSet(initial [][]*fnmodel.Function) *GroupSet {
	gs := &GroupSet{
		groups:  initial,
		indexOf: make(map[string]int),
	}
	for i, g := range initial {
		for _, f := range g {
			gs.indexOf[f.ID] = i
		}
	}
	return gs
}

// IndexOf returns the group index currently owning id, or false if unknown.
func (gs *GroupSet) IndexOf(id string) (int, bool) {
	idx, ok := gs.indexOf[id]
	return idx, ok
}

// MemoryOf sums MemoryMB over every member currently in group idx. Matches
// the source's behavior of summing over raw member functions rather than
// caching a running total — membership is always a disjoint cover so this
// is correct, not merely expedient.
func (gs *GroupSet) MemoryOf(idx int) int {
	total := 0
	for _, f := range gs.groups[idx] {
		total += f.MemoryMB
	}
	return total
}

// Merge appends childIdx's members onto parentIdx's group and removes
// childIdx from the set, reindexing every moved member and every group that
// shifted position. parentIdx and childIdx must be distinct valid indices.
func (gs *GroupSet) Merge(parentIdx, childIdx int) {
	moved := gs.groups[childIdx]
	gs.groups[parentIdx] = append(gs.groups[parentIdx], moved...)
	for _, f := range moved {
		gs.indexOf[f.ID] = parentIdx
	}

	gs.groups = append(gs.groups[:childIdx], gs.groups[childIdx+1:]...)
	for i := childIdx; i < len(gs.groups); i++ {
		for _, f := range gs.groups[i] {
			gs.indexOf[f.ID] = i
		}
	}
}

// Groups returns the current groups as a slice of member slices.
func (gs *GroupSet) Groups() [][]*fnmodel.Function {
	return gs.groups
}
