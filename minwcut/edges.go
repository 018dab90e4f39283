package minwcut

import (
	"sort"

	"github.com/vexflow/fusionopt/fnmodel"
)

// Edge is a candidate parent→child merge, weighted by the egress cost of
// fusing the two functions it connects.
type Edge struct {
	Parent *fnmodel.Function
	Child  *fnmodel.Function
	Weight float64
}

// CollectEdges walks every function's children and returns one Edge per
// parent→child pair, in the tree's natural (parent-major, then child
// insertion) order — the order SortDescending's stable tie-break relies on.
func CollectEdges(app *fnmodel.Application) []Edge {
	edges := make([]Edge, 0, len(app.Functions))
	for _, f := range app.Functions {
		for _, child := range f.Children {
			edges = append(edges, Edge{
				Parent: f,
				Child:  child,
				Weight: f.DataTransferCost(child.ID),
			})
		}
	}
	return edges
}

// SortDescending orders edges by descending Weight, tie-broken by original
// insertion order (sort.SliceStable on a pre-built slice achieves this,
// mirroring the teacher's prim_kruskal.Kruskal sort pattern).
func SortDescending(edges []Edge) {
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight > edges[j].Weight
	})
}

// MergeByDescendingWeight traverses edges in order and, for each one with a
// positive weight whose endpoints are in different groups and whose combined
// group memory still fits within maxMemoryMB, merges the child's group into
// the parent's. Zero-weight edges are never merged. It mutates gs in place.
// Edges must already be sorted (see SortDescending).
func MergeByDescendingWeight(gs *GroupSet, edges []Edge, maxMemoryMB int) {
	for _, e := range edges {
		if e.Weight <= 0 {
			continue
		}
		parentIdx, parentKnown := gs.IndexOf(e.Parent.ID)
		childIdx, childKnown := gs.IndexOf(e.Child.ID)
		if !parentKnown || !childKnown || parentIdx == childIdx {
			continue
		}
		if gs.MemoryOf(parentIdx)+gs.MemoryOf(childIdx) <= maxMemoryMB {
			gs.Merge(parentIdx, childIdx)
		}
	}
}
