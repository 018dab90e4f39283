package costlesscsp

import "github.com/vexflow/fusionopt/fnmodel"

// label is one Pareto-candidate state at a chain position: the accumulated
// cost and latency to reach it, the memory already committed to its last
// (still-open) group, and the group partitioning of chain[0..node] that
// produced it. seq records insertion order, used only to break cost ties in
// the expansion queue.
type label struct {
	node         int
	cost         float64
	latency      float64
	groupMemory  int
	partitioning [][]*fnmodel.Function
	seq          int
}

// dominates reports whether l dominates other: equal or better on both
// objectives (§4.6's dominance rule is non-strict).
func (l label) dominates(other label) bool {
	return l.cost <= other.cost && l.latency <= other.latency
}

// copyGroups returns a shallow copy of the group-slice header so that
// appending to it, or replacing its last element, never mutates a sibling
// label's partitioning.
func copyGroups(groups [][]*fnmodel.Function) [][]*fnmodel.Function {
	out := make([][]*fnmodel.Function, len(groups))
	copy(out, groups)
	return out
}

// withMerged returns a partitioning identical to groups except the last
// group has v appended — a new backing array, so the original's last group
// is untouched.
func withMerged(groups [][]*fnmodel.Function, v *fnmodel.Function) [][]*fnmodel.Function {
	out := copyGroups(groups)
	last := out[len(out)-1]
	extended := make([]*fnmodel.Function, len(last)+1)
	copy(extended, last)
	extended[len(last)] = v
	out[len(out)-1] = extended
	return out
}

// withCut returns a partitioning identical to groups plus a new trailing
// singleton group containing v.
func withCut(groups [][]*fnmodel.Function, v *fnmodel.Function) [][]*fnmodel.Function {
	out := copyGroups(groups)
	return append(out, []*fnmodel.Function{v})
}

// frontier holds, per chain node, the current set of non-dominated labels.
type frontier struct {
	byNode [][]label
}

func newFrontier(chainLen int) *frontier {
	return &frontier{byNode: make([][]label, chainLen)}
}

// tryInsert adds cand to node cand.node's frontier unless an existing label
// there dominates it, and evicts any existing label cand dominates. Returns
// true if cand was inserted (and therefore should also be pushed onto the
// expansion queue).
func (fr *frontier) tryInsert(cand label) bool {
	existing := fr.byNode[cand.node]
	for _, e := range existing {
		if e.dominates(cand) {
			return false
		}
	}
	kept := existing[:0]
	for _, e := range existing {
		if !cand.dominates(e) {
			kept = append(kept, e)
		}
	}
	fr.byNode[cand.node] = append(kept, cand)
	return true
}
