// Package minwcut implements MinWCutHeuristic: starting from NoFusion,
// collect every parent→child edge's data-transfer cost, sort descending by
// weight (sort.SliceStable to keep the original edge order as tie-break,
// per the teacher's prim_kruskal.Kruskal pattern), and greedily merge the
// heaviest edges first whenever the combined memory of the two endpoint
// groups still fits. Edges that carry no data (zero weight) are not merged.
package minwcut
