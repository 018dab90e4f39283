package costlesscsp

import (
	"container/heap"
	"time"

	"github.com/vexflow/fusionopt/fnmodel"
	"github.com/vexflow/fusionopt/fusionresult"
	"github.com/vexflow/fusionopt/metrics"
)

// Name is the Result.Name this algorithm reports.
const Name = "CostlessCSP"

// CostlessCSP searches the critical chain for the Pareto-optimal trade
// between cost and latency, expanding labels in ascending-cost order and
// pruning dominated states at each chain position. Off-chain functions are
// appended as singleton groups and the chosen partitioning is re-judged by
// the metrics package, which is authoritative for the reported Cost/Latency.
func CostlessCSP(app *fnmodel.Application) fusionresult.Result {
	start := time.Now()
	chain := app.CriticalPathFunctions()

	if len(chain) == 0 {
		return fusionresult.Infeasible(Name, fusionresult.ElapsedMS(start), "empty critical path")
	}

	fr := newFrontier(len(chain))
	var seq int
	nextSeq := func() int { seq++; return seq - 1 }

	start0 := label{
		node:         0,
		cost:         0,
		latency:      float64(chain[0].RuntimeMS()),
		groupMemory:  chain[0].MemoryMB,
		partitioning: [][]*fnmodel.Function{{chain[0]}},
		seq:          nextSeq(),
	}
	fr.tryInsert(start0)

	pq := &labelQueue{start0}
	heap.Init(pq)

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(label)
		if cur.node+1 >= len(chain) {
			continue
		}
		u := chain[cur.node]
		v := chain[cur.node+1]

		if cur.groupMemory+v.MemoryMB <= app.MaxMemoryMB {
			merged := label{
				node:         cur.node + 1,
				cost:         cur.cost,
				latency:      cur.latency + float64(v.RuntimeMS()),
				groupMemory:  cur.groupMemory + v.MemoryMB,
				partitioning: withMerged(cur.partitioning, v),
				seq:          nextSeq(),
			}
			if fr.tryInsert(merged) {
				heap.Push(pq, merged)
			}
		}

		cut := label{
			node:         cur.node + 1,
			cost:         cur.cost + u.DataTransferCost(v.ID),
			latency:      cur.latency + float64(v.RuntimeMS()) + float64(app.NetworkHopDelayMS),
			groupMemory:  v.MemoryMB,
			partitioning: withCut(cur.partitioning, v),
			seq:          nextSeq(),
		}
		if fr.tryInsert(cut) {
			heap.Push(pq, cut)
		}
	}

	best, ok := selectBest(fr.byNode[len(chain)-1], app.MaxLatencyMS)
	if !ok {
		return fusionresult.Infeasible(Name, fusionresult.ElapsedMS(start), "no label at chain end within max_latency_ms")
	}

	groupsOfFuncs := completePartitioning(best.partitioning, app)
	m := metrics.Evaluate(groupsOfFuncs, app)

	groups := make([]*fnmodel.CompositeGroup, len(groupsOfFuncs))
	for i, members := range groupsOfFuncs {
		groups[i] = fnmodel.NewCompositeGroup(members)
	}

	return fusionresult.Result{
		Name:      Name,
		Groups:    groups,
		Cost:      m.Cost,
		Latency:   m.Latency,
		Feasible:  m.Feasible,
		RuntimeMS: fusionresult.ElapsedMS(start),
	}
}

// selectBest picks the minimum-cost label among candidates whose latency
// fits maxLatencyMS, keeping the first-seen on a cost tie.
func selectBest(candidates []label, maxLatencyMS int64) (label, bool) {
	var best label
	found := false
	for _, c := range candidates {
		if c.latency > float64(maxLatencyMS) {
			continue
		}
		if !found || c.cost < best.cost {
			best = c
			found = true
		}
	}
	return best, found
}

// completePartitioning appends every off-chain function as its own
// singleton group, in original app.Functions order, after the chain
// partitioning chosen by the search.
func completePartitioning(chainPartitioning [][]*fnmodel.Function, app *fnmodel.Application) [][]*fnmodel.Function {
	covered := make(map[string]bool)
	for _, g := range chainPartitioning {
		for _, f := range g {
			covered[f.ID] = true
		}
	}

	result := make([][]*fnmodel.Function, 0, len(chainPartitioning)+len(app.Functions))
	result = append(result, chainPartitioning...)
	for _, f := range app.Functions {
		if !covered[f.ID] {
			result = append(result, []*fnmodel.Function{f})
		}
	}
	return result
}
