package greedytp

import "github.com/vexflow/fusionopt/fnmodel"

// criticalEdge is one parent→child step of the critical-path chain.
type criticalEdge struct {
	Parent *fnmodel.Function
	Child  *fnmodel.Function
}

// seedCut runs phase A: it finds the smallest number of critical-path edges
// that must be kept internal (merged) so that the remaining cut edges' hop
// delays still fit inside max_latency_ms, and returns those remaining edges
// as the initial cut set. ok is false when even fusing the entire chain
// cannot meet max_latency_ms.
func seedCut(app *fnmodel.Application) (cutSet []criticalEdge, ok bool) {
	chain := app.CriticalPathFunctions()
	edges := make([]criticalEdge, 0, len(chain)-1)
	var baseLatency float64
	for i := 0; i < len(chain); i++ {
		baseLatency += float64(chain[i].RuntimeMS())
		if i+1 < len(chain) {
			edges = append(edges, criticalEdge{Parent: chain[i], Child: chain[i+1]})
		}
	}
	maxLatency := float64(app.MaxLatencyMS)
	if baseLatency > maxLatency {
		return nil, false
	}

	n := len(edges)
	for k := 0; k <= n; k++ {
		numExternal := n - k
		current := baseLatency + float64(numExternal)*float64(app.NetworkHopDelayMS)
		if current > maxLatency {
			continue
		}
		merged := FirstCombination(n, k)
		mergedIdx := make(map[int]bool, len(merged))
		for _, idx := range merged {
			mergedIdx[idx] = true
		}
		cut := make([]criticalEdge, 0, numExternal)
		for idx, e := range edges {
			if !mergedIdx[idx] {
				cut = append(cut, e)
			}
		}
		return cut, true
	}
	// Unreachable: k == n (merge everything) reduces current to baseLatency,
	// which the guard above already confirmed is within bound.
	return nil, false
}
