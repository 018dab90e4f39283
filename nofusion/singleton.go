package nofusion

import (
	"time"

	"github.com/vexflow/fusionopt/fnmodel"
	"github.com/vexflow/fusionopt/fusionresult"
	"github.com/vexflow/fusionopt/metrics"
)

// SingletonName is the Result.Name this algorithm reports.
const SingletonName = "Singleton"

// Singleton returns a single group containing every function reachable from
// the root, sequenced in breadth-first order starting at the root. BFS
// order is part of the contract — it is observable as the composite's
// member sequence — even though it affects nothing downstream but naming.
//
// Singleton does not pre-check the memory constraint; it defers entirely to
// the metrics judge, matching the source's behavior (see DESIGN.md).
func Singleton(app *fnmodel.Application) fusionresult.Result {
	start := time.Now()

	order := bfsOrder(app.RootFunction())
	m := metrics.Evaluate([][]*fnmodel.Function{order}, app)
	group := fnmodel.NewCompositeGroup(order)

	return fusionresult.Result{
		Name:      SingletonName,
		Groups:    []*fnmodel.CompositeGroup{group},
		Cost:      m.Cost,
		Latency:   m.Latency,
		Feasible:  m.Feasible,
		RuntimeMS: fusionresult.ElapsedMS(start),
	}
}

// bfsOrder performs a breadth-first traversal from root over Children,
// visiting each function exactly once, and returns the visitation order.
func bfsOrder(root *fnmodel.Function) []*fnmodel.Function {
	visited := map[string]bool{root.ID: true}
	queue := []*fnmodel.Function{root}
	order := make([]*fnmodel.Function, 0, 1)

	for head := 0; head < len(queue); head++ {
		node := queue[head]
		order = append(order, node)
		for _, child := range node.Children {
			if !visited[child.ID] {
				visited[child.ID] = true
				queue = append(queue, child)
			}
		}
	}
	return order
}
