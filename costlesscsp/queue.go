package costlesscsp

import "container/heap"

// labelQueue is a container/heap priority queue over labels, ordered by
// ascending cost and tie-broken by insertion order (seq) — matching the
// teacher's dijkstra package's use of a heap.Interface wrapper for its
// frontier expansion.
type labelQueue []label

func (q labelQueue) Len() int { return len(q) }

func (q labelQueue) Less(i, j int) bool {
	if q[i].cost != q[j].cost {
		return q[i].cost < q[j].cost
	}
	return q[i].seq < q[j].seq
}

func (q labelQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *labelQueue) Push(x any) {
	*q = append(*q, x.(label))
}

func (q *labelQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

var _ = heap.Interface(&labelQueue{})
