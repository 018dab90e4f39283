package greedytp

import "github.com/vexflow/fusionopt/fnmodel"

// seedGroups runs phase B's group-seeding step: the root plus the child
// endpoint of every cut edge become barrier nodes, each seeding its own
// group. Every other function is assigned to the barrier that dominates it,
// found via a multi-source BFS started simultaneously from every barrier
// (a tree has no ties, so each non-barrier node has exactly one nearest
// ancestor barrier). Groups are returned in barrier-seed order: root first,
// then cut-edge children in the order seedCut produced them.
func seedGroups(app *fnmodel.Application, cutSet []criticalEdge) [][]*fnmodel.Function {
	root := app.RootFunction()

	barriers := make([]*fnmodel.Function, 0, 1+len(cutSet))
	barriers = append(barriers, root)
	for _, e := range cutSet {
		barriers = append(barriers, e.Child)
	}

	owner := make(map[string]*fnmodel.Function, len(app.Functions))
	members := make(map[string][]*fnmodel.Function, len(barriers))
	queue := make([]*fnmodel.Function, 0, len(app.Functions))
	for _, b := range barriers {
		owner[b.ID] = b
		members[b.ID] = append(members[b.ID], b)
		queue = append(queue, b)
	}

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		curOwner := owner[cur.ID]
		for _, child := range cur.Children {
			if _, assigned := owner[child.ID]; assigned {
				continue
			}
			owner[child.ID] = curOwner
			members[curOwner.ID] = append(members[curOwner.ID], child)
			queue = append(queue, child)
		}
	}

	groups := make([][]*fnmodel.Function, len(barriers))
	for i, b := range barriers {
		groups[i] = members[b.ID]
	}
	return groups
}
