package fnmodel

// CompositeGroup is an ordered, non-empty sequence of member Functions
// deployed as a single composite unit. Members execute sequentially inside
// the composite, so memory and runtime are additive and the group is billed
// as one invocation at the summed memory and runtime.
type CompositeGroup struct {
	Members []*Function
}

// NewCompositeGroup wraps members as a CompositeGroup. members must be
// non-empty; callers that can't guarantee this should check len() first —
// ID on an empty group panics on Members[0], and MemoryMB/RuntimeMS return 0.
func NewCompositeGroup(members []*Function) *CompositeGroup {
	return &CompositeGroup{Members: members}
}

// ID is the id of the group's first member.
func (g *CompositeGroup) ID() string {
	return g.Members[0].ID
}

// MemoryMB is the sum of member memories.
func (g *CompositeGroup) MemoryMB() int {
	total := 0
	for _, f := range g.Members {
		total += f.MemoryMB
	}
	return total
}

// RuntimeMS is the sum of member runtimes (sequential execution inside the
// composite).
func (g *CompositeGroup) RuntimeMS() int64 {
	var total int64
	for _, f := range g.Members {
		total += f.RuntimeMS()
	}
	return total
}

// ExecutionCost is the cost of a single billed invocation at the group's
// summed memory and runtime.
func (g *CompositeGroup) ExecutionCost() float64 {
	gbSeconds := (float64(g.MemoryMB()) / 1024) * (float64(g.RuntimeMS()) / 1000)
	return gbSecondPrice * gbSeconds
}
