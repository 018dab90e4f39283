package milp

import "context"

// BranchAndBound is a depth-first branch-and-bound Solver for binary
// integer programs. At each node it bounds every constraint using the
// best-case value the still-free variables could contribute (taking each
// free coefficient's most favorable sign), pruning branches no completion
// can satisfy, and bounds the objective the same way to prune branches that
// cannot beat the current incumbent. ctx's deadline is checked at every
// node; once past it, search stops and reports StatusTimeLimit.
type BranchAndBound struct{}

// Solve runs the search. A nil/undeadlined ctx runs to exhaustion.
func (BranchAndBound) Solve(ctx context.Context, p Problem) (Solution, error) {
	s := &search{ctx: ctx, p: p, assign: make([]int, p.NumVars), fixed: make([]bool, p.NumVars)}
	s.incumbentObjective = 0
	s.haveIncumbent = false

	s.explore(0, 0)

	if s.timedOut {
		return Solution{Status: StatusTimeLimit}, nil
	}
	if !s.haveIncumbent {
		return Solution{Status: StatusInfeasible}, nil
	}
	return Solution{Status: StatusOptimal, Values: s.incumbentValues, Objective: s.incumbentObjective}, nil
}

type search struct {
	ctx    context.Context
	p      Problem
	assign []int
	fixed  []bool

	haveIncumbent     bool
	incumbentValues   []int
	incumbentObjective float64
	timedOut          bool
}

// explore assigns variable idx (and every variable after it) to every
// feasible value, tracking fixedObjective — the objective contribution
// already committed by variables 0..idx-1.
func (s *search) explore(idx int, fixedObjective float64) {
	if s.timedOut {
		return
	}
	if s.ctx != nil && s.ctx.Err() != nil {
		s.timedOut = true
		return
	}

	if idx == s.p.NumVars {
		if !s.constraintsSatisfied() {
			return
		}
		if !s.haveIncumbent || fixedObjective < s.incumbentObjective {
			s.haveIncumbent = true
			s.incumbentObjective = fixedObjective
			s.incumbentValues = append([]int(nil), s.assign...)
		}
		return
	}

	if !s.boundFeasible(idx, fixedObjective) {
		return
	}

	first, second := 0, 1
	if s.p.Objective[idx] < 0 {
		first, second = 1, 0
	}
	for _, v := range [2]int{first, second} {
		s.assign[idx] = v
		s.fixed[idx] = true
		s.explore(idx+1, fixedObjective+s.p.Objective[idx]*float64(v))
		s.fixed[idx] = false
		if s.timedOut {
			return
		}
	}
}

// boundFeasible reports whether some completion of the partial assignment
// (variables 0..idx-1 fixed) could satisfy every constraint and still beat
// the current incumbent on the objective.
func (s *search) boundFeasible(idx int, fixedObjective float64) bool {
	if s.haveIncumbent {
		bestCaseObjective := fixedObjective
		for j := idx; j < s.p.NumVars; j++ {
			if s.p.Objective[j] < 0 {
				bestCaseObjective += s.p.Objective[j]
			}
		}
		if bestCaseObjective >= s.incumbentObjective {
			return false
		}
	}

	for _, c := range s.p.Constraint {
		lo, hi := 0.0, 0.0
		for _, t := range c.Terms {
			if s.fixed[t.Var] {
				v := t.Coef * float64(s.assign[t.Var])
				lo += v
				hi += v
				continue
			}
			if t.Coef < 0 {
				lo += t.Coef
			} else {
				hi += t.Coef
			}
		}
		switch c.Op {
		case LessEqual:
			if lo > c.RHS {
				return false
			}
		case GreaterEqual:
			if hi < c.RHS {
				return false
			}
		case Equal:
			if lo > c.RHS || hi < c.RHS {
				return false
			}
		}
	}
	return true
}

func (s *search) constraintsSatisfied() bool {
	for _, c := range s.p.Constraint {
		sum := 0.0
		for _, t := range c.Terms {
			sum += t.Coef * float64(s.assign[t.Var])
		}
		switch c.Op {
		case LessEqual:
			if sum > c.RHS {
				return false
			}
		case GreaterEqual:
			if sum < c.RHS {
				return false
			}
		case Equal:
			if sum != c.RHS {
				return false
			}
		}
	}
	return true
}
