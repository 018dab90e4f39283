package mtxilp

import (
	"github.com/vexflow/fusionopt/fnmodel"
	"github.com/vexflow/fusionopt/milp"
)

// edgeKey identifies a parent→child edge by id pair, used to look up the
// is_cut variable for a specific edge (including critical-path edges, which
// are a subset of the full edge set).
type edgeKey [2]string

// edge pairs the two endpoints of one graph edge alongside its egress cost.
type edge struct {
	parent *fnmodel.Function
	child  *fnmodel.Function
	weight float64
}

// formulation holds the variable layout shared by problem construction and
// solution decoding: x[b,f] occupies indices [0, n*n); is_cut[u,v] occupies
// indices [n*n, n*n+len(edges)) in the same order edges were collected.
type formulation struct {
	n       int
	funcs   []*fnmodel.Function
	edges   []edge
	edgeIdx map[edgeKey]int
}

func xVar(f *formulation, b, fn int) int { return b*f.n + fn }

func newFormulation(app *fnmodel.Application) *formulation {
	funcs := app.Functions
	n := len(funcs)

	edges := make([]edge, 0, n)
	for _, p := range funcs {
		for _, c := range p.Children {
			edges = append(edges, edge{parent: p, child: c, weight: p.DataTransferCost(c.ID)})
		}
	}
	edgeIdx := make(map[edgeKey]int, len(edges))
	for i, e := range edges {
		edgeIdx[edgeKey{e.parent.ID, e.child.ID}] = i
	}

	return &formulation{n: n, funcs: funcs, edges: edges, edgeIdx: edgeIdx}
}

func (f *formulation) numXVars() int    { return f.n * f.n }
func (f *formulation) cutVar(i int) int { return f.numXVars() + i }
func (f *formulation) numVars() int     { return f.numXVars() + len(f.edges) }

// buildProblem translates app into the §4.7 binary ILP: assignment,
// root-integrity, per-group memory, cut linearization, and critical-path
// latency constraints, minimizing total cut data-transfer cost.
func buildProblem(app *fnmodel.Application) (milp.Problem, *formulation) {
	f := newFormulation(app)
	n := f.n

	objective := make([]float64, f.numVars())
	for i, e := range f.edges {
		objective[f.cutVar(i)] = e.weight
	}

	var constraints []milp.Constraint

	// Assignment: every function belongs to exactly one group.
	for fn := 0; fn < n; fn++ {
		terms := make([]milp.Term, n)
		for b := 0; b < n; b++ {
			terms[b] = milp.Term{Coef: 1, Var: xVar(f, b, fn)}
		}
		constraints = append(constraints, milp.Constraint{Terms: terms, Op: milp.Equal, RHS: 1})
	}

	// Root integrity: x[b,f] <= x[b,b].
	for b := 0; b < n; b++ {
		for fn := 0; fn < n; fn++ {
			if fn == b {
				continue
			}
			constraints = append(constraints, milp.Constraint{
				Terms: []milp.Term{{Coef: 1, Var: xVar(f, b, fn)}, {Coef: -1, Var: xVar(f, b, b)}},
				Op:    milp.LessEqual,
				RHS:   0,
			})
		}
	}

	// Memory per group: Σ_f memory_f·x[b,f] <= max_memory_mb·x[b,b].
	for b := 0; b < n; b++ {
		terms := make([]milp.Term, 0, n+1)
		for fn := 0; fn < n; fn++ {
			terms = append(terms, milp.Term{Coef: float64(f.funcs[fn].MemoryMB), Var: xVar(f, b, fn)})
		}
		terms = append(terms, milp.Term{Coef: -float64(app.MaxMemoryMB), Var: xVar(f, b, b)})
		constraints = append(constraints, milp.Constraint{Terms: terms, Op: milp.LessEqual, RHS: 0})
	}

	// Cut linearization: is_cut[u,v] >= x[b,u]-x[b,v] and >= x[b,v]-x[b,u].
	for i, e := range f.edges {
		u := funcIndex(f, e.parent.ID)
		v := funcIndex(f, e.child.ID)
		for b := 0; b < n; b++ {
			constraints = append(constraints, milp.Constraint{
				Terms: []milp.Term{{Coef: 1, Var: xVar(f, b, u)}, {Coef: -1, Var: xVar(f, b, v)}, {Coef: -1, Var: f.cutVar(i)}},
				Op:    milp.LessEqual,
				RHS:   0,
			})
			constraints = append(constraints, milp.Constraint{
				Terms: []milp.Term{{Coef: 1, Var: xVar(f, b, v)}, {Coef: -1, Var: xVar(f, b, u)}, {Coef: -1, Var: f.cutVar(i)}},
				Op:    milp.LessEqual,
				RHS:   0,
			})
		}
	}

	// Latency: base_latency + hop*Σ_{critical-path edges} is_cut <= max_latency_ms.
	chain := app.CriticalPathFunctions()
	var baseLatency float64
	for _, fn := range chain {
		baseLatency += float64(fn.RuntimeMS())
	}
	terms := make([]milp.Term, 0, len(chain))
	for i := 0; i+1 < len(chain); i++ {
		idx, ok := f.edgeIdx[edgeKey{chain[i].ID, chain[i+1].ID}]
		if !ok {
			continue
		}
		terms = append(terms, milp.Term{Coef: float64(app.NetworkHopDelayMS), Var: f.cutVar(idx)})
	}
	constraints = append(constraints, milp.Constraint{
		Terms: terms,
		Op:    milp.LessEqual,
		RHS:   float64(app.MaxLatencyMS) - baseLatency,
	})

	return milp.Problem{NumVars: f.numVars(), Objective: objective, Constraint: constraints}, f
}

func funcIndex(f *formulation, id string) int {
	for i, fn := range f.funcs {
		if fn.ID == id {
			return i
		}
	}
	return -1
}
