package milp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vexflow/fusionopt/milp"
)

func TestBranchAndBound_MinimizesSubjectToAtLeastTwo(t *testing.T) {
	p := milp.Problem{
		NumVars:   3,
		Objective: []float64{1, 1, 1},
		Constraint: []milp.Constraint{
			{
				Terms: []milp.Term{{Coef: 1, Var: 0}, {Coef: 1, Var: 1}, {Coef: 1, Var: 2}},
				Op:    milp.GreaterEqual,
				RHS:   2,
			},
		},
	}

	sol, err := milp.BranchAndBound{}.Solve(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, milp.StatusOptimal, sol.Status)
	assert.Equal(t, 2.0, sol.Objective)

	ones := 0
	for _, v := range sol.Values {
		ones += v
	}
	assert.Equal(t, 2, ones)
}

func TestBranchAndBound_InfeasibleWhenConstraintUnsatisfiable(t *testing.T) {
	p := milp.Problem{
		NumVars:   3,
		Objective: []float64{1, 1, 1},
		Constraint: []milp.Constraint{
			{
				Terms: []milp.Term{{Coef: 1, Var: 0}, {Coef: 1, Var: 1}, {Coef: 1, Var: 2}},
				Op:    milp.GreaterEqual,
				RHS:   4,
			},
		},
	}

	sol, err := milp.BranchAndBound{}.Solve(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, milp.StatusInfeasible, sol.Status)
}

func TestBranchAndBound_ReportsTimeLimitOnExpiredContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := milp.Problem{
		NumVars:   2,
		Objective: []float64{1, 1},
		Constraint: []milp.Constraint{
			{Terms: []milp.Term{{Coef: 1, Var: 0}}, Op: milp.Equal, RHS: 1},
		},
	}

	sol, err := milp.BranchAndBound{}.Solve(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, milp.StatusTimeLimit, sol.Status)
}

func TestBranchAndBound_EqualityConstraintPicksExactAssignment(t *testing.T) {
	p := milp.Problem{
		NumVars:   2,
		Objective: []float64{5, 1}, // prefer x1=1 over x0=1
		Constraint: []milp.Constraint{
			{
				Terms: []milp.Term{{Coef: 1, Var: 0}, {Coef: 1, Var: 1}},
				Op:    milp.Equal,
				RHS:   1,
			},
		},
	}

	sol, err := milp.BranchAndBound{}.Solve(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, milp.StatusOptimal, sol.Status)
	assert.Equal(t, []int{0, 1}, sol.Values)
	assert.Equal(t, 1.0, sol.Objective)
}
