package milp

import "context"

// Solver solves a binary integer program, respecting ctx's deadline: if the
// deadline is reached before a proven-optimal solution is found, Solve
// returns StatusTimeLimit rather than blocking past it.
type Solver interface {
	Solve(ctx context.Context, p Problem) (Solution, error)
}
