// Package runner implements the Runner (C10): it invokes every fusion
// algorithm on one Application in a fixed order, recovers any algorithm
// fault into an infeasible result, and returns the results sorted by
// feasibility then ascending cost.
package runner
