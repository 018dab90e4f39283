// Package milp defines a small binary integer programming problem shape and
// a branch-and-bound Solver for it. No third-party MILP/LP library appears
// anywhere in the example corpus this module was grounded on, so this
// package is a from-scratch solver rather than a binding to an existing one
// — see DESIGN.md for the corpus search that justifies the exception.
package milp
