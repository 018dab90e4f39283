// Package nofusion implements the two baseline algorithms: NoFusion (one
// group per function) and Singleton (one group containing every function,
// ordered by breadth-first traversal from the root). Both defer feasibility
// entirely to the metrics judge — Singleton in particular does not
// pre-check memory, matching the source's observed behavior (see
// DESIGN.md).
package nofusion
