// Package metrics implements the canonical fusion judge: a pure function
// from (partitioning, Application) to {cost, latency, feasible}. Every
// algorithm's result is scored through Evaluate; the judge never errors and
// never mutates its inputs.
//
// The judge works in three passes over a func-to-group index built once per
// call (funcToGroupIndex, carried over from the original implementation's
// group_map helper): summed execution cost, cross-group data-transfer cost,
// and critical-path latency with a network hop charged per cut edge on the
// chain.
package metrics
