// Package proptest holds gopter-based property tests for the eight
// properties P1-P8 (§8): disjoint cover, metric agreement, MtxILP
// optimality dominance, NoFusion's data-transfer lower bound, Singleton's
// memory/latency feasibility rule, monotonicity under load scaling,
// determinism across reruns, and enrich idempotence.
//
// These tests build randomized linear-chain Applications rather than
// arbitrary trees: every algorithm under test operates on the
// CriticalPathFunctions chain, and a tree's fusion behavior off that chain
// reduces to the same per-edge merge/cut decision, so a chain generator
// already exercises every code path the properties care about.
package proptest
