// Package fusionopt is a serverless function fusion optimizer: given an
// application described as a tree of serverless functions connected by
// data-transfer edges, it partitions the tree into composite deployment
// groups that minimize cost under per-group memory and end-to-end latency
// constraints.
//
// The model lives in fnmodel (Function, CompositeGroup, Application) and is
// judged by metrics (cost/latency/feasibility). Six algorithms compute
// candidate partitionings — nofusion.NoFusion, nofusion.Singleton,
// minwcut.MinWCutHeuristic, greedytp.GreedyTreePartitioning,
// costlesscsp.CostlessCSP and mtxilp.MtxILP (the last built on milp, a
// from-scratch binary-ILP branch-and-bound solver) — and runner.Run invokes
// all six on one Application, recovering any algorithm fault and returning
// the results sorted by feasibility then ascending cost. builder constructs
// an Application from a structured configuration and enriches it with live
// metric observations.
//
// Every algorithm is a pure function of (Application, algorithm selection):
// no persistence, no network I/O, no caching between runs.
package fusionopt
