// Package costlesscsp implements CostlessCSP: a constrained-shortest-path
// Pareto label-setting search over an application's critical chain, trading
// off cost against latency under a running per-group memory constraint.
package costlesscsp
