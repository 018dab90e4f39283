// Package mtxilp implements MtxILP: the exact binary integer programming
// formulation of the fusion problem, solved by milp.BranchAndBound under a
// 60-second wall-clock limit.
package mtxilp
