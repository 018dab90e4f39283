// Package greedytp implements GreedyTreePartitioning: a critical-path seed
// cut selection (phase A) followed by barrier-seeded grouping and a
// post-seed greedy merge (phase B, reusing minwcut's merge loop).
package greedytp
