package fnmodel

import "errors"

// Sentinel errors for fnmodel construction and mutation.
var (
	// ErrNoFunctions indicates an Application was constructed with an empty
	// function list.
	ErrNoFunctions = errors.New("fnmodel: application has no functions")

	// ErrDuplicateFunctionID indicates two functions share the same ID.
	ErrDuplicateFunctionID = errors.New("fnmodel: duplicate function id")

	// ErrUnknownCriticalPathID indicates a critical-path id is not present
	// among the application's functions.
	ErrUnknownCriticalPathID = errors.New("fnmodel: critical path id not found")

	// ErrCriticalPathNotChain indicates consecutive critical-path ids are not
	// connected by a parent→child edge.
	ErrCriticalPathNotChain = errors.New("fnmodel: critical path is not a connected chain")

	// ErrNoRoot indicates no function lacks a parent (every function has one,
	// which is impossible in a finite tree). An empty function list is
	// reported as ErrNoFunctions instead.
	ErrNoRoot = errors.New("fnmodel: no root function found")

	// ErrMultipleRoots indicates more than one function lacks a parent.
	ErrMultipleRoots = errors.New("fnmodel: multiple root functions found")

	// ErrUnreachableFunction indicates a function is not reachable from the
	// root, violating the single-tree invariant.
	ErrUnreachableFunction = errors.New("fnmodel: function unreachable from root")

	// ErrCycleDetected indicates the parent/child graph contains a cycle.
	ErrCycleDetected = errors.New("fnmodel: cycle detected in function graph")

	// ErrEmptyGroup indicates a CompositeGroup was constructed with no members.
	ErrEmptyGroup = errors.New("fnmodel: composite group has no members")
)
