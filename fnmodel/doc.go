// Package fnmodel defines the typed application model for the fusion
// optimizer: Function nodes, CompositeGroup fusions, and the Application
// container that owns them.
//
// A Function is the atomic unit of serverless execution: it has a memory
// footprint, a load-adjusted runtime, and a set of outgoing data edges to
// its children. Functions form a rooted tree — every non-root Function has
// exactly one Parent, and Parent is a back-reference rather than an owning
// pointer (Go's GC handles the resulting reference cycle; the reason to call
// it out is that algorithms must never treat Parent as conferring
// ownership — membership and traversal both go through Application or
// Children).
//
// A CompositeGroup is an ordered, non-empty sequence of member Functions
// deployed as a single unit: its memory and runtime are summed across
// members, and it is billed as one invocation.
//
// Application is immutable after construction, except for the single
// controlled mutation Enrich performs (replacing baseline runtime/memory
// with observed averages). All algorithms receive an *Application by
// read-only reference and never mutate it.
package fnmodel
