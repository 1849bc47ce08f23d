// Package schedule computes a dependency-respecting execution order for a
// flat list of tasks. It is a pure, synchronous pipeline: validate the raw
// plan, build an indexed dependency graph, then run a Kahn-style frontier
// expansion to either produce a total order or report the cycle that
// prevents one. Nothing is shared between invocations.
package schedule
