// Package engine implements the interactive operations of the dashgrid
// layout engine: drag resolution, resize resolution, bulk placement,
// defragmentation, bounds correction, and cluster moves.
//
// Every function here is a pure computation: it takes a layout plus
// parameters and returns a new layout, never mutating its input. There is
// no state between calls, so concurrent callers on independent layouts
// need no coordination.
//
// # Error model
//
// No function returns an error. Degenerate inputs (missing IDs, empty
// layouts, empty clusters) are defined no-ops that return the input
// unchanged. The two exceptional situations follow the engine-wide rules:
// an unresolvable constraint (a resize that would force an item into a
// static obstacle under collision prevention) reverts the whole operation,
// and a propagation that exceeds its iteration cap reports through
// observability hooks and returns its best partial result.
//
// # Caps
//
// Iteration caps are explicit configuration (Limits) rather than hidden
// literals, so callers and tests can bound work deterministically. The
// zero value selects the defaults.
package engine
