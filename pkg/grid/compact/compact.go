// Package compact implements the pluggable compaction strategies of the
// dashgrid layout engine.
//
// Compaction moves items toward one edge of the grid ("gravity") to close
// gaps left by drags, removals, and resizes, while static items act as
// immovable anchors. All strategies share one contract: given a layout, a
// column count, and an overlap flag, return a new layout; the input is
// never mutated.
//
// # Strategies
//
//   - vertical: gravity toward row 0, cascading push-down on collision.
//   - horizontal: gravity toward column 0, cascading push-right with
//     wrap-around past the last column.
//   - none: no gravity; only resolves pre-existing overlaps by pushing
//     colliding items forward along a configurable axis.
//   - fast-vertical, fast-horizontal: rising-tide (skyline) variants that
//     trade the exact "closest free slot" search for near-linear time.
//     They are drop-in replacements for the baseline strategies on large
//     layouts.
//
// The baseline strategies are quadratic in the worst case; the skyline
// variants maintain a per-column (or per-row) high-water mark and place
// each item in a single pass over its span.
//
// # Determinism
//
// Every strategy processes items in a sorted order, (row, column) for
// vertical and (column, row) for horizontal, with input order breaking
// remaining ties, so equal inputs always produce equal outputs.
package compact

import (
	"time"

	"github.com/matzehuels/dashgrid/pkg/errors"
	"github.com/matzehuels/dashgrid/pkg/grid"
	"github.com/matzehuels/dashgrid/pkg/observability"
)

// Type identifies a compaction strategy.
type Type string

// Compaction strategy identifiers.
const (
	TypeVertical       Type = "vertical"
	TypeHorizontal     Type = "horizontal"
	TypeNone           Type = "none"
	TypeFastVertical   Type = "fast-vertical"
	TypeFastHorizontal Type = "fast-horizontal"
)

// ValidTypes is the set of supported compaction types.
var ValidTypes = map[Type]bool{
	TypeVertical:       true,
	TypeHorizontal:     true,
	TypeNone:           true,
	TypeFastVertical:   true,
	TypeFastHorizontal: true,
}

// ValidateType checks that a compaction type is valid.
func ValidateType(t Type) error {
	if !ValidTypes[t] {
		return errors.New(errors.ErrCodeInvalidCompactType,
			"invalid compaction type: %q (must be one of: vertical, horizontal, none, fast-vertical, fast-horizontal)", t)
	}
	return nil
}

// DefaultCascadeIterations is the floor of the iteration cap for cascading
// collision pushes. The effective cap for a pass is the larger of this
// constant and twice the item count, so pathological cyclic inputs abort
// with a best-effort result instead of looping.
const DefaultCascadeIterations = 5000

// cascadeCap returns the iteration cap for a layout of n items.
func cascadeCap(n int) int {
	return max(DefaultCascadeIterations, 2*n)
}

// Compact runs the given compaction strategy over the layout and returns
// the compacted copy.
//
// If allowOverlap is true the input is returned unchanged; this is the
// fast path for callers that explicitly permit overlapping items. Unknown
// types fall back to vertical compaction.
//
// Every strategy clears the Moved flag on returned items: a compaction
// pass ends the interaction that set the flags, so renderers comparing
// positions see a quiescent layout.
func Compact(l grid.Layout, typ Type, columns int, allowOverlap bool) grid.Layout {
	if allowOverlap || len(l) == 0 {
		return l
	}

	hooks := observability.Engine()
	hooks.OnCompactStart(string(typ), len(l))
	start := time.Now()

	var out grid.Layout
	switch typ {
	case TypeHorizontal:
		out = compactGravity(l, true, columns)
	case TypeNone:
		out = ResolveOverlaps(l, AxisVertical, columns)
		for i := range out {
			out[i].Moved = false
		}
	case TypeFastVertical:
		out = compactSkylineVertical(l, columns)
	case TypeFastHorizontal:
		out = compactSkylineHorizontal(l, columns)
	default: // TypeVertical and unknown types
		out = compactGravity(l, false, columns)
	}

	hooks.OnCompactComplete(string(typ), len(l), time.Since(start))
	return out
}
