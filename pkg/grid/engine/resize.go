package engine

import (
	"github.com/matzehuels/dashgrid/pkg/grid"
	"github.com/matzehuels/dashgrid/pkg/grid/compact"
	"github.com/matzehuels/dashgrid/pkg/observability"
)

// ResizeBehavior selects how a resize resolves the collisions it causes.
type ResizeBehavior string

const (
	// BehaviorPush cascades colliding neighbors away through the move
	// resolver. This is the default.
	BehaviorPush ResizeBehavior = "push"

	// BehaviorShrink absorbs the expansion by shrinking the colliding
	// neighbors, falling back to BehaviorPush when any neighbor cannot
	// shrink within its minimum span.
	BehaviorShrink ResizeBehavior = "shrink"
)

// ResizeItem substitutes the new geometry of resized into the layout and
// resolves the resulting collisions.
//
// The resized item is matched by ID; its X, Y, W, H fields carry the
// requested geometry. Spans are clamped to the item's min/max bounds and
// to the column count before any collision handling. Items not flagged
// Resizable, and IDs not present in the layout, make the call a no-op.
//
// # Shrink
//
// With BehaviorShrink, each colliding neighbor gives up the
// one-dimensional overlap on the axis the resize expands into: its near
// edge is pulled back by the overlap, shifting its origin when the resize
// expands toward it. The shrink is atomic across neighbors: if any
// neighbor would fall below its minimum span, no neighbor is changed and
// the resize falls through to push resolution.
//
// # Push
//
// Push treats the resize as a forced in-place move, cascading collisions
// through MoveElement. With preventCollision, a resized item that ends up
// overlapping a static obstacle rejects the whole operation: the original
// layout is returned unchanged rather than a partially pushed one.
// Otherwise a vertical compaction pass normalizes any residual
// double-occupancy left by simultaneous pushes.
//
// Without preventCollision the pushed layout is returned directly,
// overlaps and all; callers running an overlap-permitting grid handle the
// rest themselves.
func ResizeItem(l grid.Layout, resized grid.Item, behavior ResizeBehavior, columns int, preventCollision bool) grid.Layout {
	idx := l.Index(resized.ID)
	if idx < 0 {
		return l
	}
	orig := l[idx]
	if !orig.Resizable || orig.Static {
		return l
	}

	resized.W, resized.H = orig.ClampSize(resized.W, resized.H)
	if columns > 0 && resized.X+resized.W > columns {
		resized.W = max(columns-resized.X, 1)
	}

	out := l.Clone()
	out[idx] = withGeometry(orig, resized)

	collisions := grid.AllCollisions(out, out[idx])
	if len(collisions) == 0 {
		return out
	}

	if behavior == BehaviorShrink {
		if shrunk, ok := shrinkNeighbors(out, idx, orig, collisions); ok {
			return shrunk
		}
	}

	pushed := MoveElement(out, resized.ID, out[idx].X, out[idx].Y, MoveOptions{
		Columns: columns,
		Force:   true,
	})

	if !preventCollision {
		return pushed
	}

	// A static obstacle in the propagation makes the resized item itself
	// yield (statics never move), so a displaced or still-overlapping
	// resized item means the requested geometry cannot be honored.
	final, _ := pushed.Get(resized.ID)
	displaced := final.X != out[idx].X || final.Y != out[idx].Y
	if _, hit := grid.FirstCollision(grid.Statics(pushed), final); hit || displaced {
		observability.Engine().OnResizeReverted(resized.ID)
		return l
	}
	return compact.Compact(pushed, compact.TypeVertical, columns, false)
}

// withGeometry applies the requested geometry onto the original item,
// keeping every other field.
func withGeometry(orig, req grid.Item) grid.Item {
	orig.X = req.X
	orig.Y = req.Y
	orig.W = req.W
	orig.H = req.H
	return orig
}

// shrinkNeighbors attempts to absorb the expansion of out[idx] by
// shrinking every colliding neighbor on the expanded axis. Returns the
// adjusted layout and true, or nil and false when any neighbor cannot
// absorb its overlap, in which case out is left untouched.
func shrinkNeighbors(out grid.Layout, idx int, orig grid.Item, collisions grid.Layout) (grid.Layout, bool) {
	it := out[idx]
	growW := it.W > orig.W || it.X < orig.X
	growH := it.H > orig.H || it.Y < orig.Y
	if growW == growH {
		// Expanding on both axes (or neither) has no single axis to
		// absorb along; push resolution handles it.
		return nil, false
	}

	shrunk := out.Clone()
	for _, c := range collisions {
		j := shrunk.Index(c.ID)
		n := shrunk[j]
		if n.Static || !n.Resizable {
			return nil, false
		}

		if growW {
			if it.X <= n.X {
				// Expanding from the left toward the neighbor: its left
				// edge moves right by the overlap.
				overlap := it.X + it.W - n.X
				n.W -= overlap
				n.X += overlap
			} else {
				overlap := n.X + n.W - it.X
				n.W -= overlap
			}
			if n.W < max(n.MinW, 1) {
				return nil, false
			}
		} else {
			if it.Y <= n.Y {
				overlap := it.Y + it.H - n.Y
				n.H -= overlap
				n.Y += overlap
			} else {
				overlap := n.Y + n.H - it.Y
				n.H -= overlap
			}
			if n.H < max(n.MinH, 1) {
				return nil, false
			}
		}
		shrunk[j] = n
	}
	return shrunk, true
}
