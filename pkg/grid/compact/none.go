package compact

import "github.com/matzehuels/dashgrid/pkg/grid"

// Axis selects the push direction for overlap resolution.
type Axis string

// Overlap resolution axes.
const (
	AxisVertical   Axis = "vertical"
	AxisHorizontal Axis = "horizontal"
)

// ResolveOverlaps resolves pre-existing overlaps without pulling items
// toward the origin. This is the "none" strategy: items keep their slack,
// and only colliding items move, pushed forward along the given axis past
// the far edge of whatever they overlap.
//
// Items are processed in sorted order for the axis, (row, column) for
// vertical and (column, row) for horizontal, against a placed set seeded
// with every static item, so statics act as obstacles regardless of their
// position in the pass. Horizontal pushes wrap past the last column onto
// the next row. The per-item retry loop is bounded, so a layout that
// cannot be resolved within the cap is returned best-effort.
//
// The move/drag resolver uses ResolveOverlaps as its finalize pass: a
// breadth-first push can land several items on the same cells, and this
// sweep restores the no-overlap invariant without otherwise disturbing
// the layout.
func ResolveOverlaps(l grid.Layout, axis Axis, columns int) grid.Layout {
	if len(l) == 0 {
		return l
	}

	placed := grid.Statics(l)

	var sorted grid.Layout
	if axis == AxisHorizontal {
		sorted = grid.SortedColRow(l)
	} else {
		sorted = grid.SortedRowCol(l)
	}

	cap := cascadeCap(len(l))
	for i := range sorted {
		it := sorted[i]
		if it.Static {
			continue
		}
		for iter := 0; iter < cap; iter++ {
			collider, hit := grid.FirstCollision(placed, it)
			if !hit {
				break
			}
			if axis == AxisHorizontal {
				it.X = collider.X + collider.W
				if columns > 0 && it.X+it.W > columns {
					it.X = 0
					it.Y++
				}
			} else {
				it.Y = collider.Y + collider.H
			}
			it.Moved = true
		}
		sorted[i] = it
		placed = append(placed, it)
	}

	// Unlike the gravity strategies, Moved flags survive: ResolveOverlaps
	// runs inside interactive operations whose callers still need the
	// animation hints. Compact clears them for the "none" type itself.
	out := l.Clone()
	for i := range sorted {
		idx := out.Index(sorted[i].ID)
		out[idx] = sorted[i]
	}
	return out
}
