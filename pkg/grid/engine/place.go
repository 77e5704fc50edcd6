package engine

import (
	"github.com/matzehuels/dashgrid/pkg/grid"
	"github.com/matzehuels/dashgrid/pkg/grid/compact"
	"github.com/matzehuels/dashgrid/pkg/observability"
)

// PlaceNewItems appends newItems to the existing layout. Items carrying
// explicit coordinates are appended as-is; items with the Unplaced
// sentinel in either coordinate are auto-placed by a greedy
// left-to-right, top-to-bottom cursor scan starting at the bottom of the
// existing layout.
//
// The cursor advances by each placed item's width, wraps to the next row
// when an item would exceed the column count, and steps one column on
// collision with anything already placed, existing items and
// already-positioned new ones alike; static items get no special
// treatment beyond the ordinary collision check. Pre-existing items are
// never moved.
//
// The scan is bounded per item; an item that exhausts its cap is dropped
// below everything placed so far and the overflow is reported through
// observability hooks.
func PlaceNewItems(existing grid.Layout, newItems []grid.Item, columns int, limits Limits) grid.Layout {
	out := existing.Clone()
	if len(newItems) == 0 {
		return out
	}

	var auto []grid.Item
	for _, it := range newItems {
		if it.NeedsPlacement() {
			auto = append(auto, it)
		} else {
			out = append(out, it)
		}
	}

	x, y := 0, grid.Bottom(existing)
	cap := limits.placeCap()

	for _, it := range auto {
		placed := false
		for iter := 0; iter < cap; iter++ {
			if columns > 0 && x > 0 && x+it.W > columns {
				x = 0
				y++
				continue
			}
			probe := it
			probe.X, probe.Y = x, y
			if _, hit := grid.FirstCollision(out, probe); hit {
				x++
				continue
			}
			it = probe
			out = append(out, it)
			x += it.W
			placed = true
			break
		}
		if !placed {
			observability.Engine().OnPlacementOverflow(it.ID, cap)
			it.X, it.Y = 0, grid.Bottom(out)
			out = append(out, it)
			x, y = it.W, it.Y
		}
	}
	return out
}

// OptimizeLayout defragments the layout: every non-static item is
// re-placed at the first free position in reading order, with static
// items as fixed obstacles.
//
// Non-static items are taken in reading order (row, then column) so the
// visual order of the layout survives the repack. For each item the scan
// runs row by row from the top, column by column, committing the first
// footprint that collides with nothing already placed. An item wider
// than the grid cannot fit anywhere and is appended below everything
// rather than dropped.
//
// A final overlap-resolution pass guarantees no leftovers from edge
// cases in the greedy scan.
func OptimizeLayout(l grid.Layout, columns int) grid.Layout {
	if len(l) == 0 {
		return l
	}
	if columns < 1 {
		columns = 1
	}

	placed := grid.Statics(l)
	moved := make(map[string]grid.Item, len(l))

	for _, it := range grid.SortedRowCol(l) {
		if it.Static {
			continue
		}
		if it.W > columns {
			it.X, it.Y = 0, grid.Bottom(placed)
			it.Moved = true
			placed = append(placed, it)
			moved[it.ID] = it
			continue
		}

		// The row just past the current bottom is always free, so the
		// scan is bounded and always succeeds.
		pos := it
	scan:
		for y := 0; y <= grid.Bottom(placed); y++ {
			for x := 0; x+it.W <= columns; x++ {
				probe := it
				probe.X, probe.Y = x, y
				if _, hit := grid.FirstCollision(placed, probe); !hit {
					pos = probe
					break scan
				}
			}
		}
		pos.Moved = pos.X != it.X || pos.Y != it.Y
		placed = append(placed, pos)
		moved[pos.ID] = pos
	}

	out := l.Clone()
	for i := range out {
		if it, ok := moved[out[i].ID]; ok {
			out[i] = it
		}
	}
	return compact.ResolveOverlaps(out, compact.AxisVertical, columns)
}

// CorrectBounds normalizes a layout after a column-count change.
//
// Non-static items protruding past the right edge are shifted left; an
// item starting left of column 0 is normalized to span the full width at
// column 0. Static items are never resized or moved horizontally, so a
// static may protrude past the right edge after a column
// reduction. The only adjustment a static receives is a downward push,
// one row at a time, until it no longer collides with the items already
// accepted into the running placed set; collisions a static has with
// items processed later resolve on their turn instead.
func CorrectBounds(l grid.Layout, columns int) grid.Layout {
	if columns < 1 {
		columns = 1
	}

	out := l.Clone()
	var placed grid.Layout
	for i := range out {
		it := out[i]
		if it.Static {
			for {
				if _, hit := grid.FirstCollision(placed, it); !hit {
					break
				}
				it.Y++
			}
		} else {
			if it.X+it.W > columns {
				it.X = columns - it.W
			}
			if it.X < 0 {
				it.X = 0
				it.W = columns
			}
		}
		out[i] = it
		placed = append(placed, it)
	}
	return out
}
