package compact

import (
	"github.com/matzehuels/dashgrid/pkg/grid"
	"github.com/matzehuels/dashgrid/pkg/observability"
)

// compactGravity is the baseline strategy for vertical and horizontal
// compaction.
//
// Items are processed in sorted order: (row, column) for vertical,
// (column, row) for horizontal. Static items are anchors: they are never
// moved, but join the growing set of placed obstacles as the pass reaches
// them. Each non-static item is pulled toward the origin on the gravity
// axis until it would collide, then any remaining collision is resolved
// by pushing the item (and, cascading, everything behind it in pass
// order) past the far edge of the obstacle.
func compactGravity(l grid.Layout, horizontal bool, columns int) grid.Layout {
	placed := grid.Statics(l)

	var sorted grid.Layout
	if horizontal {
		sorted = grid.SortedColRow(l)
	} else {
		sorted = grid.SortedRowCol(l)
	}

	cap := cascadeCap(len(l))
	for i := range sorted {
		if sorted[i].Static {
			continue
		}
		compactItem(placed, sorted, i, horizontal, columns, cap)
		placed = append(placed, sorted[i])
	}

	// Reassemble in input order with Moved cleared.
	out := l.Clone()
	for i := range sorted {
		idx := out.Index(sorted[i].ID)
		out[idx] = sorted[i]
		out[idx].Moved = false
	}
	return out
}

// compactItem pulls sorted[i] toward the origin and resolves collisions
// against the placed set, cascading pushes through the tail of sorted.
func compactItem(placed, sorted grid.Layout, i int, horizontal bool, columns, cap int) {
	it := &sorted[i]

	// Gravity: slide toward the origin while the next cell over is free.
	if horizontal {
		for it.X > 0 {
			probe := *it
			probe.X--
			if _, hit := grid.FirstCollision(placed, probe); hit {
				break
			}
			it.X--
		}
	} else {
		// Jumping straight to the current bottom edge saves the cell-by-cell
		// walk for items far below everything placed so far.
		if b := grid.Bottom(placed); it.Y > b {
			it.Y = b
		}
		for it.Y > 0 {
			probe := *it
			probe.Y--
			if _, hit := grid.FirstCollision(placed, probe); hit {
				break
			}
			it.Y--
		}
	}

	// Push past whatever the item still overlaps. Each push may wrap the
	// item past the column edge (horizontal only), so the loop re-checks
	// from scratch after every resolution.
	for iter := 0; iter < cap; iter++ {
		collider, hit := grid.FirstCollision(placed, *it)
		if !hit {
			break
		}
		if horizontal {
			resolveCascade(sorted, i, collider.X+collider.W, true, cap)
			if columns > 0 && it.X+it.W > columns {
				it.X = 0
				it.Y++
			}
		} else {
			resolveCascade(sorted, i, collider.Y+collider.H, false, cap)
		}
	}

	if it.X < 0 {
		it.X = 0
	}
	if it.Y < 0 {
		it.Y = 0
	}
}

// cascadeFrame is one pending push in the explicit cascade stack: item
// idx is (to be) moved to moveTo on the push axis, and scan is the next
// tail position to examine for induced collisions.
type cascadeFrame struct {
	idx    int
	moveTo int
	scan   int
	placed bool
}

// resolveCascade moves sorted[start] to moveTo on the push axis and
// propagates the displacement depth-first onto every later item in pass
// order that now collides, each pushed past the far edge of its pusher.
//
// The original formulation is recursive; this is the same traversal with
// an explicit stack and an iteration cap, so runaway configurations abort
// with a partial result instead of exhausting the call stack.
func resolveCascade(sorted grid.Layout, start, moveTo int, horizontal bool, cap int) {
	stack := []cascadeFrame{{idx: start, moveTo: moveTo, scan: start + 1}}
	iter := 0

	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		it := &sorted[f.idx]

		if !f.placed {
			if iter++; iter > cap {
				observability.Engine().OnPropagationAborted("compact", iter, len(sorted))
				return
			}
			if horizontal {
				it.X = f.moveTo
			} else {
				it.Y = f.moveTo
			}
			f.placed = true
		}

		// Scan the tail in pass order for items the push displaced into.
		// The tail is sorted by the push axis, so the scan stops once an
		// item starts past the pusher's far edge.
		next := -1
		for j := f.scan; j < len(sorted); j++ {
			o := sorted[j]
			if o.Static {
				continue
			}
			if horizontal && o.X > it.X+it.W {
				break
			}
			if !horizontal && o.Y > it.Y+it.H {
				break
			}
			if grid.Collides(*it, o) {
				next = j
				break
			}
		}

		if next < 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		far := it.Y + it.H
		if horizontal {
			far = it.X + it.W
		}
		f.scan = next + 1
		stack = append(stack, cascadeFrame{idx: next, moveTo: far, scan: next + 1})
	}
}
