package engine

import (
	"sort"

	"github.com/matzehuels/dashgrid/pkg/grid"
	"github.com/matzehuels/dashgrid/pkg/grid/compact"
	"github.com/matzehuels/dashgrid/pkg/observability"
)

// MoveOptions configures MoveElement and MoveCluster.
type MoveOptions struct {
	// Columns is the grid's column count. When positive, the target
	// position is clamped so the item stays within the grid.
	Columns int

	// PreventCollision runs the result through overlap resolution
	// (the "none" strategy) before returning, guaranteeing the final
	// layout is collision-free even when several pushes land items on
	// the same row.
	PreventCollision bool

	// Force runs the propagation even when the item already sits at the
	// target. Resize uses this to cascade pushes from an in-place
	// geometry change.
	Force bool

	// Limits bounds the propagation. Zero value selects defaults.
	Limits Limits
}

// MoveElement relocates the item with the given ID to (targetX, targetY)
// and propagates the displacement to everything it now overlaps.
//
// Static items never move: requesting a move of a static item returns the
// input unchanged, as does a no-op move (already at target) without
// opts.Force.
//
// # Propagation
//
// Displacement spreads breadth-first: a FIFO queue is seeded with the
// moved item, and a processed set keeps every item from being pushed more
// than once, which bounds work and breaks cycles. For the item at the
// head of the queue, every unprocessed collider is handled in ascending
// row order:
//
//   - A static collider cannot move, so the head itself is relocated to
//     just below the static's bottom edge and re-enqueued at the front:
//     its position changed, so it must be re-checked before anything
//     else.
//   - A non-static collider is pushed to the head's bottom edge, marked
//     processed, and enqueued.
//
// Propagation stops when the queue drains or the iteration cap is hit;
// exceeding the cap reports through observability hooks and returns the
// partially resolved layout.
func MoveElement(l grid.Layout, id string, targetX, targetY int, opts MoveOptions) grid.Layout {
	idx := l.Index(id)
	if idx < 0 {
		return l
	}
	it := l[idx]
	if it.Static {
		return l
	}

	if targetY < 0 {
		targetY = 0
	}
	if targetX < 0 {
		targetX = 0
	}
	if opts.Columns > 0 && targetX+it.W > opts.Columns {
		targetX = max(opts.Columns-it.W, 0)
	}

	if !opts.Force && it.X == targetX && it.Y == targetY {
		return l
	}

	out := l.Clone()
	out[idx].X = targetX
	out[idx].Y = targetY
	out[idx].Moved = true

	queue := []int{idx}
	processed := map[string]bool{id: true}
	cap := opts.Limits.moveCap(len(l))

	for iter := 0; len(queue) > 0; {
		if iter++; iter > cap {
			observability.Engine().OnPropagationAborted("move", iter, len(l))
			break
		}

		hi := queue[0]
		queue = queue[1:]
		head := out[hi]

		// Unprocessed colliders in ascending row order for deterministic
		// push order.
		var colliders []int
		for j := range out {
			if !processed[out[j].ID] && grid.Collides(head, out[j]) {
				colliders = append(colliders, j)
			}
		}
		sort.SliceStable(colliders, func(a, b int) bool {
			return out[colliders[a]].Y < out[colliders[b]].Y
		})

		for _, j := range colliders {
			c := out[j]
			if c.Static {
				// The head must yield: drop it below the static and
				// re-check it before everything else in the queue.
				out[hi].Y = c.Y + c.H
				out[hi].Moved = true
				queue = append([]int{hi}, queue...)
				break
			}
			out[j].Y = head.Y + head.H
			out[j].Moved = true
			processed[c.ID] = true
			queue = append(queue, j)
		}
	}

	if opts.PreventCollision {
		out = compact.ResolveOverlaps(out, compact.AxisVertical, opts.Columns)
	}
	return out
}
