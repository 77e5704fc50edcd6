package engine

import "github.com/matzehuels/dashgrid/pkg/grid"

// clusterID is the reserved ID of the virtual bounding-box item a
// cluster move sends through the move resolver. It never appears in a
// returned layout.
const clusterID = "__cluster__"

// MoveCluster moves every item whose ID is in ids as a rigid group.
//
// The group's minimal bounding rectangle is moved through MoveElement as
// a single virtual item, with every non-member as an obstacle; the
// resolved delta is then replayed uniformly onto each member, so members
// keep their offsets within the box regardless of how the box itself was
// deflected. Members are marked Moved when the delta is non-zero.
//
// An empty or unmatched id set is a no-op.
func MoveCluster(l grid.Layout, ids map[string]bool, targetX, targetY int, opts MoveOptions) grid.Layout {
	var members grid.Layout
	var obstacles grid.Layout
	for i := range l {
		if ids[l[i].ID] {
			members = append(members, l[i])
		} else {
			obstacles = append(obstacles, l[i])
		}
	}
	if len(members) == 0 {
		return l
	}

	box := boundingBox(members)
	work := append(obstacles.Clone(), box)

	resolved := MoveElement(work, clusterID, targetX, targetY, opts)
	moved, _ := resolved.Get(clusterID)
	dx, dy := moved.X-box.X, moved.Y-box.Y

	out := make(grid.Layout, len(l))
	for i := range l {
		it := l[i]
		if ids[it.ID] {
			it.X += dx
			it.Y += dy
			if dx != 0 || dy != 0 {
				it.Moved = true
			}
		} else if r, ok := resolved.Get(it.ID); ok {
			it = r
		}
		out[i] = it
	}
	return out
}

// boundingBox returns the virtual item covering the minimal rectangle
// that encloses all members.
func boundingBox(members grid.Layout) grid.Item {
	minX, minY := members[0].X, members[0].Y
	maxX, maxY := members[0].X+members[0].W, members[0].Y+members[0].H
	for _, it := range members[1:] {
		minX = min(minX, it.X)
		minY = min(minY, it.Y)
		maxX = max(maxX, it.X+it.W)
		maxY = max(maxY, it.Y+it.H)
	}
	box := grid.NewItem(clusterID, minX, minY, maxX-minX, maxY-minY)
	return box
}
