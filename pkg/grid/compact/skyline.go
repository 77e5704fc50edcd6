package compact

import (
	"sort"

	"github.com/matzehuels/dashgrid/pkg/grid"
)

// The skyline strategies keep a one-dimensional rising tide: tide[k] is
// the first free coordinate in column k (fast-vertical) or row k
// (fast-horizontal). Each item lands at the high-water mark over its
// span, which gives near-linear passes at the cost of never back-filling
// a gap below the tide. For layouts in the hundreds of items this is a
// behavior-compatible replacement for the baseline strategies.

// compactSkylineVertical compacts toward row 0 using a per-column tide.
func compactSkylineVertical(l grid.Layout, columns int) grid.Layout {
	if columns < 1 {
		columns = 1
	}
	tide := make([]int, columns)

	sorted := sortSkyline(l, false)
	statics := sortedStatics(l, false)

	for i := range sorted {
		it := &sorted[i]
		if it.X < 0 {
			it.X = 0
		}

		lo, hi := span(it.X, it.W, columns)
		if it.Static {
			raise(tide, lo, hi, it.Y+it.H)
			continue
		}

		y := 0
		for k := lo; k < hi; k++ {
			y = max(y, tide[k])
		}
		y = clearStatics(statics, *it, y)

		it.Y = y
		raise(tide, lo, hi, y+it.H)
	}

	return reassemble(l, sorted)
}

// compactSkylineHorizontal compacts toward column 0 using a per-row tide.
func compactSkylineHorizontal(l grid.Layout, columns int) grid.Layout {
	rows := grid.Bottom(l)
	if rows < 1 {
		rows = 1
	}
	tide := make([]int, rows)

	sorted := sortSkyline(l, true)
	statics := sortedStatics(l, true)

	for i := range sorted {
		it := &sorted[i]
		if it.Y < 0 {
			it.Y = 0
		}

		lo, hi := span(it.Y, it.H, rows)
		if it.Static {
			raise(tide, lo, hi, it.X+it.W)
			continue
		}

		x := 0
		for k := lo; k < hi; k++ {
			x = max(x, tide[k])
		}
		x = clearStaticsHorizontal(statics, *it, x)

		it.X = x
		raise(tide, lo, hi, x+it.W)
	}

	return reassemble(l, sorted)
}

// sortSkyline orders items by (main axis, cross axis) with static items
// first among exact position ties, so anchors enter the tide before the
// items that must flow around them. The sort is stable; input order
// breaks remaining ties.
func sortSkyline(l grid.Layout, horizontal bool) grid.Layout {
	out := l.Clone()
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		am, ac, bm, bc := a.Y, a.X, b.Y, b.X
		if horizontal {
			am, ac, bm, bc = a.X, a.Y, b.X, b.Y
		}
		if am != bm {
			return am < bm
		}
		if ac != bc {
			return ac < bc
		}
		return a.Static && !b.Static
	})
	return out
}

// sortedStatics returns the static items sorted by position on the main
// axis, for the cursor scan in clearStatics.
func sortedStatics(l grid.Layout, horizontal bool) grid.Layout {
	statics := grid.Statics(l)
	sort.SliceStable(statics, func(i, j int) bool {
		if horizontal {
			if statics[i].X != statics[j].X {
				return statics[i].X < statics[j].X
			}
			return statics[i].Y < statics[j].Y
		}
		if statics[i].Y != statics[j].Y {
			return statics[i].Y < statics[j].Y
		}
		return statics[i].X < statics[j].X
	})
	return statics
}

// clearStatics shifts the candidate row down past any static the item
// would overlap at (it.X, y). The cursor resets to the start of the
// static list whenever a collision forces a shift: the statics are sorted
// by row, but a shift can move the item into a static the cursor already
// passed on another column, so a partial rescan would miss it.
func clearStatics(statics grid.Layout, it grid.Item, y int) int {
	for cur := 0; cur < len(statics); {
		probe := it
		probe.Y = y
		if grid.Collides(statics[cur], probe) {
			y = statics[cur].Y + statics[cur].H
			cur = 0
			continue
		}
		cur++
	}
	return y
}

// clearStaticsHorizontal is the column-axis counterpart of clearStatics.
func clearStaticsHorizontal(statics grid.Layout, it grid.Item, x int) int {
	for cur := 0; cur < len(statics); {
		probe := it
		probe.X = x
		if grid.Collides(statics[cur], probe) {
			x = statics[cur].X + statics[cur].W
			cur = 0
			continue
		}
		cur++
	}
	return x
}

// span clamps [at, at+size) to [0, limit) and returns the covered range.
// Items protruding past the edge still reserve the cells they do cover.
func span(at, size, limit int) (lo, hi int) {
	lo = max(at, 0)
	hi = min(at+size, limit)
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// raise lifts the tide to at least level over [lo, hi).
func raise(tide []int, lo, hi, level int) {
	for k := lo; k < hi; k++ {
		if tide[k] < level {
			tide[k] = level
		}
	}
}

// reassemble restores input order and clears Moved flags.
func reassemble(l, sorted grid.Layout) grid.Layout {
	out := l.Clone()
	for i := range sorted {
		idx := out.Index(sorted[i].ID)
		out[idx] = sorted[i]
		out[idx].Moved = false
	}
	return out
}
