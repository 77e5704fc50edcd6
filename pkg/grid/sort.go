package grid

import "sort"

// SortedRowCol returns a copy of the layout sorted by (Y, X) ascending.
// The sort is stable, so input order breaks remaining ties.
func SortedRowCol(l Layout) Layout {
	out := l.Clone()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// SortedColRow returns a copy of the layout sorted by (X, Y) ascending.
// The sort is stable, so input order breaks remaining ties.
func SortedColRow(l Layout) Layout {
	out := l.Clone()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	return out
}
