package grid

// Collides reports whether two items occupy overlapping grid cells.
// An item never collides with itself (compared by ID).
//
// The test is the standard axis-aligned rejection: the half-open ranges
// [X, X+W) and [Y, Y+H) must overlap on both axes.
func Collides(a, b Item) bool {
	if a.ID == b.ID {
		return false
	}
	if a.X+a.W <= b.X || b.X+b.W <= a.X {
		return false
	}
	if a.Y+a.H <= b.Y || b.Y+b.H <= a.Y {
		return false
	}
	return true
}

// FirstCollision returns the first item of candidates (in iteration order)
// colliding with it, and whether one was found.
func FirstCollision(candidates Layout, it Item) (Item, bool) {
	for i := range candidates {
		if Collides(candidates[i], it) {
			return candidates[i], true
		}
	}
	return Item{}, false
}

// AllCollisions returns every candidate colliding with it, preserving
// candidate order.
func AllCollisions(candidates Layout, it Item) Layout {
	var out Layout
	for i := range candidates {
		if Collides(candidates[i], it) {
			out = append(out, candidates[i])
		}
	}
	return out
}

// Statics returns the static items of the layout, preserving order.
func Statics(l Layout) Layout {
	var out Layout
	for i := range l {
		if l[i].Static {
			out = append(out, l[i])
		}
	}
	return out
}

// Bottom returns the row index just past the lowest occupied cell, or 0
// for an empty layout.
func Bottom(l Layout) int {
	bottom := 0
	for i := range l {
		if edge := l[i].Y + l[i].H; edge > bottom {
			bottom = edge
		}
	}
	return bottom
}
