package grid

// Unplaced is the sentinel coordinate marking an item that has no position
// yet and should be auto-placed (see engine.PlaceNewItems).
const Unplaced = -1

// PlaceholderID is the reserved item ID for the transient drag/drop
// placeholder. The engine treats it like any other item; interaction code
// uses the reserved ID to find and remove it when a gesture ends.
const PlaceholderID = "__placeholder__"

// Item is a single rectangular element of a layout.
//
// Item is a value type. Engine functions never mutate an Item in place;
// every transformation yields a new value with updated fields.
type Item struct {
	// ID uniquely identifies the item within a layout.
	ID string

	// X, Y are the grid coordinates of the top-left cell. Unplaced (-1)
	// in either field marks the item for auto-placement.
	X, Y int

	// W, H are the spans in grid cells, at least 1 each.
	W, H int

	// MinW, MinH are the minimum spans accepted by a resize (default 1).
	MinW, MinH int

	// MaxW, MaxH are the maximum spans accepted by a resize.
	// Zero means unbounded.
	MaxW, MaxH int

	// Static marks an immovable obstacle. Static items are never relocated
	// by any algorithm (CorrectBounds being the single, vertical-only
	// exception) but still participate in collision checks.
	Static bool

	// Draggable and Resizable are capability flags consulted by
	// interaction code. The engine itself only gates resizes on Resizable.
	Draggable, Resizable bool

	// Moved is set when an algorithm changed the item's position during
	// the current call and cleared at the end of a compaction pass. It is
	// an animation hint for renderers and carries no layout semantics.
	Moved bool
}

// NewItem returns an item at (x, y) spanning w x h cells with default
// capabilities: draggable, resizable, minimum span 1, unbounded maximum.
func NewItem(id string, x, y, w, h int) Item {
	return Item{
		ID:        id,
		X:         x,
		Y:         y,
		W:         w,
		H:         h,
		MinW:      1,
		MinH:      1,
		Draggable: true,
		Resizable: true,
	}
}

// NeedsPlacement reports whether the item carries the auto-placement
// sentinel in either coordinate.
func (it Item) NeedsPlacement() bool {
	return it.X == Unplaced || it.Y == Unplaced
}

// ClampSize bounds a requested span to the item's min/max constraints.
// Spans below 1 are raised to 1 before the item bounds apply.
func (it Item) ClampSize(w, h int) (int, int) {
	w = max(w, 1)
	h = max(h, 1)
	w = max(w, max(it.MinW, 1))
	h = max(h, max(it.MinH, 1))
	if it.MaxW > 0 && w > it.MaxW {
		w = it.MaxW
	}
	if it.MaxH > 0 && h > it.MaxH {
		h = it.MaxH
	}
	return w, h
}

// Layout is an ordered sequence of items with unique IDs. Order carries no
// semantic weight beyond tie-breaking during sort-based algorithms.
type Layout []Item

// Clone returns a copy of the layout that shares no storage with l.
func (l Layout) Clone() Layout {
	out := make(Layout, len(l))
	copy(out, l)
	return out
}

// Index returns the position of the item with the given ID, or -1 if the
// layout contains no such item.
func (l Layout) Index(id string) int {
	for i := range l {
		if l[i].ID == id {
			return i
		}
	}
	return -1
}

// Get returns the item with the given ID and whether it was found.
func (l Layout) Get(id string) (Item, bool) {
	if i := l.Index(id); i >= 0 {
		return l[i], true
	}
	return Item{}, false
}
