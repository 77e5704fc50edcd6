package gridio

import "github.com/matzehuels/dashgrid/pkg/grid"

// Document is a layout file: the grid's column count plus its items.
type Document struct {
	Columns int
	Items   grid.Layout
}

// DefaultColumns is used when a document omits the column count.
const DefaultColumns = 12

// wireDoc and wireItem are the JSON shapes. Pointer fields distinguish
// "absent" from zero so reads can apply the documented defaults.
type wireDoc struct {
	Columns int        `json:"columns,omitempty"`
	Items   []wireItem `json:"items"`
}

type wireItem struct {
	ID        string `json:"id"`
	X         *int   `json:"x,omitempty"`
	Y         *int   `json:"y,omitempty"`
	W         int    `json:"w"`
	H         int    `json:"h"`
	MinW      *int   `json:"minW,omitempty"`
	MinH      *int   `json:"minH,omitempty"`
	MaxW      int    `json:"maxW,omitempty"`
	MaxH      int    `json:"maxH,omitempty"`
	Static    bool   `json:"static,omitempty"`
	Draggable *bool  `json:"draggable,omitempty"`
	Resizable *bool  `json:"resizable,omitempty"`
}

func toWire(d Document) wireDoc {
	out := wireDoc{Columns: d.Columns, Items: make([]wireItem, len(d.Items))}
	for i, it := range d.Items {
		w := wireItem{
			ID:     it.ID,
			W:      it.W,
			H:      it.H,
			MaxW:   it.MaxW,
			MaxH:   it.MaxH,
			Static: it.Static,
		}
		if !it.NeedsPlacement() {
			x, y := it.X, it.Y
			w.X, w.Y = &x, &y
		}
		if it.MinW != 1 {
			minW := it.MinW
			w.MinW = &minW
		}
		if it.MinH != 1 {
			minH := it.MinH
			w.MinH = &minH
		}
		if !it.Draggable {
			f := false
			w.Draggable = &f
		}
		if !it.Resizable {
			f := false
			w.Resizable = &f
		}
		out.Items[i] = w
	}
	return out
}

func fromWire(d wireDoc) Document {
	out := Document{Columns: d.Columns, Items: make(grid.Layout, len(d.Items))}
	if out.Columns == 0 {
		out.Columns = DefaultColumns
	}
	for i, w := range d.Items {
		it := grid.NewItem(w.ID, grid.Unplaced, grid.Unplaced, w.W, w.H)
		if w.X != nil {
			it.X = *w.X
		}
		if w.Y != nil {
			it.Y = *w.Y
		}
		if w.MinW != nil {
			it.MinW = *w.MinW
		}
		if w.MinH != nil {
			it.MinH = *w.MinH
		}
		it.MaxW = w.MaxW
		it.MaxH = w.MaxH
		it.Static = w.Static
		if w.Draggable != nil {
			it.Draggable = *w.Draggable
		}
		if w.Resizable != nil {
			it.Resizable = *w.Resizable
		}
		out.Items[i] = it
	}
	return out
}
