package engine

import (
	"testing"

	"github.com/matzehuels/dashgrid/pkg/grid"
)

func TestPlaceNewItems_ExplicitCoordinates(t *testing.T) {
	existing := grid.Layout{grid.NewItem("a", 0, 0, 2, 2)}
	newItems := []grid.Item{grid.NewItem("b", 5, 5, 2, 2)}

	out := PlaceNewItems(existing, newItems, 12, Limits{})

	b := mustGet(t, out, "b")
	if b.X != 5 || b.Y != 5 {
		t.Errorf("b = (%d, %d), want (5, 5) as given", b.X, b.Y)
	}
}

func TestPlaceNewItems_AutoPlacementFillsRow(t *testing.T) {
	newItems := []grid.Item{
		grid.NewItem("a", grid.Unplaced, grid.Unplaced, 2, 2),
		grid.NewItem("b", grid.Unplaced, grid.Unplaced, 2, 2),
		grid.NewItem("c", grid.Unplaced, grid.Unplaced, 2, 2),
	}

	out := PlaceNewItems(grid.Layout{}, newItems, 4, Limits{})

	a := mustGet(t, out, "a")
	b := mustGet(t, out, "b")
	c := mustGet(t, out, "c")
	if a.X != 0 || a.Y != 0 {
		t.Errorf("a = (%d, %d), want (0, 0)", a.X, a.Y)
	}
	if b.X != 2 || b.Y != 0 {
		t.Errorf("b = (%d, %d), want (2, 0)", b.X, b.Y)
	}
	if c.X != 0 || c.Y != 2 {
		t.Errorf("c = (%d, %d), want (0, 2) after wrapping", c.X, c.Y)
	}
	assertNoOverlap(t, out)
}

func TestPlaceNewItems_StartsBelowExisting(t *testing.T) {
	existing := grid.Layout{grid.NewItem("a", 0, 0, 4, 3)}
	newItems := []grid.Item{grid.NewItem("b", grid.Unplaced, grid.Unplaced, 2, 2)}

	out := PlaceNewItems(existing, newItems, 4, Limits{})

	b := mustGet(t, out, "b")
	if b.X != 0 || b.Y != 3 {
		t.Errorf("b = (%d, %d), want (0, 3) below the existing item", b.X, b.Y)
	}
	if a := mustGet(t, out, "a"); a.X != 0 || a.Y != 0 {
		t.Error("existing item moved during placement")
	}
}

func TestPlaceNewItems_StepsPastCollision(t *testing.T) {
	// The blocker carries explicit coordinates on the starting row of the
	// scan, so the cursor must step around it.
	existing := grid.Layout{grid.NewItem("a", 0, 0, 2, 2)}
	newItems := []grid.Item{
		grid.NewItem("blocker", 0, 2, 2, 2),
		grid.NewItem("b", grid.Unplaced, grid.Unplaced, 2, 2),
	}

	out := PlaceNewItems(existing, newItems, 4, Limits{})

	b := mustGet(t, out, "b")
	if b.X != 2 || b.Y != 2 {
		t.Errorf("b = (%d, %d), want (2, 2) beside the blocker", b.X, b.Y)
	}
	assertNoOverlap(t, out)
}

func TestPlaceNewItems_StaticIsOrdinaryObstacle(t *testing.T) {
	// A static placed in the same batch blocks the scan like any other
	// item: the auto item steps past it, with no special handling.
	s := grid.NewItem("s", 0, 2, 2, 2)
	s.Static = true
	existing := grid.Layout{grid.NewItem("a", 0, 0, 4, 2)}
	newItems := []grid.Item{
		s,
		grid.NewItem("b", grid.Unplaced, grid.Unplaced, 2, 2),
	}

	out := PlaceNewItems(existing, newItems, 4, Limits{})

	b := mustGet(t, out, "b")
	if b.X != 2 || b.Y != 2 {
		t.Errorf("b = (%d, %d), want (2, 2) beside the static", b.X, b.Y)
	}
	assertNoOverlap(t, out)
}

func TestPlaceNewItems_OverflowDropsBelow(t *testing.T) {
	newItems := []grid.Item{
		grid.NewItem("a", grid.Unplaced, grid.Unplaced, 2, 2),
		grid.NewItem("b", grid.Unplaced, grid.Unplaced, 2, 2),
	}

	// One iteration places a at the cursor but gives b no chance to wrap,
	// so b takes the overflow path below everything.
	out := PlaceNewItems(grid.Layout{}, newItems, 2, Limits{PlaceIterations: 1})

	b := mustGet(t, out, "b")
	if b.X != 0 || b.Y != 2 {
		t.Errorf("b = (%d, %d), want (0, 2) from the overflow path", b.X, b.Y)
	}
	assertNoOverlap(t, out)
}

func TestPlaceNewItems_EmptyNewItems(t *testing.T) {
	existing := grid.Layout{grid.NewItem("a", 0, 0, 2, 2)}

	out := PlaceNewItems(existing, nil, 4, Limits{})
	if len(out) != 1 || out[0] != existing[0] {
		t.Errorf("PlaceNewItems with no new items = %v, want the input", out)
	}
}

func TestOptimizeLayout_FillsGaps(t *testing.T) {
	l := grid.Layout{
		grid.NewItem("a", 0, 0, 2, 2),
		grid.NewItem("b", 0, 4, 2, 2),
	}

	out := OptimizeLayout(l, 4)

	b := mustGet(t, out, "b")
	if b.X != 2 || b.Y != 0 {
		t.Errorf("b = (%d, %d), want (2, 0) beside a", b.X, b.Y)
	}
	if !b.Moved {
		t.Error("b.Moved = false, want true")
	}
	if a := mustGet(t, out, "a"); a.Moved {
		t.Error("a.Moved = true, want false (a did not move)")
	}
	assertNoOverlap(t, out)
}

func TestOptimizeLayout_ReadingOrderPreserved(t *testing.T) {
	l := grid.Layout{
		grid.NewItem("first", 2, 0, 2, 2),
		grid.NewItem("second", 0, 3, 2, 2),
	}

	out := OptimizeLayout(l, 4)

	first := mustGet(t, out, "first")
	second := mustGet(t, out, "second")
	// first precedes second in reading order and keeps an earlier slot.
	if first.Y != 0 || first.X != 0 {
		t.Errorf("first = (%d, %d), want (0, 0)", first.X, first.Y)
	}
	if second.Y != 0 || second.X != 2 {
		t.Errorf("second = (%d, %d), want (2, 0)", second.X, second.Y)
	}
	assertNoOverlap(t, out)
}

func TestOptimizeLayout_StaticStaysPut(t *testing.T) {
	s := grid.NewItem("s", 2, 2, 2, 2)
	s.Static = true
	l := grid.Layout{
		s,
		grid.NewItem("a", 0, 6, 2, 2),
	}

	out := OptimizeLayout(l, 4)

	if got := mustGet(t, out, "s"); got.X != 2 || got.Y != 2 {
		t.Errorf("static = (%d, %d), want (2, 2)", got.X, got.Y)
	}
	if a := mustGet(t, out, "a"); a.X != 0 || a.Y != 0 {
		t.Errorf("a = (%d, %d), want (0, 0)", a.X, a.Y)
	}
	assertNoOverlap(t, out)
}

func TestOptimizeLayout_TooWideItemAppendedBelow(t *testing.T) {
	l := grid.Layout{
		grid.NewItem("a", 0, 0, 2, 2),
		grid.NewItem("wide", 0, 2, 6, 1),
	}

	out := OptimizeLayout(l, 4)

	wide := mustGet(t, out, "wide")
	if wide.X != 0 || wide.Y != 2 {
		t.Errorf("wide = (%d, %d), want (0, 2) appended below", wide.X, wide.Y)
	}
}

func TestOptimizeLayout_Empty(t *testing.T) {
	if out := OptimizeLayout(grid.Layout{}, 12); len(out) != 0 {
		t.Errorf("OptimizeLayout(empty) = %v, want empty", out)
	}
}

func TestCorrectBounds_ClampsProtrudingItem(t *testing.T) {
	l := grid.Layout{grid.NewItem("a", 10, 0, 4, 2)}

	out := CorrectBounds(l, 12)

	if a := mustGet(t, out, "a"); a.X != 8 {
		t.Errorf("a.X = %d, want 8", a.X)
	}
}

func TestCorrectBounds_NegativeXBecomesFullWidth(t *testing.T) {
	l := grid.Layout{grid.NewItem("a", 0, 0, 20, 2)}

	// Wider than the grid: the right-edge clamp drives X negative, which
	// normalizes to full width at column 0.
	out := CorrectBounds(l, 12)

	a := mustGet(t, out, "a")
	if a.X != 0 || a.W != 12 {
		t.Errorf("a = x%d w%d, want x0 w12", a.X, a.W)
	}
}

func TestCorrectBounds_StaticMayProtrude(t *testing.T) {
	s := grid.NewItem("s", 6, 0, 2, 2)
	s.Static = true
	l := grid.Layout{s}

	out := CorrectBounds(l, 4)

	got := mustGet(t, out, "s")
	if got.X != 6 || got.Y != 0 || got.W != 2 {
		t.Errorf("static = x%d y%d w%d, want untouched x6 y0 w2", got.X, got.Y, got.W)
	}
}

func TestCorrectBounds_StaticPushedOffEarlierItems(t *testing.T) {
	s := grid.NewItem("s", 2, 0, 2, 2)
	s.Static = true
	l := grid.Layout{
		grid.NewItem("a", 2, 0, 2, 2),
		s,
	}

	out := CorrectBounds(l, 4)

	got := mustGet(t, out, "s")
	if got.Y != 2 {
		t.Errorf("static.Y = %d, want 2 (pushed below the accepted item)", got.Y)
	}
	if a := mustGet(t, out, "a"); a.X != 2 || a.Y != 0 {
		t.Errorf("a = (%d, %d), want (2, 0) untouched", a.X, a.Y)
	}
}
