package engine

import (
	"testing"

	"github.com/matzehuels/dashgrid/pkg/grid"
)

// mustGet fetches an item by ID or fails the test.
func mustGet(t *testing.T, l grid.Layout, id string) grid.Item {
	t.Helper()
	it, ok := l.Get(id)
	if !ok {
		t.Fatalf("item %q missing from layout", id)
	}
	return it
}

// assertNoOverlap fails the test when any two items collide.
func assertNoOverlap(t *testing.T, l grid.Layout) {
	t.Helper()
	for i := range l {
		for j := i + 1; j < len(l); j++ {
			if grid.Collides(l[i], l[j]) {
				t.Errorf("items %q and %q overlap: %+v vs %+v", l[i].ID, l[j].ID, l[i], l[j])
			}
		}
	}
}

func TestMoveElement_FreeTarget(t *testing.T) {
	l := grid.Layout{grid.NewItem("a", 0, 0, 2, 2)}

	out := MoveElement(l, "a", 4, 2, MoveOptions{Columns: 8})

	a := mustGet(t, out, "a")
	if a.X != 4 || a.Y != 2 {
		t.Errorf("a = (%d, %d), want (4, 2)", a.X, a.Y)
	}
	if !a.Moved {
		t.Error("a.Moved = false, want true")
	}
}

func TestMoveElement_PushesCollider(t *testing.T) {
	l := grid.Layout{
		grid.NewItem("a", 0, 0, 2, 2),
		grid.NewItem("b", 0, 2, 2, 2),
	}

	out := MoveElement(l, "a", 0, 2, MoveOptions{Columns: 4})

	a := mustGet(t, out, "a")
	b := mustGet(t, out, "b")
	if a.Y != 2 {
		t.Errorf("a.Y = %d, want 2", a.Y)
	}
	if b.Y != 4 {
		t.Errorf("b.Y = %d, want 4 (pushed below a)", b.Y)
	}
	if !b.Moved {
		t.Error("b.Moved = false, want true")
	}
	assertNoOverlap(t, out)
}

func TestMoveElement_ChainPropagation(t *testing.T) {
	l := grid.Layout{
		grid.NewItem("a", 0, 0, 2, 2),
		grid.NewItem("b", 0, 2, 2, 2),
		grid.NewItem("c", 0, 4, 2, 2),
	}

	out := MoveElement(l, "a", 0, 2, MoveOptions{Columns: 4})

	if b := mustGet(t, out, "b"); b.Y != 4 {
		t.Errorf("b.Y = %d, want 4", b.Y)
	}
	if c := mustGet(t, out, "c"); c.Y != 6 {
		t.Errorf("c.Y = %d, want 6 (second hop of the cascade)", c.Y)
	}
	assertNoOverlap(t, out)
}

func TestMoveElement_StaticDeflectsMover(t *testing.T) {
	s := grid.NewItem("s", 0, 2, 2, 2)
	s.Static = true
	l := grid.Layout{
		grid.NewItem("a", 0, 0, 2, 2),
		s,
	}

	out := MoveElement(l, "a", 0, 2, MoveOptions{Columns: 4})

	a := mustGet(t, out, "a")
	if a.X != 0 || a.Y != 4 {
		t.Errorf("a = (%d, %d), want (0, 4) below the static", a.X, a.Y)
	}
	if got := mustGet(t, out, "s"); got.Y != 2 {
		t.Errorf("static moved to Y=%d, want 2", got.Y)
	}
	assertNoOverlap(t, out)
}

func TestMoveElement_DeflectedMoverStillPushes(t *testing.T) {
	// a is deflected below the static, into b, which must then move.
	s := grid.NewItem("s", 0, 2, 2, 2)
	s.Static = true
	l := grid.Layout{
		grid.NewItem("a", 0, 0, 2, 2),
		s,
		grid.NewItem("b", 0, 4, 2, 2),
	}

	out := MoveElement(l, "a", 0, 3, MoveOptions{Columns: 4})

	a := mustGet(t, out, "a")
	b := mustGet(t, out, "b")
	if a.Y != 4 {
		t.Errorf("a.Y = %d, want 4", a.Y)
	}
	if b.Y != 6 {
		t.Errorf("b.Y = %d, want 6", b.Y)
	}
	assertNoOverlap(t, out)
}

func TestMoveElement_MissingIDIsNoop(t *testing.T) {
	l := grid.Layout{grid.NewItem("a", 0, 0, 2, 2)}

	out := MoveElement(l, "ghost", 4, 4, MoveOptions{Columns: 8})
	if out[0] != l[0] {
		t.Errorf("layout changed for a missing id: %+v", out[0])
	}
}

func TestMoveElement_StaticItemIsNoop(t *testing.T) {
	s := grid.NewItem("s", 0, 0, 2, 2)
	s.Static = true
	l := grid.Layout{s}

	out := MoveElement(l, "s", 4, 4, MoveOptions{Columns: 8})
	if out[0] != l[0] {
		t.Errorf("static item moved: %+v", out[0])
	}
}

func TestMoveElement_NoopWithoutForce(t *testing.T) {
	l := grid.Layout{grid.NewItem("a", 2, 3, 2, 2)}

	out := MoveElement(l, "a", 2, 3, MoveOptions{Columns: 8})
	if mustGet(t, out, "a").Moved {
		t.Error("no-op move set the Moved flag")
	}
}

func TestMoveElement_TargetClamped(t *testing.T) {
	l := grid.Layout{grid.NewItem("a", 0, 0, 3, 2)}

	out := MoveElement(l, "a", 10, -5, MoveOptions{Columns: 8})

	a := mustGet(t, out, "a")
	if a.X != 5 {
		t.Errorf("a.X = %d, want 5 (clamped to columns-width)", a.X)
	}
	if a.Y != 0 {
		t.Errorf("a.Y = %d, want 0 (negative target clamped)", a.Y)
	}
}

func TestMoveElement_PreventCollisionResolvesResidue(t *testing.T) {
	// b and c already overlap; both get pushed onto the same row, and the
	// finalize pass separates them.
	l := grid.Layout{
		grid.NewItem("a", 0, 0, 4, 2),
		grid.NewItem("b", 0, 2, 3, 2),
		grid.NewItem("c", 2, 2, 2, 2),
	}

	out := MoveElement(l, "a", 0, 2, MoveOptions{Columns: 4, PreventCollision: true})

	assertNoOverlap(t, out)
	if a := mustGet(t, out, "a"); a.Y != 2 {
		t.Errorf("a.Y = %d, want 2", a.Y)
	}
	if c := mustGet(t, out, "c"); c.Y != 6 {
		t.Errorf("c.Y = %d, want 6 (separated from b)", c.Y)
	}
}

func TestMoveElement_CapAbortsPropagation(t *testing.T) {
	l := grid.Layout{
		grid.NewItem("a", 0, 0, 2, 2),
		grid.NewItem("b", 0, 2, 2, 2),
		grid.NewItem("c", 0, 4, 2, 2),
	}

	// A cap of one iteration processes only the moved item itself; the
	// cascade is cut short but the call still returns.
	out := MoveElement(l, "a", 0, 2, MoveOptions{
		Columns: 4,
		Limits:  Limits{MoveIterations: 1},
	})

	if len(out) != 3 {
		t.Fatalf("layout has %d items, want 3", len(out))
	}
	if a := mustGet(t, out, "a"); a.Y != 2 {
		t.Errorf("a.Y = %d, want 2", a.Y)
	}
}

func TestMoveElement_InputNotMutated(t *testing.T) {
	l := grid.Layout{
		grid.NewItem("a", 0, 0, 2, 2),
		grid.NewItem("b", 0, 2, 2, 2),
	}
	snapshot := l.Clone()

	MoveElement(l, "a", 0, 2, MoveOptions{Columns: 4})

	for i := range l {
		if l[i] != snapshot[i] {
			t.Errorf("input item %q mutated", l[i].ID)
		}
	}
}

func TestLimitsDefaults(t *testing.T) {
	var lim Limits

	if got := lim.moveCap(10); got != DefaultMoveIterationFloor {
		t.Errorf("moveCap(10) = %d, want %d", got, DefaultMoveIterationFloor)
	}
	if got := lim.moveCap(5000); got != 10000 {
		t.Errorf("moveCap(5000) = %d, want 10000 (2n beats the floor)", got)
	}
	if got := lim.placeCap(); got != DefaultPlaceIterations {
		t.Errorf("placeCap() = %d, want %d", got, DefaultPlaceIterations)
	}

	lim = Limits{MoveIterations: 7, PlaceIterations: 9}
	if got := lim.moveCap(100); got != 7 {
		t.Errorf("moveCap with override = %d, want 7", got)
	}
	if got := lim.placeCap(); got != 9 {
		t.Errorf("placeCap with override = %d, want 9", got)
	}
}
