package engine

// Default iteration caps. They bound pathological cyclic inputs; the
// expected path never comes near them.
const (
	// DefaultMoveIterationFloor is the minimum iteration cap for
	// breadth-first collision propagation. The effective cap is the
	// larger of this floor and twice the item count.
	DefaultMoveIterationFloor = 5000

	// DefaultPlaceIterations caps the cursor scan for one auto-placed
	// item before it falls back to the row below everything.
	DefaultPlaceIterations = 10000
)

// Limits bounds the iteration counts of engine operations. The zero
// value selects the defaults.
type Limits struct {
	// MoveIterations caps breadth-first collision propagation.
	// Zero selects max(DefaultMoveIterationFloor, 2 * item count).
	MoveIterations int

	// PlaceIterations caps the auto-placement cursor scan per item.
	// Zero selects DefaultPlaceIterations.
	PlaceIterations int
}

// moveCap returns the effective propagation cap for n items.
func (lim Limits) moveCap(n int) int {
	if lim.MoveIterations > 0 {
		return lim.MoveIterations
	}
	return max(DefaultMoveIterationFloor, 2*n)
}

// placeCap returns the effective per-item placement cap.
func (lim Limits) placeCap() int {
	if lim.PlaceIterations > 0 {
		return lim.PlaceIterations
	}
	return DefaultPlaceIterations
}
