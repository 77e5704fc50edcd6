package grid

import "github.com/matzehuels/dashgrid/pkg/errors"

// Validate checks the structural invariants the engine assumes but does
// not enforce: unique, well-formed IDs and sane spans and bounds.
//
// Validate is intended for the layers that admit external data (the JSON
// codec, the CLI); the engine's hot paths never call it. Overlap is not a
// structural error; layouts with overlapping items are legal inputs that
// compaction resolves.
func Validate(l Layout) error {
	seen := make(map[string]bool, len(l))
	for i := range l {
		it := l[i]
		if err := errors.ValidateItemID(it.ID); err != nil {
			return err
		}
		if seen[it.ID] {
			return errors.New(errors.ErrCodeDuplicateID, "duplicate item id %q", it.ID)
		}
		seen[it.ID] = true

		if it.W < 1 || it.H < 1 {
			return errors.New(errors.ErrCodeInvalidItem, "item %q has non-positive span %dx%d", it.ID, it.W, it.H)
		}
		if it.MaxW > 0 && it.MinW > it.MaxW {
			return errors.New(errors.ErrCodeInvalidItem, "item %q has minW %d above maxW %d", it.ID, it.MinW, it.MaxW)
		}
		if it.MaxH > 0 && it.MinH > it.MaxH {
			return errors.New(errors.ErrCodeInvalidItem, "item %q has minH %d above maxH %d", it.ID, it.MinH, it.MaxH)
		}
		if (it.X < 0 && it.X != Unplaced) || (it.Y < 0 && it.Y != Unplaced) {
			return errors.New(errors.ErrCodeInvalidItem, "item %q has negative position (%d, %d)", it.ID, it.X, it.Y)
		}
	}
	return nil
}
