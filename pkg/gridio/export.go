package gridio

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/dashgrid/pkg/errors"
	"github.com/matzehuels/dashgrid/pkg/grid"
)

// WriteJSON encodes a layout document as indented JSON and writes it to
// w. The output round-trips through [ReadJSON] with every engine-relevant
// field preserved. The transient drag placeholder, if present, is dropped:
// it belongs to an in-flight gesture, not to the persisted layout.
func WriteJSON(d Document, w io.Writer) error {
	if i := d.Items.Index(grid.PlaceholderID); i >= 0 {
		items := d.Items.Clone()
		d.Items = append(items[:i], items[i+1:]...)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toWire(d)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode layout")
	}
	return nil
}

// WriteLayoutFile writes a layout document to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func WriteLayoutFile(d Document, path string) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "create %s", path)
	}
	defer f.Close()
	return WriteJSON(d, f)
}
