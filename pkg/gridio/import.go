package gridio

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/dashgrid/pkg/errors"
	"github.com/matzehuels/dashgrid/pkg/grid"
)

// ReadJSON decodes a layout document from r and validates it.
// The returned document always carries a positive column count.
func ReadJSON(r io.Reader) (Document, error) {
	var w wireDoc
	dec := json.NewDecoder(r)
	if err := dec.Decode(&w); err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode layout")
	}

	doc := fromWire(w)
	if err := errors.ValidateColumns(doc.Columns); err != nil {
		return Document{}, err
	}
	if err := grid.Validate(doc.Items); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// ReadLayoutFile reads and validates a layout document from a JSON file.
func ReadLayoutFile(path string) (Document, error) {
	if err := errors.ValidatePath(path); err != nil {
		return Document{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "layout file %s", path)
		}
		return Document{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
