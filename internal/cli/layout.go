package cli

import (
	"strconv"

	"github.com/matzehuels/dashgrid/pkg/errors"
	"github.com/matzehuels/dashgrid/pkg/gridio"
)

// loadLayout reads a layout file and applies the column precedence:
// --columns flag, then the document's own count, then the config default.
func (c *CLI) loadLayout(path string, columnsFlag int) (gridio.Document, error) {
	doc, err := gridio.ReadLayoutFile(path)
	if err != nil {
		return gridio.Document{}, err
	}
	if columnsFlag > 0 {
		doc.Columns = columnsFlag
	} else if doc.Columns == 0 {
		doc.Columns = c.Config.Columns
	}
	c.Logger.Debug("loaded layout", "path", path, "items", len(doc.Items), "columns", doc.Columns)
	return doc, nil
}

// saveLayout writes the layout to the output path and logs the result.
func (c *CLI) saveLayout(doc gridio.Document, path string) error {
	if err := gridio.WriteLayoutFile(doc, path); err != nil {
		return err
	}
	c.Logger.Info("wrote layout", "path", path, "items", len(doc.Items))
	return nil
}

// parseCoord parses one integer command argument.
func parseCoord(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "invalid %s: %q", name, s)
	}
	return v, nil
}
