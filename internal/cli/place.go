package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dashgrid/pkg/errors"
	"github.com/matzehuels/dashgrid/pkg/grid"
	"github.com/matzehuels/dashgrid/pkg/grid/engine"
)

// placeCommand creates the place command for auto-placing new items.
func (c *CLI) placeCommand() *cobra.Command {
	var (
		output  string
		columns int
		items   []string
	)

	cmd := &cobra.Command{
		Use:   "place <layout.json>",
		Short: "Auto-place new items into a layout",
		Long: `Auto-place new items into a layout.

Each --item WxH (e.g. --item 2x2) is appended at the first free position
found by a left-to-right, top-to-bottom scan below the existing items.
Existing items are never moved. New items are assigned fresh UUIDs; use
--item id=WxH to pick the id yourself.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(items) == 0 {
				return errors.New(errors.ErrCodeInvalidInput, "at least one --item is required")
			}

			newItems := make([]grid.Item, 0, len(items))
			for _, spec := range items {
				it, err := parseItemSpec(spec)
				if err != nil {
					return err
				}
				newItems = append(newItems, it)
			}

			doc, err := c.loadLayout(args[0], columns)
			if err != nil {
				return err
			}

			doc.Items = engine.PlaceNewItems(doc.Items, newItems, doc.Columns, c.Config.Limits())
			for _, it := range newItems {
				placed, _ := doc.Items.Get(it.ID)
				c.Logger.Info("placed item", "id", placed.ID, "x", placed.X, "y", placed.Y, "w", placed.W, "h", placed.H)
			}
			return c.saveLayout(doc, outputPath(args[0], output))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: in-place)")
	cmd.Flags().IntVar(&columns, "columns", 0, "grid column count (default: from layout, then config)")
	cmd.Flags().StringArrayVar(&items, "item", nil, "item to place, as WxH or id=WxH (repeatable)")

	return cmd
}

// parseItemSpec parses an --item argument of the form "WxH" or "id=WxH"
// into an unplaced item.
func parseItemSpec(spec string) (grid.Item, error) {
	id := uuid.NewString()
	size := spec
	if i := strings.IndexByte(spec, '='); i >= 0 {
		id, size = spec[:i], spec[i+1:]
		if id == "" {
			return grid.Item{}, errors.New(errors.ErrCodeInvalidItem, "empty id in --item %q", spec)
		}
	}

	var w, h int
	if _, err := fmt.Sscanf(size, "%dx%d", &w, &h); err != nil || w < 1 || h < 1 {
		return grid.Item{}, errors.New(errors.ErrCodeInvalidInput, "invalid --item %q (want WxH, e.g. 2x2)", spec)
	}
	return grid.NewItem(id, grid.Unplaced, grid.Unplaced, w, h), nil
}
