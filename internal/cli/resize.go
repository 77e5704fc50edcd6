package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/dashgrid/pkg/errors"
	"github.com/matzehuels/dashgrid/pkg/grid/engine"
)

// resizeCommand creates the resize command.
func (c *CLI) resizeCommand() *cobra.Command {
	var (
		output           string
		columns          int
		behavior         string
		preventCollision bool
	)

	cmd := &cobra.Command{
		Use:   "resize <layout.json> <id> <w> <h>",
		Short: "Resize an item and resolve collisions",
		Long: `Resize an item to a new span and resolve collisions.

With --behavior shrink, colliding neighbors absorb the expansion by giving
up the overlapped cells, atomically: if any neighbor would fall below its
minimum span, the whole operation falls back to pushing. With
--prevent-collision, a resize that would force the item into a static
obstacle is rejected as a whole and the layout is left untouched.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := parseCoord("width", args[2])
			if err != nil {
				return err
			}
			h, err := parseCoord("height", args[3])
			if err != nil {
				return err
			}

			doc, err := c.loadLayout(args[0], columns)
			if err != nil {
				return err
			}

			it, ok := doc.Items.Get(args[1])
			if !ok {
				return errors.New(errors.ErrCodeItemNotFound, "no item %q in layout", args[1])
			}

			b := engine.ResizeBehavior(behavior)
			if b != engine.BehaviorPush && b != engine.BehaviorShrink {
				return errors.New(errors.ErrCodeInvalidInput, "invalid behavior: %q (must be push or shrink)", behavior)
			}

			it.W, it.H = w, h
			doc.Items = engine.ResizeItem(doc.Items, it, b, doc.Columns, preventCollision)
			return c.saveLayout(doc, outputPath(args[0], output))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: in-place)")
	cmd.Flags().IntVar(&columns, "columns", 0, "grid column count (default: from layout, then config)")
	cmd.Flags().StringVar(&behavior, "behavior", string(engine.BehaviorPush), "collision resolution: push, shrink")
	cmd.Flags().BoolVar(&preventCollision, "prevent-collision", false, "reject resizes that would overlap a static item")

	return cmd
}
