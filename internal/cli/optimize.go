package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/dashgrid/pkg/grid/engine"
)

// optimizeCommand creates the optimize command.
func (c *CLI) optimizeCommand() *cobra.Command {
	var (
		output        string
		columns       int
		correctBounds bool
	)

	cmd := &cobra.Command{
		Use:   "optimize <layout.json>",
		Short: "Repack items to minimize wasted space",
		Long: `Repack items to minimize wasted space.

Items are reassigned, in reading order, to the earliest free position that
fits them, leaving static items fixed. With --correct-bounds, out-of-range
items are clamped back into the grid first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.loadLayout(args[0], columns)
			if err != nil {
				return err
			}

			if correctBounds {
				doc.Items = engine.CorrectBounds(doc.Items, doc.Columns)
			}
			doc.Items = engine.OptimizeLayout(doc.Items, doc.Columns)
			return c.saveLayout(doc, outputPath(args[0], output))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: in-place)")
	cmd.Flags().IntVar(&columns, "columns", 0, "grid column count (default: from layout, then config)")
	cmd.Flags().BoolVar(&correctBounds, "correct-bounds", false, "clamp out-of-range items before repacking")

	return cmd
}
