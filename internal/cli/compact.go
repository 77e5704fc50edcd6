package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/dashgrid/pkg/grid/compact"
)

// compactCommand creates the compact command for running a compaction
// strategy over a layout file.
func (c *CLI) compactCommand() *cobra.Command {
	var (
		output       string
		columns      int
		compactType  string
		allowOverlap bool
	)

	cmd := &cobra.Command{
		Use:   "compact <layout.json>",
		Short: "Run a compaction strategy over a layout",
		Long: `Run a compaction strategy over a layout.

Compaction pulls items toward one edge of the grid to close gaps, with
static items as immovable anchors. The fast-* strategies use a rising-tide
(skyline) sweep that scales near-linearly on large layouts.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ := compact.Type(compactType)
			if compactType == "" {
				typ = c.Config.CompactType()
			}
			if err := compact.ValidateType(typ); err != nil {
				return err
			}

			doc, err := c.loadLayout(args[0], columns)
			if err != nil {
				return err
			}

			doc.Items = compact.Compact(doc.Items, typ, doc.Columns, allowOverlap)
			return c.saveLayout(doc, outputPath(args[0], output))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: in-place)")
	cmd.Flags().IntVar(&columns, "columns", 0, "grid column count (default: from layout, then config)")
	cmd.Flags().StringVarP(&compactType, "type", "t", "", "strategy: vertical, horizontal, none, fast-vertical, fast-horizontal")
	cmd.Flags().BoolVar(&allowOverlap, "allow-overlap", false, "permit overlapping items (no-op pass)")

	return cmd
}
