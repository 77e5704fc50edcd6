package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dashgrid/pkg/grid"
)

// showCommand creates the show command for printing a layout to the
// terminal.
func (c *CLI) showCommand() *cobra.Command {
	var (
		columns  int
		noLegend bool
	)

	cmd := &cobra.Command{
		Use:   "show <layout.json>",
		Short: "Print a layout as a character grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.loadLayout(args[0], columns)
			if err != nil {
				return err
			}

			fmt.Println(StyleTitle.Render(args[0]))
			if len(doc.Items) == 0 {
				printInfo("Layout is empty")
				return nil
			}
			printDetail("%d items · %d columns · %d rows", len(doc.Items), doc.Columns, grid.Bottom(doc.Items))
			fmt.Println()
			fmt.Print(renderGrid(doc.Items, doc.Columns, ""))
			if !noLegend && len(doc.Items) > 0 {
				fmt.Println()
				fmt.Print(renderLegend(doc.Items, ""))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&columns, "columns", 0, "grid column count (default: from layout, then config)")
	cmd.Flags().BoolVar(&noLegend, "no-legend", false, "omit the per-item legend")

	return cmd
}
