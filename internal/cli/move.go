package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dashgrid/pkg/errors"
	"github.com/matzehuels/dashgrid/pkg/grid/engine"
)

// moveCommand creates the move command for relocating one item or a
// cluster of items.
func (c *CLI) moveCommand() *cobra.Command {
	var (
		output           string
		columns          int
		preventCollision bool
		cluster          []string
	)

	cmd := &cobra.Command{
		Use:   "move <layout.json> <id> <x> <y>",
		Short: "Move an item and resolve collisions",
		Long: `Move an item to a target cell and resolve collisions.

Displacement propagates breadth-first to everything the item now overlaps;
static items never move and instead deflect the moving item below them.
With --cluster, the named items move as a rigid group via their combined
bounding box, and <id> must be one of the cluster members.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseCoord("x", args[2])
			if err != nil {
				return err
			}
			y, err := parseCoord("y", args[3])
			if err != nil {
				return err
			}

			doc, err := c.loadLayout(args[0], columns)
			if err != nil {
				return err
			}

			id := args[1]
			if doc.Items.Index(id) < 0 {
				return errors.New(errors.ErrCodeItemNotFound, "no item %q in layout", id)
			}

			opts := engine.MoveOptions{
				Columns:          doc.Columns,
				PreventCollision: preventCollision,
				Limits:           c.Config.Limits(),
			}

			if len(cluster) > 0 {
				ids := map[string]bool{id: true}
				for _, member := range cluster {
					for _, m := range strings.Split(member, ",") {
						if m != "" {
							ids[m] = true
						}
					}
				}
				doc.Items = engine.MoveCluster(doc.Items, ids, x, y, opts)
			} else {
				doc.Items = engine.MoveElement(doc.Items, id, x, y, opts)
			}

			return c.saveLayout(doc, outputPath(args[0], output))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: in-place)")
	cmd.Flags().IntVar(&columns, "columns", 0, "grid column count (default: from layout, then config)")
	cmd.Flags().BoolVar(&preventCollision, "prevent-collision", false, "resolve residual overlaps before writing")
	cmd.Flags().StringSliceVar(&cluster, "cluster", nil, "additional item ids moved as a rigid group")

	return cmd
}
