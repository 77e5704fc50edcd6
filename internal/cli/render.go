package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/dashgrid/pkg/grid"
)

// cellWidth is how many terminal columns one grid cell occupies. Two
// characters per cell keeps the aspect ratio close to square.
const cellWidth = 2

// renderGrid draws a layout as a colored character grid. Each cell shows
// the label of the item covering it, or a dot when empty. Static items
// render gray and bold; selectedID (may be empty) renders inverted.
func renderGrid(l grid.Layout, columns int, selectedID string) string {
	rows := grid.Bottom(l)
	if rows == 0 {
		return styleEmpty.Render("(empty layout)") + "\n"
	}

	// Cell ownership map. Later items win on overlap, matching the
	// order items are drawn by web grid renderers.
	owner := make([]int, rows*columns)
	for i := range owner {
		owner[i] = -1
	}
	for i, it := range l {
		if it.NeedsPlacement() {
			continue
		}
		for y := it.Y; y < it.Y+it.H && y < rows; y++ {
			for x := it.X; x < it.X+it.W && x < columns; x++ {
				if x >= 0 && y >= 0 {
					owner[y*columns+x] = i
				}
			}
		}
	}

	labels := itemLabels(l)

	var b strings.Builder
	for y := 0; y < rows; y++ {
		for x := 0; x < columns; x++ {
			idx := owner[y*columns+x]
			if idx < 0 {
				b.WriteString(styleEmpty.Render("· "))
				continue
			}
			it := l[idx]
			cell := labels[it.ID]
			if len(cell) < cellWidth {
				cell += strings.Repeat(" ", cellWidth-len(cell))
			}
			b.WriteString(cellStyle(l, idx, selectedID).Render(cell))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// cellStyle picks the style for an item's cells.
func cellStyle(l grid.Layout, idx int, selectedID string) lipgloss.Style {
	it := l[idx]
	switch {
	case it.ID == selectedID:
		return styleSelected
	case it.Static:
		return styleStatic
	default:
		return lipgloss.NewStyle().Foreground(itemPalette[idx%len(itemPalette)])
	}
}

// itemLabels assigns each item a short label for cell rendering: the
// first character of its id, disambiguated by a digit on collision.
func itemLabels(l grid.Layout) map[string]string {
	labels := make(map[string]string, len(l))
	seen := make(map[string]int)
	for _, it := range l {
		label := "?"
		if it.ID != "" {
			label = strings.ToUpper(it.ID[:1])
		}
		if n := seen[label]; n > 0 {
			labels[it.ID] = fmt.Sprintf("%s%d", label, n%10)
		} else {
			labels[it.ID] = label
		}
		seen[label]++
	}
	return labels
}

// renderLegend lists each item with its label, geometry, and flags.
func renderLegend(l grid.Layout, selectedID string) string {
	labels := itemLabels(l)
	var b strings.Builder
	for i, it := range l {
		geo := fmt.Sprintf("(%d,%d) %dx%d", it.X, it.Y, it.W, it.H)
		if it.NeedsPlacement() {
			geo = fmt.Sprintf("unplaced %dx%d", it.W, it.H)
		}
		line := fmt.Sprintf("%-2s %-20s %s", labels[it.ID], it.ID, geo)
		if it.Static {
			line += "  [static]"
		}
		if it.ID == selectedID {
			b.WriteString(styleSelected.Render(labels[it.ID]) + line[cellWidth:])
		} else {
			b.WriteString(cellStyle(l, i, "").Render(labels[it.ID]) + StyleDim.Render(line[cellWidth:]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
