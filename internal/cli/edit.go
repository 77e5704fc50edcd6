package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dashgrid/pkg/grid"
	"github.com/matzehuels/dashgrid/pkg/grid/compact"
	"github.com/matzehuels/dashgrid/pkg/grid/engine"
	"github.com/matzehuels/dashgrid/pkg/gridio"
)

// editCommand creates the edit command, an interactive terminal editor
// for a layout file.
func (c *CLI) editCommand() *cobra.Command {
	var columns int

	cmd := &cobra.Command{
		Use:   "edit <layout.json>",
		Short: "Edit a layout interactively",
		Long: `Edit a layout interactively in the terminal.

Arrow keys (or hjkl) move the selected item one cell at a time with live
collision resolution. Shift-HJKL resizes. Items light up as they are
displaced so the push cascade is visible while you work.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.loadLayout(args[0], columns)
			if err != nil {
				return err
			}

			m := newEditorModel(doc, args[0], c.Config.Limits())
			final, err := tea.NewProgram(m).Run()
			if err != nil {
				return err
			}

			fm := final.(editorModel)
			if fm.dirty {
				printError("Unsaved changes discarded (press s to save next time)")
			}
			if fm.saved {
				printSuccess("layout saved")
				printFile(args[0])
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&columns, "columns", 0, "grid column count (default: from layout, then config)")

	return cmd
}

// =============================================================================
// Editor Model
// =============================================================================

// editorModel is the bubbletea model for the interactive layout editor.
type editorModel struct {
	doc    gridio.Document
	path   string
	limits engine.Limits

	cursor int // index of the selected item, -1 when nothing selected
	undo   []grid.Layout
	status string
	dirty  bool
	saved  bool
}

const maxUndoDepth = 100

func newEditorModel(doc gridio.Document, path string, limits engine.Limits) editorModel {
	cursor := -1
	if len(doc.Items) > 0 {
		cursor = 0
	}
	return editorModel{doc: doc, path: path, limits: limits, cursor: cursor}
}

func (m editorModel) Init() tea.Cmd {
	return nil
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "tab":
		m.selectNext(1)
	case "shift+tab":
		m.selectNext(-1)

	case "left", "h":
		m.moveSelected(-1, 0)
	case "right", "l":
		m.moveSelected(1, 0)
	case "up", "k":
		m.moveSelected(0, -1)
	case "down", "j":
		m.moveSelected(0, 1)

	case "L":
		m.resizeSelected(1, 0)
	case "H":
		m.resizeSelected(-1, 0)
	case "J":
		m.resizeSelected(0, 1)
	case "K":
		m.resizeSelected(0, -1)

	case "c":
		m.apply(compact.Compact(m.doc.Items, compact.TypeVertical, m.doc.Columns, false), "compacted vertically")
	case "C":
		m.apply(compact.Compact(m.doc.Items, compact.TypeHorizontal, m.doc.Columns, false), "compacted horizontally")
	case "o":
		m.apply(engine.OptimizeLayout(m.doc.Items, m.doc.Columns), "optimized")

	case "n":
		m.addItem()
	case "d":
		m.deleteSelected()
	case "x":
		m.toggleStatic()

	case "u":
		m.undoLast()
	case "s":
		m.save()
	}

	return m, nil
}

func (m *editorModel) selectNext(dir int) {
	if len(m.doc.Items) == 0 {
		m.cursor = -1
		return
	}
	m.cursor = (m.cursor + dir + len(m.doc.Items)) % len(m.doc.Items)
	m.status = ""
}

func (m *editorModel) selectedItem() (grid.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.doc.Items) {
		return grid.Item{}, false
	}
	return m.doc.Items[m.cursor], true
}

func (m *editorModel) moveSelected(dx, dy int) {
	it, ok := m.selectedItem()
	if !ok {
		return
	}
	if it.Static {
		m.status = "static items cannot move"
		return
	}
	next := engine.MoveElement(m.doc.Items, it.ID, it.X+dx, it.Y+dy, engine.MoveOptions{
		Columns: m.doc.Columns,
		Limits:  m.limits,
	})
	m.apply(next, fmt.Sprintf("moved %s", it.ID))
}

func (m *editorModel) resizeSelected(dw, dh int) {
	it, ok := m.selectedItem()
	if !ok {
		return
	}
	if !it.Resizable || it.Static {
		m.status = "item is not resizable"
		return
	}
	it.W += dw
	it.H += dh
	if it.W < 1 || it.H < 1 {
		return
	}
	next := engine.ResizeItem(m.doc.Items, it, engine.BehaviorPush, m.doc.Columns, false)
	m.apply(next, fmt.Sprintf("resized %s to %dx%d", it.ID, it.W, it.H))
}

func (m *editorModel) addItem() {
	id := uuid.NewString()[:8]
	next := engine.PlaceNewItems(m.doc.Items,
		[]grid.Item{grid.NewItem(id, grid.Unplaced, grid.Unplaced, 2, 2)},
		m.doc.Columns, m.limits)
	m.apply(next, fmt.Sprintf("added %s", id))
	m.cursor = len(next) - 1
}

func (m *editorModel) deleteSelected() {
	it, ok := m.selectedItem()
	if !ok {
		return
	}
	next := make(grid.Layout, 0, len(m.doc.Items)-1)
	for _, o := range m.doc.Items {
		if o.ID != it.ID {
			next = append(next, o)
		}
	}
	m.apply(next, fmt.Sprintf("deleted %s", it.ID))
	if m.cursor >= len(next) {
		m.cursor = len(next) - 1
	}
}

func (m *editorModel) toggleStatic() {
	it, ok := m.selectedItem()
	if !ok {
		return
	}
	next := m.doc.Items.Clone()
	next[m.cursor].Static = !next[m.cursor].Static
	state := "static"
	if !next[m.cursor].Static {
		state = "movable"
	}
	m.apply(next, fmt.Sprintf("%s is now %s", it.ID, state))
}

// apply pushes the current layout onto the undo stack and installs the
// new one.
func (m *editorModel) apply(next grid.Layout, status string) {
	m.undo = append(m.undo, m.doc.Items)
	if len(m.undo) > maxUndoDepth {
		m.undo = m.undo[1:]
	}
	m.doc.Items = next
	m.status = status
	m.dirty = true
}

func (m *editorModel) undoLast() {
	if len(m.undo) == 0 {
		m.status = "nothing to undo"
		return
	}
	m.doc.Items = m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]
	if m.cursor >= len(m.doc.Items) {
		m.cursor = len(m.doc.Items) - 1
	}
	m.status = "undone"
}

func (m *editorModel) save() {
	if err := gridio.WriteLayoutFile(m.doc, m.path); err != nil {
		m.status = "save failed: " + err.Error()
		return
	}
	m.dirty = false
	m.saved = true
	m.status = "saved " + m.path
}

func (m editorModel) View() string {
	var b strings.Builder

	selectedID := ""
	if it, ok := m.selectedItem(); ok {
		selectedID = it.ID
	}

	b.WriteString(StyleTitle.Render("dashgrid edit"))
	b.WriteString(StyleDim.Render("  " + m.path))
	if m.dirty {
		b.WriteString(StyleWarning.Render(" *"))
	}
	b.WriteString("\n\n")

	b.WriteString(renderGrid(m.doc.Items, m.doc.Columns, selectedID))
	b.WriteString("\n")
	b.WriteString(renderLegend(m.doc.Items, selectedID))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(StyleValue.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(StyleDim.Render("tab select · arrows move · HJKL resize · n add · d delete · x static · c/C compact · o optimize · u undo · s save · q quit"))
	b.WriteString("\n")

	return b.String()
}
