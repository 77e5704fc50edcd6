package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/dashgrid/pkg/gridio"
	"github.com/matzehuels/dashgrid/pkg/observability"
)

// writeLayout writes a layout JSON file into a temp dir and returns its path.
func writeLayout(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// runCommand executes the CLI with the given args from a clean directory,
// so no stray dashgrid.toml leaks into config loading.
func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Cleanup(observability.Reset)

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.Execute()
}

func TestCompactCommand(t *testing.T) {
	path := writeLayout(t, `{
		"columns": 4,
		"items": [
			{"id": "a", "x": 0, "y": 3, "w": 2, "h": 2},
			{"id": "b", "x": 2, "y": 6, "w": 2, "h": 2}
		]
	}`)

	if err := runCommand(t, "compact", path); err != nil {
		t.Fatalf("compact failed: %v", err)
	}

	doc, err := gridio.ReadLayoutFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"a", "b"} {
		it, _ := doc.Items.Get(id)
		if it.Y != 0 {
			t.Errorf("%s.Y = %d, want 0 after vertical compaction", id, it.Y)
		}
	}
}

func TestCompactCommand_OutputFlag(t *testing.T) {
	path := writeLayout(t, `{"columns": 4, "items": [{"id": "a", "x": 0, "y": 2, "w": 2, "h": 2}]}`)
	outPath := filepath.Join(filepath.Dir(path), "out.json")

	if err := runCommand(t, "compact", path, "-o", outPath); err != nil {
		t.Fatalf("compact failed: %v", err)
	}

	// Input untouched, output compacted.
	in, err := gridio.ReadLayoutFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if in.Items[0].Y != 2 {
		t.Errorf("input file changed: Y = %d, want 2", in.Items[0].Y)
	}
	out, err := gridio.ReadLayoutFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if out.Items[0].Y != 0 {
		t.Errorf("output Y = %d, want 0", out.Items[0].Y)
	}
}

func TestCompactCommand_InvalidType(t *testing.T) {
	path := writeLayout(t, `{"items": [{"id": "a", "x": 0, "y": 0, "w": 1, "h": 1}]}`)

	if err := runCommand(t, "compact", path, "-t", "diagonal"); err == nil {
		t.Error("compact with invalid type succeeded, want error")
	}
}

func TestMoveCommand(t *testing.T) {
	path := writeLayout(t, `{
		"columns": 8,
		"items": [{"id": "a", "x": 0, "y": 0, "w": 2, "h": 2}]
	}`)

	if err := runCommand(t, "move", path, "a", "4", "2"); err != nil {
		t.Fatalf("move failed: %v", err)
	}

	doc, err := gridio.ReadLayoutFile(path)
	if err != nil {
		t.Fatal(err)
	}
	a, _ := doc.Items.Get("a")
	if a.X != 4 || a.Y != 2 {
		t.Errorf("a = (%d, %d), want (4, 2)", a.X, a.Y)
	}
}

func TestMoveCommand_Cluster(t *testing.T) {
	path := writeLayout(t, `{
		"columns": 8,
		"items": [
			{"id": "a", "x": 0, "y": 0, "w": 1, "h": 1},
			{"id": "b", "x": 1, "y": 1, "w": 1, "h": 1}
		]
	}`)

	if err := runCommand(t, "move", path, "a", "4", "2", "--cluster", "b"); err != nil {
		t.Fatalf("cluster move failed: %v", err)
	}

	doc, err := gridio.ReadLayoutFile(path)
	if err != nil {
		t.Fatal(err)
	}
	a, _ := doc.Items.Get("a")
	b, _ := doc.Items.Get("b")
	if a.X != 4 || a.Y != 2 {
		t.Errorf("a = (%d, %d), want (4, 2)", a.X, a.Y)
	}
	if b.X != 5 || b.Y != 3 {
		t.Errorf("b = (%d, %d), want (5, 3) keeping its offset", b.X, b.Y)
	}
}

func TestMoveCommand_UnknownItem(t *testing.T) {
	path := writeLayout(t, `{"items": [{"id": "a", "x": 0, "y": 0, "w": 1, "h": 1}]}`)

	if err := runCommand(t, "move", path, "ghost", "0", "0"); err == nil {
		t.Error("move of unknown item succeeded, want error")
	}
}

func TestResizeCommand(t *testing.T) {
	path := writeLayout(t, `{
		"columns": 8,
		"items": [
			{"id": "a", "x": 0, "y": 0, "w": 2, "h": 2},
			{"id": "b", "x": 0, "y": 2, "w": 2, "h": 2}
		]
	}`)

	if err := runCommand(t, "resize", path, "a", "2", "4"); err != nil {
		t.Fatalf("resize failed: %v", err)
	}

	doc, err := gridio.ReadLayoutFile(path)
	if err != nil {
		t.Fatal(err)
	}
	a, _ := doc.Items.Get("a")
	b, _ := doc.Items.Get("b")
	if a.H != 4 {
		t.Errorf("a.H = %d, want 4", a.H)
	}
	if b.Y != 4 {
		t.Errorf("b.Y = %d, want 4 (pushed)", b.Y)
	}
}

func TestResizeCommand_InvalidBehavior(t *testing.T) {
	path := writeLayout(t, `{"items": [{"id": "a", "x": 0, "y": 0, "w": 1, "h": 1}]}`)

	if err := runCommand(t, "resize", path, "a", "2", "2", "--behavior", "melt"); err == nil {
		t.Error("resize with invalid behavior succeeded, want error")
	}
}

func TestPlaceCommand(t *testing.T) {
	path := writeLayout(t, `{
		"columns": 4,
		"items": [{"id": "a", "x": 0, "y": 0, "w": 4, "h": 2}]
	}`)

	if err := runCommand(t, "place", path, "--item", "chart=2x2"); err != nil {
		t.Fatalf("place failed: %v", err)
	}

	doc, err := gridio.ReadLayoutFile(path)
	if err != nil {
		t.Fatal(err)
	}
	chart, ok := doc.Items.Get("chart")
	if !ok {
		t.Fatal("placed item missing from output")
	}
	if chart.X != 0 || chart.Y != 2 {
		t.Errorf("chart = (%d, %d), want (0, 2)", chart.X, chart.Y)
	}
}

func TestPlaceCommand_RequiresItems(t *testing.T) {
	path := writeLayout(t, `{"items": []}`)

	if err := runCommand(t, "place", path); err == nil {
		t.Error("place without --item succeeded, want error")
	}
}

func TestOptimizeCommand(t *testing.T) {
	path := writeLayout(t, `{
		"columns": 4,
		"items": [
			{"id": "a", "x": 0, "y": 0, "w": 2, "h": 2},
			{"id": "b", "x": 0, "y": 5, "w": 2, "h": 2}
		]
	}`)

	if err := runCommand(t, "optimize", path); err != nil {
		t.Fatalf("optimize failed: %v", err)
	}

	doc, err := gridio.ReadLayoutFile(path)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := doc.Items.Get("b")
	if b.X != 2 || b.Y != 0 {
		t.Errorf("b = (%d, %d), want (2, 0) after defragmentation", b.X, b.Y)
	}
}

func TestShowCommand(t *testing.T) {
	path := writeLayout(t, `{"columns": 4, "items": [{"id": "a", "x": 0, "y": 0, "w": 2, "h": 2}]}`)

	if err := runCommand(t, "show", path); err != nil {
		t.Fatalf("show failed: %v", err)
	}
}

func TestRootCommand_UnknownSubcommand(t *testing.T) {
	if err := runCommand(t, "frobnicate"); err == nil {
		t.Error("unknown subcommand succeeded, want error")
	}
}

func TestOutputPath(t *testing.T) {
	if got := outputPath("in.json", ""); got != "in.json" {
		t.Errorf("outputPath(in, empty) = %q, want in.json", got)
	}
	if got := outputPath("in.json", "out.json"); got != "out.json" {
		t.Errorf("outputPath(in, out) = %q, want out.json", got)
	}
}
