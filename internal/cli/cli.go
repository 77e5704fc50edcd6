// Package cli implements the dashgrid command-line interface.
//
// This package provides commands for compacting, editing, and optimizing
// dashboard grid layouts stored as JSON files. The CLI is built using
// cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - compact: Run a compaction strategy over a layout
//   - move: Move one item (or a cluster) and resolve collisions
//   - resize: Resize one item and resolve collisions
//   - place: Auto-place new items into a layout
//   - optimize: Defragment a layout, preserving reading order
//   - show: Render a layout as a terminal grid
//   - edit: Open a layout in the interactive editor
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Engine
// diagnostics (aborted propagations, rejected resizes) surface through
// observability hooks wired to the CLI logger.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dashgrid/pkg/buildinfo"
	"github.com/matzehuels/dashgrid/pkg/observability"
)

// appName is the application name used for directories and display.
const appName = "dashgrid"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		Config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          appName,
		Short:        "dashgrid computes dashboard grid layouts",
		Long:         `dashgrid is a CLI tool for computing and editing dashboard grid layouts: compaction, drag and resize resolution, auto-placement, and defragmentation over layout JSON files.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			c.Config = cfg
			observability.SetEngineHooks(&logHooks{logger: c.Logger})
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: ./dashgrid.toml, then XDG config)")

	// Register all subcommands
	root.AddCommand(c.compactCommand())
	root.AddCommand(c.moveCommand())
	root.AddCommand(c.resizeCommand())
	root.AddCommand(c.placeCommand())
	root.AddCommand(c.optimizeCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// configDir returns the config directory using XDG standard
// (~/.config/dashgrid/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// outputPath picks the write target for a command: the -o flag when set,
// otherwise the input file (in-place update).
func outputPath(input, output string) string {
	if output != "" {
		return output
	}
	return input
}
