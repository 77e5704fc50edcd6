package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/dashgrid/pkg/errors"
	"github.com/matzehuels/dashgrid/pkg/grid/compact"
	"github.com/matzehuels/dashgrid/pkg/grid/engine"
	"github.com/matzehuels/dashgrid/pkg/gridio"
)

// Config holds the CLI defaults loaded from dashgrid.toml. Flags override
// config values; config values override the built-in defaults.
type Config struct {
	// Columns is the default grid width for layouts that do not carry
	// their own column count.
	Columns int `toml:"columns"`

	// Compact is the default compaction strategy (vertical, horizontal,
	// none, fast-vertical, fast-horizontal).
	Compact string `toml:"compact"`

	// MoveIterations and PlaceIterations bound the engine's propagation
	// and placement scans. Zero selects the engine defaults.
	MoveIterations  int `toml:"move_iterations"`
	PlaceIterations int `toml:"place_iterations"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Columns: gridio.DefaultColumns,
		Compact: string(compact.TypeVertical),
	}
}

// Limits converts the configured caps into engine limits.
func (c Config) Limits() engine.Limits {
	return engine.Limits{
		MoveIterations:  c.MoveIterations,
		PlaceIterations: c.PlaceIterations,
	}
}

// CompactType returns the configured compaction strategy.
func (c Config) CompactType() compact.Type {
	return compact.Type(c.Compact)
}

// LoadConfig loads the CLI configuration.
//
// When path is empty the search order is ./dashgrid.toml, then the XDG
// config directory; a missing file is not an error and yields the
// defaults. An explicit path that does not exist is an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = findConfig()
		if path == "" {
			return cfg, nil
		}
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if explicit && os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}

	if err := cfg.validate(); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if err := errors.ValidateColumns(c.Columns); err != nil {
		return err
	}
	if err := compact.ValidateType(compact.Type(c.Compact)); err != nil {
		return err
	}
	if c.MoveIterations < 0 || c.PlaceIterations < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "iteration caps must be non-negative")
	}
	return nil
}

// findConfig returns the first config file present in the search order,
// or empty when none exists.
func findConfig() string {
	if _, err := os.Stat("dashgrid.toml"); err == nil {
		return "dashgrid.toml"
	}
	dir, err := configDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(dir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}
