package engine

import (
	"os"

	"github.com/pelletier/go-toml"
)

// tomlConfig mirrors Config's fields for TOML (de)serialisation, so the
// zero value of a field omitted from the file falls back to DefaultConfig.
type tomlConfig struct {
	MaxDistance    *float64 `toml:"max_distance"`
	GridCellSize   *float64 `toml:"grid_cell_size"`
	SolventRadius  *float64 `toml:"solvent_radius"`
	ForceLocalGrid *bool    `toml:"force_local_grid"`
	Workers        *int     `toml:"workers"`
}

// LoadConfig reads a TOML file at path and returns a Config, applying
// DefaultConfig for any field the file leaves unset.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var tc tomlConfig
	if err := toml.Unmarshal(data, &tc); err != nil {
		return Config{}, err
	}

	cfg := DefaultConfig()
	if tc.MaxDistance != nil {
		WithMaxDistance(*tc.MaxDistance)(&cfg)
	}
	if tc.GridCellSize != nil {
		cfg.GridCellSize = *tc.GridCellSize
	}
	if tc.SolventRadius != nil {
		cfg.SolventRadius = *tc.SolventRadius
	}
	if tc.ForceLocalGrid != nil {
		cfg.ForceLocalGrid = *tc.ForceLocalGrid
	}
	if tc.Workers != nil {
		cfg.Workers = *tc.Workers
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	return cfg, nil
}
