// Package voxelcfg loads voxelization parameters and logging settings from a
// TOML file.
package voxelcfg

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the voxelization parameters a caller would otherwise have to
// wire together by hand: cell dimensions and the two walkability thresholds
// consumed by the heightfield filters.
type Config struct {
	Voxel   VoxelConfig   `toml:"voxel"`
	Logging LoggingConfig `toml:"logging"`
}

// VoxelConfig mirrors the RcConfig fields spec.md carries over: cell size and
// height in world units, and the two walkability thresholds expressed in
// voxel units.
type VoxelConfig struct {
	CellSize       float64 `toml:"cell_size"`
	CellHeight     float64 `toml:"cell_height"`
	WalkableHeight int     `toml:"walkable_height"`
	WalkableClimb  int     `toml:"walkable_climb"`
}

// LoggingConfig selects the zap build profile and, optionally, a rotating
// log file sink.
type LoggingConfig struct {
	Level  string `toml:"level"`  // zapcore.Level text, e.g. "info", "debug"
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // path to a rotated log file; empty disables file logging
}

// Load reads and parses a TOML config file, filling in defaults for any
// field the file omits.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Voxel: VoxelConfig{
			CellSize:       0.3,
			CellHeight:     0.2,
			WalkableHeight: 10,
			WalkableClimb:  4,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
