package voxelcfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "voxel.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[voxel]
cell_size = 0.5
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.5, cfg.Voxel.CellSize)
	assert.Equal(t, 0.2, cfg.Voxel.CellHeight, "unset fields keep their default")
	assert.Equal(t, 10, cfg.Voxel.WalkableHeight)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadOverridesEverySection(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "voxel.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[voxel]
cell_size = 0.3
cell_height = 0.25
walkable_height = 8
walkable_climb = 2

[logging]
level = "debug"
format = "json"
file = "voxel.log"
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.3, cfg.Voxel.CellSize)
	assert.Equal(t, 8, cfg.Voxel.WalkableHeight)
	assert.Equal(t, 2, cfg.Voxel.WalkableClimb)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "voxel.log", cfg.Logging.File)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
