package vlog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trailmesh/voxelfield/voxelcfg"
)

func TestNewConsoleLogger(t *testing.T) {
	logger, err := New(voxelcfg.LoggingConfig{Level: "info", Format: "console"})
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.True(t, logger.Core().Enabled(0)) // zapcore.InfoLevel
}

func TestNewJSONLogger(t *testing.T) {
	logger, err := New(voxelcfg.LoggingConfig{Level: "debug", Format: "json"})
	require.NoError(t, err)
	require.NotNil(t, logger)
}

func TestNewInvalidLevelFallsBackToInfo(t *testing.T) {
	logger, err := New(voxelcfg.LoggingConfig{Level: "not-a-level", Format: "console"})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(0))
}

func TestNewWritesToRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voxel.log")
	logger, err := New(voxelcfg.LoggingConfig{Level: "info", Format: "json", File: path})
	require.NoError(t, err)
	logger.Info("hello")
	require.NoError(t, logger.Sync())
}
