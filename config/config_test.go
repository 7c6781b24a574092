package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesFields(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"

[window]
width = 800
height = 600
vsync = false
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.False(t, cfg.Window.VSync)
	assert.Equal(t, "OpenGL Tutorial", cfg.Window.Title, "unset fields keep defaults")
	assert.True(t, cfg.Window.Resizable)
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(writeConfig(t, "[window\nwidth = "))
	assert.Error(t, err)
}

func TestLoadRejectsBadSize(t *testing.T) {
	_, err := Load(writeConfig(t, "[window]\nwidth = 0\n"))
	assert.ErrorContains(t, err, "must be positive")
}
