package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "learngl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "learngl.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigEmptyFile(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverrides(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `
window:
  width: 1024
scene: triangles
shaders:
  hot_reload: true
motion: true
clear_color: [0, 0, 0, 1]
log_level: debug
`))
	require.NoError(t, err)

	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height, "unset fields keep defaults")
	assert.Equal(t, "LearnOpenGL", cfg.Window.Title)
	assert.Equal(t, sceneTriangles, cfg.Scene)
	assert.True(t, cfg.Shaders.HotReload)
	assert.Equal(t, "vertex_shader.vs", cfg.Shaders.Vertex)
	assert.True(t, cfg.Motion)
	assert.Equal(t, [4]float32{0, 0, 0, 1}, cfg.ClearColor)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoadConfigRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown key", "colour: red\n"},
		{"unknown scene", "scene: cube\n"},
		{"bad size", "window:\n  width: 0\n"},
		{"bad level", "log_level: loud\n"},
		{"short color", "clear_color: [1, 1]\n"},
		{"missing shader file", "shaders:\n  vertex: \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.data))
			assert.Error(t, err)
		})
	}
}

func TestShippedConfigIsValid(t *testing.T) {
	cfg, err := LoadConfig(configFile)
	require.NoError(t, err)
	assert.Equal(t, sceneTextured, cfg.Scene)
	assert.Equal(t, DefaultConfig().Texture, cfg.Texture, "shipped texture settings match the defaults")

	_, err = os.Stat(cfg.Texture.Path)
	assert.NoError(t, err)
}
