package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-theft-auto/shader"
)

// Scene names.
const (
	sceneTriangles = "triangles"
	sceneTextured  = "textured"
)

// Config is the optional learngl.yaml file. Every field has a default.
type Config struct {
	Window struct {
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		Title  string `yaml:"title"`
	} `yaml:"window"`

	// Scene is "triangles" or "textured".
	Scene string `yaml:"scene"`

	Shaders struct {
		Dir      string `yaml:"dir"`
		Vertex   string `yaml:"vertex"`
		Fragment string `yaml:"fragment"`
		// HotReload rebuilds the program when either file changes.
		HotReload bool `yaml:"hot_reload"`
		// LinkOnCompileFailure also links broken stages, for the linker log.
		LinkOnCompileFailure bool `yaml:"link_on_compile_failure"`
	} `yaml:"shaders"`

	Texture struct {
		Path string `yaml:"path"`
		Flip bool   `yaml:"flip"`
	} `yaml:"texture"`

	// Motion starts the textured quad bouncing.
	Motion bool `yaml:"motion"`

	ClearColor [4]float32 `yaml:"clear_color"`
	LogLevel   string     `yaml:"log_level"`
}

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() Config {
	var c Config
	c.Window.Width = 800
	c.Window.Height = 600
	c.Window.Title = "LearnOpenGL"
	c.Scene = sceneTextured
	c.Shaders.Dir = "shaders"
	c.Shaders.Vertex = "vertex_shader.vs"
	c.Shaders.Fragment = "fragment_shader.fs"
	c.Texture.Path = "textures/wall.png"
	// Rows are uploaded in file order, top row first.
	c.Texture.Flip = false
	c.ClearColor = [4]float32{0.2, 0.3, 0.3, 1.0}
	c.LogLevel = "info"
	return c
}

// LoadConfig reads path over the defaults. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values the loader cannot default.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	switch c.Scene {
	case sceneTriangles, sceneTextured:
	default:
		return fmt.Errorf("unknown scene %q", c.Scene)
	}
	if c.Scene == sceneTextured && (c.Shaders.Vertex == "" || c.Shaders.Fragment == "") {
		return fmt.Errorf("textured scene needs both shader files: %w", shader.ErrEmptySource)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}
