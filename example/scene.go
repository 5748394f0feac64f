package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-theft-auto/shader"
	"github.com/go-theft-auto/shader/backend/opengl"
)

// Two triangles side by side, one per solid-color program.
var (
	leftTriangle = []float32{
		-0.9, -0.5, 0.0,
		-0.0, -0.5, 0.0,
		-0.45, 0.5, 0.0,
	}
	rightTriangle = []float32{
		0.0, -0.5, 0.0,
		0.9, -0.5, 0.0,
		0.45, 0.5, 0.0,
	}
)

// The textured quad: position, color, texture coords per vertex.
var (
	quadVertices = []float32{
		0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 1.0, 1.0, // top right
		0.5, -0.5, 0.0, 0.0, 1.0, 0.0, 1.0, 0.0, // bottom right
		-0.5, -0.5, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0, // bottom left
		-0.5, 0.5, 0.0, 1.0, 1.0, 0.0, 0.0, 1.0, // top left
	}
	quadIndices = []uint32{
		0, 1, 3,
		1, 2, 3,
	}
)

// scene builds the drawables for the configured scene and keeps what is
// needed to rebuild the file-based program.
type scene struct {
	cfg      Config
	pipeline *shader.Pipeline
	logger   *slog.Logger

	// reloadable is the drawable whose program comes from the shader files.
	reloadable *opengl.Drawable
}

func newScene(cfg Config, pipeline *shader.Pipeline, logger *slog.Logger) *scene {
	return &scene{cfg: cfg, pipeline: pipeline, logger: logger}
}

// build creates the scene's drawables and hands them to the renderer.
func (s *scene) build(r *opengl.Renderer) error {
	switch s.cfg.Scene {
	case sceneTriangles:
		return s.buildTriangles(r)
	case sceneTextured:
		return s.buildTextured(r)
	default:
		return fmt.Errorf("unknown scene %q", s.cfg.Scene)
	}
}

func (s *scene) buildTriangles(r *opengl.Renderer) error {
	parts := []struct {
		name     string
		vertices []float32
		fragment string
	}{
		{"orange", leftTriangle, shader.OrangeFragmentSource},
		{"yellow", rightTriangle, shader.YellowFragmentSource},
	}

	for _, part := range parts {
		prog, err := s.pipeline.Build(shader.SolidVertexSource, part.fragment)
		if err != nil {
			return fmt.Errorf("%s program: %w", part.name, err)
		}
		mesh, err := opengl.NewMesh(part.vertices, nil, opengl.PositionLayout)
		if err != nil {
			prog.Release()
			return fmt.Errorf("%s mesh: %w", part.name, err)
		}
		r.Add(opengl.NewDrawable(part.name, prog, mesh, nil))
	}
	return nil
}

func (s *scene) buildTextured(r *opengl.Renderer) error {
	prog, err := s.loadProgram()
	if err != nil {
		s.logBuildFailure(slog.LevelError, "shader files unusable, drawing with the solid fallback", err)
		prog, err = s.pipeline.Build(shader.SolidVertexSource, shader.OrangeFragmentSource)
		if err != nil {
			return fmt.Errorf("fallback program: %w", err)
		}
	}

	mesh, err := opengl.NewMesh(quadVertices, quadIndices, opengl.PositionColorUVLayout)
	if err != nil {
		prog.Release()
		return fmt.Errorf("quad mesh: %w", err)
	}

	tex, err := opengl.LoadTexture(s.cfg.Texture.Path, opengl.TextureOptions{FlipVertically: s.cfg.Texture.Flip})
	if err != nil {
		// Drawn untextured rather than not at all.
		s.logger.Warn("failed to load texture", "err", err)
		tex = nil
	}

	d := opengl.NewDrawable("quad", prog, mesh, tex)
	d.Motion = shader.NewMotion()
	d.Motion.Enabled = s.cfg.Motion
	r.Add(d)

	s.reloadable = d
	return nil
}

// shaderPaths returns the vertex and fragment file paths.
func (s *scene) shaderPaths() (vertex, fragment string) {
	return filepath.Join(s.cfg.Shaders.Dir, s.cfg.Shaders.Vertex),
		filepath.Join(s.cfg.Shaders.Dir, s.cfg.Shaders.Fragment)
}

func (s *scene) loadProgram() (*shader.Program, error) {
	src, err := shader.LoadSources(os.DirFS(s.cfg.Shaders.Dir), s.cfg.Shaders.Vertex, s.cfg.Shaders.Fragment)
	if err != nil {
		return nil, err
	}
	return s.pipeline.BuildSources(src)
}

// reload rebuilds the file-based program. On failure the current program
// stays in place.
func (s *scene) reload() {
	if s.reloadable == nil {
		return
	}
	prog, err := s.loadProgram()
	if err != nil {
		s.logBuildFailure(slog.LevelWarn, "shader reload failed, keeping previous program", err)
		return
	}
	s.reloadable.ReplaceProgram(prog)
	s.logger.Info("shader program reloaded", "id", prog.ID())
}

// logBuildFailure logs a failed program build. Compile and link failures
// were already written to the diagnostic channel, so only their stage is
// logged here.
func (s *scene) logBuildFailure(level slog.Level, msg string, err error) {
	if stage, ok := shader.StageOf(err); ok {
		s.logger.Log(context.Background(), level, msg, "stage", stage)
		return
	}
	s.logger.Log(context.Background(), level, msg, "err", err)
}
