// Example runs the LearnOpenGL exercises on the shader pipeline.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	cd example && go run .    # run from this directory so shaders/ and textures/ resolve
//
// Settings are read from learngl.yaml in the working directory when present.
// Press Space to start or stop the quad, Escape to quit. With
// shaders.hot_reload enabled, saving either shader file rebuilds the program.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/shader"
	"github.com/go-theft-auto/shader/backend/opengl"
)

const configFile = "learngl.yaml"

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := LoadConfig(configFile)
	if err != nil {
		return err
	}
	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	logger.Debug("opengl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	pipeline := shader.NewPipeline(opengl.NewDriver(),
		shader.WithLogger(logger),
		shader.WithLinkOnCompileFailure(cfg.Shaders.LinkOnCompileFailure),
	)

	fbw, fbh := window.GetFramebufferSize()
	renderer := opengl.NewRenderer(fbw, fbh, cfg.ClearColor)
	defer renderer.Delete()

	sc := newScene(cfg, pipeline, logger)
	if err := sc.build(renderer); err != nil {
		return fmt.Errorf("build scene %s: %w", cfg.Scene, err)
	}

	opengl.NewGLFWInputAdapter(window, renderer, logger)

	// A nil channel never fires, so the loop is the same without reloading.
	var reloads <-chan struct{}
	if cfg.Shaders.HotReload && sc.reloadable != nil {
		vs, fs := sc.shaderPaths()
		watcher, err := shader.NewSourceWatcher(logger, vs, fs)
		if err != nil {
			logger.Warn("hot reload disabled", "err", err)
		} else {
			defer watcher.Close()
			reloads = watcher.Changed()
		}
	}

	// Main loop.
	for !window.ShouldClose() {
		select {
		case <-reloads:
			sc.reload()
		default:
		}

		renderer.Render()

		glfw.PollEvents()
		window.SwapBuffers()
	}

	return nil
}
