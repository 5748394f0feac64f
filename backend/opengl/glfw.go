package opengl

import (
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// GLFWInputAdapter handles the tutorial's window input: Escape closes the
// window, Space toggles motion and framebuffer resizes update the viewport.
type GLFWInputAdapter struct {
	window   *glfw.Window
	renderer *Renderer
	logger   *slog.Logger
}

// NewGLFWInputAdapter installs the callbacks on window.
func NewGLFWInputAdapter(window *glfw.Window, renderer *Renderer, logger *slog.Logger) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window:   window,
		renderer: renderer,
		logger:   logger,
	}

	// Setup callbacks
	window.SetKeyCallback(adapter.keyCallback)
	window.SetFramebufferSizeCallback(adapter.framebufferSizeCallback)

	return adapter
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}

	switch keyAction(key) {
	case actionClose:
		a.logger.Info("escape pressed, closing window")
		w.SetShouldClose(true)
	case actionToggleMotion:
		a.renderer.ToggleMotion()
	}
}

func (a *GLFWInputAdapter) framebufferSizeCallback(w *glfw.Window, width, height int) {
	a.renderer.Resize(width, height)
}

type inputAction int

const (
	actionNone inputAction = iota
	actionClose
	actionToggleMotion
)

// keyAction maps GLFW keys to what the application does on press.
func keyAction(key glfw.Key) inputAction {
	switch key {
	case glfw.KeyEscape:
		return actionClose
	case glfw.KeySpace:
		return actionToggleMotion
	default:
		return actionNone
	}
}
