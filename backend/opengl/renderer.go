package opengl

import (
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Renderer draws a fixed set of drawables once per frame.
type Renderer struct {
	drawables  []*Drawable
	clearColor [4]float32
	width      int
	height     int
}

// NewRenderer creates a renderer for a viewport of the given size.
func NewRenderer(width, height int, clearColor [4]float32) *Renderer {
	r := &Renderer{clearColor: clearColor}
	r.Resize(width, height)
	return r
}

// Add appends drawables to the frame. The renderer takes ownership.
func (r *Renderer) Add(d ...*Drawable) {
	r.drawables = append(r.drawables, d...)
}

// Drawables returns the drawables in draw order.
func (r *Renderer) Drawables() []*Drawable {
	return r.drawables
}

// Resize updates the viewport size.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// ToggleMotion starts or stops every drawable that can move.
func (r *Renderer) ToggleMotion() {
	for _, d := range r.drawables {
		if d.Motion != nil {
			d.Motion.Toggle()
		}
	}
}

// Render clears the frame, then updates and draws each drawable in order.
func (r *Renderer) Render() {
	gl.ClearColor(r.clearColor[0], r.clearColor[1], r.clearColor[2], r.clearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)

	for _, d := range r.drawables {
		d.Update()
		d.Draw()
	}
}

// Delete releases every drawable.
func (r *Renderer) Delete() {
	for _, d := range r.drawables {
		d.Delete()
	}
	r.drawables = nil
}
