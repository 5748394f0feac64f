package opengl

import (
	"github.com/go-theft-auto/shader"
)

// Uniform names the tutorial shaders expose.
const (
	OffsetUniform  = "posOffset"
	TextureUniform = "ourTexture"
)

// Drawable is a program, a mesh and an optional texture drawn together.
// It owns all three and releases them in Delete.
type Drawable struct {
	Name    string
	program *shader.Program
	mesh    *Mesh
	texture *Texture

	// Motion is nil for drawables that never move.
	Motion *shader.Motion

	deleted bool
}

// NewDrawable takes ownership of program, mesh and texture (which may be nil).
func NewDrawable(name string, program *shader.Program, mesh *Mesh, texture *Texture) *Drawable {
	return &Drawable{
		Name:    name,
		program: program,
		mesh:    mesh,
		texture: texture,
	}
}

// Program returns the program currently used to draw.
func (d *Drawable) Program() *shader.Program {
	return d.program
}

// ReplaceProgram swaps in a rebuilt program and releases the old one.
// The drawable owns p from here on, so a deleted drawable releases it.
// The motion offset is re-applied on the next Update.
func (d *Drawable) ReplaceProgram(p *shader.Program) {
	if p == nil || p == d.program {
		return
	}
	if d.deleted {
		p.Release()
		return
	}
	d.program.Release()
	d.program = p
}

// Update advances the motion one frame and uploads the offset uniform.
func (d *Drawable) Update() {
	if d.deleted || d.Motion == nil {
		return
	}
	offset := d.Motion.Step()
	d.program.Use()
	d.program.SetVec3(OffsetUniform, offset)
}

// Draw binds the program and texture and draws the mesh.
func (d *Drawable) Draw() {
	if d.deleted {
		return
	}
	d.program.Use()
	if d.texture != nil {
		d.texture.Bind(0)
		d.program.SetInt(TextureUniform, 0)
	}
	d.mesh.Draw()
}

// Delete releases the program, mesh and texture exactly once.
func (d *Drawable) Delete() {
	if d.deleted {
		return
	}
	d.deleted = true
	d.program.Release()
	d.mesh.Delete()
	d.texture.Delete()
}
