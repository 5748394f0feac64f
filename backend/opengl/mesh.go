package opengl

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
)

const sizeOfFloat32 = 4

// Attrib describes one float vertex attribute in an interleaved buffer.
type Attrib struct {
	Location   uint32
	Components int32
}

// Layouts used by the tutorial scenes.
var (
	// PositionLayout is a bare vec3 position.
	PositionLayout = []Attrib{{Location: 0, Components: 3}}

	// PositionColorUVLayout is position (vec3), color (vec3), texture coords (vec2).
	PositionColorUVLayout = []Attrib{
		{Location: 0, Components: 3},
		{Location: 1, Components: 3},
		{Location: 2, Components: 2},
	}
)

// Stride returns the size in floats of one vertex in the layout.
func Stride(layout []Attrib) int32 {
	var n int32
	for _, a := range layout {
		n += a.Components
	}
	return n
}

// Mesh owns a vertex array with its vertex buffer and optional index buffer.
type Mesh struct {
	vao, vbo uint32
	ebo      uint32
	count    int32
	indexed  bool
}

// ValidateMesh checks that vertices split evenly into the layout and that
// every index refers to an existing vertex.
func ValidateMesh(vertices []float32, indices []uint32, layout []Attrib) error {
	stride := Stride(layout)
	if stride == 0 {
		return errors.New("mesh: empty layout")
	}
	if len(vertices) == 0 || len(vertices)%int(stride) != 0 {
		return fmt.Errorf("mesh: %d floats is not a whole number of %d-float vertices", len(vertices), stride)
	}
	n := uint32(len(vertices) / int(stride))
	for i, idx := range indices {
		if idx >= n {
			return fmt.Errorf("mesh: index %d at %d out of range for %d vertices", idx, i, n)
		}
	}
	return nil
}

// NewMesh uploads the vertices (and indices when non-empty) to the GPU.
func NewMesh(vertices []float32, indices []uint32, layout []Attrib) (*Mesh, error) {
	if err := ValidateMesh(vertices, indices, layout); err != nil {
		return nil, err
	}

	m := &Mesh{}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*sizeOfFloat32, gl.Ptr(vertices), gl.STATIC_DRAW)

	if len(indices) > 0 {
		// The element buffer binding is recorded in the VAO.
		gl.GenBuffers(1, &m.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
		m.indexed = true
		m.count = int32(len(indices))
	} else {
		m.count = int32(len(vertices)) / Stride(layout)
	}

	stride := Stride(layout) * sizeOfFloat32
	var offset uintptr
	for _, a := range layout {
		gl.VertexAttribPointerWithOffset(a.Location, a.Components, gl.FLOAT, false, stride, offset)
		gl.EnableVertexAttribArray(a.Location)
		offset += uintptr(a.Components) * sizeOfFloat32
	}

	gl.BindVertexArray(0)

	return m, nil
}

// Draw issues the draw call for the mesh as triangles.
func (m *Mesh) Draw() {
	if m == nil || m.vao == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	if m.indexed {
		gl.DrawElementsWithOffset(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, 0)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	}
	gl.BindVertexArray(0)
}

// Delete releases the GL objects. It is safe to call more than once.
func (m *Mesh) Delete() {
	if m == nil {
		return
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}
