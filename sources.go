package shader

import (
	"fmt"
	"io/fs"
)

// Default locations of the file-based shader pair.
const (
	DefaultVertexPath   = "shaders/vertex_shader.vs"
	DefaultFragmentPath = "shaders/fragment_shader.fs"
)

// SolidVertexSource passes a vec3 position through unchanged.
const SolidVertexSource = `#version 330 core
layout (location = 0) in vec3 aPos;
void main()
{
    gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`

// OrangeFragmentSource fills every fragment with a solid orange.
const OrangeFragmentSource = `#version 330 core
out vec4 FragColor;

void main()
{
    FragColor = vec4(1.0f, 0.5f, 0.2f, 1.0f);
}
`

// YellowFragmentSource fills every fragment with a solid yellow.
const YellowFragmentSource = `#version 330 core
out vec4 FragColor;

void main()
{
    FragColor = vec4(1.0f, 0.8f, 0.0f, 1.0f);
}
`

// Sources is the text of a vertex and fragment stage pair.
type Sources struct {
	Vertex   string
	Fragment string
}

// Validate reports whether both stages have source text.
func (s Sources) Validate() error {
	if s.Vertex == "" {
		return fmt.Errorf("vertex stage: %w", ErrEmptySource)
	}
	if s.Fragment == "" {
		return fmt.Errorf("fragment stage: %w", ErrEmptySource)
	}
	return nil
}

// LoadSources reads a vertex and fragment source pair from fsys.
func LoadSources(fsys fs.FS, vertexPath, fragmentPath string) (Sources, error) {
	vs, err := fs.ReadFile(fsys, vertexPath)
	if err != nil {
		return Sources{}, fmt.Errorf("read vertex shader %s: %w", vertexPath, err)
	}
	frag, err := fs.ReadFile(fsys, fragmentPath)
	if err != nil {
		return Sources{}, fmt.Errorf("read fragment shader %s: %w", fragmentPath, err)
	}
	return Sources{Vertex: string(vs), Fragment: string(frag)}, nil
}
