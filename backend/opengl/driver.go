// Package opengl provides the OpenGL 3.3 core backend: a shader.Driver,
// meshes, textures and drawables.
package opengl

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/go-theft-auto/shader"
)

// Driver implements shader.Driver on the current OpenGL context.
// gl.Init must have been called on the owning thread.
type Driver struct{}

var _ shader.Driver = Driver{}

// NewDriver returns a driver for the current context.
func NewDriver() Driver {
	return Driver{}
}

// shaderType maps a stage to the GL shader type enum.
func shaderType(stage shader.Stage) uint32 {
	switch stage {
	case shader.StageVertex:
		return gl.VERTEX_SHADER
	case shader.StageFragment:
		return gl.FRAGMENT_SHADER
	default:
		return 0
	}
}

func (Driver) CreateShader(stage shader.Stage) uint32 {
	return gl.CreateShader(shaderType(stage))
}

func (Driver) CompileShader(sh uint32, source string) {
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(sh, 1, csource, nil)
	free()
	gl.CompileShader(sh)
}

func (Driver) ShaderCompiled(sh uint32) bool {
	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (Driver) ShaderInfoLog(sh uint32) string {
	var logLength int32
	gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLength)
	log := make([]byte, logLength+1)
	gl.GetShaderInfoLog(sh, logLength, nil, &log[0])
	return cString(log)
}

func (Driver) DeleteShader(sh uint32) {
	gl.DeleteShader(sh)
}

func (Driver) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (Driver) AttachShader(program, sh uint32) {
	gl.AttachShader(program, sh)
}

func (Driver) DetachShader(program, sh uint32) {
	gl.DetachShader(program, sh)
}

func (Driver) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (Driver) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (Driver) ProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	log := make([]byte, logLength+1)
	gl.GetProgramInfoLog(program, logLength, nil, &log[0])
	return cString(log)
}

func (Driver) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (Driver) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (Driver) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (Driver) Uniform1i(location int32, v int32) {
	gl.Uniform1i(location, v)
}

func (Driver) Uniform3f(location int32, x, y, z float32) {
	gl.Uniform3f(location, x, y, z)
}

// cString returns the bytes of b up to the first NUL.
func cString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
