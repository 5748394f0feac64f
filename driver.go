package shader

// Driver is the subset of graphics API entry points the pipeline needs.
//
// Every method operates on the graphics context that is current on the
// calling thread, so a Driver must only be used from the thread that owns
// that context.
type Driver interface {
	// CreateShader returns a new, non-zero shader object for the stage.
	CreateShader(stage Stage) uint32
	// CompileShader submits source to the shader object and compiles it.
	CompileShader(shader uint32, source string)
	// ShaderCompiled reports the driver's compile status.
	ShaderCompiled(shader uint32) bool
	// ShaderInfoLog returns the compiler log of the shader object.
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	// CreateProgram returns a new, non-zero program object.
	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	// ProgramLinked reports the driver's link status.
	ProgramLinked(program uint32) bool
	// ProgramInfoLog returns the linker log of the program object.
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	// UniformLocation returns -1 when the program has no such active uniform.
	UniformLocation(program uint32, name string) int32
	Uniform1i(location int32, v int32)
	Uniform3f(location int32, x, y, z float32)
}
