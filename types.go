package shader

// Stage identifies which part of the pipeline a diagnostic or shader object
// belongs to.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
	// StageProgram tags link diagnostics. It is never passed to CompileStage.
	StageProgram
)

// String returns the stage tag used in diagnostics.
func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "VERTEX"
	case StageFragment:
		return "FRAGMENT"
	case StageProgram:
		return "PROGRAM"
	default:
		return "UNKNOWN"
	}
}

// Shader is a driver handle for one compiled (or failed) shader object.
type Shader struct {
	ID    uint32
	Stage Stage
}

// Vec3 is a three component vector, laid out like a GLSL vec3.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns the sum of two vectors.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Mul returns the vector scaled by a scalar.
func (v Vec3) Mul(s float32) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}
