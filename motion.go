package shader

// DefaultVelocity is the per-frame offset step of a new Motion.
var DefaultVelocity = Vec3{X: 0.01, Y: 0.005}

// Motion is the bouncing position offset of one drawable.
type Motion struct {
	Offset   Vec3
	Velocity Vec3
	Enabled  bool
}

// NewMotion returns a stopped motion at the origin with DefaultVelocity.
func NewMotion() *Motion {
	return &Motion{Velocity: DefaultVelocity}
}

// Step advances the offset by one frame and returns it.
//
// Before moving, an axis whose offset lies outside (-1, 1] has its velocity
// reversed. Z never moves. A disabled motion keeps its offset.
func (m *Motion) Step() Vec3 {
	if !m.Enabled {
		return m.Offset
	}

	if m.Offset.X > 1 || m.Offset.X <= -1 {
		m.Velocity.X = -m.Velocity.X
	}
	if m.Offset.Y > 1 || m.Offset.Y <= -1 {
		m.Velocity.Y = -m.Velocity.Y
	}

	m.Offset.X += m.Velocity.X
	m.Offset.Y += m.Velocity.Y
	return m.Offset
}

// Toggle starts or stops the motion.
func (m *Motion) Toggle() {
	m.Enabled = !m.Enabled
}
