package shader

// Program owns one linked program object.
//
// Release deletes the driver object; it is safe to call more than once and
// every other method is a no-op on a released program.
type Program struct {
	driver   Driver
	id       uint32
	linked   bool
	released bool

	// Uniform locations are looked up once per name.
	locations map[string]int32
}

func newProgram(driver Driver, id uint32) *Program {
	return &Program{
		driver:    driver,
		id:        id,
		locations: make(map[string]int32),
	}
}

// ID returns the driver handle, or 0 once released.
func (p *Program) ID() uint32 {
	if p == nil || p.released {
		return 0
	}
	return p.id
}

// Linked reports whether the driver linked the program successfully.
func (p *Program) Linked() bool {
	return p != nil && !p.released && p.linked
}

// Use binds the program for subsequent draw calls.
func (p *Program) Use() {
	if p.ID() == 0 {
		return
	}
	p.driver.UseProgram(p.id)
}

// UniformLocation returns the location of the named uniform, or -1.
func (p *Program) UniformLocation(name string) int32 {
	if p.ID() == 0 {
		return -1
	}
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := p.driver.UniformLocation(p.id, name)
	p.locations[name] = loc
	return loc
}

// SetVec3 sets a vec3 uniform. The program must be in use.
func (p *Program) SetVec3(name string, v Vec3) {
	if loc := p.UniformLocation(name); loc >= 0 {
		p.driver.Uniform3f(loc, v.X, v.Y, v.Z)
	}
}

// SetInt sets an int or sampler uniform. The program must be in use.
func (p *Program) SetInt(name string, v int32) {
	if loc := p.UniformLocation(name); loc >= 0 {
		p.driver.Uniform1i(loc, v)
	}
}

// Release deletes the program object.
func (p *Program) Release() {
	if p == nil || p.released {
		return
	}
	p.released = true
	p.driver.DeleteProgram(p.id)
	clear(p.locations)
}
