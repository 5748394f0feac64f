package shader_test

import (
	"fmt"
	"strings"

	"github.com/go-theft-auto/shader"
)

type fakeShader struct {
	stage    shader.Stage
	source   string
	compiled bool
	log      string
	deleted  bool
}

type fakeProgram struct {
	attached map[uint32]bool
	linked   bool
	log      string
	deleted  bool
	uniforms map[string]int32
}

// fakeDriver stands in for the GL driver. It fails compilation on a
// statement missing its semicolon and fails linking when the fragment stage
// reads an input the vertex stage never writes.
type fakeDriver struct {
	nextID   uint32
	shaders  map[uint32]*fakeShader
	programs map[uint32]*fakeProgram

	// compileLog, when set, replaces the log of every failed compile.
	compileLog string

	used           uint32
	locationLookup int
	uniform3f      map[int32][3]float32
	uniform1i      map[int32]int32
	deletedProgs   int
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		shaders:   make(map[uint32]*fakeShader),
		programs:  make(map[uint32]*fakeProgram),
		uniform3f: make(map[int32][3]float32),
		uniform1i: make(map[int32]int32),
	}
}

func (d *fakeDriver) id() uint32 {
	d.nextID++
	return d.nextID
}

func (d *fakeDriver) CreateShader(stage shader.Stage) uint32 {
	id := d.id()
	d.shaders[id] = &fakeShader{stage: stage}
	return id
}

func (d *fakeDriver) CompileShader(id uint32, source string) {
	sh := d.shaders[id]
	sh.source = source
	sh.log = checkStatements(source)
	sh.compiled = sh.log == ""
	if !sh.compiled && d.compileLog != "" {
		sh.log = d.compileLog
	}
}

func (d *fakeDriver) ShaderCompiled(id uint32) bool { return d.shaders[id].compiled }
func (d *fakeDriver) ShaderInfoLog(id uint32) string {
	// Real drivers hand back a NUL terminated buffer.
	return d.shaders[id].log + "\x00"
}
func (d *fakeDriver) DeleteShader(id uint32) { d.shaders[id].deleted = true }

func (d *fakeDriver) CreateProgram() uint32 {
	id := d.id()
	d.programs[id] = &fakeProgram{attached: make(map[uint32]bool), uniforms: make(map[string]int32)}
	return id
}

func (d *fakeDriver) AttachShader(program, sh uint32) { d.programs[program].attached[sh] = true }
func (d *fakeDriver) DetachShader(program, sh uint32) { delete(d.programs[program].attached, sh) }

func (d *fakeDriver) LinkProgram(id uint32) {
	p := d.programs[id]
	var vs, fs *fakeShader
	for sid := range p.attached {
		sh := d.shaders[sid]
		if !sh.compiled {
			p.log = "error: linking with uncompiled/unspecialized shader"
			return
		}
		switch sh.stage {
		case shader.StageVertex:
			vs = sh
		case shader.StageFragment:
			fs = sh
		}
	}
	if vs == nil || fs == nil {
		p.log = "error: program is missing a stage"
		return
	}

	outs := declared(vs.source, "out")
	for _, name := range declared(fs.source, "in") {
		if !contains(outs, name) {
			p.log = fmt.Sprintf("error: fragment shader input `%s' has no matching vertex shader output", name)
			return
		}
	}

	var loc int32
	for _, src := range []string{vs.source, fs.source} {
		for _, name := range declared(src, "uniform") {
			p.uniforms[name] = loc
			loc++
		}
	}
	p.linked = true
}

func (d *fakeDriver) ProgramLinked(id uint32) bool    { return d.programs[id].linked }
func (d *fakeDriver) ProgramInfoLog(id uint32) string { return d.programs[id].log + "\x00" }
func (d *fakeDriver) UseProgram(id uint32)            { d.used = id }

func (d *fakeDriver) DeleteProgram(id uint32) {
	d.programs[id].deleted = true
	d.deletedProgs++
}

func (d *fakeDriver) UniformLocation(program uint32, name string) int32 {
	d.locationLookup++
	if loc, ok := d.programs[program].uniforms[name]; ok {
		return loc
	}
	return -1
}

func (d *fakeDriver) Uniform1i(location int32, v int32) { d.uniform1i[location] = v }
func (d *fakeDriver) Uniform3f(location int32, x, y, z float32) {
	d.uniform3f[location] = [3]float32{x, y, z}
}

// liveShaders counts shader objects not yet deleted.
func (d *fakeDriver) liveShaders() int {
	n := 0
	for _, sh := range d.shaders {
		if !sh.deleted {
			n++
		}
	}
	return n
}

// livePrograms counts program objects not yet deleted.
func (d *fakeDriver) livePrograms() int {
	n := 0
	for _, p := range d.programs {
		if !p.deleted {
			n++
		}
	}
	return n
}

// checkStatements returns a compiler-style error for the first statement
// line without a trailing semicolon.
func checkStatements(source string) string {
	for i, line := range strings.Split(source, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "", strings.HasPrefix(line, "#"), strings.HasPrefix(line, "//"),
			strings.HasSuffix(line, "{"), strings.HasSuffix(line, "}"),
			strings.HasPrefix(line, "void "):
			continue
		}
		if !strings.HasSuffix(line, ";") {
			return fmt.Sprintf("0:%d(%d): error: syntax error, unexpected end of statement, expecting ';'", i+1, len(line))
		}
	}
	return ""
}

// declared returns the variable names declared with the given qualifier,
// e.g. "out vec3 Color;" or "layout (location = 0) in vec3 aPos;".
func declared(source, qualifier string) []string {
	var names []string
	for _, line := range strings.Split(source, "\n") {
		line = strings.TrimSpace(line)
		if i := strings.Index(line, ")"); strings.HasPrefix(line, "layout") && i >= 0 {
			line = strings.TrimSpace(line[i+1:])
		}
		fields := strings.Fields(strings.TrimSuffix(line, ";"))
		if len(fields) == 3 && fields[0] == qualifier {
			names = append(names, fields[2])
		}
	}
	return names
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
