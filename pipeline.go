package shader

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Pipeline compiles shader stages and links them into programs.
type Pipeline struct {
	driver       Driver
	diagnostics  io.Writer
	logger       *slog.Logger
	infoLogLimit int

	// linkOnCompileFailure makes Build attempt the link even when a stage
	// failed, to surface the linker's view of the broken program as well.
	linkOnCompileFailure bool
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithDiagnostics sets where compile and link failures are written.
func WithDiagnostics(w io.Writer) PipelineOption {
	return func(p *Pipeline) { p.diagnostics = w }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) PipelineOption {
	return func(p *Pipeline) { p.logger = l }
}

// WithInfoLogLimit sets how many bytes of each driver log are kept.
// A limit <= 0 keeps the whole log.
func WithInfoLogLimit(n int) PipelineOption {
	return func(p *Pipeline) { p.infoLogLimit = n }
}

// WithLinkOnCompileFailure makes Build link even after a stage failed.
func WithLinkOnCompileFailure(enabled bool) PipelineOption {
	return func(p *Pipeline) { p.linkOnCompileFailure = enabled }
}

// NewPipeline creates a pipeline that issues its calls through driver.
func NewPipeline(driver Driver, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		driver:       driver,
		diagnostics:  os.Stderr,
		logger:       slog.New(slog.DiscardHandler),
		infoLogLimit: DefaultInfoLogLimit,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// CompileStage compiles source as the given stage.
//
// The returned shader is always a live driver object, even when err is
// non-nil, and the caller owns it: release it with ReleaseShader.
func (p *Pipeline) CompileStage(stage Stage, source string) (Shader, error) {
	if stage != StageVertex && stage != StageFragment {
		return Shader{}, fmt.Errorf("compile %s: not a shader stage", stage)
	}

	sh := Shader{ID: p.driver.CreateShader(stage), Stage: stage}
	if source == "" {
		// The driver would report an empty compile log; say what happened.
		err := &ShaderError{Stage: stage, Log: ErrEmptySource.Error(), cause: ErrEmptySource}
		p.report(err)
		return sh, err
	}

	p.driver.CompileShader(sh.ID, source)
	if !p.driver.ShaderCompiled(sh.ID) {
		err := &ShaderError{Stage: stage, Log: truncateLog(p.driver.ShaderInfoLog(sh.ID), p.infoLogLimit)}
		p.report(err)
		return sh, err
	}

	p.logger.Debug("shader compiled", "stage", stage, "id", sh.ID)
	return sh, nil
}

// Link attaches both shaders to a new program and links it.
//
// The returned program always wraps a live driver object, even when err is
// non-nil; on failure Linked reports false and the program should be
// released rather than drawn with. Link detaches the shaders but does not
// delete them.
func (p *Pipeline) Link(vertex, fragment Shader) (*Program, error) {
	id := p.driver.CreateProgram()
	p.driver.AttachShader(id, vertex.ID)
	p.driver.AttachShader(id, fragment.ID)
	p.driver.LinkProgram(id)

	prog := newProgram(p.driver, id)
	prog.linked = p.driver.ProgramLinked(id)

	// Once linked the program keeps everything it needs from the stages.
	p.driver.DetachShader(id, vertex.ID)
	p.driver.DetachShader(id, fragment.ID)

	if !prog.linked {
		err := &ShaderError{Stage: StageProgram, Log: truncateLog(p.driver.ProgramInfoLog(id), p.infoLogLimit)}
		p.report(err)
		return prog, err
	}

	p.logger.Debug("program linked", "id", id)
	return prog, nil
}

// ReleaseShader deletes a shader object returned by CompileStage.
func (p *Pipeline) ReleaseShader(sh Shader) {
	if sh.ID != 0 {
		p.driver.DeleteShader(sh.ID)
	}
}

// Build compiles both sources and links them into a program.
//
// On success the program is ready to use. On any failure Build releases
// every driver object it created and returns a nil program together with
// an error carrying one *ShaderError per failed step.
func (p *Pipeline) Build(vertexSource, fragmentSource string) (*Program, error) {
	vs, vErr := p.CompileStage(StageVertex, vertexSource)
	defer p.ReleaseShader(vs)

	fs, fErr := p.CompileStage(StageFragment, fragmentSource)
	defer p.ReleaseShader(fs)

	compileErr := errors.Join(vErr, fErr)
	if compileErr != nil && !p.linkOnCompileFailure {
		return nil, fmt.Errorf("build program: %w", compileErr)
	}

	prog, linkErr := p.Link(vs, fs)
	if err := errors.Join(compileErr, linkErr); err != nil {
		prog.Release()
		return nil, fmt.Errorf("build program: %w", err)
	}

	p.logger.Debug("program built", "id", prog.ID())
	return prog, nil
}

// BuildSources is Build for a Sources pair.
func (p *Pipeline) BuildSources(src Sources) (*Program, error) {
	if err := src.Validate(); err != nil {
		return nil, fmt.Errorf("build program: %w", err)
	}
	return p.Build(src.Vertex, src.Fragment)
}

func (p *Pipeline) report(err *ShaderError) {
	if p.diagnostics == nil {
		return
	}
	fmt.Fprintln(p.diagnostics, err.Error())
}
