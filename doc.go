/*
Package shader compiles GLSL stages and links them into programs, reporting
driver diagnostics as typed errors instead of printing and carrying on.

# Overview

A Pipeline issues its calls through a Driver, the small slice of the
graphics API that shader work needs. The OpenGL implementation lives in
backend/opengl; tests use a fake.

	driver := opengl.NewDriver()
	pipeline := shader.NewPipeline(driver)

	prog, err := pipeline.Build(shader.SolidVertexSource, shader.OrangeFragmentSource)
	if err != nil {
	    // err wraps one *shader.ShaderError per failed stage
	    return err
	}
	defer prog.Release()

	for !window.ShouldClose() {
	    prog.Use()
	    // draw
	}

# Diagnostics

Every compile or link failure is written to the pipeline's diagnostic
writer (stderr by default) as

	ERROR::SHADER::<VERTEX|FRAGMENT|PROGRAM>:COMPILATION_FAILED
	<driver log>

with the driver log capped at DefaultInfoLogLimit bytes. The same text is
the Error() of the returned *ShaderError, and StageOf recovers the stage.

Build compiles both stages before deciding anything, so each broken stage
is reported once. It does not link after a failed compile unless the
pipeline was created WithLinkOnCompileFailure(true).

# Ownership

CompileStage and Link always hand back live driver objects, failed or not;
the caller releases them. Build cleans up after itself on every path and
only returns a Program that linked. Program.Release is idempotent.

# Threading

Graphics calls must happen on the thread that owns the context. Only
SourceWatcher starts a goroutine, and it only sends on a channel.
*/
package shader
