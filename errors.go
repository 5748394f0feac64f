package shader

import (
	"errors"
	"strings"
)

// DefaultInfoLogLimit is the number of bytes of compiler or linker output
// kept per diagnostic.
const DefaultInfoLogLimit = 512

// ErrEmptySource is returned when a stage is given no source text.
var ErrEmptySource = errors.New("shader: empty source")

// ShaderError is a compile or link failure reported by the driver.
type ShaderError struct {
	Stage Stage
	// Log is the driver's info log, truncated to the pipeline's limit.
	Log string

	cause error
}

// Error formats the failure the same way it is written to the
// diagnostic channel.
func (e *ShaderError) Error() string {
	return "ERROR::SHADER::" + e.Stage.String() + ":COMPILATION_FAILED\n" + e.Log
}

func (e *ShaderError) Unwrap() error { return e.cause }

// StageOf returns the stage of the first ShaderError in err's tree.
func StageOf(err error) (Stage, bool) {
	var se *ShaderError
	if errors.As(err, &se) {
		return se.Stage, true
	}
	return 0, false
}

// truncateLog trims the driver's NUL terminator and caps the log at limit
// bytes without splitting a UTF-8 sequence.
func truncateLog(log string, limit int) string {
	log = strings.TrimRight(log, "\x00")
	if limit <= 0 || len(log) <= limit {
		return log
	}
	return strings.ToValidUTF8(log[:limit], "")
}
