//go:build emlog_runtime

package logger

// CompiledMode is the mode selected by build tags
const CompiledMode = ModeRuntime
