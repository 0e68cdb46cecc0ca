//go:build !emlog_runtime && !emlog_faultlog

package logger

// CompiledMode is the mode selected by build tags. Build with
// -tags emlog_runtime or -tags emlog_faultlog to enable logging.
const CompiledMode = ModeDisabled
