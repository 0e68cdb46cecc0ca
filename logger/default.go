package logger

import (
	"sync"

	"github.com/philipp01105/emlog/core"
	"github.com/philipp01105/emlog/handler"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Initialize default logger with a stdout sink in the compiled mode
	defaultLogger = NewBuilder().
		WithSink(handler.NewWriterSink(handler.WriterConfig{})).
		Build()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger. A nil l installs a disabled logger.
func SetDefault(l *Logger) {
	if l == nil {
		l = Nop()
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Log logs through the default logger
func Log(level core.Level, file, function string, line int, format string, args ...any) {
	Default().Log(level, file, function, line, format, args...)
}

// Fault records a breadcrumb in the default logger
func Fault(file string, line int) {
	Default().Fault(file, line)
}

// Logf logs at level with the caller as origin using the default logger
func Logf(level core.Level, format string, args ...any) {
	Default().logf(callerSkip, level, format, args)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...any) {
	Default().logf(callerSkip, core.DebugLevel, format, args)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...any) {
	Default().logf(callerSkip, core.InfoLevel, format, args)
}

// Warnf logs a formatted warning message using the default logger
func Warnf(format string, args ...any) {
	Default().logf(callerSkip, core.WarnLevel, format, args)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...any) {
	Default().logf(callerSkip, core.ErrorLevel, format, args)
}

// Fatalf logs a formatted fatal message using the default logger. It does
// not exit.
func Fatalf(format string, args ...any) {
	Default().logf(callerSkip, core.FatalLevel, format, args)
}
