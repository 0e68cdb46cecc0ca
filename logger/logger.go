package logger

import (
	"bytes"
	"io"

	"github.com/philipp01105/emlog/core"
	"github.com/philipp01105/emlog/faultlog"
	"github.com/philipp01105/emlog/formatter"
	"github.com/philipp01105/emlog/handler"
)

// AppNameSize is the size of the application name storage, terminator
// included. At most AppNameSize-1 bytes of a name are kept.
const AppNameSize = 50

// DefaultAppName is the application name used until SetAppName is called
const DefaultAppName = "MyApp"

// DefaultLevel is the minimum level of a new Logger
const DefaultLevel = core.WarnLevel

// callerSkip is the runtime.Caller depth of the code calling Logf or one
// of the leveled helpers, counted from core.GetCaller.
const callerSkip = 3

// Logger owns one fixed buffer and either formats lines into it (runtime
// mode) or packs fault breadcrumbs into it (fault-log mode).
//
// A Logger is not safe for concurrent use. Callers sharing one across
// goroutines must serialize access themselves.
type Logger struct {
	mode  Mode
	buf   *core.Buffer
	fmt   *formatter.Formatter
	acc   *faultlog.Accumulator
	level core.Level
	clock core.Clock
	sink  handler.Sink

	appName    [AppNameSize]byte
	appNameStr string
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	mode     Mode
	capacity int
	appName  string
	level    core.Level
	clock    core.Clock
	sink     handler.Sink
	sep      byte
	color    bool
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		mode:     CompiledMode,
		capacity: core.DefaultCapacity,
		appName:  DefaultAppName,
		level:    DefaultLevel,
		sep:      faultlog.DefaultSeparator,
		color:    true,
	}
}

// WithMode overrides the mode selected by build tags
func (b *Builder) WithMode(m Mode) *Builder {
	b.mode = m
	return b
}

// WithCapacity sets the buffer size in bytes
func (b *Builder) WithCapacity(n int) *Builder {
	b.capacity = n
	return b
}

// WithAppName sets the application name shown in line headers
func (b *Builder) WithAppName(name string) *Builder {
	b.appName = name
	return b
}

// WithLevel sets the minimum level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithClock sets the elapsed time provider
func (b *Builder) WithClock(c core.Clock) *Builder {
	b.clock = c
	return b
}

// WithSink sets the output sink
func (b *Builder) WithSink(s handler.Sink) *Builder {
	b.sink = s
	return b
}

// WithSeparator sets the fault-log record separator
func (b *Builder) WithSeparator(sep byte) *Builder {
	b.sep = sep
	return b
}

// WithColor enables or disables ANSI colors in formatted lines
func (b *Builder) WithColor(enabled bool) *Builder {
	b.color = enabled
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	l := &Logger{
		mode:  b.mode,
		buf:   core.NewBuffer(b.capacity),
		level: b.level,
	}
	switch l.mode {
	case ModeRuntime:
		l.fmt = formatter.New(l.buf, formatter.Config{NoColor: !b.color})
	case ModeFaultLog:
		l.acc = faultlog.New(l.buf, faultlog.WithSeparator(b.sep))
	}
	l.Register(b.clock, b.sink)
	l.SetAppName(b.appName)
	return l
}

// Nop returns a disabled Logger
func Nop() *Logger {
	return NewBuilder().WithMode(ModeDisabled).Build()
}

// Register installs the clock and the sink. A nil argument restores the
// no-op implementation: lines are still formatted but not delivered, and
// the elapsed time reads core.UnsetMilliseconds.
func (l *Logger) Register(clock core.Clock, sink handler.Sink) {
	if clock == nil {
		clock = core.NopClock{}
	}
	if sink == nil {
		sink = handler.NopSink{}
	}
	l.clock = clock
	l.sink = sink
}

// Mode returns the mode the logger was built with
func (l *Logger) Mode() Mode {
	return l.mode
}

// AppName returns the application name
func (l *Logger) AppName() string {
	return l.appNameStr
}

// SetAppName stores name, silently truncated to AppNameSize-1 bytes. A
// name containing a zero byte ends there.
func (l *Logger) SetAppName(name string) {
	clear(l.appName[:])
	n := copy(l.appName[:AppNameSize-1], name)
	if i := bytes.IndexByte(l.appName[:n], 0); i >= 0 {
		n = i
	}
	l.appNameStr = string(l.appName[:n])
}

// Level returns the minimum level
func (l *Logger) Level() core.Level {
	return l.level
}

// SetLevel sets the minimum level. Out-of-range values are accepted as
// they are.
func (l *Logger) SetLevel(level core.Level) {
	l.level = level
}

// Enabled reports whether a line at level would be formatted
func (l *Logger) Enabled(level core.Level) bool {
	return l.mode == ModeRuntime && level >= l.level
}

// Capacity returns the buffer size in bytes
func (l *Logger) Capacity() int {
	return l.buf.Cap()
}

// Snapshot copies the raw buffer into dst and returns the number of bytes
// copied.
func (l *Logger) Snapshot(dst []byte) int {
	return l.buf.Snapshot(dst)
}

// Accumulator returns the fault accumulator, or nil outside fault-log mode
func (l *Logger) Accumulator() *faultlog.Accumulator {
	return l.acc
}

// Log is the dispatching entry point. In runtime mode it formats a line
// when level passes the minimum and hands it to the sink. In fault-log
// mode it records file and line and ignores the rest. Disabled, it does
// nothing.
func (l *Logger) Log(level core.Level, file, function string, line int, format string, args ...any) {
	switch l.mode {
	case ModeRuntime:
		if level < l.level {
			return
		}
		l.emit(level, file, function, line, format, args)
	case ModeFaultLog:
		l.acc.Append(file, line)
	}
}

// Fault records a file:line breadcrumb. It does nothing outside fault-log
// mode.
func (l *Logger) Fault(file string, line int) {
	if l.mode == ModeFaultLog {
		l.acc.Append(file, line)
	}
}

func (l *Logger) emit(level core.Level, file, function string, line int, format string, args []any) {
	h := formatter.Header{
		Level:        level,
		AppName:      l.appNameStr,
		Milliseconds: l.clock.Milliseconds(),
		File:         file,
		Function:     function,
		Line:         line,
	}
	l.sink.Print(l.fmt.Format(h, format, args...))
}

// logf captures the caller skip frames above core.GetCaller and dispatches
// by mode. Disabled loggers and filtered levels skip the capture.
func (l *Logger) logf(skip int, level core.Level, format string, args []any) {
	switch l.mode {
	case ModeRuntime:
		if level < l.level {
			return
		}
		c := core.GetCaller(skip)
		l.emit(level, c.File, c.Function, c.Line, format, args)
	case ModeFaultLog:
		c := core.GetCaller(skip)
		l.acc.Append(c.File, c.Line)
	}
}

// Logf logs at level with the calling file, function and line as origin
func (l *Logger) Logf(level core.Level, format string, args ...any) {
	l.logf(callerSkip, level, format, args)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...any) {
	l.logf(callerSkip, core.DebugLevel, format, args)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...any) {
	l.logf(callerSkip, core.InfoLevel, format, args)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...any) {
	l.logf(callerSkip, core.WarnLevel, format, args)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...any) {
	l.logf(callerSkip, core.ErrorLevel, format, args)
}

// Fatalf logs a fatal message with formatting. It does not exit.
func (l *Logger) Fatalf(format string, args ...any) {
	l.logf(callerSkip, core.FatalLevel, format, args)
}

// Close closes the sink if it implements io.Closer
func (l *Logger) Close() error {
	if c, ok := l.sink.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
